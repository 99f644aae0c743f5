package models

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// Response модели

// ReviewerResponse публичное имя автора отзыва
type ReviewerResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID         string    `json:"id"`
	CarID      string    `json:"carId"`
	ReviewerID string    `json:"reviewerId"`
	BookingID  string    `json:"bookingId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewWithReviewerResponse отзыв с именем автора для карточки автомобиля
type ReviewWithReviewerResponse struct {
	ReviewResponse
	Reviewer ReviewerResponse `json:"reviewer"`
}

// ReviewListResponse список отзывов об автомобиле
type ReviewListResponse struct {
	Reviews []ReviewWithReviewerResponse `json:"reviews"`
}

// CarRatingResponse агрегированный рейтинг автомобиля
type CarRatingResponse struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Конвертеры

// FromDomainReview конвертирует domain модель в response
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		CarID:      r.CarID,
		ReviewerID: r.ReviewerID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов с авторами в response
func FromDomainReviewList(items []*domain.ReviewWithReviewer) *ReviewListResponse {
	reviews := make([]ReviewWithReviewerResponse, 0, len(items))
	for _, item := range items {
		reviews = append(reviews, ReviewWithReviewerResponse{
			ReviewResponse: *FromDomainReview(&item.Review),
			Reviewer: ReviewerResponse{
				FirstName: item.Reviewer.FirstName,
				LastName:  item.Reviewer.LastName,
			},
		})
	}
	return &ReviewListResponse{Reviews: reviews}
}
