package models

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования арендатором
type CancelBookingRequest struct {
	UserID string `json:"userId"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string  `json:"id"`
	CarID      string  `json:"carId"`
	RenterID   string  `json:"renterId"`
	OwnerID    string  `json:"ownerId"`
	StartDate  string  `json:"startDate"` // "2025-10-15"
	EndDate    string  `json:"endDate"`
	TotalDays  int     `json:"totalDays"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	Message    *string `json:"message,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CarSummary денормализованные атрибуты автомобиля в списках бронирований
type CarSummary struct {
	ID          string   `json:"id"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	PricePerDay float64  `json:"pricePerDay"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
}

// RenterContact контакты арендатора во взгляде владельца
type RenterContact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// BookingWithCarResponse бронирование арендатора с данными автомобиля
type BookingWithCarResponse struct {
	BookingResponse
	Car CarSummary `json:"car"`
}

// BookingWithRenterResponse бронирование владельца с автомобилем и контактами арендатора
type BookingWithRenterResponse struct {
	BookingResponse
	Car    CarSummary    `json:"car"`
	Renter RenterContact `json:"renter"`
}

// RenterBookingListResponse ответ со списком бронирований арендатора
type RenterBookingListResponse struct {
	Bookings []BookingWithCarResponse `json:"bookings"`
}

// OwnerBookingListResponse ответ со списком бронирований по автомобилям владельца
type OwnerBookingListResponse struct {
	Bookings []BookingWithRenterResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		CarID:      b.CarID,
		RenterID:   b.RenterID,
		OwnerID:    b.OwnerID,
		StartDate:  b.StartDate.Format(domain.DateFormat),
		EndDate:    b.EndDate.Format(domain.DateFormat),
		TotalDays:  b.TotalDays,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		Message:    b.Message,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainCarSummary конвертирует domain автомобиль в краткое DTO
func FromDomainCarSummary(c *domain.Car) CarSummary {
	images := c.Images
	if images == nil {
		images = []string{}
	}

	return CarSummary{
		ID:          c.ID,
		Make:        c.Make,
		Model:       c.Model,
		Year:        c.Year,
		PricePerDay: c.PricePerDay,
		Category:    c.Category,
		Location:    c.Location,
		Images:      images,
	}
}

// FromDomainRenterBookings конвертирует список бронирований арендатора в DTO
func FromDomainRenterBookings(bookings []*domain.BookingWithCar) *RenterBookingListResponse {
	resp := &RenterBookingListResponse{
		Bookings: make([]BookingWithCarResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, BookingWithCarResponse{
			BookingResponse: *FromDomainBooking(&b.Booking),
			Car:             FromDomainCarSummary(&b.Car),
		})
	}

	return resp
}

// FromDomainOwnerBookings конвертирует список бронирований владельца в DTO
func FromDomainOwnerBookings(bookings []*domain.BookingWithRenter) *OwnerBookingListResponse {
	resp := &OwnerBookingListResponse{
		Bookings: make([]BookingWithRenterResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, BookingWithRenterResponse{
			BookingResponse: *FromDomainBooking(&b.Booking),
			Car:             FromDomainCarSummary(&b.Car),
			Renter: RenterContact{
				ID:        b.Renter.ID,
				FirstName: b.Renter.FirstName,
				LastName:  b.Renter.LastName,
				Phone:     b.Renter.Phone,
				Email:     b.Renter.Email,
			},
		})
	}

	return resp
}
