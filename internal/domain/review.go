package domain

import "time"

// Review отзыв арендатора об автомобиле
// Привязан к конкретному завершённому бронированию: одно бронирование -
// один отзыв (уникальность по booking_id держит БД)
type Review struct {
	ID         string
	CarID      string
	ReviewerID string
	BookingID  string

	Rating  int // MinRating..MaxRating
	Comment string

	CreatedAt time.Time
}

// ReviewWithReviewer отзыв с публичным именем автора для карточки автомобиля
// Контактные поля (телефон, email) наружу не отдаются
type ReviewWithReviewer struct {
	Review
	Reviewer UserContact
}

// CarRating агрегированный рейтинг автомобиля по отзывам
type CarRating struct {
	Average float64
	Count   int
}

// IsValidRating проверяет, что оценка входит в допустимый диапазон
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
