package reviews

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.ReviewWithReviewer, error)
	RatingByCar(ctx context.Context, carID string) (*domain.CarRating, error)
}

// BookingRepository интерфейс репозитория бронирований
// Нужен только для проверки права на отзыв
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
