package list_car_reviews

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	GetCarReviews(ctx context.Context, carID string) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
