package get_car_rating

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	GetCarRating(ctx context.Context, carID string) (*models.CarRatingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
