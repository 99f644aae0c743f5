package create_review

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	CreateReview(ctx context.Context, carID string, req *models.CreateReviewRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
