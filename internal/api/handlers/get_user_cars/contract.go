package get_user_cars

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/cars/models"
)

type CarService interface {
	GetUserCars(ctx context.Context, userID string) (*models.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
