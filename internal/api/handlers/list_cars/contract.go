package list_cars

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/cars/models"
)

type CarService interface {
	ListAvailableCars(ctx context.Context) (*models.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
