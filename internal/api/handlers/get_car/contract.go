package get_car

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/cars/models"
)

type CarService interface {
	GetCar(ctx context.Context, id string) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
