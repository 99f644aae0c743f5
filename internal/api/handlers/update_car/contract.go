package update_car

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/cars/models"
)

type CarService interface {
	UpdateCar(ctx context.Context, id string, req *models.UpdateCarRequest) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
