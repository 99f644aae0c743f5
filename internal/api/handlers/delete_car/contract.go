package delete_car

import "context"

type CarService interface {
	DeleteCar(ctx context.Context, id string, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
