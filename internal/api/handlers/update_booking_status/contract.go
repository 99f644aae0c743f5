package update_booking_status

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	updateStatus "github.com/m04kA/CarRental-BookingService/internal/usecase/update_booking_status"
)

type UpdateBookingStatusUseCase interface {
	Execute(ctx context.Context, req *updateStatus.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
