package get_owner_bookings

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetOwnerBookings(ctx context.Context, userID string) (*models.OwnerBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
