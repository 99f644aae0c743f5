package get_user_bookings

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetRenterBookings(ctx context.Context, userID string) (*models.RenterBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
