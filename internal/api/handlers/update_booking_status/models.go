package update_booking_status

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // approved | rejected | completed
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	CarID      string  `json:"carId"`
	RenterID   string  `json:"renterId"`
	OwnerID    string  `json:"ownerId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalDays  int     `json:"totalDays"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	Message    *string `json:"message,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в HTTP response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		CarID:      b.CarID,
		RenterID:   b.RenterID,
		OwnerID:    b.OwnerID,
		StartDate:  b.StartDate.Format(domain.DateFormat),
		EndDate:    b.EndDate.Format(domain.DateFormat),
		TotalDays:  b.TotalDays,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		Message:    b.Message,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}
