package create_booking

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	createBooking "github.com/m04kA/CarRental-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CarID     string  `json:"carId"`
	StartDate string  `json:"startDate"` // "2025-10-15"
	EndDate   string  `json:"endDate"`   // "2025-10-18"
	Message   *string `json:"message,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// renterID приходит из контекста аутентификации, не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(renterID string) (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RenterID:  renterID,
		CarID:     r.CarID,
		StartDate: startDate,
		EndDate:   endDate,
		Message:   r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		CarID:      resp.CarID,
		RenterID:   resp.RenterID,
		OwnerID:    resp.OwnerID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		TotalDays:  resp.TotalDays,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		Message:    resp.Message,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
