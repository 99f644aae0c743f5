package create_booking

import (
	"fmt"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RenterID == "" {
		return fmt.Errorf("%w: renterID is required", ErrInvalidInput)
	}

	if req.CarID == "" {
		return fmt.Errorf("%w: carID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidDateRange
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}
