package check_availability

import (
	"github.com/m04kA/CarRental-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/CarRental-BookingService/internal/usecase/check_availability"
)

// ConflictResponse пересекающееся бронирование в ответе
// Наружу отдаются только занятые даты и статус, без данных арендатора
type ConflictResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			StartDate: c.StartDate.Format(domain.DateFormat),
			EndDate:   c.EndDate.Format(domain.DateFormat),
			Status:    string(c.Status),
		})
	}

	return &AvailabilityResponse{
		Available: resp.Available,
		Conflicts: conflicts,
	}
}
