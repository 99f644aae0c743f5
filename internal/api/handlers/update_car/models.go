package update_car

import "github.com/m04kA/CarRental-BookingService/internal/service/cars/models"

// UpdateCarRequest HTTP request model частичного обновления
// nil-поля не изменяются
type UpdateCarRequest struct {
	Make         *string   `json:"make,omitempty"`
	Model        *string   `json:"model,omitempty"`
	Year         *int      `json:"year,omitempty"`
	PricePerDay  *float64  `json:"pricePerDay,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Seats        *int      `json:"seats,omitempty"`
	FuelType     *string   `json:"fuelType,omitempty"`
	Transmission *string   `json:"transmission,omitempty"`
	Features     *[]string `json:"features,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	IsAvailable  *bool     `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCarRequest) ToServiceRequest(userID string) *models.UpdateCarRequest {
	return &models.UpdateCarRequest{
		UserID:       userID,
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		PricePerDay:  r.PricePerDay,
		Category:     r.Category,
		Description:  r.Description,
		Seats:        r.Seats,
		FuelType:     r.FuelType,
		Transmission: r.Transmission,
		Features:     r.Features,
		Location:     r.Location,
		Images:       r.Images,
		IsAvailable:  r.IsAvailable,
	}
}
