package create_car

import "github.com/m04kA/CarRental-BookingService/internal/service/cars/models"

// CreateCarRequest HTTP request model
// Владелец определяется по аутентификации, а не по телу запроса
type CreateCarRequest struct {
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	PricePerDay  float64  `json:"pricePerDay"`
	Category     string   `json:"category"`
	Description  string   `json:"description,omitempty"`
	Seats        int      `json:"seats,omitempty"`
	FuelType     string   `json:"fuelType,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Features     []string `json:"features,omitempty"`
	Location     string   `json:"location"`
	Images       []string `json:"images,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCarRequest) ToServiceRequest(userID string) *models.CreateCarRequest {
	return &models.CreateCarRequest{
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
	}
}
