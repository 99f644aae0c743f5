package models

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// Request модели

// CreateCarRequest запрос на создание объявления
type CreateCarRequest struct {
	UserID       string   `json:"userId"`
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

// UpdateCarRequest частичное обновление объявления, nil-поля не изменяются
type UpdateCarRequest struct {
	UserID       string    `json:"userId"`
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

// ToDomainUpdate конвертирует request в domain модель частичного обновления
func (r *UpdateCarRequest) ToDomainUpdate() *domain.CarUpdate {
	return &domain.CarUpdate{
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

// Response модели

// CarResponse ответ с данными автомобиля
type CarResponse struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	PricePerDay  float64  `json:"pricePerDay"`
	Category     string   `json:"category"`
	Description  string   `json:"description,omitempty"`
	Seats        int      `json:"seats,omitempty"`
	FuelType     string   `json:"fuelType,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Features     []string `json:"features"`
	Location     string   `json:"location"`
	Images       []string `json:"images"`
	IsAvailable  bool     `json:"isAvailable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CarListResponse ответ со списком автомобилей
type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

// Методы конвертации

// FromDomainCar конвертирует domain модель в DTO
func FromDomainCar(c *domain.Car) *CarResponse {
	if c == nil {
		return nil
	}

	features := c.Features
	if features == nil {
		features = []string{}
	}
	images := c.Images
	if images == nil {
		images = []string{}
	}

	return &CarResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		PricePerDay:  c.PricePerDay,
		Category:     c.Category,
		Description:  c.Description,
		Seats:        c.Seats,
		FuelType:     c.FuelType,
		Transmission: c.Transmission,
		Features:     features,
		Location:     c.Location,
		Images:       images,
		IsAvailable:  c.IsAvailable,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCarList конвертирует список domain моделей в DTO
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{
		Cars: make([]CarResponse, 0, len(cars)),
	}

	for _, car := range cars {
		if carResp := FromDomainCar(car); carResp != nil {
			resp.Cars = append(resp.Cars, *carResp)
		}
	}

	return resp
}
