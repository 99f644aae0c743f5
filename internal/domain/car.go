package domain

import "time"

// Car represents a car listed on the marketplace
type Car struct {
	ID     string
	UserID string // владелец объявления

	Make  string
	Model string
	Year  int

	PricePerDay float64 // цена за день аренды, > 0
	Category    string
	Description string

	Seats        int
	FuelType     string
	Transmission string
	Features     []string

	Location string
	Images   []string // упорядоченный список URL изображений

	// IsAvailable false, пока автомобиль удерживается одобренным бронированием.
	// Флаг переключает Booking Lifecycle Manager, владелец - только при редактировании.
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CarUpdate частичное обновление объявления владельцем
// nil-поля не изменяются
type CarUpdate struct {
	Make         *string
	Model        *string
	Year         *int
	PricePerDay  *float64
	Category     *string
	Description  *string
	Seats        *int
	FuelType     *string
	Transmission *string
	Features     *[]string
	Location     *string
	Images       *[]string
	IsAvailable  *bool
}

// IsEmpty returns true if the update changes nothing
func (u *CarUpdate) IsEmpty() bool {
	return u.Make == nil && u.Model == nil && u.Year == nil &&
		u.PricePerDay == nil && u.Category == nil && u.Description == nil &&
		u.Seats == nil && u.FuelType == nil && u.Transmission == nil &&
		u.Features == nil && u.Location == nil && u.Images == nil &&
		u.IsAvailable == nil
}
