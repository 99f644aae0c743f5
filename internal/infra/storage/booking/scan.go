package booking

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// carColumns колонки таблицы user_cars, присоединяемые к бронированиям
// во взглядах арендатора и владельца
var carColumns = []string{
	"id",
	"user_id",
	"make",
	"model",
	"year",
	"price_per_day",
	"category",
	"description",
	"seats",
	"fuel_type",
	"transmission",
	"features",
	"location",
	"images",
	"is_available",
	"created_at",
	"updated_at",
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// prefixColumns добавляет алиас таблицы к именам колонок: "b" + "id" -> "b.id"
func prefixColumns(alias string, columns []string) []string {
	prefixed := make([]string, len(columns))
	for i, col := range columns {
		prefixed[i] = fmt.Sprintf("%s.%s", alias, col)
	}
	return prefixed
}

// scanBooking сканирует одну строку bookings
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var message sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CarID,
		&booking.RenterID,
		&booking.OwnerID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalDays,
		&booking.TotalPrice,
		&booking.Status,
		&message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if message.Valid {
		booking.Message = &message.String
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBookingWithCar сканирует строку соединения bookings x user_cars
func scanBookingWithCar(row rowScanner, booking *domain.Booking, car *domain.Car) error {
	var message sql.NullString
	var bCreatedAt, bUpdatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CarID,
		&booking.RenterID,
		&booking.OwnerID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalDays,
		&booking.TotalPrice,
		&booking.Status,
		&message,
		&bCreatedAt,
		&bUpdatedAt,
		&car.ID,
		&car.UserID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.PricePerDay,
		&car.Category,
		&car.Description,
		&car.Seats,
		&car.FuelType,
		&car.Transmission,
		pq.Array(&car.Features),
		&car.Location,
		pq.Array(&car.Images),
		&car.IsAvailable,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if message.Valid {
		booking.Message = &message.String
	}
	booking.CreatedAt = bCreatedAt.Time
	booking.UpdatedAt = bUpdatedAt.Time

	return nil
}

// scanBookingWithRenter сканирует строку соединения bookings x user_cars x users
func scanBookingWithRenter(row rowScanner, booking *domain.Booking, car *domain.Car, renter *domain.UserContact) error {
	var message sql.NullString
	var bCreatedAt, bUpdatedAt sql.NullTime
	var firstName, lastName, phone, email sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.CarID,
		&booking.RenterID,
		&booking.OwnerID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalDays,
		&booking.TotalPrice,
		&booking.Status,
		&message,
		&bCreatedAt,
		&bUpdatedAt,
		&car.ID,
		&car.UserID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.PricePerDay,
		&car.Category,
		&car.Description,
		&car.Seats,
		&car.FuelType,
		&car.Transmission,
		pq.Array(&car.Features),
		&car.Location,
		pq.Array(&car.Images),
		&car.IsAvailable,
		&car.CreatedAt,
		&car.UpdatedAt,
		&renter.ID,
		&firstName,
		&lastName,
		&phone,
		&email,
	)
	if err != nil {
		return err
	}

	if message.Valid {
		booking.Message = &message.String
	}
	booking.CreatedAt = bCreatedAt.Time
	booking.UpdatedAt = bUpdatedAt.Time

	renter.FirstName = firstName.String
	renter.LastName = lastName.String
	renter.Phone = phone.String
	renter.Email = email.String

	return nil
}
