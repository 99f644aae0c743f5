package userservice

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// Profile профиль пользователя из профильного сервиса
// Используется только как предусловие создания бронирования
type Profile struct {
	ID                  string  `json:"id"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Email               string  `json:"email"`
	Phone               *string `json:"phone"`
	PhoneVerified       bool    `json:"phone_verified"`
	DriverLicenseNumber *string `json:"driver_license_number"`
	DriverLicenseExpiry *string `json:"driver_license_expiry"` // YYYY-MM-DD
}

// HasPhone returns true if a phone number is on file
func (p *Profile) HasPhone() bool {
	return p.Phone != nil && *p.Phone != ""
}

// HasVerifiedPhone returns true if the phone is present and verified
func (p *Profile) HasVerifiedPhone() bool {
	return p.HasPhone() && p.PhoneVerified
}

// HasValidLicense проверяет, что водительское удостоверение на месте
// и не истекло: номер указан, дата истечения указана и >= сегодня
func (p *Profile) HasValidLicense(now time.Time) bool {
	if p.DriverLicenseNumber == nil || *p.DriverLicenseNumber == "" {
		return false
	}
	if p.DriverLicenseExpiry == nil || *p.DriverLicenseExpiry == "" {
		return false
	}

	expiry, err := time.Parse(domain.DateFormat, *p.DriverLicenseExpiry)
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !expiry.Before(today)
}

// ErrorResponse модель ошибки от профильного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
