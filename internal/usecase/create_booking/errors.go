package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidDateRange = errors.New("create_booking: end date must be after start date")

	// ErrProfileNotFound возвращается, когда профиль арендатора не найден
	ErrProfileNotFound = errors.New("create_booking: renter profile not found")

	// ErrPhoneMissing возвращается, когда в профиле арендатора нет телефона
	ErrPhoneMissing = errors.New("create_booking: renter has no phone number on file")

	// ErrPhoneNotVerified возвращается, когда телефон арендатора не подтверждён
	ErrPhoneNotVerified = errors.New("create_booking: renter phone number is not verified")

	// ErrLicenseInvalid возвращается, когда водительское удостоверение
	// отсутствует или истекло
	ErrLicenseInvalid = errors.New("create_booking: driver license is missing or expired")

	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("create_booking: car not found")

	// ErrCarUnavailable возвращается, когда автомобиль снят с бронирования
	ErrCarUnavailable = errors.New("create_booking: car is not available")

	// ErrDatesConflict возвращается, когда даты пересекаются с существующим
	// активным бронированием этого автомобиля
	ErrDatesConflict = errors.New("create_booking: car is not available for these dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
