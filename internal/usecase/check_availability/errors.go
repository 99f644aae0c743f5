package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidDateRange = errors.New("check_availability: end date must be after start date")
)
