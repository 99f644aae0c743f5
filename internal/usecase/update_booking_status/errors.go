package update_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInvalidStatus возвращается при неизвестном или недопустимом для
	// владельца целевом статусе
	ErrInvalidStatus = errors.New("update_booking_status: invalid target status")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrAccessDenied возвращается, когда вызывающий не владелец автомобиля
	ErrAccessDenied = errors.New("update_booking_status: access denied")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	// (например, бронирование уже не pending или в терминальном статусе)
	ErrIllegalTransition = errors.New("update_booking_status: illegal status transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
