package reviews

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование из отзыва не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда отзыв пытается оставить
	// не арендатор бронирования
	ErrAccessDenied = errors.New("access denied")

	// ErrBookingNotCompleted возвращается, когда аренда ещё не завершена -
	// отзыв можно оставить только по completed-бронированию
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// ErrDuplicateReview возвращается при повторном отзыве по тому же бронированию
	ErrDuplicateReview = errors.New("review already exists for booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
