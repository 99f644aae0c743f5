package review

import "errors"

var (
	// ErrDuplicateReview возвращается при попытке оставить второй отзыв
	// по тому же бронированию
	ErrDuplicateReview = errors.New("review.repository: review already exists for booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
