package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// UseCase use case проверки доступности автомобиля на диапазон дат
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
// Операция только читает; два диапазона считаются пересекающимися по
// инклюзивным границам: [a,b] и [c,d] пересекаются при a <= d && c <= b.
//
// Политика fail closed: при ошибке хранилища автомобиль считается
// недоступным (Available=false), а не доступным - перестраховка дешевле
// двойного бронирования. Ошибка при этом логируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: car=%s, start=%s, end=%s",
		req.CarID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	conflicts, err := uc.bookingRepo.ListConflicting(ctx, req.CarID, req.StartDate, req.EndDate)
	if err != nil {
		// Fail closed: хранилище недоступно - считаем даты занятыми
		uc.logger.Error("CheckAvailability: repository error for car=%s, failing closed: %v", req.CarID, err)
		return &Response{
			Available: false,
			Conflicts: []*domain.Booking{},
		}, nil
	}

	available := len(conflicts) == 0
	uc.logger.Info("CheckAvailability: car=%s available=%t, conflicts=%d", req.CarID, available, len(conflicts))

	return &Response{
		Available: available,
		Conflicts: conflicts,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CarID == "" {
		return fmt.Errorf("%w: carID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidDateRange
	}

	return nil
}
