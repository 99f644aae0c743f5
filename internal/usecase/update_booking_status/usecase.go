package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
)

// ownerTargets статусы, которые владелец может выставить через этот usecase
// Отмена (cancelled) идёт отдельной операцией арендатора
var ownerTargets = map[domain.BookingStatus]struct{}{
	domain.StatusApproved:  {},
	domain.StatusRejected:  {},
	domain.StatusCompleted: {},
}

// UseCase use case смены статуса бронирования владельцем автомобиля
type UseCase struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	txManager   TransactionManager
	publisher   EventPublisher
	cache       CatalogInvalidator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// publisher и cache могут быть nil, если события/кеш выключены в конфиге
func NewUseCase(
	bookingRepository BookingRepository,
	carRepository CarRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	cache CatalogInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepository,
		carRepo:     carRepository,
		txManager:   txManager,
		publisher:   publisher,
		cache:       cache,
		logger:      logger,
	}
}

// Execute выполняет смену статуса бронирования
//
// Правила:
//   - операция разрешена только владельцу автомобиля из бронирования;
//     проверка владельца идёт раньше проверки перехода, чтобы чужой
//     пользователь не узнал текущий статус по коду ошибки
//   - допустимые переходы: pending -> approved | rejected,
//     approved -> completed (граф задаёт domain.CanTransitionTo)
//   - approved снимает флаг доступности автомобиля, rejected и completed
//     возвращают его; обе записи идут в одной сериализуемой транзакции,
//     частичное состояние "статус сменился, флаг не тронут" невозможно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%s, actor=%s, status=%s",
		req.BookingID, req.ActorID, req.Status)

	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.ActorID == "" {
		return nil, fmt.Errorf("%w: actorID is required", ErrInvalidInput)
	}

	newStatus := domain.BookingStatus(req.Status)
	if !domain.IsValidStatus(newStatus) {
		uc.logger.Warn("UpdateBookingStatus: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
	}
	if _, ok := ownerTargets[newStatus]; !ok {
		uc.logger.Warn("UpdateBookingStatus: status %q is not allowed for owner", req.Status)
		return nil, fmt.Errorf("%w: status %q is not allowed", ErrInvalidStatus, req.Status)
	}

	var result *domain.Booking
	availabilityChanged := false

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.OwnerID != req.ActorID {
			uc.logger.Warn("UpdateBookingStatus: actor=%s is not the owner of booking=%s",
				req.ActorID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanTransitionTo(newStatus) {
			uc.logger.Warn("UpdateBookingStatus: transition %s -> %s is not allowed for booking=%s",
				booking.Status, newStatus, req.BookingID)
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to update booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		if available, changed := domain.CarAvailabilityAfter(newStatus); changed {
			if err := uc.carRepo.SetAvailability(txCtx, booking.CarID, available); err != nil {
				uc.logger.Error("UpdateBookingStatus: failed to set car=%s availability=%t: %v",
					booking.CarID, available, err)
				return fmt.Errorf("%w: failed to update car availability: %v", ErrInternal, err)
			}
			availabilityChanged = true
		}

		booking.Status = newStatus
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking=%s moved to %s", req.BookingID, newStatus)

	// Кеш каталога и событие - best-effort после коммита
	if availabilityChanged && uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to invalidate catalog cache: %v", err)
		}
	}

	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingStatusChanged, result)); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to publish event for booking=%s: %v", req.BookingID, err)
		}
	}

	return result, nil
}
