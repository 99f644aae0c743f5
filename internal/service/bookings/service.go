package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/CarRental-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение и отмена
// Создание и смена статуса владельцем живут в отдельных usecase
type Service struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	txManager   TransactionManager
	publisher   EventPublisher
	cache       CatalogInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// publisher и cache могут быть nil, если события/кеш выключены в конфиге
func NewService(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	cache CatalogInvalidator,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		txManager:   txManager,
		publisher:   publisher,
		cache:       cache,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно только участникам сделки - арендатору или владельцу автомобиля
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	if id == "" || userID == "" {
		return nil, fmt.Errorf("%w: id and userId are required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.RenterID != userID && booking.OwnerID != userID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetRenterBookings получает историю бронирований арендатора с данными
// автомобилей, новые сверху
// Для пустого userID возвращает пустой список без похода в БД
func (s *Service) GetRenterBookings(ctx context.Context, userID string) (*models.RenterBookingListResponse, error) {
	s.logger.Info("GetRenterBookings: fetching bookings for renter=%s", userID)

	if userID == "" {
		return &models.RenterBookingListResponse{Bookings: []models.BookingWithCarResponse{}}, nil
	}

	bookings, err := s.bookingRepo.ListByRenter(ctx, userID)
	if err != nil {
		s.logger.Error("GetRenterBookings: repository error for renter=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetRenterBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterBookings: successfully fetched %d bookings for renter=%s", len(bookings), userID)
	return models.FromDomainRenterBookings(bookings), nil
}

// GetOwnerBookings получает заявки на автомобили владельца с контактами
// арендаторов, новые сверху
// Для пустого userID возвращает пустой список без похода в БД
func (s *Service) GetOwnerBookings(ctx context.Context, userID string) (*models.OwnerBookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%s", userID)

	if userID == "" {
		return &models.OwnerBookingListResponse{Bookings: []models.BookingWithRenterResponse{}}, nil
	}

	bookings, err := s.bookingRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d bookings for owner=%s", len(bookings), userID)
	return models.FromDomainOwnerBookings(bookings), nil
}

// Cancel отменяет бронирование
// Отменить может только арендатор и только из pending или approved;
// отмена мягкая - строка остаётся в истории со статусом cancelled
// Отмена approved-бронирования возвращает автомобилю флаг доступности,
// обе записи идут в одной сериализуемой транзакции
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.UserID)

	if bookingID == "" || req.UserID == "" {
		return fmt.Errorf("%w: id and userId are required", ErrInvalidInput)
	}

	var cancelled *domain.Booking
	availabilityChanged := false

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.RenterID != req.UserID {
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", req.UserID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		wasApproved := booking.Status == domain.StatusApproved

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// pending не снимал флаг доступности, возвращать нечего
		if wasApproved {
			if err := s.carRepo.SetAvailability(txCtx, booking.CarID, true); err != nil {
				s.logger.Error("Cancel: failed to release car=%s: %v", booking.CarID, err)
				return fmt.Errorf("%w: Cancel - failed to release car: %v", ErrInternal, err)
			}
			availabilityChanged = true
		}

		booking.Status = domain.StatusCancelled
		cancelled = booking
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)

	// Кеш каталога и событие - best-effort после коммита
	if availabilityChanged && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Error("Cancel: failed to invalidate catalog cache: %v", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingStatusChanged, cancelled)); err != nil {
			s.logger.Error("Cancel: failed to publish event for booking id=%s: %v", bookingID, err)
		}
	}

	return nil
}
