package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/car"
	userClient "github.com/m04kA/CarRental-BookingService/internal/integrations/userservice"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	carRepo      CarRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// publisher может быть nil, если события выключены в конфиге
func NewUseCase(
	bookingRepository BookingRepository,
	carRepository CarRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		carRepo:      carRepository,
		userClient:   userClient,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Предусловия проверяются по порядку, каждое даёт отдельную ошибку:
//  1. корректные входные данные, endDate > startDate
//  2. в профиле арендатора есть телефон и он подтверждён
//  3. водительское удостоверение на месте и не истекло
//  4. автомобиль существует и is_available = true
//  5. диапазон дат не пересекается с активными бронированиями
//
// Шаги 4-5 и вставка выполняются в сериализуемой транзакции с блокировкой
// строки автомобиля; авторитетная защита от гонки двух параллельных
// созданий - exclusion constraint в БД (нарушение приходит как ErrDatesConflict).
// Строка бронирования вставляется последней, частичных состояний не остаётся.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: renter=%s, car=%s, start=%s, end=%s",
		req.RenterID, req.CarID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2-3. Профильные предусловия: подтверждённый телефон и действующее ВУ
	profile, err := uc.userClient.GetProfile(ctx, req.RenterID)
	if err != nil {
		if errors.Is(err, userClient.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: profile not found for renter=%s", req.RenterID)
			return nil, ErrProfileNotFound
		}
		uc.logger.Error("CreateBooking: failed to get profile for renter=%s: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: failed to get renter profile: %v", ErrInternal, err)
	}

	if !profile.HasPhone() {
		uc.logger.Warn("CreateBooking: renter=%s has no phone on file", req.RenterID)
		return nil, ErrPhoneMissing
	}

	if !profile.HasVerifiedPhone() {
		uc.logger.Warn("CreateBooking: renter=%s phone is not verified", req.RenterID)
		return nil, ErrPhoneNotVerified
	}

	if !profile.HasValidLicense(now) {
		uc.logger.Warn("CreateBooking: renter=%s driver license is missing or expired", req.RenterID)
		return nil, ErrLicenseInvalid
	}

	var result *domain.Booking

	// 4-5. Проверки по автомобилю и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		car, err := uc.carRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				uc.logger.Warn("CreateBooking: car=%s not found", req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("CreateBooking: failed to get car=%s: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
		}

		if !car.IsAvailable {
			uc.logger.Warn("CreateBooking: car=%s is not available", req.CarID)
			return ErrCarUnavailable
		}

		// Грубый флаг is_available уже отсёк занятый автомобиль, но проверка
		// пересечений обязательна: pending-заявки флаг не трогают
		conflicts, err := uc.bookingRepo.ListConflicting(txCtx, req.CarID, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list conflicts for car=%s: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: car=%s has %d conflicting bookings for range %s..%s",
				req.CarID, len(conflicts),
				req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
			return ErrDatesConflict
		}

		// Цена фиксируется на момент создания: последующее изменение
		// цены автомобиля не меняет total_price существующих бронирований
		totalDays := domain.RentalDays(req.StartDate, req.EndDate)
		totalPrice := float64(totalDays) * car.PricePerDay

		booking := &domain.Booking{
			CarID:      req.CarID,
			RenterID:   req.RenterID,
			OwnerID:    car.UserID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalDays:  totalDays,
			TotalPrice: totalPrice,
			Status:     domain.StatusPending,
			Message:    req.Message,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDatesConflict) {
				uc.logger.Warn("CreateBooking: exclusion constraint rejected car=%s range %s..%s",
					req.CarID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
				return ErrDatesConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (days=%d, price=%.2f)",
		result.ID, result.TotalDays, result.TotalPrice)

	// Событие публикуется best-effort после коммита
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, result)); err != nil {
			uc.logger.Error("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
		}
	}

	return &Response{
		ID:         result.ID,
		CarID:      result.CarID,
		RenterID:   result.RenterID,
		OwnerID:    result.OwnerID,
		StartDate:  result.StartDate,
		EndDate:    result.EndDate,
		TotalDays:  result.TotalDays,
		TotalPrice: result.TotalPrice,
		Status:     string(result.Status),
		Message:    result.Message,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
