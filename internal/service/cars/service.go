package cars

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	carRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/car"
	"github.com/m04kA/CarRental-BookingService/internal/service/cars/models"
)

// Service сервис для работы с объявлениями автомобилей
type Service struct {
	carRepo CarRepository
	cache   CatalogCache
	logger  Logger
}

// NewService создает новый экземпляр сервиса автомобилей
// cache может быть nil, если Redis выключен в конфиге
func NewService(carRepo CarRepository, cache CatalogCache, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		cache:   cache,
		logger:  logger,
	}
}

// ListAvailableCars возвращает публичный каталог доступных автомобилей
// Сначала пробует кеш; промах или ошибка кеша не фатальны - каталог
// читается из БД и кладётся в кеш best-effort
func (s *Service) ListAvailableCars(ctx context.Context) (*models.CarListResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCatalog(ctx)
		if err != nil {
			s.logger.Warn("ListAvailableCars: cache read failed: %v", err)
		} else if cached != nil {
			s.logger.Info("ListAvailableCars: served %d cars from cache", len(cached))
			return models.FromDomainCarList(cached), nil
		}
	}

	cars, err := s.carRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("ListAvailableCars: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailableCars - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, cars); err != nil {
			s.logger.Warn("ListAvailableCars: cache write failed: %v", err)
		}
	}

	s.logger.Info("ListAvailableCars: successfully fetched %d cars", len(cars))
	return models.FromDomainCarList(cars), nil
}

// GetCar получает объявление по ID
// Публичная операция, права не проверяются
func (s *Service) GetCar(ctx context.Context, id string) (*models.CarResponse, error) {
	s.logger.Info("GetCar: fetching car id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetCar: car id=%s not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetCar: repository error for car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetCar - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// GetUserCars возвращает объявления пользователя, включая недоступные
func (s *Service) GetUserCars(ctx context.Context, userID string) (*models.CarListResponse, error) {
	s.logger.Info("GetUserCars: fetching cars for user=%s", userID)

	if userID == "" {
		return &models.CarListResponse{Cars: []models.CarResponse{}}, nil
	}

	cars, err := s.carRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserCars: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserCars - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserCars: successfully fetched %d cars for user=%s", len(cars), userID)
	return models.FromDomainCarList(cars), nil
}

// CreateCar создает объявление
// Новый автомобиль сразу доступен для бронирования
func (s *Service) CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("CreateCar: creating car for user=%s (%s %s)", req.UserID, req.Make, req.Model)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateCar: validation failed: %v", err)
		return nil, err
	}

	car := &domain.Car{
		UserID:       req.UserID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		PricePerDay:  req.PricePerDay,
		Category:     req.Category,
		Description:  req.Description,
		Seats:        req.Seats,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Features:     req.Features,
		Location:     req.Location,
		Images:       req.Images,
		IsAvailable:  true,
	}

	created, err := s.carRepo.Create(ctx, car)
	if err != nil {
		s.logger.Error("CreateCar: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateCar - repository error: %v", ErrInternal, err)
	}

	s.invalidateCatalog(ctx, "CreateCar")

	s.logger.Info("CreateCar: successfully created car id=%s", created.ID)
	return models.FromDomainCar(created), nil
}

// UpdateCar обновляет объявление
// Доступно только владельцу; пустое обновление - no-op
func (s *Service) UpdateCar(ctx context.Context, id string, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("UpdateCar: updating car id=%s by user=%s", id, req.UserID)

	if id == "" || req.UserID == "" {
		return nil, fmt.Errorf("%w: id and userId are required", ErrInvalidInput)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("UpdateCar: car id=%s not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("UpdateCar: repository error for car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCar - repository error: %v", ErrInternal, err)
	}

	if car.UserID != req.UserID {
		s.logger.Warn("UpdateCar: access denied for user=%s to car id=%s", req.UserID, id)
		return nil, ErrAccessDenied
	}

	upd := req.ToDomainUpdate()
	if upd.IsEmpty() {
		s.logger.Info("UpdateCar: empty update for car id=%s, nothing to do", id)
		return models.FromDomainCar(car), nil
	}

	if upd.PricePerDay != nil && *upd.PricePerDay <= 0 {
		return nil, fmt.Errorf("%w: pricePerDay must be positive", ErrInvalidInput)
	}
	if upd.Year != nil && !isReasonableYear(*upd.Year) {
		return nil, fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}

	if err := s.carRepo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return nil, ErrCarNotFound
		}
		s.logger.Error("UpdateCar: repository error for car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCar - repository error: %v", ErrInternal, err)
	}

	updated, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateCar: failed to reload car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCar - repository error: %v", ErrInternal, err)
	}

	s.invalidateCatalog(ctx, "UpdateCar")

	s.logger.Info("UpdateCar: successfully updated car id=%s", id)
	return models.FromDomainCar(updated), nil
}

// DeleteCar удаляет объявление
// Доступно только владельцу
func (s *Service) DeleteCar(ctx context.Context, id string, userID string) error {
	s.logger.Info("DeleteCar: deleting car id=%s by user=%s", id, userID)

	if id == "" || userID == "" {
		return fmt.Errorf("%w: id and userId are required", ErrInvalidInput)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("DeleteCar: car id=%s not found", id)
			return ErrCarNotFound
		}
		s.logger.Error("DeleteCar: repository error for car id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteCar - repository error: %v", ErrInternal, err)
	}

	if car.UserID != userID {
		s.logger.Warn("DeleteCar: access denied for user=%s to car id=%s", userID, id)
		return ErrAccessDenied
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return ErrCarNotFound
		}
		s.logger.Error("DeleteCar: repository error for car id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteCar - repository error: %v", ErrInternal, err)
	}

	s.invalidateCatalog(ctx, "DeleteCar")

	s.logger.Info("DeleteCar: successfully deleted car id=%s", id)
	return nil
}

// invalidateCatalog сбрасывает кеш каталога best-effort
func (s *Service) invalidateCatalog(ctx context.Context, op string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate catalog cache: %v", op, err)
	}
}

// validateCreateRequest валидирует запрос на создание объявления
func validateCreateRequest(req *models.CreateCarRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.Make == "" || req.Model == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidInput)
	}
	if !isReasonableYear(req.Year) {
		return fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}
	if req.PricePerDay <= 0 {
		return fmt.Errorf("%w: pricePerDay must be positive", ErrInvalidInput)
	}
	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	return nil
}

// isReasonableYear отсекает опечатки в годе выпуска
// Допускается следующий модельный год
func isReasonableYear(year int) bool {
	return year >= domain.MinCarYear && year <= time.Now().Year()+1
}
