package cars

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	ListAvailable(ctx context.Context) ([]*domain.Car, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Car, error)
	Update(ctx context.Context, id string, upd *domain.CarUpdate) error
	Delete(ctx context.Context, id string) error
}

// CatalogCache кеш публичного каталога доступных автомобилей
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]*domain.Car, error)
	SetCatalog(ctx context.Context, cars []*domain.Car) error
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
