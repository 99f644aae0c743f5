package bookings

import (
	"context"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByRenter(ctx context.Context, renterID string) ([]*domain.BookingWithCar, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingWithRenter, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	SetAvailability(ctx context.Context, id string, available bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс продюсера событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// CatalogInvalidator сбрасывает кеш публичного каталога автомобилей
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
