package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	"github.com/m04kA/CarRental-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListConflicting(ctx context.Context, carID string, start, end time.Time) ([]*domain.Booking, error)
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Car, error)
}

// UserServiceClient интерфейс клиента профильного сервиса
type UserServiceClient interface {
	GetProfile(ctx context.Context, userID string) (*userservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс продюсера событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
