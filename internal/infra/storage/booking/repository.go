package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CarRental-BookingService/pkg/psqlbuilder"
)

// exclusionViolation код PostgreSQL для нарушения exclusion constraint (23P01)
// Констрейнт bookings_no_overlap - авторитетная защита от двойного бронирования
const exclusionViolation = "exclusion_violation"

var bookingColumns = []string{
	"id",
	"car_id",
	"renter_id",
	"owner_id",
	"start_date",
	"end_date",
	"total_days",
	"total_price",
	"status",
	"message",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её -
// создание бронирования с проверкой пересечений выполняется в
// сериализуемой транзакции на уровне usecase
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"car_id",
			"renter_id",
			"owner_id",
			"start_date",
			"end_date",
			"total_days",
			"total_price",
			"status",
			"message",
		).
		Values(
			booking.ID,
			booking.CarID,
			booking.RenterID,
			booking.OwnerID,
			booking.StartDate,
			booking.EndDate,
			booking.TotalDays,
			booking.TotalPrice,
			booking.Status,
			booking.Message,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == exclusionViolation {
			return nil, ErrDatesConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - используется
// при смене статуса, чтобы два перехода не гонялись друг с другом
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListConflicting возвращает бронирования автомобиля в блокирующих статусах
// (pending, approved), чьи диапазоны дат пересекаются с [start, end]
// по инклюзивному правилу: start_date <= end AND end_date >= start.
// Внутри транзакции блокирует найденные строки (FOR UPDATE)
func (r *Repository) ListConflicting(ctx context.Context, carID string, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blockingStatuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blockingStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"car_id": carID}).
		Where(squirrel.Eq{"status": blockingStatuses}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConflicting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConflicting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByRenter возвращает бронирования пользователя-арендатора,
// каждое с полными атрибутами автомобиля, новые первыми
func (r *Repository) ListByRenter(ctx context.Context, renterID string) ([]*domain.BookingWithCar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		prefixColumns("b", bookingColumns)...,
	).
		Columns(prefixColumns("c", carColumns)...).
		From("bookings b").
		Join("user_cars c ON c.id = b.car_id").
		Where(squirrel.Eq{"b.renter_id": renterID}).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRenter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRenter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingWithCar, 0)
	for rows.Next() {
		var item domain.BookingWithCar
		if err := scanBookingWithCar(rows, &item.Booking, &item.Car); err != nil {
			return nil, fmt.Errorf("%w: ListByRenter - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRenter - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListByOwner возвращает бронирования на автомобили владельца,
// каждое с атрибутами автомобиля и публичными контактами арендатора,
// новые первыми
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingWithRenter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		prefixColumns("b", bookingColumns)...,
	).
		Columns(prefixColumns("c", carColumns)...).
		Columns(
			"u.id",
			"u.first_name",
			"u.last_name",
			"u.phone",
			"u.email",
		).
		From("bookings b").
		Join("user_cars c ON c.id = b.car_id").
		Join("users u ON u.id = b.renter_id").
		Where(squirrel.Eq{"b.owner_id": ownerID}).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingWithRenter, 0)
	for rows.Next() {
		var item domain.BookingWithRenter
		if err := scanBookingWithRenter(rows, &item.Booking, &item.Car, &item.Renter); err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

