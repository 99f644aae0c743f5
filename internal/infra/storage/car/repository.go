package car

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CarRental-BookingService/pkg/psqlbuilder"
)

var carColumns = []string{
	"id",
	"user_id",
	"make",
	"model",
	"year",
	"price_per_day",
	"category",
	"description",
	"seats",
	"fuel_type",
	"transmission",
	"features",
	"location",
	"images",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с объявлениями автомобилей (user_cars)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое объявление
// Новое объявление всегда доступно для бронирования (is_available = true)
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if car.ID == "" {
		car.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("user_cars").
		Columns(
			"id",
			"user_id",
			"make",
			"model",
			"year",
			"price_per_day",
			"category",
			"description",
			"seats",
			"fuel_type",
			"transmission",
			"features",
			"location",
			"images",
			"is_available",
		).
		Values(
			car.ID,
			car.UserID,
			car.Make,
			car.Model,
			car.Year,
			car.PricePerDay,
			car.Category,
			car.Description,
			car.Seats,
			car.FuelType,
			car.Transmission,
			pq.Array(car.Features),
			car.Location,
			pq.Array(car.Images),
			true,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	car.IsAvailable = true
	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return car, nil
}

// GetByID получает автомобиль по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - создание бронирования
// и смена статуса сериализуются на строке автомобиля
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("user_cars").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// ListAvailable возвращает доступные для бронирования автомобили,
// новые объявления первыми (публичный каталог)
func (r *Repository) ListAvailable(ctx context.Context) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("user_cars").
		Where(squirrel.Eq{"is_available": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// ListByUser возвращает все объявления владельца, включая недоступные
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("user_cars").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// Update применяет частичное обновление объявления
func (r *Repository) Update(ctx context.Context, id string, upd *domain.CarUpdate) error {
	if upd.IsEmpty() {
		return ErrEmptyUpdate
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("user_cars").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Make != nil {
		updateBuilder = updateBuilder.Set("make", *upd.Make)
	}
	if upd.Model != nil {
		updateBuilder = updateBuilder.Set("model", *upd.Model)
	}
	if upd.Year != nil {
		updateBuilder = updateBuilder.Set("year", *upd.Year)
	}
	if upd.PricePerDay != nil {
		updateBuilder = updateBuilder.Set("price_per_day", *upd.PricePerDay)
	}
	if upd.Category != nil {
		updateBuilder = updateBuilder.Set("category", *upd.Category)
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
	}
	if upd.Seats != nil {
		updateBuilder = updateBuilder.Set("seats", *upd.Seats)
	}
	if upd.FuelType != nil {
		updateBuilder = updateBuilder.Set("fuel_type", *upd.FuelType)
	}
	if upd.Transmission != nil {
		updateBuilder = updateBuilder.Set("transmission", *upd.Transmission)
	}
	if upd.Features != nil {
		updateBuilder = updateBuilder.Set("features", pq.Array(*upd.Features))
	}
	if upd.Location != nil {
		updateBuilder = updateBuilder.Set("location", *upd.Location)
	}
	if upd.Images != nil {
		updateBuilder = updateBuilder.Set("images", pq.Array(*upd.Images))
	}
	if upd.IsAvailable != nil {
		updateBuilder = updateBuilder.Set("is_available", *upd.IsAvailable)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// SetAvailability выставляет флаг доступности автомобиля
// Вызывается Booking Lifecycle Manager'ом внутри транзакции вместе
// со сменой статуса бронирования
func (r *Repository) SetAvailability(ctx context.Context, id string, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("user_cars").
		Set("is_available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// Delete удаляет объявление владельца
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("user_cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// scanCar сканирует одну строку user_cars
func scanCar(row interface{ Scan(dest ...interface{}) error }) (*domain.Car, error) {
	var car domain.Car

	err := row.Scan(
		&car.ID,
		&car.UserID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.PricePerDay,
		&car.Category,
		&car.Description,
		&car.Seats,
		&car.FuelType,
		&car.Transmission,
		pq.Array(&car.Features),
		&car.Location,
		pq.Array(&car.Images),
		&car.IsAvailable,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &car, nil
}

// scanCars сканирует результаты запроса в слайс автомобилей
func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	cars := make([]*domain.Car, 0)

	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCars - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCars - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}
