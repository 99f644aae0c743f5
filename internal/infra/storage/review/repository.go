package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CarRental-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код PostgreSQL для нарушения unique constraint (23505)
// Уникальность booking_id - авторитетная защита от повторного отзыва
const uniqueViolation = "unique_violation"

var reviewColumns = []string{
	"id",
	"car_id",
	"reviewer_id",
	"booking_id",
	"rating",
	"comment",
	"created_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if review.ID == "" {
		review.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"id",
			"car_id",
			"reviewer_id",
			"booking_id",
			"rating",
			"comment",
		).
		Values(
			review.ID,
			review.CarID,
			review.ReviewerID,
			review.BookingID,
			review.Rating,
			review.Comment,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == uniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	review.CreatedAt = createdAt.Time

	return review, nil
}

// ListByCar возвращает отзывы об автомобиле с именами авторов, новые первыми
// Из таблицы users берутся только публичные имена, не контакты
func (r *Repository) ListByCar(ctx context.Context, carID string) ([]*domain.ReviewWithReviewer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, 0, len(reviewColumns)+3)
	for _, c := range reviewColumns {
		columns = append(columns, "r."+c)
	}
	columns = append(columns, "u.id", "u.first_name", "u.last_name")

	query, args, err := psqlbuilder.Select(columns...).
		From("reviews r").
		Join("users u ON u.id = r.reviewer_id").
		Where(squirrel.Eq{"r.car_id": carID}).
		OrderBy("r.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCar - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCar - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ReviewWithReviewer, 0)
	for rows.Next() {
		var item domain.ReviewWithReviewer
		err := rows.Scan(
			&item.ID,
			&item.CarID,
			&item.ReviewerID,
			&item.BookingID,
			&item.Rating,
			&item.Comment,
			&item.CreatedAt,
			&item.Reviewer.ID,
			&item.Reviewer.FirstName,
			&item.Reviewer.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByCar - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCar - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// RatingByCar возвращает средний рейтинг автомобиля и число отзывов
// Для автомобиля без отзывов - нули, не ошибка
func (r *Repository) RatingByCar(ctx context.Context, carID string) (*domain.CarRating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(AVG(rating), 0)",
		"COUNT(*)",
	).
		From("reviews").
		Where(squirrel.Eq{"car_id": carID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RatingByCar - build select query: %v", ErrBuildQuery, err)
	}

	var rating domain.CarRating
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rating.Average, &rating.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: RatingByCar - execute query: %v", ErrExecQuery, err)
	}

	return &rating, nil
}
