package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/review"
	"github.com/m04kA/CarRental-BookingService/internal/service/reviews/models"
)

// maxCommentLength максимальная длина комментария в отзыве
const maxCommentLength = 1000

// Service сервис отзывов об автомобилях
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// CreateReview создает отзыв об автомобиле
// Отзыв может оставить только арендатор завершённого бронирования этого
// автомобиля, и только один раз - повторный отзыв по тому же бронированию
// отклоняет уникальный констрейнт БД
func (s *Service) CreateReview(ctx context.Context, carID string, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("CreateReview: creating review for car=%s, booking=%s by user=%s",
		carID, req.BookingID, req.UserID)

	if err := s.validateCreateRequest(carID, req); err != nil {
		s.logger.Warn("CreateReview: validation failed: %v", err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CreateReview: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CreateReview: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: CreateReview - booking repository error: %v", ErrInternal, err)
	}

	// Сначала проверка прав, затем состояния - посторонний не должен
	// узнать статус чужого бронирования
	if booking.RenterID != req.UserID {
		s.logger.Warn("CreateReview: access denied for user=%s to booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if booking.CarID != carID {
		s.logger.Warn("CreateReview: booking id=%s is not for car=%s", req.BookingID, carID)
		return nil, fmt.Errorf("%w: booking is for another car", ErrInvalidInput)
	}

	if booking.Status != domain.StatusCompleted {
		s.logger.Warn("CreateReview: booking id=%s is not completed (status=%s)", req.BookingID, booking.Status)
		return nil, ErrBookingNotCompleted
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		CarID:      carID,
		ReviewerID: req.UserID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("CreateReview: review already exists for booking id=%s", req.BookingID)
			return nil, ErrDuplicateReview
		}
		s.logger.Error("CreateReview: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateReview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateReview: review created successfully: review=%s, car=%s", review.ID, carID)
	return models.FromDomainReview(review), nil
}

// GetCarReviews возвращает отзывы об автомобиле с именами авторов, новые сверху
// Для автомобиля без отзывов - пустой список, не ошибка
func (s *Service) GetCarReviews(ctx context.Context, carID string) (*models.ReviewListResponse, error) {
	s.logger.Info("GetCarReviews: fetching reviews for car=%s", carID)

	if carID == "" {
		return nil, fmt.Errorf("%w: carId is required", ErrInvalidInput)
	}

	items, err := s.reviewRepo.ListByCar(ctx, carID)
	if err != nil {
		s.logger.Error("GetCarReviews: repository error for car=%s: %v", carID, err)
		return nil, fmt.Errorf("%w: GetCarReviews - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCarReviews: successfully fetched %d reviews for car=%s", len(items), carID)
	return models.FromDomainReviewList(items), nil
}

// GetCarRating возвращает средний рейтинг автомобиля, округлённый
// до одного знака, и число отзывов
func (s *Service) GetCarRating(ctx context.Context, carID string) (*models.CarRatingResponse, error) {
	s.logger.Info("GetCarRating: fetching rating for car=%s", carID)

	if carID == "" {
		return nil, fmt.Errorf("%w: carId is required", ErrInvalidInput)
	}

	rating, err := s.reviewRepo.RatingByCar(ctx, carID)
	if err != nil {
		s.logger.Error("GetCarRating: repository error for car=%s: %v", carID, err)
		return nil, fmt.Errorf("%w: GetCarRating - repository error: %v", ErrInternal, err)
	}

	return &models.CarRatingResponse{
		Average: math.Round(rating.Average*10) / 10,
		Count:   rating.Count,
	}, nil
}

func (s *Service) validateCreateRequest(carID string, req *models.CreateReviewRequest) error {
	if carID == "" {
		return fmt.Errorf("%w: carId is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if !domain.IsValidRating(req.Rating) {
		return fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if len(req.Comment) > maxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, maxCommentLength)
	}
	return nil
}
