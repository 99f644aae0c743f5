package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	reviewRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/review"
	"github.com/m04kA/CarRental-BookingService/internal/service/reviews/models"
)

// Mock структуры

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByCar(ctx context.Context, carID string) ([]*domain.ReviewWithReviewer, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ReviewWithReviewer), args.Error(1)
}

func (m *MockReviewRepository) RatingByCar(ctx context.Context, carID string) (*domain.CarRating, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarRating), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:       "booking-1",
		CarID:    "car-1",
		RenterID: "renter-1",
		OwnerID:  "owner-1",
		Status:   domain.StatusCompleted,
	}
}

func validRequest() *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:    "renter-1",
		BookingID: "booking-1",
		Rating:    5,
		Comment:   "Отличный автомобиль",
	}
}

func newTestService(reviews *MockReviewRepository, bookings *MockBookingRepository) *Service {
	return NewService(reviews, bookings, nopLogger{})
}

// Тесты

func TestCreateReview_Success(t *testing.T) {
	revRepo := &MockReviewRepository{}
	bkRepo := &MockBookingRepository{}
	svc := newTestService(revRepo, bkRepo)

	bkRepo.On("GetByID", mock.Anything, "booking-1").Return(completedBooking(), nil).Once()
	revRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).
		Run(func(args mock.Arguments) {
			review := args.Get(1).(*domain.Review)
			assert.Equal(t, "car-1", review.CarID)
			assert.Equal(t, "renter-1", review.ReviewerID)
			assert.Equal(t, "booking-1", review.BookingID)
			assert.Equal(t, 5, review.Rating)
		}).
		Return(&domain.Review{
			ID:         "review-1",
			CarID:      "car-1",
			ReviewerID: "renter-1",
			BookingID:  "booking-1",
			Rating:     5,
			Comment:    "Отличный автомобиль",
			CreatedAt:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		}, nil).Once()

	resp, err := svc.CreateReview(context.Background(), "car-1", validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "review-1", resp.ID)
	assert.Equal(t, 5, resp.Rating)
	revRepo.AssertExpectations(t)
}

func TestCreateReview_BookingNotFound(t *testing.T) {
	revRepo := &MockReviewRepository{}
	bkRepo := &MockBookingRepository{}
	svc := newTestService(revRepo, bkRepo)

	bkRepo.On("GetByID", mock.Anything, "booking-1").Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := svc.CreateReview(context.Background(), "car-1", validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	revRepo.AssertNotCalled(t, "Create")
}

// Отзыв может оставить только арендатор бронирования
func TestCreateReview_OnlyRenterMayReview(t *testing.T) {
	revRepo := &MockReviewRepository{}
	bkRepo := &MockBookingRepository{}
	svc := newTestService(revRepo, bkRepo)

	bkRepo.On("GetByID", mock.Anything, "booking-1").Return(completedBooking(), nil).Once()

	req := validRequest()
	req.UserID = "owner-1" // владелец, но не арендатор

	resp, err := svc.CreateReview(context.Background(), "car-1", req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAccessDenied)
	revRepo.AssertNotCalled(t, "Create")
}

// Бронирование из отзыва должно быть именно на этот автомобиль
func TestCreateReview_BookingForAnotherCar(t *testing.T) {
	revRepo := &MockReviewRepository{}
	bkRepo := &MockBookingRepository{}
	svc := newTestService(revRepo, bkRepo)

	bkRepo.On("GetByID", mock.Anything, "booking-1").Return(completedBooking(), nil).Once()

	resp, err := svc.CreateReview(context.Background(), "car-2", validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
	revRepo.AssertNotCalled(t, "Create")
}

// Отзыв только по завершённой аренде
func TestCreateReview_BookingNotCompleted(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			revRepo := &MockReviewRepository{}
			bkRepo := &MockBookingRepository{}
			svc := newTestService(revRepo, bkRepo)

			b := completedBooking()
			b.Status = status
			bkRepo.On("GetByID", mock.Anything, "booking-1").Return(b, nil).Once()

			resp, err := svc.CreateReview(context.Background(), "car-1", validRequest())

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrBookingNotCompleted)
			revRepo.AssertNotCalled(t, "Create")
		})
	}
}

// Повторный отзыв по тому же бронированию отклоняет уникальный констрейнт
func TestCreateReview_Duplicate(t *testing.T) {
	revRepo := &MockReviewRepository{}
	bkRepo := &MockBookingRepository{}
	svc := newTestService(revRepo, bkRepo)

	bkRepo.On("GetByID", mock.Anything, "booking-1").Return(completedBooking(), nil).Once()
	revRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).
		Return(nil, reviewRepo.ErrDuplicateReview).Once()

	resp, err := svc.CreateReview(context.Background(), "car-1", validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestCreateReview_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*models.CreateReviewRequest)
	}{
		{"пустой userId", func(r *models.CreateReviewRequest) { r.UserID = "" }},
		{"пустой bookingId", func(r *models.CreateReviewRequest) { r.BookingID = "" }},
		{"оценка ниже минимума", func(r *models.CreateReviewRequest) { r.Rating = 0 }},
		{"оценка выше максимума", func(r *models.CreateReviewRequest) { r.Rating = 6 }},
		{"слишком длинный комментарий", func(r *models.CreateReviewRequest) {
			long := make([]byte, 1001)
			for i := range long {
				long[i] = 'a'
			}
			r.Comment = string(long)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			revRepo := &MockReviewRepository{}
			bkRepo := &MockBookingRepository{}
			svc := newTestService(revRepo, bkRepo)

			req := validRequest()
			tc.mutate(req)

			resp, err := svc.CreateReview(context.Background(), "car-1", req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
			bkRepo.AssertNotCalled(t, "GetByID")
		})
	}
}

func TestGetCarReviews_WithReviewerNames(t *testing.T) {
	revRepo := &MockReviewRepository{}
	svc := newTestService(revRepo, &MockBookingRepository{})

	items := []*domain.ReviewWithReviewer{
		{
			Review: domain.Review{
				ID:         "review-1",
				CarID:      "car-1",
				ReviewerID: "renter-1",
				BookingID:  "booking-1",
				Rating:     4,
				Comment:    "Хорошая машина",
			},
			Reviewer: domain.UserContact{
				ID:        "renter-1",
				FirstName: "Анна",
				LastName:  "Иванова",
				Phone:     "+15550100",
			},
		},
	}
	revRepo.On("ListByCar", mock.Anything, "car-1").Return(items, nil).Once()

	resp, err := svc.GetCarReviews(context.Background(), "car-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Анна", resp.Reviews[0].Reviewer.FirstName)
	assert.Equal(t, 4, resp.Reviews[0].Rating)
}

func TestGetCarReviews_EmptyList(t *testing.T) {
	revRepo := &MockReviewRepository{}
	svc := newTestService(revRepo, &MockBookingRepository{})

	revRepo.On("ListByCar", mock.Anything, "car-1").Return([]*domain.ReviewWithReviewer{}, nil).Once()

	resp, err := svc.GetCarReviews(context.Background(), "car-1")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp.Reviews)
}

// Среднее округляется до одного знака
func TestGetCarRating_RoundsToOneDecimal(t *testing.T) {
	revRepo := &MockReviewRepository{}
	svc := newTestService(revRepo, &MockBookingRepository{})

	// 4, 4, 5 -> 4.333... -> 4.3
	revRepo.On("RatingByCar", mock.Anything, "car-1").
		Return(&domain.CarRating{Average: 4.333333, Count: 3}, nil).Once()

	resp, err := svc.GetCarRating(context.Background(), "car-1")

	assert.NoError(t, err)
	assert.Equal(t, 4.3, resp.Average)
	assert.Equal(t, 3, resp.Count)
}

// У автомобиля без отзывов рейтинг нулевой, не ошибка
func TestGetCarRating_NoReviews(t *testing.T) {
	revRepo := &MockReviewRepository{}
	svc := newTestService(revRepo, &MockBookingRepository{})

	revRepo.On("RatingByCar", mock.Anything, "car-1").
		Return(&domain.CarRating{Average: 0, Count: 0}, nil).Once()

	resp, err := svc.GetCarRating(context.Background(), "car-1")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, resp.Average)
	assert.Equal(t, 0, resp.Count)
}
