package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/CarRental-BookingService/internal/service/bookings/models"
)

// Mock структуры

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

func (m *MockBookingRepository) ListByRenter(ctx context.Context, renterID string) ([]*domain.BookingWithCar, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithCar), args.Error(1)
}

func (m *MockBookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingWithRenter, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithRenter), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         "booking-1",
		CarID:      "car-1",
		RenterID:   "renter-1",
		OwnerID:    "owner-1",
		StartDate:  date(2025, 6, 1),
		EndDate:    date(2025, 6, 4),
		TotalDays:  3,
		TotalPrice: 150.0,
		Status:     status,
	}
}

func newTestService(bookings *MockBookingRepository, cars *MockCarRepository, publisher EventPublisher) *Service {
	return NewService(bookings, cars, &fakeTxManager{}, publisher, nil, nopLogger{})
}

// Тесты

// Бронирование видят только участники сделки
func TestGetByID_ParticipantsOnly(t *testing.T) {
	testCases := []struct {
		name    string
		userID  string
		allowed bool
	}{
		{"арендатор видит", "renter-1", true},
		{"владелец видит", "owner-1", true},
		{"посторонний не видит", "stranger", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockBookingRepository{}
			svc := newTestService(repo, &MockCarRepository{}, nil)

			repo.On("GetByID", mock.Anything, "booking-1").Return(testBooking(domain.StatusPending), nil).Once()

			resp, err := svc.GetByID(context.Background(), "booking-1", tc.userID)

			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, "booking-1", resp.ID)
				assert.Equal(t, "2025-06-01", resp.StartDate)
				assert.Equal(t, "2025-06-04", resp.EndDate)
			} else {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrAccessDenied)
			}
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, &MockCarRepository{}, nil)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := svc.GetByID(context.Background(), "missing", "renter-1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Пустой userID - пустой список, без похода в хранилище
func TestGetRenterBookings_BlankUserReturnsEmptyList(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, &MockCarRepository{}, nil)

	resp, err := svc.GetRenterBookings(context.Background(), "")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp.Bookings)
	repo.AssertNotCalled(t, "ListByRenter")
}

func TestGetRenterBookings_WithCarDetails(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, &MockCarRepository{}, nil)

	items := []*domain.BookingWithCar{
		{
			Booking: *testBooking(domain.StatusApproved),
			Car: domain.Car{
				ID:          "car-1",
				Make:        "Toyota",
				Model:       "Camry",
				Year:        2022,
				PricePerDay: 50.0,
			},
		},
	}
	repo.On("ListByRenter", mock.Anything, "renter-1").Return(items, nil).Once()

	resp, err := svc.GetRenterBookings(context.Background(), "renter-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Toyota", resp.Bookings[0].Car.Make)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)
}

func TestGetOwnerBookings_BlankUserReturnsEmptyList(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, &MockCarRepository{}, nil)

	resp, err := svc.GetOwnerBookings(context.Background(), "")

	assert.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	repo.AssertNotCalled(t, "ListByOwner")
}

func TestGetOwnerBookings_WithRenterContacts(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, &MockCarRepository{}, nil)

	items := []*domain.BookingWithRenter{
		{
			Booking: *testBooking(domain.StatusPending),
			Car:     domain.Car{ID: "car-1", Make: "Toyota", Model: "Camry"},
			Renter: domain.UserContact{
				ID:        "renter-1",
				FirstName: "Анна",
				Phone:     "+15550100",
			},
		},
	}
	repo.On("ListByOwner", mock.Anything, "owner-1").Return(items, nil).Once()

	resp, err := svc.GetOwnerBookings(context.Background(), "owner-1")

	assert.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Анна", resp.Bookings[0].Renter.FirstName)
	assert.Equal(t, "+15550100", resp.Bookings[0].Renter.Phone)
}

// Отмена pending-заявки: мягкая, флаг автомобиля не трогается
func TestCancel_PendingBooking(t *testing.T) {
	repo := &MockBookingRepository{}
	cars := &MockCarRepository{}
	publisher := &MockEventPublisher{}
	svc := newTestService(repo, cars, publisher)

	repo.On("GetByID", mock.Anything, "booking-1").Return(testBooking(domain.StatusPending), nil).Once()
	repo.On("UpdateStatus", mock.Anything, "booking-1", domain.StatusCancelled).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("events.BookingEvent")).Return(nil).Once()

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "renter-1"})

	assert.NoError(t, err)
	cars.AssertNotCalled(t, "SetAvailability")
	repo.AssertExpectations(t)
}

// Отмена approved-бронирования возвращает автомобилю доступность
func TestCancel_ApprovedBookingReleasesCar(t *testing.T) {
	repo := &MockBookingRepository{}
	cars := &MockCarRepository{}
	svc := newTestService(repo, cars, nil)

	repo.On("GetByID", mock.Anything, "booking-1").Return(testBooking(domain.StatusApproved), nil).Once()
	repo.On("UpdateStatus", mock.Anything, "booking-1", domain.StatusCancelled).Return(nil).Once()
	cars.On("SetAvailability", mock.Anything, "car-1", true).Return(nil).Once()

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "renter-1"})

	assert.NoError(t, err)
	cars.AssertExpectations(t)
}

// Отменить может только арендатор, владельцу доступен reject
func TestCancel_OnlyRenterMayCancel(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, &MockCarRepository{}, nil)

	repo.On("GetByID", mock.Anything, "booking-1").Return(testBooking(domain.StatusPending), nil).Once()

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "owner-1"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestCancel_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			repo := &MockBookingRepository{}
			svc := newTestService(repo, &MockCarRepository{}, nil)

			repo.On("GetByID", mock.Anything, "booking-1").Return(testBooking(status), nil).Once()

			err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "renter-1"})

			assert.ErrorIs(t, err, ErrCannotCancel)
			repo.AssertNotCalled(t, "UpdateStatus")
		})
	}
}
