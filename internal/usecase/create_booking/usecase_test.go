package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
	"github.com/m04kA/CarRental-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/CarRental-BookingService/internal/infra/storage/car"
	"github.com/m04kA/CarRental-BookingService/internal/integrations/userservice"
	"github.com/m04kA/CarRental-BookingService/pkg/ptr"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListConflicting(ctx context.Context, carID string, start, end time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, carID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

type MockUserServiceClient struct {
	mock.Mock
}

func (m *MockUserServiceClient) GetProfile(ctx context.Context, userID string) (*userservice.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userservice.Profile), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeTxManager выполняет замыкание без настоящей транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTime детерминированное "сейчас" для проверок водительского удостоверения
type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Хелперы

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validProfile() *userservice.Profile {
	return &userservice.Profile{
		ID:                  "renter-1",
		Phone:               ptr.Ptr("+15550100"),
		PhoneVerified:       true,
		DriverLicenseNumber: ptr.Ptr("DL-123456"),
		DriverLicenseExpiry: ptr.Ptr("2030-01-01"),
	}
}

func availableCar() *domain.Car {
	return &domain.Car{
		ID:          "car-1",
		UserID:      "owner-1",
		Make:        "Toyota",
		Model:       "Camry",
		PricePerDay: 50.0,
		IsAvailable: true,
	}
}

func newTestUseCase(
	bookings *MockBookingRepository,
	cars *MockCarRepository,
	users *MockUserServiceClient,
	publisher EventPublisher,
) *UseCase {
	uc := NewUseCase(bookings, cars, users, &fakeTxManager{}, publisher, nopLogger{})
	uc.timeProvider = &fixedTime{now: date(2025, 5, 1)}
	return uc
}

func validRequest() *Request {
	return &Request{
		RenterID:  "renter-1",
		CarID:     "car-1",
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 4),
	}
}

// Тесты

// Успешное создание: 3 дня по $50 = $150, статус pending
func TestCreateBooking_Success(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}
	publisher := &MockEventPublisher{}

	uc := newTestUseCase(bookings, cars, users, publisher)
	req := validRequest()

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(availableCar(), nil).Once()
	bookings.On("ListConflicting", mock.Anything, "car-1", req.StartDate, req.EndDate).
		Return([]*domain.Booking{}, nil).Once()
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*domain.Booking)
			b.ID = "booking-1"
		}).
		Return(&domain.Booking{
			ID:         "booking-1",
			CarID:      "car-1",
			RenterID:   "renter-1",
			OwnerID:    "owner-1",
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalDays:  3,
			TotalPrice: 150.0,
			Status:     domain.StatusPending,
		}, nil).Once()
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("events.BookingEvent")).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Equal(t, 3, resp.TotalDays)
	assert.Equal(t, 150.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	bookings.AssertExpectations(t)
	cars.AssertExpectations(t)
	users.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

// Цена фиксируется по цене автомобиля на момент создания
func TestCreateBooking_PriceFrozenFromCar(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}

	uc := newTestUseCase(bookings, cars, users, nil)
	req := validRequest()

	car := availableCar()
	car.PricePerDay = 80.0

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(car, nil).Once()
	bookings.On("ListConflicting", mock.Anything, "car-1", req.StartDate, req.EndDate).
		Return([]*domain.Booking{}, nil).Once()
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*domain.Booking)
			assert.Equal(t, 3, b.TotalDays)
			assert.Equal(t, 240.0, b.TotalPrice)
		}).
		Return(&domain.Booking{ID: "booking-2", TotalDays: 3, TotalPrice: 240.0, Status: domain.StatusPending}, nil).
		Once()

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_InvalidDateRange(t *testing.T) {
	uc := newTestUseCase(&MockBookingRepository{}, &MockCarRepository{}, &MockUserServiceClient{}, nil)

	req := validRequest()
	req.EndDate = req.StartDate

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateBooking_MessageTooLong(t *testing.T) {
	uc := newTestUseCase(&MockBookingRepository{}, &MockCarRepository{}, &MockUserServiceClient{}, nil)

	long := make([]byte, domain.MaxMessageLength+1)
	for i := range long {
		long[i] = 'a'
	}
	req := validRequest()
	req.Message = ptr.Ptr(string(long))

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Профильные предусловия: каждое нарушение даёт свою ошибку
func TestCreateBooking_ProfilePreconditions(t *testing.T) {
	testCases := []struct {
		name        string
		profile     *userservice.Profile
		expectedErr error
	}{
		{
			name: "нет телефона",
			profile: &userservice.Profile{
				DriverLicenseNumber: ptr.Ptr("DL-123456"),
				DriverLicenseExpiry: ptr.Ptr("2030-01-01"),
			},
			expectedErr: ErrPhoneMissing,
		},
		{
			name: "телефон не подтверждён",
			profile: &userservice.Profile{
				Phone:               ptr.Ptr("+15550100"),
				PhoneVerified:       false,
				DriverLicenseNumber: ptr.Ptr("DL-123456"),
				DriverLicenseExpiry: ptr.Ptr("2030-01-01"),
			},
			expectedErr: ErrPhoneNotVerified,
		},
		{
			name: "нет водительского удостоверения",
			profile: &userservice.Profile{
				Phone:         ptr.Ptr("+15550100"),
				PhoneVerified: true,
			},
			expectedErr: ErrLicenseInvalid,
		},
		{
			name: "удостоверение истекло",
			profile: &userservice.Profile{
				Phone:               ptr.Ptr("+15550100"),
				PhoneVerified:       true,
				DriverLicenseNumber: ptr.Ptr("DL-123456"),
				DriverLicenseExpiry: ptr.Ptr("2024-12-31"), // "сейчас" в тестах 2025-05-01
			},
			expectedErr: ErrLicenseInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := &MockBookingRepository{}
			users := &MockUserServiceClient{}
			uc := newTestUseCase(bookings, &MockCarRepository{}, users, nil)

			users.On("GetProfile", mock.Anything, "renter-1").Return(tc.profile, nil).Once()

			resp, err := uc.Execute(context.Background(), validRequest())

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tc.expectedErr)
			bookings.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateBooking_ProfileNotFound(t *testing.T) {
	users := &MockUserServiceClient{}
	uc := newTestUseCase(&MockBookingRepository{}, &MockCarRepository{}, users, nil)

	users.On("GetProfile", mock.Anything, "renter-1").
		Return(nil, userservice.ErrProfileNotFound).Once()

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCreateBooking_CarNotFound(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}
	uc := newTestUseCase(bookings, cars, users, nil)

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(nil, carRepo.ErrCarNotFound).Once()

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCarNotFound)
	bookings.AssertNotCalled(t, "Create")
}

func TestCreateBooking_CarUnavailable(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}
	uc := newTestUseCase(bookings, cars, users, nil)

	car := availableCar()
	car.IsAvailable = false

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(car, nil).Once()

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCarUnavailable)
	bookings.AssertNotCalled(t, "Create")
}

func TestCreateBooking_DatesConflict(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}
	uc := newTestUseCase(bookings, cars, users, nil)
	req := validRequest()

	conflicting := &domain.Booking{
		ID:        "other",
		CarID:     "car-1",
		StartDate: date(2025, 6, 3),
		EndDate:   date(2025, 6, 7),
		Status:    domain.StatusApproved,
	}

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(availableCar(), nil).Once()
	bookings.On("ListConflicting", mock.Anything, "car-1", req.StartDate, req.EndDate).
		Return([]*domain.Booking{conflicting}, nil).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDatesConflict)
	bookings.AssertNotCalled(t, "Create")
}

// Гонка двух параллельных созданий: exclusion constraint БД отклоняет
// вторую вставку, ошибка конвертируется в ErrDatesConflict
func TestCreateBooking_ExclusionConstraintRace(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}
	uc := newTestUseCase(bookings, cars, users, nil)
	req := validRequest()

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(availableCar(), nil).Once()
	bookings.On("ListConflicting", mock.Anything, "car-1", req.StartDate, req.EndDate).
		Return([]*domain.Booking{}, nil).Once()
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(nil, bookingRepo.ErrDatesConflict).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDatesConflict)
}

// Ошибка публикации события не роняет создание
func TestCreateBooking_PublishFailureIsNotFatal(t *testing.T) {
	bookings := &MockBookingRepository{}
	cars := &MockCarRepository{}
	users := &MockUserServiceClient{}
	publisher := &MockEventPublisher{}
	uc := newTestUseCase(bookings, cars, users, publisher)
	req := validRequest()

	users.On("GetProfile", mock.Anything, "renter-1").Return(validProfile(), nil).Once()
	cars.On("GetByID", mock.Anything, "car-1").Return(availableCar(), nil).Once()
	bookings.On("ListConflicting", mock.Anything, "car-1", req.StartDate, req.EndDate).
		Return([]*domain.Booking{}, nil).Once()
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&domain.Booking{ID: "booking-3", Status: domain.StatusPending}, nil).Once()
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("events.BookingEvent")).
		Return(errors.New("kafka down")).Once()

	resp, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	publisher.AssertExpectations(t)
}
