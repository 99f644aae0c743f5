package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	"github.com/m04kA/CarRental-BookingService/internal/domain"
	updateStatus "github.com/m04kA/CarRental-BookingService/internal/usecase/update_booking_status"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *updateStatus.Request) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/api/v1/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, nopLogger{})

	uc.On("Execute", mock.Anything, &updateStatus.Request{
		BookingID: "booking-1",
		ActorID:   "owner-1",
		Status:    "approved",
	}).Return(&domain.Booking{
		ID:      "booking-1",
		CarID:   "car-1",
		OwnerID: "owner-1",
		Status:  domain.StatusApproved,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/booking-1/status",
		strings.NewReader(`{"status":"approved"}`))
	req.Header.Set(middleware.HeaderUserID, "owner-1")
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)
	uc.AssertExpectations(t)
}

func TestHandle_MissingUserIDHeader(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/booking-1/status",
		strings.NewReader(`{"status":"approved"}`))
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute")
}

func TestHandle_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"неизвестный статус", updateStatus.ErrInvalidStatus, http.StatusBadRequest},
		{"не найдено", updateStatus.ErrBookingNotFound, http.StatusNotFound},
		{"не владелец", updateStatus.ErrAccessDenied, http.StatusForbidden},
		{"недопустимый переход", updateStatus.ErrIllegalTransition, http.StatusConflict},
		{"внутренняя ошибка", updateStatus.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &MockUseCase{}
			h := NewHandler(uc, nopLogger{})

			uc.On("Execute", mock.Anything, mock.AnythingOfType("*update_booking_status.Request")).
				Return(nil, tc.err).Once()

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/booking-1/status",
				strings.NewReader(`{"status":"approved"}`))
			req.Header.Set(middleware.HeaderUserID, "owner-1")
			rec := httptest.NewRecorder()

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/booking-1/status",
		strings.NewReader(`{not json`))
	req.Header.Set(middleware.HeaderUserID, "owner-1")
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute")
}
