package check_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	checkAvailability "github.com/m04kA/CarRental-BookingService/internal/usecase/check_availability"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkAvailability.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/cars/{carId}/availability", h.Handle).Methods(http.MethodGet)
	return r
}

// Даты приходят в параметрах startDate и endDate
func TestHandle_ParsesQueryParams(t *testing.T) {
	uc := &MockUseCase{}
	h := NewHandler(uc, nopLogger{})

	uc.On("Execute", mock.Anything, &checkAvailability.Request{
		CarID:     "car-1",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	}).Return(&checkAvailability.Response{Available: true}, nil).Once()

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/cars/car-1/availability?startDate=2025-06-01&endDate=2025-06-04", nil)
	rec := httptest.NewRecorder()

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":true`)
	uc.AssertExpectations(t)
}

func TestHandle_MissingDates(t *testing.T) {
	testCases := []struct {
		name  string
		query string
	}{
		{"нет startDate", "?endDate=2025-06-04"},
		{"нет endDate", "?startDate=2025-06-01"},
		{"мусор вместо даты", "?startDate=tomorrow&endDate=2025-06-04"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &MockUseCase{}
			h := NewHandler(uc, nopLogger{})

			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/cars/car-1/availability"+tc.query, nil)
			rec := httptest.NewRecorder()

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute")
		})
	}
}
