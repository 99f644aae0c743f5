package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/CarRental-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidCarID     = "некорректный ID автомобиля"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата окончания должна быть позже даты начала"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/availability?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("GET /cars/{id}/availability - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /cars/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /cars/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CarID:     carID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /cars/{id}/availability - Invalid date range: car=%s", carID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("GET /cars/{id}/availability - Failed to check availability: car=%s, error=%v",
				carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id}/availability - Checked: car=%s, available=%t, conflicts=%d",
		carID, result.Available, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
