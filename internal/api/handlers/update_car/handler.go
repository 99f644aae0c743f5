package update_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	"github.com/m04kA/CarRental-BookingService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "автомобиль не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("PATCH /cars/{id} - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /cars/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cars/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.UpdateCar(r.Context(), carID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("PATCH /cars/{id} - Car not found: car=%s", carID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cars.ErrAccessDenied):
			h.logger.Warn("PATCH /cars/{id} - Access denied: car=%s, user=%s", carID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("PATCH /cars/{id} - Invalid input: car=%s, error=%v", carID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /cars/{id} - Failed to update car: car=%s, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /cars/{id} - Car updated successfully: car=%s, user=%s", carID, userID)
	handlers.RespondJSON(w, http.StatusOK, car)
}
