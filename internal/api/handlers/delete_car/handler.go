package delete_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	"github.com/m04kA/CarRental-BookingService/internal/service/cars"
)

const (
	msgInvalidCarID  = "некорректный ID автомобиля"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "автомобиль не найден"
	msgForbidden     = "доступ запрещен"
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

// Handle DELETE /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("DELETE /cars/{id} - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cars/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteCar(r.Context(), carID, userID); err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{id} - Car not found: car=%s", carID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cars.ErrAccessDenied):
			h.logger.Warn("DELETE /cars/{id} - Access denied: car=%s, user=%s", carID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("DELETE /cars/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("DELETE /cars/{id} - Failed to delete car: car=%s, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{id} - Car deleted successfully: car=%s, user=%s", carID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
