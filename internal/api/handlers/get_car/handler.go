package get_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/service/cars"
)

const (
	msgInvalidCarID = "некорректный ID автомобиля"
	msgNotFound     = "автомобиль не найден"
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

// Handle GET /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("GET /cars/{id} - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	car, err := h.service.GetCar(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id} - Car not found: car=%s", carID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("GET /cars/{id} - Failed to get car: car=%s, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id} - Car retrieved successfully: car=%s", carID)
	handlers.RespondJSON(w, http.StatusOK, car)
}
