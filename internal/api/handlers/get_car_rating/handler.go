package get_car_rating

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/service/reviews"
)

const msgInvalidCarID = "некорректный ID автомобиля"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/rating
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("GET /cars/{id}/rating - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	rating, err := h.service.GetCarRating(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/rating - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("GET /cars/{id}/rating - Failed to get rating: car=%s, error=%v",
				carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id}/rating - Rating retrieved: car=%s, average=%.1f, count=%d",
		carID, rating.Average, rating.Count)
	handlers.RespondJSON(w, http.StatusOK, rating)
}
