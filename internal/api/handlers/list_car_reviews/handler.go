package list_car_reviews

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

// Handle GET /api/v1/cars/{carId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("GET /cars/{id}/reviews - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	reviewList, err := h.service.GetCarReviews(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("GET /cars/{id}/reviews - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCarID)

		default:
			h.logger.Error("GET /cars/{id}/reviews - Failed to list reviews: car=%s, error=%v",
				carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/{id}/reviews - Retrieved %d reviews: car=%s",
		len(reviewList.Reviews), carID)
	handlers.RespondJSON(w, http.StatusOK, reviewList)
}
