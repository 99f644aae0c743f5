package create_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	"github.com/m04kA/CarRental-BookingService/internal/service/reviews"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidCarID        = "некорректный ID автомобиля"
	msgBookingNotFound     = "бронирование не найдено"
	msgNotRenter           = "отзыв может оставить только арендатор бронирования"
	msgBookingNotCompleted = "отзыв можно оставить только после завершения аренды"
	msgDuplicateReview     = "отзыв по этому бронированию уже оставлен"
)

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

// Handle POST /api/v1/cars/{carId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /cars/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	carID := vars["carId"]
	if carID == "" {
		h.logger.Warn("POST /cars/{id}/reviews - Missing car ID")
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.CreateReview(r.Context(), carID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /cars/{id}/reviews - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, reviews.ErrBookingNotFound):
			h.logger.Warn("POST /cars/{id}/reviews - Booking not found: booking=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /cars/{id}/reviews - Access denied: user=%s, booking=%s",
				userID, req.BookingID)
			handlers.RespondForbidden(w, msgNotRenter)

		case errors.Is(err, reviews.ErrBookingNotCompleted):
			h.logger.Warn("POST /cars/{id}/reviews - Booking not completed: booking=%s", req.BookingID)
			handlers.RespondConflict(w, msgBookingNotCompleted)

		case errors.Is(err, reviews.ErrDuplicateReview):
			h.logger.Warn("POST /cars/{id}/reviews - Duplicate review: booking=%s", req.BookingID)
			handlers.RespondConflict(w, msgDuplicateReview)

		default:
			h.logger.Error("POST /cars/{id}/reviews - Failed to create review: car=%s, error=%v",
				carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars/{id}/reviews - Review created successfully: review=%s, car=%s",
		review.ID, carID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
