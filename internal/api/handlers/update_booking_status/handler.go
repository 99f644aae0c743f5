package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	updateStatus "github.com/m04kA/CarRental-BookingService/internal/usecase/update_booking_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidStatus      = "недопустимый целевой статус"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgIllegalTransition  = "переход в этот статус невозможен из текущего"
)

type Handler struct {
	useCase UpdateBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateStatus.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updateStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateStatus.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking=%s, user=%s",
				bookingID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateStatus.ErrIllegalTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Illegal transition: booking=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking=%s, status=%s, user=%s",
		bookingID, req.Status, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(result))
}
