package get_owner_bookings

import (
	"net/http"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/owner
// Заявки на автомобили владельца с контактами арендаторов, новые сверху
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/owner - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetOwnerBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings/owner - Failed to get bookings: user=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/owner - Retrieved %d bookings for user=%s", len(result.Bookings), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
