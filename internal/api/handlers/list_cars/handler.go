package list_cars

import (
	"net/http"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/cars
// Публичный каталог доступных автомобилей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAvailableCars(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars - Retrieved %d cars", len(result.Cars))
	handlers.RespondJSON(w, http.StatusOK, result)
}
