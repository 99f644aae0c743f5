package create_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	"github.com/m04kA/CarRental-BookingService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /cars - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.CreateCar(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars - Invalid input: user=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /cars - Failed to create car: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car created successfully: car=%s, user=%s", car.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, car)
}
