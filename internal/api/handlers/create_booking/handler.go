package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CarRental-BookingService/internal/api/handlers"
	"github.com/m04kA/CarRental-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/CarRental-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата окончания должна быть позже даты начала"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgProfileNotFound    = "профиль арендатора не найден"
	msgPhoneMissing       = "в профиле не указан номер телефона"
	msgPhoneNotVerified   = "номер телефона не подтверждён"
	msgLicenseInvalid     = "водительское удостоверение отсутствует или истекло"
	msgCarNotFound        = "автомобиль не найден"
	msgCarUnavailable     = "автомобиль недоступен для бронирования"
	msgDatesConflict      = "автомобиль занят на выбранные даты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	renterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(renterID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: renter=%s, car=%s", renterID, req.CarID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrProfileNotFound):
			h.logger.Warn("POST /bookings - Profile not found: renter=%s", renterID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgProfileNotFound)

		case errors.Is(err, createBooking.ErrPhoneMissing):
			h.logger.Warn("POST /bookings - Phone missing: renter=%s", renterID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPhoneMissing)

		case errors.Is(err, createBooking.ErrPhoneNotVerified):
			h.logger.Warn("POST /bookings - Phone not verified: renter=%s", renterID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPhoneNotVerified)

		case errors.Is(err, createBooking.ErrLicenseInvalid):
			h.logger.Warn("POST /bookings - License invalid: renter=%s", renterID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgLicenseInvalid)

		case errors.Is(err, createBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car=%s", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createBooking.ErrCarUnavailable):
			h.logger.Warn("POST /bookings - Car unavailable: car=%s", req.CarID)
			handlers.RespondConflict(w, msgCarUnavailable)

		case errors.Is(err, createBooking.ErrDatesConflict):
			h.logger.Warn("POST /bookings - Dates conflict: car=%s, start=%s, end=%s",
				req.CarID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgDatesConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: renter=%s, car=%s, error=%v",
				renterID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, renter=%s, car=%s",
		result.ID, renterID, req.CarID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
