package create_booking

import (
	"errors"
	"net/http"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	"github.com/avlko/GMA-BookingService/internal/api/middleware"
	createBooking "github.com/avlko/GMA-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEventNotFound      = "событие не найдено"
	msgVenueNotFound      = "площадка не найдена"
	msgClientNotFound     = "клиент не найден"
	msgCapacityExceeded   = "вместимость площадки меньше требуемой"
	msgSchedulingConflict = "площадка занята в выбранное время"
	msgInvalidInput       = "некорректные входные данные"
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
// Ручное создание бронирования сотрудником: сразу со статусом confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staff := middleware.StaffLogin(r.Context())

	result, err := h.useCase.ExecuteConfirmed(r.Context(), req.ToUseCaseRequest(staff))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSchedulingConflict):
			h.logger.Warn("POST /bookings - Scheduling conflict: event_id=%d, venue_id=%d", req.EventID, req.VenueID)
			handlers.RespondConflict(w, msgSchedulingConflict)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: event_id=%d, venue_id=%d", req.EventID, req.VenueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrEventNotFound):
			h.logger.Warn("POST /bookings - Event not found: event_id=%d", req.EventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: event_id=%d", req.EventID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: event_id=%d, venue_id=%d, error=%v",
				req.EventID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, event_id=%d, venue_id=%d, staff=%s",
		result.ID, req.EventID, req.VenueID, staff)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
