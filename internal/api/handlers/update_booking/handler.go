package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	updateBooking "github.com/avlko/GMA-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgVenueNotFound      = "площадка не найдена"
	msgEventNotFound      = "событие не найдено"
	msgBookingClosed      = "отменённое бронирование нельзя изменить"
	msgCapacityExceeded   = "вместимость площадки меньше ожидаемого числа гостей"
	msgSchedulingConflict = "площадка уже занята в указанное время"
	msgInvalidInput       = "некорректные данные для обновления"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrVenueNotFound):
			h.logger.Warn("PUT /bookings/{id} - Venue not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateBooking.ErrEventNotFound):
			h.logger.Warn("PUT /bookings/{id} - Event not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, updateBooking.ErrBookingClosed):
			h.logger.Warn("PUT /bookings/{id} - Booking is cancelled: booking_id=%d", id)
			handlers.RespondConflict(w, msgBookingClosed)

		case errors.Is(err, updateBooking.ErrSchedulingConflict):
			h.logger.Warn("PUT /bookings/{id} - Scheduling conflict: booking_id=%d", id)
			handlers.RespondConflict(w, msgSchedulingConflict)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PUT /bookings/{id} - Capacity exceeded: booking_id=%d", id)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCapacityExceeded)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, venue_id=%d",
		id, resp.VenueID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
