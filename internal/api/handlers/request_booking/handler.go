package request_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	"github.com/avlko/GMA-BookingService/internal/api/middleware"
	"github.com/avlko/GMA-BookingService/internal/domain"
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

// RequestBookingRequest HTTP request model
type RequestBookingRequest struct {
	EventID int64 `json:"eventId"`
	VenueID int64 `json:"venueId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	EventID       int64  `json:"eventId"`
	VenueID       int64  `json:"venueId"`
	ClientID      int64  `json:"clientId"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	Status        string `json:"status"`
	CreatedBy     string `json:"createdBy"`

	EventName string `json:"eventName"`
	VenueName string `json:"venueName"`

	HirePrice    float64 `json:"hirePrice"`
	Commission   float64 `json:"commission"`
	Total        float64 `json:"total"`
	TotalDisplay string  `json:"totalDisplay"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests
// Заявка на бронирование из подбора площадок: создается со статусом pending
// и не блокирует окно площадки до подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staff := middleware.StaffLogin(r.Context())

	result, err := h.useCase.ExecutePending(r.Context(), &createBooking.Request{
		EventID:   req.EventID,
		VenueID:   req.VenueID,
		CreatedBy: staff,
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSchedulingConflict):
			h.logger.Warn("POST /booking-requests - Scheduling conflict: event_id=%d, venue_id=%d", req.EventID, req.VenueID)
			handlers.RespondConflict(w, msgSchedulingConflict)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /booking-requests - Capacity exceeded: event_id=%d, venue_id=%d", req.EventID, req.VenueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrEventNotFound):
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-requests - Failed: event_id=%d, venue_id=%d, error=%v",
				req.EventID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests - Pending booking created: booking_id=%d, staff=%s", result.ID, staff)
	handlers.RespondJSON(w, http.StatusCreated, fromUseCaseResponse(result))
}

func fromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		EventID:       resp.EventID,
		VenueID:       resp.VenueID,
		ClientID:      resp.ClientID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		Status:        resp.Status,
		CreatedBy:     resp.CreatedBy,
		EventName:     resp.EventName,
		VenueName:     resp.VenueName,
		HirePrice:     resp.HirePrice,
		Commission:    resp.Commission,
		Total:         resp.Total,
		TotalDisplay:  resp.TotalDisplay,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
