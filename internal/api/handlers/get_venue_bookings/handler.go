package get_venue_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/internal/service/bookings"
	"github.com/avlko/GMA-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidVenueID = "некорректный идентификатор площадки"
	msgInvalidDate    = "некорректная дата, ожидается формат ГГГГ-ММ-ДД"
	msgInvalidStatus  = "некорректный статус бронирования"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{id}/bookings?date=2026-06-15&status=confirmed&includeClosed=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/bookings - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	req := &models.GetVenueBookingsRequest{
		VenueID: venueID,
	}

	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/bookings - Invalid date: venue_id=%d, date=%s", venueID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeClosed") == "true" {
		req.IncludeClosed = true
	}

	resp, err := h.service.GetVenueBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/bookings - Invalid status filter: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /venues/{id}/bookings - Failed to fetch bookings: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/bookings - Fetched %d bookings: venue_id=%d", len(resp.Bookings), venueID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
