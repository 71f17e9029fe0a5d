package manage_venues

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	"github.com/avlko/GMA-BookingService/internal/service/venues"
	"github.com/avlko/GMA-BookingService/internal/service/venues/models"
)

const (
	msgInvalidVenueID     = "некорректный идентификатор площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVenueNotFound      = "площадка не найдена"
	msgInvalidVenueData   = "некорректные данные площадки"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/venues
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrInvalidInput), errors.Is(err, venues.ErrInvalidCategory):
			h.logger.Warn("POST /venues - Invalid venue data: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidVenueData)

		default:
			h.logger.Error("POST /venues - Failed to create venue: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created: venue_id=%d, name=%s", resp.ID, resp.Name)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// HandleGet GET /api/v1/venues/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "GET /venues/{id}")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id} - Venue not found: venue_id=%d", id)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id} - Failed to fetch venue: venue_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleList GET /api/v1/venues
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleUpdate PUT /api/v1/venues/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "PUT /venues/{id}")
	if !ok {
		return
	}

	var req models.UpdateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id} - Invalid request body: venue_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id} - Venue not found: venue_id=%d", id)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venues.ErrInvalidInput), errors.Is(err, venues.ErrInvalidCategory):
			h.logger.Warn("PUT /venues/{id} - Invalid venue data: venue_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidVenueData)

		default:
			h.logger.Error("PUT /venues/{id} - Failed to update venue: venue_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /venues/{id} - Venue updated: venue_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleDelete DELETE /api/v1/venues/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "DELETE /venues/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{id} - Venue not found: venue_id=%d", id)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("DELETE /venues/{id} - Failed to delete venue: venue_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{id} - Venue deleted: venue_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid venue ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return 0, false
	}

	return id, true
}
