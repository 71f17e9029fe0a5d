package manage_events

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	"github.com/avlko/GMA-BookingService/internal/service/events"
	"github.com/avlko/GMA-BookingService/internal/service/events/models"
)

const (
	msgInvalidEventID     = "некорректный идентификатор события"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEventNotFound      = "событие не найдено"
	msgClientNotFound     = "клиент не найден"
	msgInvalidEventData   = "некорректные данные события"
	msgEventBooked        = "событие забронировано, изменение расписания запрещено"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/events
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrClientNotFound):
			h.logger.Warn("POST /events - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, events.ErrInvalidInput), errors.Is(err, events.ErrInvalidCategory):
			h.logger.Warn("POST /events - Invalid event data: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidEventData)

		default:
			h.logger.Error("POST /events - Failed to create event: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created: event_id=%d, name=%s", resp.ID, resp.Name)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// HandleGet GET /api/v1/events/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "GET /events/{id}")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("GET /events/{id} - Event not found: event_id=%d", id)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("GET /events/{id} - Failed to fetch event: event_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleList GET /api/v1/events
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /events - Failed to list events: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleUpdate PUT /api/v1/events/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "PUT /events/{id}")
	if !ok {
		return
	}

	var req models.UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid request body: event_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("PUT /events/{id} - Event not found: event_id=%d", id)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrEventBooked):
			h.logger.Warn("PUT /events/{id} - Event has open bookings: event_id=%d", id)
			handlers.RespondConflict(w, msgEventBooked)

		case errors.Is(err, events.ErrInvalidInput), errors.Is(err, events.ErrInvalidCategory):
			h.logger.Warn("PUT /events/{id} - Invalid event data: event_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidEventData)

		default:
			h.logger.Error("PUT /events/{id} - Failed to update event: event_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /events/{id} - Event updated: event_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleDelete DELETE /api/v1/events/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "DELETE /events/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("DELETE /events/{id} - Event not found: event_id=%d", id)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrEventBooked):
			h.logger.Warn("DELETE /events/{id} - Event has open bookings: event_id=%d", id)
			handlers.RespondConflict(w, msgEventBooked)

		default:
			h.logger.Error("DELETE /events/{id} - Failed to delete event: event_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/{id} - Event deleted: event_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid event ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return 0, false
	}

	return id, true
}
