package manage_clients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	"github.com/avlko/GMA-BookingService/internal/service/clients"
	"github.com/avlko/GMA-BookingService/internal/service/clients/models"
)

const (
	msgInvalidClientID      = "некорректный идентификатор клиента"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgClientNotFound       = "клиент не найден"
	msgInvalidClientData    = "некорректные данные клиента"
	msgInvalidCommissionMsg = "ставка комиссии должна быть в диапазоне [0, 1]"
)

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/clients
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidCommissionRate):
			h.logger.Warn("POST /clients - Invalid commission rate: name=%s, rate=%f", req.Name, req.CommissionRate)
			handlers.RespondBadRequest(w, msgInvalidCommissionMsg)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid client data: name=%s, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidClientData)

		default:
			h.logger.Error("POST /clients - Failed to create client: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d, name=%s", resp.ID, resp.Name)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// HandleFindOrCreate POST /api/v1/clients/find-or-create
// Возвращает существующего клиента по имени или создает нового
// со ставкой комиссии по умолчанию.
func (h *Handler) HandleFindOrCreate(w http.ResponseWriter, r *http.Request) {
	var req FindOrCreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/find-or-create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.FindOrCreateByName(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients/find-or-create - Invalid name: %q", req.Name)
			handlers.RespondBadRequest(w, msgInvalidClientData)

		default:
			h.logger.Error("POST /clients/find-or-create - Failed: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/find-or-create - Resolved client: client_id=%d, name=%s", client.ID, client.Name)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainClient(client))
}

// HandleGet GET /api/v1/clients/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "GET /clients/{id}")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id} - Client not found: client_id=%d", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/{id} - Failed to fetch client: client_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleList GET /api/v1/clients
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleUpdate PUT /api/v1/clients/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "PUT /clients/{id}")
	if !ok {
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: client_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PUT /clients/{id} - Client not found: client_id=%d", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clients.ErrInvalidCommissionRate):
			h.logger.Warn("PUT /clients/{id} - Invalid commission rate: client_id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidCommissionMsg)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PUT /clients/{id} - Invalid client data: client_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidClientData)

		default:
			h.logger.Error("PUT /clients/{id} - Failed to update client: client_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: client_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleDelete DELETE /api/v1/clients/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "DELETE /clients/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/{id} - Client not found: client_id=%d", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("DELETE /clients/{id} - Failed to delete client: client_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted: client_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid client ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return 0, false
	}

	return id, true
}
