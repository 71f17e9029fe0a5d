package match_venues

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	matchVenues "github.com/avlko/GMA-BookingService/internal/usecase/match_venues"
)

const (
	msgInvalidEventID  = "некорректный идентификатор события"
	msgInvalidMinScore = "некорректное значение minScore, ожидается число 0-100"
	msgEventNotFound   = "событие не найдено"
)

type Handler struct {
	useCase MatchVenuesUseCase
	logger  Logger
}

func NewHandler(useCase MatchVenuesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{id}/matches?minScore=50
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{id}/matches - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	req := &matchVenues.Request{
		EventID: eventID,
	}

	if minScoreStr := r.URL.Query().Get("minScore"); minScoreStr != "" {
		minScore, err := strconv.Atoi(minScoreStr)
		if err != nil || minScore < 0 || minScore > 100 {
			h.logger.Warn("GET /events/{id}/matches - Invalid minScore: event_id=%d, minScore=%s",
				eventID, minScoreStr)
			handlers.RespondBadRequest(w, msgInvalidMinScore)
			return
		}
		req.MinScore = minScore
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, matchVenues.ErrEventNotFound):
			h.logger.Warn("GET /events/{id}/matches - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, matchVenues.ErrInvalidInput):
			h.logger.Warn("GET /events/{id}/matches - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidEventID)

		default:
			h.logger.Error("GET /events/{id}/matches - Failed to match venues: event_id=%d, error=%v",
				eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{id}/matches - Matched %d venues: event_id=%d", len(resp.Matches), eventID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
