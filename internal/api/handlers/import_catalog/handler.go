package import_catalog

import (
	"errors"
	"net/http"

	"github.com/avlko/GMA-BookingService/internal/api/handlers"
	importCatalog "github.com/avlko/GMA-BookingService/internal/usecase/import_catalog"
)

const (
	msgEmptyBody      = "ожидается CSV-файл в теле запроса"
	msgUnreadableFile = "файл не удалось прочитать, проверьте формат CSV"

	// Лимит на размер загружаемого каталога
	maxImportSize = 10 << 20 // 10 MiB
)

type Handler struct {
	useCase ImportCatalogUseCase
	logger  Logger
}

func NewHandler(useCase ImportCatalogUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleVenues POST /api/v1/imports/venues
// Тело запроса - CSV с колонками name, capacity, price, category, types.
func (h *Handler) HandleVenues(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		h.logger.Warn("POST /imports/venues - Empty request body")
		handlers.RespondBadRequest(w, msgEmptyBody)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxImportSize)

	resp, err := h.useCase.ImportVenues(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, importCatalog.ErrUnreadableFile):
			h.logger.Warn("POST /imports/venues - Unreadable file: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnreadableFile)

		default:
			h.logger.Error("POST /imports/venues - Import failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /imports/venues - Import finished: imported=%d, skipped=%d, issues=%d",
		resp.Imported, resp.Skipped, len(resp.Issues))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleEvents POST /api/v1/imports/events
// Тело запроса - CSV с колонками name, artist, date, time, duration,
// capacity, type, category, client.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		h.logger.Warn("POST /imports/events - Empty request body")
		handlers.RespondBadRequest(w, msgEmptyBody)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxImportSize)

	resp, err := h.useCase.ImportEvents(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, importCatalog.ErrUnreadableFile):
			h.logger.Warn("POST /imports/events - Unreadable file: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgUnreadableFile)

		default:
			h.logger.Error("POST /imports/events - Import failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /imports/events - Import finished: imported=%d, skipped=%d, issues=%d",
		resp.Imported, resp.Skipped, len(resp.Issues))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
