package import_catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/avlko/GMA-BookingService/internal/imports"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
)

// UseCase use case импорта каталога из CSV: площадки и события.
// Форматы дат и времени в файлах исторически неоднородны,
// разбором занимается пакет imports.
type UseCase struct {
	venueRepo      VenueRepository
	eventRepo      EventRepository
	clientResolver ClientResolver
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	eventRepo EventRepository,
	clientResolver ClientResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:      venueRepo,
		eventRepo:      eventRepo,
		clientResolver: clientResolver,
		txManager:      txManager,
		logger:         logger,
	}
}

// ImportVenues импортирует площадки из CSV.
// Площадка с уже существующим именем пропускается, а не дублируется.
func (uc *UseCase) ImportVenues(ctx context.Context, r io.Reader) (*Response, error) {
	candidates, rowErrors, err := imports.ReadVenues(r)
	if err != nil {
		uc.logger.Error("ImportVenues: failed to read file: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	resp := newResponse(rowErrors)

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, candidate := range candidates {
			_, err := uc.venueRepo.GetByName(txCtx, candidate.Venue.Name)
			if err == nil {
				uc.logger.Info("ImportVenues: line %d: venue %q already exists, skipping",
					candidate.Line, candidate.Venue.Name)
				resp.Skipped++
				continue
			}
			if !errors.Is(err, venueRepo.ErrVenueNotFound) {
				uc.logger.Error("ImportVenues: lookup error for %q: %v", candidate.Venue.Name, err)
				return fmt.Errorf("%w: venue lookup: %v", ErrInternal, err)
			}

			venue := candidate.Venue
			if _, err := uc.venueRepo.Create(txCtx, &venue); err != nil {
				uc.logger.Error("ImportVenues: create error for %q: %v", candidate.Venue.Name, err)
				return fmt.Errorf("%w: venue create: %v", ErrInternal, err)
			}
			resp.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ImportVenues: imported=%d, skipped=%d, issues=%d",
		resp.Imported, resp.Skipped, len(resp.Issues))
	return resp, nil
}

// ImportEvents импортирует события из CSV.
// Клиент в файле задан именем: неизвестные имена заводятся
// со ставкой комиссии по умолчанию.
func (uc *UseCase) ImportEvents(ctx context.Context, r io.Reader) (*Response, error) {
	candidates, rowErrors, err := imports.ReadEvents(r)
	if err != nil {
		uc.logger.Error("ImportEvents: failed to read file: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	resp := newResponse(rowErrors)

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, candidate := range candidates {
			client, err := uc.clientResolver.FindOrCreateByName(txCtx, candidate.ClientName)
			if err != nil {
				uc.logger.Error("ImportEvents: client resolve error for %q: %v", candidate.ClientName, err)
				return fmt.Errorf("%w: client resolve: %v", ErrInternal, err)
			}

			event := candidate.Event
			event.ClientID = client.ID

			// Окно события не должно пересекать полночь
			if _, err := event.EndTime(); err != nil {
				uc.logger.Warn("ImportEvents: line %d: event %q window crosses midnight",
					candidate.Line, event.Name)
				resp.Issues = append(resp.Issues, RowIssue{
					Line:   candidate.Line,
					Reason: "event window crosses midnight",
				})
				continue
			}

			if _, err := uc.eventRepo.Create(txCtx, &event); err != nil {
				uc.logger.Error("ImportEvents: create error for %q: %v", event.Name, err)
				return fmt.Errorf("%w: event create: %v", ErrInternal, err)
			}
			resp.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ImportEvents: imported=%d, skipped=%d, issues=%d",
		resp.Imported, resp.Skipped, len(resp.Issues))
	return resp, nil
}

func newResponse(rowErrors []imports.RowError) *Response {
	resp := &Response{Issues: make([]RowIssue, 0, len(rowErrors))}
	for _, rowErr := range rowErrors {
		resp.Issues = append(resp.Issues, RowIssue{Line: rowErr.Line, Reason: rowErr.Err.Error()})
	}
	return resp
}
