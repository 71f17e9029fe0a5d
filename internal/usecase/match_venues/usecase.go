package match_venues

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/internal/finance"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	"github.com/avlko/GMA-BookingService/internal/matching"
	"github.com/avlko/GMA-BookingService/pkg/money"
)

// UseCase use case подбора площадок: оценивает совместимость каждой
// площадки с событием и возвращает ранжированный список. Подбор
// ничего не бронирует и не мутирует, результат эфемерный.
type UseCase struct {
	venueRepo   VenueRepository
	eventRepo   EventRepository
	clientRepo  ClientRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	eventRepo EventRepository,
	clientRepo ClientRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:   venueRepo,
		eventRepo:   eventRepo,
		clientRepo:  clientRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет подбор площадок для события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.EventID <= 0 {
		return nil, fmt.Errorf("%w: event id must be positive", ErrInvalidInput)
	}
	if req.MinScore < 0 || req.MinScore > domain.MaxCompatibilityScore {
		return nil, fmt.Errorf("%w: min score must be within [0, %d]", ErrInvalidInput, domain.MaxCompatibilityScore)
	}

	uc.logger.Info("MatchVenues: event=%d, minScore=%d", req.EventID, req.MinScore)

	// 1. Получаем событие
	event, err := uc.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("MatchVenues: event id=%d not found", req.EventID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("MatchVenues: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 2. Клиент нужен для прогноза комиссии
	client, err := uc.clientRepo.GetByID(ctx, event.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("MatchVenues: client id=%d not found", event.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("MatchVenues: failed to get client id=%d: %v", event.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Получаем все площадки
	venues, err := uc.venueRepo.List(ctx)
	if err != nil {
		uc.logger.Error("MatchVenues: failed to list venues: %v", err)
		return nil, fmt.Errorf("%w: failed to list venues: %v", ErrInternal, err)
	}

	// 4. Оцениваем каждую площадку
	matches := make([]Match, 0, len(venues))
	for _, venue := range venues {
		// Бронирования площадки на дату события (для проверки доступности)
		bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.VenueBookingsFilter{
			VenueID: venue.ID,
			Date:    &event.Date,
		})
		if err != nil {
			uc.logger.Error("MatchVenues: failed to get bookings for venue=%d: %v", venue.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		result, err := matching.Score(venue, event, bookings)
		if err != nil {
			// Площадка с некорректными данными выпадает из выдачи, подбор продолжается
			uc.logger.Warn("MatchVenues: skipping venue id=%d: %v", venue.ID, err)
			continue
		}

		if result.Score < req.MinScore {
			continue
		}

		financials := finance.Compute(venue, event, client).Rounded()

		matches = append(matches, Match{
			VenueID:      venue.ID,
			VenueName:    venue.Name,
			Score:        result.Score,
			Available:    result.Available,
			CapacityOK:   result.CapacityOK,
			CategoryOK:   result.CategoryOK,
			TypeOK:       result.TypeOK,
			PerfectMatch: result.IsPerfectMatch(),
			HirePrice:    financials.HirePrice,
			Commission:   financials.Commission,
			Total:        financials.Total,
			TotalDisplay: money.FormatAmount(financials.Total),
		})
	}

	// 5. Ранжируем: оценка по убыванию, id по возрастанию.
	// Порядок влияет только на выдачу: равные оценки остаются равноценными.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].VenueID < matches[j].VenueID
	})

	uc.logger.Info("MatchVenues: event=%d scored %d venues, %d in response",
		req.EventID, len(venues), len(matches))

	return &Response{
		EventID:   event.ID,
		EventName: event.Name,
		Matches:   matches,
	}, nil
}
