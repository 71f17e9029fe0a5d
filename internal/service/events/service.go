package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avlko/GMA-BookingService/internal/domain"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	"github.com/avlko/GMA-BookingService/internal/service/events/models"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

// Service сервис для работы с событиями
type Service struct {
	eventRepo   EventRepository
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(
	eventRepo EventRepository,
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	logger Logger,
) *Service {
	return &Service{
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// Create создает новое событие
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: creating event name=%s for client=%d", req.Name, req.ClientID)

	event, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request for event name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	event.Name = strings.TrimSpace(event.Name)
	event.Category = domain.VenueCategory(strings.ToUpper(string(event.Category)))

	if err := validateEvent(event); err != nil {
		s.logger.Warn("Create: invalid event name=%s: %v", req.Name, err)
		return nil, err
	}

	// Событие всегда принадлежит существующему клиенту
	if _, err := s.clientRepo.GetByID(ctx, event.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Create: client id=%d not found for event name=%s", event.ClientID, req.Name)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Create: client lookup error for client=%d: %v", event.ClientID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("Create: repository error for event name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event id=%d", created.ID)
	return models.FromDomainEvent(created), nil
}

// GetByID получает событие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// List получает все события
func (s *Service) List(ctx context.Context) (*models.EventListResponse, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEventList(events), nil
}

// Update обновляет событие (частичное обновление).
// Изменение окна события (дата, время, длительность) запрещено, пока
// у события есть открытые бронирования: окно меняется только через
// обновление бронирования, где заново проверяются конфликты.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Update: updating event id=%d", id)

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Update: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.TouchesSchedule() {
		if err := s.ensureNotBooked(ctx, id); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		event.Name = strings.TrimSpace(*req.Name)
	}
	if req.Artist != nil {
		event.Artist = *req.Artist
	}
	if req.Date != nil {
		date, parseErr := time.Parse(domain.DateFormat, *req.Date)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidDate)
		}
		event.Date = date
	}
	if req.StartTime != nil {
		startTime := types.TimeString(*req.StartTime)
		if validateErr := startTime.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidTime)
		}
		event.StartTime = startTime
	}
	if req.DurationHours != nil {
		event.DurationHours = *req.DurationHours
	}
	if req.RequiredCapacity != nil {
		event.RequiredCapacity = *req.RequiredCapacity
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Category != nil {
		event.Category = domain.VenueCategory(strings.ToUpper(*req.Category))
	}

	if err := validateEvent(event); err != nil {
		s.logger.Warn("Update: invalid event id=%d: %v", id, err)
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated event id=%d", id)
	return models.FromDomainEvent(event), nil
}

// Delete удаляет событие.
// Забронированное событие удалить нельзя - сначала отменяется бронирование.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting event id=%d", id)

	if err := s.ensureNotBooked(ctx, id); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ensureNotBooked проверяет отсутствие открытых бронирований у события
func (s *Service) ensureNotBooked(ctx context.Context, eventID int64) error {
	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("ensureNotBooked: bookings error for event=%d: %v", eventID, err)
		return fmt.Errorf("%w: bookings lookup error: %v", ErrInternal, err)
	}

	for _, booking := range bookings {
		if !booking.IsCancelled() {
			s.logger.Warn("ensureNotBooked: event id=%d has open booking id=%d", eventID, booking.ID)
			return ErrEventBooked
		}
	}

	return nil
}

func validateEvent(event *domain.Event) error {
	if event.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if event.DurationHours < domain.MinEventDurationHours || event.DurationHours > domain.MaxEventDurationHours {
		return fmt.Errorf("%w: duration must be within [%d, %d] hours",
			ErrInvalidInput, domain.MinEventDurationHours, domain.MaxEventDurationHours)
	}
	if event.RequiredCapacity < 1 {
		return fmt.Errorf("%w: required capacity must be positive", ErrInvalidInput)
	}
	if event.EventType == "" {
		return fmt.Errorf("%w: event type is required", ErrInvalidInput)
	}
	if !event.Category.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, event.Category)
	}

	// Окно события не должно пересекать полночь
	if _, err := event.EndTime(); err != nil {
		return fmt.Errorf("%w: event window must not cross midnight", ErrInvalidInput)
	}

	return nil
}
