package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/internal/finance"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/internal/service/clients/models"
	"github.com/avlko/GMA-BookingService/pkg/money"
)

// DefaultCommissionRate ставка комиссии по умолчанию для клиентов,
// созданных неявно при импорте каталога событий
const DefaultCommissionRate = 0.10

// Service сервис для работы с клиентами
type Service struct {
	clientRepo  ClientRepository
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:  clientRepo,
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client name=%s", req.Name)

	client := &domain.Client{
		Name:           strings.TrimSpace(req.Name),
		Contact:        req.Contact,
		CommissionRate: req.CommissionRate,
	}

	if client.Name == "" {
		s.logger.Warn("Create: empty client name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !client.HasValidCommissionRate() {
		s.logger.Warn("Create: invalid commission rate=%f for client name=%s", req.CommissionRate, req.Name)
		return nil, ErrInvalidCommissionRate
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Create: repository error for client name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%d", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(clients), nil
}

// Update обновляет клиента (частичное обновление)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
		if client.Name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.CommissionRate != nil {
		client.CommissionRate = *req.CommissionRate
		if !client.HasValidCommissionRate() {
			s.logger.Warn("Update: invalid commission rate=%f for client id=%d", *req.CommissionRate, id)
			return nil, ErrInvalidCommissionRate
		}
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%d", id)
	return models.FromDomainClient(client), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting client id=%d", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// FindOrCreateByName находит клиента по имени или создает нового
// со ставкой комиссии по умолчанию. Используется импортом каталога событий,
// где клиент задан только именем.
func (s *Service) FindOrCreateByName(ctx context.Context, name string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByName(ctx, name)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		s.logger.Error("FindOrCreateByName: repository error for name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: FindOrCreateByName - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindOrCreateByName: creating client name=%s with default rate", name)
	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:           name,
		CommissionRate: DefaultCommissionRate,
	})
	if err != nil {
		s.logger.Error("FindOrCreateByName: create error for name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: FindOrCreateByName - repository error: %v", ErrInternal, err)
	}

	return created, nil
}

// GetSummary пересчитывает сводку клиента из его подтвержденных бронирований.
// Сводка никогда не хранится: количество работ и суммарные затраты
// вычисляются заново при каждом запросе. Суммирование идет с полной
// точностью, округляется только отображаемая строка.
func (s *Service) GetSummary(ctx context.Context, id int64) (*models.ClientSummaryResponse, error) {
	s.logger.Info("GetSummary: building summary for client=%d", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetSummary: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetSummary: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}

	confirmed := domain.StatusConfirmed
	bookings, err := s.bookingRepo.ListByClient(ctx, id, &confirmed)
	if err != nil {
		s.logger.Error("GetSummary: bookings error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}

	// Кэш площадок: бронирования клиента часто на одних и тех же площадках
	venues := make(map[int64]*domain.Venue)

	var totalSpend float64
	for _, booking := range bookings {
		venue, ok := venues[booking.VenueID]
		if !ok {
			venue, err = s.venueRepo.GetByID(ctx, booking.VenueID)
			if err != nil {
				if errors.Is(err, venueRepo.ErrVenueNotFound) {
					// Площадка удалена: бронирование входит в счетчик работ,
					// но вклада в затраты не дает
					venues[booking.VenueID] = nil
					continue
				}
				s.logger.Error("GetSummary: venue error for venue=%d: %v", booking.VenueID, err)
				return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
			}
			venues[booking.VenueID] = venue
		}

		totalSpend += finance.ComputeForBooking(venue, booking, client).Total
	}

	summary := &domain.ClientSummary{
		ClientID:     client.ID,
		Name:         client.Name,
		JobCount:     len(bookings),
		TotalSpend:   totalSpend,
		TotalDisplay: money.FormatAmount(totalSpend),
	}

	s.logger.Info("GetSummary: client=%d has %d confirmed bookings, total=%s",
		id, summary.JobCount, summary.TotalDisplay)
	return models.FromDomainSummary(summary), nil
}
