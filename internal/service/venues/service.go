package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlko/GMA-BookingService/internal/domain"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/internal/service/venues/models"
)

// Service сервис для работы с площадками
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: creating venue name=%s", req.Name)

	venue := &domain.Venue{
		Name:             strings.TrimSpace(req.Name),
		Capacity:         req.Capacity,
		HirePricePerHour: req.HirePricePerHour,
		Category:         domain.VenueCategory(strings.ToUpper(req.Category)),
		VenueTypes:       req.VenueTypes,
	}

	if err := validateVenue(venue); err != nil {
		s.logger.Warn("Create: invalid venue name=%s: %v", req.Name, err)
		return nil, err
	}

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		s.logger.Error("Create: repository error for venue name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created venue id=%d", created.ID)
	return models.FromDomainVenue(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueResponse, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue), nil
}

// List получает все площадки
func (s *Service) List(ctx context.Context) (*models.VenueListResponse, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenueList(venues), nil
}

// Update обновляет площадку (частичное обновление)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Update: updating venue id=%d", id)

	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Update: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		venue.Name = strings.TrimSpace(*req.Name)
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}
	if req.HirePricePerHour != nil {
		venue.HirePricePerHour = *req.HirePricePerHour
	}
	if req.Category != nil {
		venue.Category = domain.VenueCategory(strings.ToUpper(*req.Category))
	}
	if req.VenueTypes != nil {
		venue.VenueTypes = req.VenueTypes
	}

	if err := validateVenue(venue); err != nil {
		s.logger.Warn("Update: invalid venue id=%d: %v", id, err)
		return nil, err
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated venue id=%d", id)
	return models.FromDomainVenue(venue), nil
}

// Delete удаляет площадку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting venue id=%d", id)

	if err := s.venueRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Delete: venue id=%d not found", id)
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateVenue(venue *domain.Venue) error {
	if venue.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if venue.Capacity < domain.MinVenueCapacity {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if venue.HirePricePerHour < 0 {
		return fmt.Errorf("%w: hire price must be non-negative", ErrInvalidInput)
	}
	if !venue.Category.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, venue.Category)
	}
	return nil
}
