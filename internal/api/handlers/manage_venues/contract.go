package manage_venues

import (
	"context"

	"github.com/avlko/GMA-BookingService/internal/service/venues/models"
)

type VenuesService interface {
	Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error)
	GetByID(ctx context.Context, id int64) (*models.VenueResponse, error)
	List(ctx context.Context) (*models.VenueListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
