package manage_events

import (
	"context"

	"github.com/avlko/GMA-BookingService/internal/service/events/models"
)

type EventsService interface {
	Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EventResponse, error)
	List(ctx context.Context) (*models.EventListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.EventResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
