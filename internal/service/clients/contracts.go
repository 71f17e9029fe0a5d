package clients

import (
	"context"

	"github.com/avlko/GMA-BookingService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований.
// Сводка клиента пересчитывается из его подтвержденных бронирований.
type BookingRepository interface {
	ListByClient(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// VenueRepository интерфейс репозитория площадок (для цен в сводке)
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
