package import_catalog

import (
	"context"

	"github.com/avlko/GMA-BookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
	GetByName(ctx context.Context, name string) (*domain.Venue, error)
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
}

// ClientResolver сопоставляет имя клиента из CSV с записью клиента
// (find-or-create со ставкой комиссии по умолчанию)
type ClientResolver interface {
	FindOrCreateByName(ctx context.Context, name string) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
