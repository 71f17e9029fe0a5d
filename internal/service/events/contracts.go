package events

import (
	"context"

	"github.com/avlko/GMA-BookingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// (для проверки "событие уже забронировано")
type BookingRepository interface {
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Booking, error)
}

// ClientRepository интерфейс репозитория клиентов
// (для проверки владельца события при создании)
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
