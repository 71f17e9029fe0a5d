package update_booking

import (
	"time"

	"github.com/avlko/GMA-BookingService/pkg/types"
)

// Request модель запроса на обновление бронирования.
// Все изменяемые поля опциональны: nil означает "оставить как есть".
type Request struct {
	BookingID int64

	VenueID       *int64            // Перенос на другую площадку
	EventID       *int64            // Замена события; окно по умолчанию берется из нового события
	Date          *time.Time        // Новая дата
	StartTime     *types.TimeString // Новое время начала
	DurationHours *int              // Новая длительность
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	EventID       int64
	VenueID       int64
	ClientID      int64
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int
	Status        string

	EventName string
	VenueName string

	// Финансовые показатели после обновления (округлены для отображения)
	HirePrice    float64
	Commission   float64
	Total        float64
	TotalDisplay string
}
