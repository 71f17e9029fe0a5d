package domain

import (
	"time"

	"github.com/avlko/GMA-BookingService/pkg/types"
)

// Event represents a requested live performance with its venue requirements
type Event struct {
	ID     int64
	Name   string
	Artist string

	Date          time.Time        // Дата выступления (без времени)
	StartTime     types.TimeString // Время начала, "20:00"
	DurationHours int              // Длительность в целых часах

	RequiredCapacity int
	EventType        string // Запрошенный тип площадки, например "Gig"
	Category         VenueCategory

	ClientID int64 // Клиент-владелец события

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the half-open end of the event window.
// A window [start, start+duration) ending exactly when another starts does not overlap it.
func (e *Event) EndTime() (types.TimeString, error) {
	return e.StartTime.AddHours(e.DurationHours)
}

// DurationMinutes returns the event duration in minutes
func (e *Event) DurationMinutes() int {
	return e.DurationHours * 60
}
