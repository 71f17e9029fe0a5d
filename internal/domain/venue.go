package domain

import (
	"strings"
	"time"
)

// VenueCategory represents the physical category of a venue
type VenueCategory string

const (
	CategoryIndoor      VenueCategory = "INDOOR"
	CategoryOutdoor     VenueCategory = "OUTDOOR"
	CategoryConvertible VenueCategory = "CONVERTIBLE"
)

// IsValid returns true if the category is one of the known values
func (c VenueCategory) IsValid() bool {
	return c == CategoryIndoor || c == CategoryOutdoor || c == CategoryConvertible
}

// Venue represents a bookable space with capacity, pricing and supported event types
type Venue struct {
	ID               int64
	Name             string
	Capacity         int
	HirePricePerHour float64
	Category         VenueCategory

	// Упорядоченный набор поддерживаемых типов событий ("Gig", "Festival", ...).
	// Порядок сохраняется как введен, сравнение - без учета регистра.
	VenueTypes []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupportsEventType returns true if the venue supports the given event type
// (case-insensitive)
func (v *Venue) SupportsEventType(eventType string) bool {
	for _, t := range v.VenueTypes {
		if strings.EqualFold(t, eventType) {
			return true
		}
	}
	return false
}

// CanHost returns true if the venue capacity covers the required capacity
func (v *Venue) CanHost(requiredCapacity int) bool {
	return v.Capacity >= requiredCapacity
}

// CategoryMatches returns true if the venue category satisfies the event category.
// A CONVERTIBLE event demands a CONVERTIBLE venue; otherwise the venue must match
// the event category exactly or be CONVERTIBLE itself.
func (v *Venue) CategoryMatches(eventCategory VenueCategory) bool {
	if eventCategory == CategoryConvertible {
		return v.Category == CategoryConvertible
	}
	return v.Category == eventCategory || v.Category == CategoryConvertible
}
