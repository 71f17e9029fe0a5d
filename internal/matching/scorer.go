// Package matching вычисление совместимости площадки и события.
// Оценка 0-100 складывается из четырех независимых проверок по 25 баллов:
// доступность окна, вместимость, категория, тип площадки.
// Равные оценки - одинаково допустимые варианты, tie-break не применяется.
package matching

import (
	"fmt"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/internal/schedule"
)

// Score вычисляет совместимость площадки venue с событием event.
// venueBookings - бронирования площадки, среди которых ищутся конфликты окна
// (учитываются только подтвержденные). Результат эфемерный, без побочных эффектов.
func Score(
	venue *domain.Venue,
	event *domain.Event,
	venueBookings []*domain.Booking,
) (domain.CompatibilityResult, error) {
	result := domain.CompatibilityResult{
		VenueID: venue.ID,
		EventID: event.ID,
	}

	if venue.Capacity <= 0 {
		return result, fmt.Errorf("%w: venue capacity must be positive, got %d", ErrInvalidInput, venue.Capacity)
	}
	if event.RequiredCapacity <= 0 {
		return result, fmt.Errorf("%w: event required capacity must be positive, got %d", ErrInvalidInput, event.RequiredCapacity)
	}
	if event.DurationHours <= 0 {
		return result, fmt.Errorf("%w: event duration must be positive, got %d", ErrInvalidInput, event.DurationHours)
	}

	// 1. Доступность: нет подтвержденного бронирования, пересекающегося с окном события
	conflict, err := schedule.HasConflict(venue.ID, event.Date, event.StartTime, event.DurationHours, venueBookings)
	if err != nil {
		return result, fmt.Errorf("%w: availability check failed: %v", ErrInvalidInput, err)
	}
	if !conflict {
		result.Available = true
		result.Score += domain.WeightAvailability
	}

	// 2. Вместимость
	if venue.CanHost(event.RequiredCapacity) {
		result.CapacityOK = true
		result.Score += domain.WeightCapacity
	}

	// 3. Категория
	if venue.CategoryMatches(event.Category) {
		result.CategoryOK = true
		result.Score += domain.WeightCategory
	}

	// 4. Тип площадки (без учета регистра)
	if venue.SupportsEventType(event.EventType) {
		result.TypeOK = true
		result.Score += domain.WeightVenueType
	}

	return result, nil
}
