package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

var eventDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:         1,
		Name:       "The Roundhouse",
		Capacity:   300,
		Category:   domain.CategoryIndoor,
		VenueTypes: []string{"Gig", "Festival"},
	}
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:               10,
		Name:             "Midnight Run Tour",
		Date:             eventDate,
		StartTime:        types.TimeString("20:00"),
		DurationHours:    3,
		RequiredCapacity: 150,
		EventType:        "Gig",
		Category:         domain.CategoryIndoor,
	}
}

func TestScore_PerfectMatch(t *testing.T) {
	result, err := Score(testVenue(), testEvent(), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.MaxCompatibilityScore, result.Score)
	assert.True(t, result.Available)
	assert.True(t, result.CapacityOK)
	assert.True(t, result.CategoryOK)
	assert.True(t, result.TypeOK)
	assert.True(t, result.IsPerfectMatch())
}

func TestScore_IsSumOfPassedChecks(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(v *domain.Venue, e *domain.Event)
		wantScore int
	}{
		{
			name:      "all checks pass",
			mutate:    func(v *domain.Venue, e *domain.Event) {},
			wantScore: 100,
		},
		{
			name: "capacity fails",
			mutate: func(v *domain.Venue, e *domain.Event) {
				e.RequiredCapacity = 500
			},
			wantScore: 75,
		},
		{
			name: "category and type fail",
			mutate: func(v *domain.Venue, e *domain.Event) {
				e.Category = domain.CategoryOutdoor
				e.EventType = "Conference"
			},
			wantScore: 50,
		},
		{
			name: "capacity only match",
			mutate: func(v *domain.Venue, e *domain.Event) {
				// Окно занято, категория и тип не совпадают - остается только вместимость
				e.Category = domain.CategoryOutdoor
				e.EventType = "Conference"
			},
			wantScore: 50,
		},
		{
			name: "nothing passes except availability",
			mutate: func(v *domain.Venue, e *domain.Event) {
				e.RequiredCapacity = 100000
				e.Category = domain.CategoryOutdoor
				e.EventType = "Conference"
			},
			wantScore: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venue := testVenue()
			event := testEvent()
			tt.mutate(venue, event)

			result, err := Score(venue, event, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantScore, result.Score)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)

			// Оценка всегда равна сумме весов прошедших проверок
			sum := 0
			if result.Available {
				sum += domain.WeightAvailability
			}
			if result.CapacityOK {
				sum += domain.WeightCapacity
			}
			if result.CategoryOK {
				sum += domain.WeightCategory
			}
			if result.TypeOK {
				sum += domain.WeightVenueType
			}
			assert.Equal(t, sum, result.Score)
		})
	}
}

func TestScore_AvailabilityUsesConfirmedBookings(t *testing.T) {
	venue := testVenue()
	event := testEvent()

	occupied := []*domain.Booking{{
		ID:            1,
		VenueID:       venue.ID,
		BookingDate:   eventDate,
		StartTime:     types.TimeString("19:00"),
		DurationHours: 2, // 19:00-21:00 пересекается с окном события 20:00-23:00
		Status:        domain.StatusConfirmed,
	}}

	result, err := Score(venue, event, occupied)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, 75, result.Score)

	// Pending бронирование окно не блокирует
	occupied[0].Status = domain.StatusPending
	result, err = Score(venue, event, occupied)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, 100, result.Score)
}

func TestScore_CapacityCheckMirrorsCreateBooking(t *testing.T) {
	venue := testVenue()
	venue.Capacity = 300
	event := testEvent()
	event.RequiredCapacity = 500

	result, err := Score(venue, event, nil)
	require.NoError(t, err)
	assert.False(t, result.CapacityOK)
}

func TestScore_InvalidInput(t *testing.T) {
	venue := testVenue()
	event := testEvent()
	event.DurationHours = 0

	_, err := Score(venue, event, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	venue.Capacity = 0
	event.DurationHours = 2
	_, err = Score(venue, event, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	venue.Capacity = 100
	event.RequiredCapacity = -1
	_, err = Score(venue, event, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
