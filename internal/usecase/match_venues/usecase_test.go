package match_venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeVenueRepo struct {
	venues []*domain.Venue
}

func (r *fakeVenueRepo) List(_ context.Context) ([]*domain.Venue, error) {
	return r.venues, nil
}

type fakeEventRepo struct {
	events map[int64]*domain.Event
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, eventRepo.ErrEventNotFound
	}
	return e, nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
}

func (r *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.VenueID != filter.VenueID {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if b.IsCancelled() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

var testDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func newUseCase(venues []*domain.Venue, bookings []*domain.Booking) *UseCase {
	events := &fakeEventRepo{events: map[int64]*domain.Event{
		10: {ID: 10, Name: "Static Curse", Date: testDate, StartTime: "20:00",
			DurationHours: 3, RequiredCapacity: 300, EventType: "Gig",
			Category: domain.CategoryIndoor, ClientID: 3},
	}}
	clients := &fakeClientRepo{clients: map[int64]*domain.Client{
		3: {ID: 3, Name: "Iron Tour Ltd", CommissionRate: 0.10},
	}}
	return NewUseCase(&fakeVenueRepo{venues: venues}, events, clients, &fakeBookingRepo{bookings: bookings}, noopLogger{})
}

func TestUseCase_RanksByScore(t *testing.T) {
	venues := []*domain.Venue{
		// id=1: все проверки проходят, 100
		{ID: 1, Name: "Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
		// id=2: вместимость мала, 75
		{ID: 2, Name: "Cellar", Capacity: 80, HirePricePerHour: 40,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
		// id=3: тип не поддерживается и категория не совпадает, 50
		{ID: 3, Name: "Open Field", Capacity: 10000, HirePricePerHour: 200,
			Category: domain.CategoryOutdoor, VenueTypes: []string{"Festival"}},
	}

	uc := newUseCase(venues, nil)
	resp, err := uc.Execute(context.Background(), &Request{EventID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 3)
	assert.Equal(t, int64(1), resp.Matches[0].VenueID)
	assert.Equal(t, 100, resp.Matches[0].Score)
	assert.True(t, resp.Matches[0].PerfectMatch)

	assert.Equal(t, int64(2), resp.Matches[1].VenueID)
	assert.Equal(t, 75, resp.Matches[1].Score)
	assert.False(t, resp.Matches[1].CapacityOK)

	assert.Equal(t, int64(3), resp.Matches[2].VenueID)
	assert.Equal(t, 50, resp.Matches[2].Score)
}

func TestUseCase_EqualScoresOrderedByID(t *testing.T) {
	venues := []*domain.Venue{
		{ID: 7, Name: "B", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
		{ID: 2, Name: "A", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
	}

	uc := newUseCase(venues, nil)
	resp, err := uc.Execute(context.Background(), &Request{EventID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 2)
	assert.Equal(t, int64(2), resp.Matches[0].VenueID)
	assert.Equal(t, int64(7), resp.Matches[1].VenueID)
}

func TestUseCase_ConfirmedBookingLowersAvailability(t *testing.T) {
	venues := []*domain.Venue{
		{ID: 1, Name: "Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
	}
	bookings := []*domain.Booking{
		{ID: 1, VenueID: 1, BookingDate: testDate, StartTime: "19:00",
			DurationHours: 3, Status: domain.StatusConfirmed},
	}

	uc := newUseCase(venues, bookings)
	resp, err := uc.Execute(context.Background(), &Request{EventID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 1)
	assert.Equal(t, 75, resp.Matches[0].Score)
	assert.False(t, resp.Matches[0].Available)
	assert.False(t, resp.Matches[0].PerfectMatch)
}

func TestUseCase_PendingBookingDoesNotLowerAvailability(t *testing.T) {
	venues := []*domain.Venue{
		{ID: 1, Name: "Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
	}
	bookings := []*domain.Booking{
		{ID: 1, VenueID: 1, BookingDate: testDate, StartTime: "19:00",
			DurationHours: 3, Status: domain.StatusPending},
	}

	uc := newUseCase(venues, bookings)
	resp, err := uc.Execute(context.Background(), &Request{EventID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 1)
	assert.Equal(t, 100, resp.Matches[0].Score)
	assert.True(t, resp.Matches[0].Available)
}

func TestUseCase_MinScoreFilters(t *testing.T) {
	venues := []*domain.Venue{
		{ID: 1, Name: "Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
		{ID: 2, Name: "Open Field", Capacity: 10000, HirePricePerHour: 200,
			Category: domain.CategoryOutdoor, VenueTypes: []string{"Festival"}},
	}

	uc := newUseCase(venues, nil)
	resp, err := uc.Execute(context.Background(), &Request{EventID: 10, MinScore: 75})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 1)
	assert.Equal(t, int64(1), resp.Matches[0].VenueID)
}

func TestUseCase_FinancialProjection(t *testing.T) {
	venues := []*domain.Venue{
		{ID: 1, Name: "Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
	}

	uc := newUseCase(venues, nil)
	resp, err := uc.Execute(context.Background(), &Request{EventID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Matches, 1)
	m := resp.Matches[0]
	assert.Equal(t, 300.0, m.HirePrice)
	assert.Equal(t, 30.0, m.Commission)
	assert.Equal(t, 330.0, m.Total)
	assert.Equal(t, "$330.00", m.TotalDisplay)
}

func TestUseCase_EventNotFound(t *testing.T) {
	uc := newUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{EventID: 99})
	assert.ErrorIs(t, err, ErrEventNotFound)
}
