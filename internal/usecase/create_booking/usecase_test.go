package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/pkg/types"
	"github.com/avlko/GMA-BookingService/pkg/venuelock"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

func (r *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.VenueID != filter.VenueID {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		if filter.ExcludeID != nil && b.ID == *filter.ExcludeID {
			continue
		}
		if b.IsCancelled() && !filter.IncludeClosed {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
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

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
}

func newFixture() *fixture {
	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	venues := &fakeVenueRepo{venues: map[int64]*domain.Venue{
		5: {
			ID: 5, Name: "Hammersmith Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig", "Comedy"},
		},
		6: {
			ID: 6, Name: "Tiny Cellar", Capacity: 80, HirePricePerHour: 40,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"},
		},
	}}

	events := &fakeEventRepo{events: map[int64]*domain.Event{
		10: {
			ID: 10, Name: "Static Curse", Artist: "Static Curse",
			Date: date, StartTime: types.TimeString("20:00"), DurationHours: 3,
			RequiredCapacity: 300, EventType: "Gig", Category: domain.CategoryIndoor,
			ClientID: 3,
		},
		11: {
			ID: 11, Name: "Velvet Howl", Artist: "Velvet Howl",
			Date: date, StartTime: types.TimeString("21:00"), DurationHours: 2,
			RequiredCapacity: 200, EventType: "Gig", Category: domain.CategoryIndoor,
			ClientID: 3,
		},
	}}

	clients := &fakeClientRepo{clients: map[int64]*domain.Client{
		3: {ID: 3, Name: "Iron Tour Ltd", CommissionRate: 0.10},
	}}

	bookings := &fakeBookingRepo{}

	uc := NewUseCase(bookings, venues, events, clients, passthroughTxManager{}, venuelock.New(), noopLogger{})
	return &fixture{uc: uc, bookings: bookings}
}

func TestUseCase_ExecuteConfirmed(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 10, VenueID: 5, CreatedBy: "agent-smith",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "agent-smith", resp.CreatedBy)
	assert.Equal(t, "Static Curse", resp.EventName)
	assert.Equal(t, "Hammersmith Apollo", resp.VenueName)
	assert.Equal(t, types.TimeString("20:00"), resp.StartTime)
	assert.Equal(t, 3, resp.DurationHours)

	// 100/час * 3 часа = 300, комиссия 10% = 30
	assert.Equal(t, 300.0, resp.HirePrice)
	assert.Equal(t, 30.0, resp.Commission)
	assert.Equal(t, 330.0, resp.Total)
	assert.Equal(t, "$330.00", resp.TotalDisplay)
}

func TestUseCase_ExecutePending_DoesNotBlock(t *testing.T) {
	f := newFixture()

	// Pending бронирование не блокирует окно площадки
	_, err := f.uc.ExecutePending(context.Background(), &Request{
		EventID: 10, VenueID: 5, CreatedBy: "auto-match",
	})
	require.NoError(t, err)

	resp, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 11, VenueID: 5, CreatedBy: "agent-smith",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUseCase_SchedulingConflict(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 10, VenueID: 5, CreatedBy: "agent-smith",
	})
	require.NoError(t, err)

	// Событие 11 (21:00-23:00) пересекается с событием 10 (20:00-23:00)
	_, err = f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 11, VenueID: 5, CreatedBy: "agent-smith",
	})
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	// На другой площадке конфликта нет
	resp, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 11, VenueID: 6, CreatedBy: "agent-smith",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), resp.VenueID)
}

func TestUseCase_CapacityExceeded(t *testing.T) {
	f := newFixture()

	// Событие 10 требует 300 мест, Tiny Cellar вмещает 80
	_, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 10, VenueID: 6, CreatedBy: "agent-smith",
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Empty(t, f.bookings.bookings)
}

func TestUseCase_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 99, VenueID: 5, CreatedBy: "agent-smith",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = f.uc.ExecuteConfirmed(context.Background(), &Request{
		EventID: 10, VenueID: 99, CreatedBy: "agent-smith",
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestUseCase_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ExecuteConfirmed(context.Background(), &Request{EventID: 0, VenueID: 5, CreatedBy: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.ExecuteConfirmed(context.Background(), &Request{EventID: 10, VenueID: 5, CreatedBy: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_ConcurrentCreation_OneWins(t *testing.T) {
	f := newFixture()

	// Два конкурирующих запроса на одно окно одной площадки:
	// ровно один должен победить, второй - получить конфликт
	const racers = 2
	errs := make(chan error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.ExecuteConfirmed(context.Background(), &Request{
				EventID: 10, VenueID: 5, CreatedBy: "agent-smith",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSchedulingConflict):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Len(t, f.bookings.bookings, 1)
}
