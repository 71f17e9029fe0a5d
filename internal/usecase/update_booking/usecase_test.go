package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	bookingRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	eventRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/event"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/pkg/ptr"
	"github.com/avlko/GMA-BookingService/pkg/types"
	"github.com/avlko/GMA-BookingService/pkg/venuelock"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
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
		if filter.ExcludeID != nil && b.ID == *filter.ExcludeID {
			continue
		}
		if b.IsCancelled() && !filter.IncludeClosed {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateSlot(_ context.Context, id int64, slot domain.Booking) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.EventID = slot.EventID
	b.VenueID = slot.VenueID
	b.ClientID = slot.ClientID
	b.BookingDate = slot.BookingDate
	b.StartTime = slot.StartTime
	b.DurationHours = slot.DurationHours
	b.EventName = slot.EventName
	b.VenueName = slot.VenueName
	return nil
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
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) UpdateSchedule(_ context.Context, id int64, date time.Time, startTime types.TimeString, durationHours int) error {
	e, ok := r.events[id]
	if !ok {
		return eventRepo.ErrEventNotFound
	}
	e.Date = date
	e.StartTime = startTime
	e.DurationHours = durationHours
	return nil
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
	events   *fakeEventRepo
}

var testDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	venues := &fakeVenueRepo{venues: map[int64]*domain.Venue{
		5: {ID: 5, Name: "Hammersmith Apollo", Capacity: 500, HirePricePerHour: 100,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
		6: {ID: 6, Name: "Roundhouse", Capacity: 400, HirePricePerHour: 80,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
		7: {ID: 7, Name: "Tiny Cellar", Capacity: 80, HirePricePerHour: 40,
			Category: domain.CategoryIndoor, VenueTypes: []string{"Gig"}},
	}}

	events := &fakeEventRepo{events: map[int64]*domain.Event{
		10: {ID: 10, Name: "Static Curse", Date: testDate, StartTime: "20:00",
			DurationHours: 3, RequiredCapacity: 300, EventType: "Gig",
			Category: domain.CategoryIndoor, ClientID: 3},
		11: {ID: 11, Name: "Velvet Howl", Date: testDate.AddDate(0, 0, 2), StartTime: "21:00",
			DurationHours: 2, RequiredCapacity: 200, EventType: "Gig",
			Category: domain.CategoryIndoor, ClientID: 4},
		12: {ID: 12, Name: "Stadium Roar", Date: testDate, StartTime: "19:00",
			DurationHours: 4, RequiredCapacity: 600, EventType: "Gig",
			Category: domain.CategoryIndoor, ClientID: 3},
	}}

	clients := &fakeClientRepo{clients: map[int64]*domain.Client{
		3: {ID: 3, Name: "Iron Tour Ltd", CommissionRate: 0.10},
		4: {ID: 4, Name: "Night Shift Agency", CommissionRate: 0.15},
	}}

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, EventID: 10, VenueID: 5, ClientID: 3,
			BookingDate: testDate, StartTime: "20:00", DurationHours: 3,
			Status: domain.StatusConfirmed, EventName: "Static Curse", VenueName: "Hammersmith Apollo"},
	}}

	uc := NewUseCase(bookings, venues, events, clients, passthroughTxManager{}, venuelock.New(), noopLogger{})
	return &fixture{uc: uc, bookings: bookings, events: events}
}

func TestUseCase_MoveToAnotherVenue(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		VenueID:   ptr.Ptr(int64(6)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), resp.VenueID)
	assert.Equal(t, "Roundhouse", resp.VenueName)
	// 80/час * 3 часа = 240, комиссия 10% = 24
	assert.Equal(t, 240.0, resp.HirePrice)
	assert.Equal(t, 264.0, resp.Total)

	assert.Equal(t, int64(6), f.bookings.bookings[1].VenueID)
	assert.Equal(t, "Roundhouse", f.bookings.bookings[1].VenueName)
}

func TestUseCase_MoveWindow_UpdatesEvent(t *testing.T) {
	f := newFixture()

	newDate := testDate.AddDate(0, 0, 1)
	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		Date:          &newDate,
		StartTime:     ptr.Ptr(types.TimeString("18:00")),
		DurationHours: ptr.Ptr(2),
	})
	require.NoError(t, err)

	assert.Equal(t, newDate, resp.BookingDate)
	assert.Equal(t, types.TimeString("18:00"), resp.StartTime)
	assert.Equal(t, 2, resp.DurationHours)

	// Окно события следует за бронированием
	event := f.events.events[10]
	assert.Equal(t, newDate, event.Date)
	assert.Equal(t, types.TimeString("18:00"), event.StartTime)
	assert.Equal(t, 2, event.DurationHours)
}

func TestUseCase_ExcludesOwnBookingFromConflictCheck(t *testing.T) {
	f := newFixture()

	// Сдвиг на час внутри собственного окна: без исключения самого себя
	// бронирование конфликтовало бы со своей прежней версией
	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		StartTime: ptr.Ptr(types.TimeString("21:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("21:00"), resp.StartTime)
}

func TestUseCase_ReplaceEvent(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		EventID:   ptr.Ptr(int64(11)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.EventID)
	assert.Equal(t, int64(4), resp.ClientID)
	assert.Equal(t, "Velvet Howl", resp.EventName)

	// Окно по умолчанию берется из расписания нового события
	assert.Equal(t, testDate.AddDate(0, 0, 2), resp.BookingDate)
	assert.Equal(t, types.TimeString("21:00"), resp.StartTime)
	assert.Equal(t, 2, resp.DurationHours)

	// 100/час * 2 часа = 200, комиссия нового клиента 15% = 30
	assert.Equal(t, 200.0, resp.HirePrice)
	assert.Equal(t, 30.0, resp.Commission)
	assert.Equal(t, 230.0, resp.Total)

	booking := f.bookings.bookings[1]
	assert.Equal(t, int64(11), booking.EventID)
	assert.Equal(t, int64(4), booking.ClientID)
	assert.Equal(t, "Velvet Howl", booking.EventName)
}

func TestUseCase_ReplaceEvent_ExplicitWindowOverrides(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		EventID:   ptr.Ptr(int64(11)),
		StartTime: ptr.Ptr(types.TimeString("18:00")),
	})
	require.NoError(t, err)

	// Явно заданное время важнее расписания нового события,
	// остальные поля окна следуют за ним
	assert.Equal(t, types.TimeString("18:00"), resp.StartTime)
	assert.Equal(t, testDate.AddDate(0, 0, 2), resp.BookingDate)
	assert.Equal(t, 2, resp.DurationHours)
}

func TestUseCase_ReplaceEvent_CapacityRechecked(t *testing.T) {
	f := newFixture()

	// Вместимость проверяется по требованиям нового события
	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		EventID:   ptr.Ptr(int64(12)),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, int64(10), f.bookings.bookings[1].EventID)
}

func TestUseCase_ConflictOnTargetVenue(t *testing.T) {
	f := newFixture()
	f.bookings.bookings[2] = &domain.Booking{
		ID: 2, EventID: 11, VenueID: 6, ClientID: 3,
		BookingDate: testDate, StartTime: "19:00", DurationHours: 4,
		Status: domain.StatusConfirmed,
	}

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		VenueID:   ptr.Ptr(int64(6)),
	})
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	// Бронирование осталось нетронутым
	assert.Equal(t, int64(5), f.bookings.bookings[1].VenueID)
	assert.Equal(t, types.TimeString("20:00"), f.bookings.bookings[1].StartTime)
}

func TestUseCase_CapacityOnTargetVenue(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		VenueID:   ptr.Ptr(int64(7)),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, int64(5), f.bookings.bookings[1].VenueID)
}

func TestUseCase_CancelledBookingNotUpdatable(t *testing.T) {
	f := newFixture()
	f.bookings.bookings[1].Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		VenueID:   ptr.Ptr(int64(6)),
	})
	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestUseCase_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{
		BookingID:     1,
		DurationHours: ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Целевое окно не должно пересекать полночь
	_, err = f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		StartTime: ptr.Ptr(types.TimeString("23:00")),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 99,
		VenueID:   ptr.Ptr(int64(6)),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		VenueID:   ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		EventID:   ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}
