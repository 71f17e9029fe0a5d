package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	clientRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/client"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/internal/service/clients/models"
	"github.com/avlko/GMA-BookingService/pkg/ptr"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newFakeClientRepo(clients ...*domain.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[int64]*domain.Client), nextID: 100}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.nextID++
	client.ID = r.nextID
	r.clients[client.ID] = client
	return client, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClientRepo) GetByName(_ context.Context, name string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

func (r *fakeClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	result := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		copied := *c
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return clientRepo.ErrClientNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return clientRepo.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) ListByClient(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
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

func confirmedBooking(id, clientID, venueID int64, durationHours int) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		EventID:       id * 10,
		VenueID:       venueID,
		ClientID:      clientID,
		BookingDate:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("20:00"),
		DurationHours: durationHours,
		Status:        domain.StatusConfirmed,
	}
}

func TestService_GetSummary(t *testing.T) {
	client := &domain.Client{ID: 3, Name: "Iron Tour Ltd", CommissionRate: 0.10}
	venues := &fakeVenueRepo{venues: map[int64]*domain.Venue{
		5: {ID: 5, Name: "Hammersmith Apollo", HirePricePerHour: 100},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, 3, 5, 3), // 300 + 30 = 330
		confirmedBooking(2, 3, 5, 2), // 200 + 20 = 220
		{ID: 3, ClientID: 3, VenueID: 5, DurationHours: 4, Status: domain.StatusPending},   // не входит
		{ID: 4, ClientID: 3, VenueID: 5, DurationHours: 4, Status: domain.StatusCancelled}, // не входит
		confirmedBooking(5, 9, 5, 8), // чужой клиент
	}}

	svc := NewService(newFakeClientRepo(client), bookings, venues, noopLogger{})

	summary, err := svc.GetSummary(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.JobCount)
	assert.Equal(t, "2 bookings", summary.JobsDisplay)
	assert.InDelta(t, 550.0, summary.TotalSpend, 1e-9)
	assert.Equal(t, "$550.00", summary.TotalDisplay)
}

func TestService_GetSummary_EmptyClient(t *testing.T) {
	client := &domain.Client{ID: 3, Name: "Quiet Agency", CommissionRate: 0.15}
	svc := NewService(newFakeClientRepo(client), &fakeBookingRepo{}, &fakeVenueRepo{venues: map[int64]*domain.Venue{}}, noopLogger{})

	summary, err := svc.GetSummary(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.JobCount)
	assert.Equal(t, "0 bookings", summary.JobsDisplay)
	assert.Zero(t, summary.TotalSpend)
	assert.Equal(t, "$0.00", summary.TotalDisplay)
}

func TestService_GetSummary_MissingVenue(t *testing.T) {
	client := &domain.Client{ID: 3, Name: "Iron Tour Ltd", CommissionRate: 0.10}
	venues := &fakeVenueRepo{venues: map[int64]*domain.Venue{}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, 3, 5, 3)}}

	svc := NewService(newFakeClientRepo(client), bookings, venues, noopLogger{})

	summary, err := svc.GetSummary(context.Background(), 3)
	require.NoError(t, err)
	// Бронирование учитывается как работа, но без вклада в затраты
	assert.Equal(t, 1, summary.JobCount)
	assert.Equal(t, "1 booking", summary.JobsDisplay)
	assert.Zero(t, summary.TotalSpend)
}

func TestService_GetSummary_NotFound(t *testing.T) {
	svc := NewService(newFakeClientRepo(), &fakeBookingRepo{}, &fakeVenueRepo{}, noopLogger{})

	_, err := svc.GetSummary(context.Background(), 42)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_Create_ValidatesCommissionRate(t *testing.T) {
	svc := NewService(newFakeClientRepo(), &fakeBookingRepo{}, &fakeVenueRepo{}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: "X", CommissionRate: 1.5})
	assert.ErrorIs(t, err, ErrInvalidCommissionRate)

	_, err = svc.Create(context.Background(), &models.CreateClientRequest{Name: "X", CommissionRate: -0.1})
	assert.ErrorIs(t, err, ErrInvalidCommissionRate)

	resp, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: "X", CommissionRate: 0.12})
	require.NoError(t, err)
	assert.Equal(t, 0.12, resp.CommissionRate)
	assert.Equal(t, "12%", resp.CommissionRateDisplay)
}

func TestService_FindOrCreateByName(t *testing.T) {
	existing := &domain.Client{ID: 3, Name: "Iron Tour Ltd", CommissionRate: 0.2}
	repo := newFakeClientRepo(existing)
	svc := NewService(repo, &fakeBookingRepo{}, &fakeVenueRepo{}, noopLogger{})

	found, err := svc.FindOrCreateByName(context.Background(), "Iron Tour Ltd")
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.ID)
	assert.Equal(t, 0.2, found.CommissionRate)

	created, err := svc.FindOrCreateByName(context.Background(), "New Promoter")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, DefaultCommissionRate, created.CommissionRate)

	_, err = svc.FindOrCreateByName(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_Partial(t *testing.T) {
	repo := newFakeClientRepo(&domain.Client{ID: 3, Name: "Iron Tour Ltd", Contact: "a@b.c", CommissionRate: 0.1})
	svc := NewService(repo, &fakeBookingRepo{}, &fakeVenueRepo{}, noopLogger{})

	resp, err := svc.Update(context.Background(), 3, &models.UpdateClientRequest{
		CommissionRate: ptr.Ptr(0.25),
	})
	require.NoError(t, err)
	assert.Equal(t, "Iron Tour Ltd", resp.Name)
	assert.Equal(t, 0.25, resp.CommissionRate)
	assert.Equal(t, "25%", resp.CommissionRateDisplay)
}
