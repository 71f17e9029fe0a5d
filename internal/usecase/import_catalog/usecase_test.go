package import_catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeVenueRepo struct {
	venues map[string]*domain.Venue
	nextID int64
}

func newFakeVenueRepo(names ...string) *fakeVenueRepo {
	repo := &fakeVenueRepo{venues: make(map[string]*domain.Venue)}
	for _, name := range names {
		repo.nextID++
		repo.venues[name] = &domain.Venue{ID: repo.nextID, Name: name}
	}
	return repo
}

func (r *fakeVenueRepo) Create(_ context.Context, venue *domain.Venue) (*domain.Venue, error) {
	r.nextID++
	venue.ID = r.nextID
	r.venues[venue.Name] = venue
	return venue, nil
}

func (r *fakeVenueRepo) GetByName(_ context.Context, name string) (*domain.Venue, error) {
	v, ok := r.venues[name]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

type fakeEventRepo struct {
	events []*domain.Event
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	event.ID = int64(len(r.events) + 1)
	r.events = append(r.events, event)
	return event, nil
}

type fakeClientResolver struct {
	clients map[string]*domain.Client
	nextID  int64
}

func (r *fakeClientResolver) FindOrCreateByName(_ context.Context, name string) (*domain.Client, error) {
	if r.clients == nil {
		r.clients = make(map[string]*domain.Client)
	}
	if c, ok := r.clients[name]; ok {
		return c, nil
	}
	r.nextID++
	c := &domain.Client{ID: r.nextID, Name: name, CommissionRate: 0.10}
	r.clients[name] = c
	return c, nil
}

func TestUseCase_ImportVenues(t *testing.T) {
	venues := newFakeVenueRepo("Roundhouse")
	uc := NewUseCase(venues, &fakeEventRepo{}, &fakeClientResolver{}, passthroughTxManager{}, noopLogger{})

	csv := strings.Join([]string{
		"name,capacity,price_per_hour,category,venue_types",
		"Hammersmith Apollo,500,100,indoor,Gig;Comedy",
		"Roundhouse,400,80,INDOOR,Gig", // дубликат по имени
		"Broken Row,not-a-number,80,INDOOR,Gig",
		"Open Field,10000,200,OUTDOOR,Festival;festival;Gig",
	}, "\n")

	resp, err := uc.ImportVenues(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, 4, resp.Issues[0].Line)

	apollo := venues.venues["Hammersmith Apollo"]
	require.NotNil(t, apollo)
	assert.Equal(t, domain.CategoryIndoor, apollo.Category)
	assert.Equal(t, []string{"Gig", "Comedy"}, apollo.VenueTypes)

	// Дубли типов отброшены без учета регистра
	field := venues.venues["Open Field"]
	require.NotNil(t, field)
	assert.Equal(t, []string{"Festival", "Gig"}, field.VenueTypes)
}

func TestUseCase_ImportEvents(t *testing.T) {
	events := &fakeEventRepo{}
	clients := &fakeClientResolver{}
	uc := NewUseCase(newFakeVenueRepo(), events, clients, passthroughTxManager{}, noopLogger{})

	csv := strings.Join([]string{
		"name,artist,date,start_time,duration_hours,required_capacity,event_type,category,client_name",
		"Static Curse,Static Curse,15-6-26,8PM,3,300,Gig,INDOOR,Iron Tour Ltd",
		"Velvet Howl,Velvet Howl,16/06/2026,21:00,2,200,Gig,indoor,Iron Tour Ltd",
		"Night Owl,Night Owl,17-6-26,23:00,3,100,Gig,INDOOR,Iron Tour Ltd", // через полночь
		"Bad Date,X,yesterday,20:00,2,100,Gig,INDOOR,Iron Tour Ltd",
	}, "\n")

	resp, err := uc.ImportEvents(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Imported)
	assert.Len(t, resp.Issues, 2)

	require.Len(t, events.events, 2)
	first := events.events[0]
	assert.Equal(t, "Static Curse", first.Name)
	assert.Equal(t, "20:00", first.StartTime.String())
	assert.Equal(t, 2026, first.Date.Year())

	// Оба события отнесены к одному клиенту, заведённому один раз
	assert.Equal(t, events.events[0].ClientID, events.events[1].ClientID)
	assert.Len(t, clients.clients, 1)
}

func TestUseCase_ImportVenues_UnreadableFile(t *testing.T) {
	uc := NewUseCase(newFakeVenueRepo(), &fakeEventRepo{}, &fakeClientResolver{}, passthroughTxManager{}, noopLogger{})

	// Несбалансированные кавычки ломают CSV-ридер целиком
	_, err := uc.ImportVenues(context.Background(), strings.NewReader("name,capacity\n\"broken,1\nrow,2"))
	assert.ErrorIs(t, err, ErrUnreadableFile)
}
