package venues

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	venueRepo "github.com/avlko/GMA-BookingService/internal/infra/storage/venue"
	"github.com/avlko/GMA-BookingService/internal/service/venues/models"
	"github.com/avlko/GMA-BookingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
	nextID int64
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{
		venues: make(map[int64]*domain.Venue),
		nextID: 1,
	}
}

func (r *fakeVenueRepo) Create(_ context.Context, venue *domain.Venue) (*domain.Venue, error) {
	created := *venue
	created.ID = r.nextID
	r.nextID++
	r.venues[created.ID] = &created
	return &created, nil
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	venue, ok := r.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	copied := *venue
	return &copied, nil
}

func (r *fakeVenueRepo) GetByName(_ context.Context, name string) (*domain.Venue, error) {
	for _, venue := range r.venues {
		if venue.Name == name {
			copied := *venue
			return &copied, nil
		}
	}
	return nil, venueRepo.ErrVenueNotFound
}

func (r *fakeVenueRepo) List(_ context.Context) ([]*domain.Venue, error) {
	out := make([]*domain.Venue, 0, len(r.venues))
	for _, venue := range r.venues {
		copied := *venue
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeVenueRepo) Update(_ context.Context, venue *domain.Venue) error {
	if _, ok := r.venues[venue.ID]; !ok {
		return venueRepo.ErrVenueNotFound
	}
	copied := *venue
	r.venues[venue.ID] = &copied
	return nil
}

func (r *fakeVenueRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.venues[id]; !ok {
		return venueRepo.ErrVenueNotFound
	}
	delete(r.venues, id)
	return nil
}

func TestService_Create(t *testing.T) {
	svc := NewService(newFakeVenueRepo(), noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateVenueRequest{
		Name:             "The Roundhouse",
		Capacity:         500,
		HirePricePerHour: 100,
		Category:         "indoor",
		VenueTypes:       []string{"Gig", "Festival"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "The Roundhouse", resp.Name)
	// Категория нормализуется к верхнему регистру
	assert.Equal(t, "INDOOR", resp.Category)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateVenueRequest
		wantErr error
	}{
		{
			name: "empty name",
			req: &models.CreateVenueRequest{
				Capacity: 100,
				Category: "INDOOR",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "zero capacity",
			req: &models.CreateVenueRequest{
				Name:     "Tiny Cellar",
				Category: "INDOOR",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "negative price",
			req: &models.CreateVenueRequest{
				Name:             "Tiny Cellar",
				Capacity:         80,
				HirePricePerHour: -1,
				Category:         "INDOOR",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown category",
			req: &models.CreateVenueRequest{
				Name:     "Tiny Cellar",
				Capacity: 80,
				Category: "UNDERWATER",
			},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeVenueRepo(), noopLogger{})

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Update_Partial(t *testing.T) {
	repo := newFakeVenueRepo()
	svc := NewService(repo, noopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateVenueRequest{
		Name:             "Apollo Hall",
		Capacity:         500,
		HirePricePerHour: 100,
		Category:         "INDOOR",
		VenueTypes:       []string{"Gig"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateVenueRequest{
		Capacity: ptr.Ptr(650),
	})
	require.NoError(t, err)

	assert.Equal(t, 650, updated.Capacity)
	// Остальные поля не тронуты
	assert.Equal(t, "Apollo Hall", updated.Name)
	assert.Equal(t, 100.0, updated.HirePricePerHour)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newFakeVenueRepo(), noopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateVenueRequest{
		Capacity: ptr.Ptr(100),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeVenueRepo()
	svc := NewService(repo, noopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateVenueRequest{
		Name:     "Apollo Hall",
		Capacity: 500,
		Category: "INDOOR",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrVenueNotFound)
}
