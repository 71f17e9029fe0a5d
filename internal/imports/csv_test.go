package imports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/pkg/types"
)

func TestReadVenues(t *testing.T) {
	input := strings.Join([]string{
		"name,capacity,price_per_hour,category,venue_types",
		"The Roundhouse,300,100.50,INDOOR,Gig;Festival",
		"Riverside Field,5000,250,outdoor,Festival",
		"Broken Row,not-a-number,100,INDOOR,Gig",
		"No Types,100,50,INDOOR,",
	}, "\n")

	candidates, rowErrors, err := ReadVenues(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	require.Len(t, rowErrors, 2)

	first := candidates[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "The Roundhouse", first.Venue.Name)
	assert.Equal(t, 300, first.Venue.Capacity)
	assert.InDelta(t, 100.50, first.Venue.HirePricePerHour, 1e-9)
	assert.Equal(t, domain.CategoryIndoor, first.Venue.Category)
	assert.Equal(t, []string{"Gig", "Festival"}, first.Venue.VenueTypes)

	// Категория нормализуется к верхнему регистру
	assert.Equal(t, domain.CategoryOutdoor, candidates[1].Venue.Category)

	assert.Equal(t, 4, rowErrors[0].Line)
	assert.ErrorIs(t, rowErrors[0].Err, ErrInvalidRow)
	assert.Equal(t, 5, rowErrors[1].Line)
}

func TestReadVenues_DuplicateTypesCollapse(t *testing.T) {
	input := strings.Join([]string{
		"name,capacity,price_per_hour,category,venue_types",
		"Dup Hall,100,10,INDOOR,Gig;gig;GIG;Festival",
	}, "\n")

	candidates, rowErrors, err := ReadVenues(strings.NewReader(input))
	require.NoError(t, err)
	require.Empty(t, rowErrors)
	require.Len(t, candidates, 1)

	assert.Equal(t, []string{"Gig", "Festival"}, candidates[0].Venue.VenueTypes)
}

func TestReadEvents(t *testing.T) {
	input := strings.Join([]string{
		"name,artist,date,start_time,duration_hours,required_capacity,event_type,category,client_name",
		"Midnight Run Tour,The Strand,01-06-25,8PM,3,150,Gig,INDOOR,Harvest Talent",
		"Summer Fest,Various,15/12/2025,12:00,8,4000,Festival,OUTDOOR,Fest Co",
		"Bad Date,Nobody,sometime,8PM,2,100,Gig,INDOOR,Client",
	}, "\n")

	candidates, rowErrors, err := ReadEvents(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	require.Len(t, rowErrors, 1)

	first := candidates[0]
	assert.Equal(t, "Midnight Run Tour", first.Event.Name)
	assert.Equal(t, "The Strand", first.Event.Artist)
	assert.Equal(t, types.TimeString("20:00"), first.Event.StartTime)
	assert.Equal(t, 3, first.Event.DurationHours)
	assert.Equal(t, 150, first.Event.RequiredCapacity)
	assert.Equal(t, "Harvest Talent", first.ClientName)

	assert.Equal(t, 4, rowErrors[0].Line)
	assert.ErrorIs(t, rowErrors[0].Err, ErrInvalidDate)
}

func TestReadEvents_EmptyFile(t *testing.T) {
	candidates, rowErrors, err := ReadEvents(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.Empty(t, rowErrors)
}
