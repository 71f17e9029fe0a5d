package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status BookingStatus
		want   bool
	}{
		{"pending is valid", StatusPending, true},
		{"confirmed is valid", StatusConfirmed, true},
		{"cancelled is valid", StatusCancelled, true},
		{"unknown is invalid", BookingStatus("done"), false},
		{"empty is invalid", BookingStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestBooking_Transitions(t *testing.T) {
	tests := []struct {
		name         string
		status       BookingStatus
		canConfirm   bool
		canCancel    bool
		canUpdate    bool
		blocksWindow bool
	}{
		{"pending", StatusPending, true, true, true, false},
		{"confirmed", StatusConfirmed, false, true, true, true},
		{"cancelled is terminal", StatusCancelled, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.canUpdate, b.CanBeUpdated())
			assert.Equal(t, tt.blocksWindow, b.Blocks())
		})
	}
}

func TestVenue_SupportsEventType(t *testing.T) {
	v := &Venue{VenueTypes: []string{"Gig", "Festival"}}

	assert.True(t, v.SupportsEventType("Gig"))
	assert.True(t, v.SupportsEventType("gig"))
	assert.True(t, v.SupportsEventType("FESTIVAL"))
	assert.False(t, v.SupportsEventType("Conference"))
	assert.False(t, v.SupportsEventType(""))
}

func TestVenue_CategoryMatches(t *testing.T) {
	tests := []struct {
		name     string
		venue    VenueCategory
		event    VenueCategory
		expected bool
	}{
		{"indoor matches indoor", CategoryIndoor, CategoryIndoor, true},
		{"outdoor matches outdoor", CategoryOutdoor, CategoryOutdoor, true},
		{"indoor does not match outdoor", CategoryIndoor, CategoryOutdoor, false},
		{"convertible venue matches indoor event", CategoryConvertible, CategoryIndoor, true},
		{"convertible venue matches outdoor event", CategoryConvertible, CategoryOutdoor, true},
		{"convertible event needs convertible venue", CategoryIndoor, CategoryConvertible, false},
		{"convertible event with convertible venue", CategoryConvertible, CategoryConvertible, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Venue{Category: tt.venue}
			assert.Equal(t, tt.expected, v.CategoryMatches(tt.event))
		})
	}
}

func TestVenue_CanHost(t *testing.T) {
	v := &Venue{Capacity: 300}

	assert.True(t, v.CanHost(150))
	assert.True(t, v.CanHost(300))
	assert.False(t, v.CanHost(500))
}
