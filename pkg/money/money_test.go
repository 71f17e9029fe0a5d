package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"already rounded", 330.00, 330.00},
		{"round down", 29.994, 29.99},
		{"round up", 29.995, 30.00},
		{"negative", -1.005, -1.0},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.input), 1e-9)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$330.00", FormatAmount(330))
	assert.Equal(t, "$0.00", FormatAmount(0))
	assert.Equal(t, "$99.90", FormatAmount(99.899))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "10%", FormatRate(0.10))
	assert.Equal(t, "12.5%", FormatRate(0.125))
	assert.Equal(t, "0%", FormatRate(0))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1 booking", FormatQuantity(1, "booking"))
	assert.Equal(t, "3 bookings", FormatQuantity(3, "booking"))
	assert.Equal(t, "0 bookings", FormatQuantity(0, "booking"))
}
