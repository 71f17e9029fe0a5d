package imports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlko/GMA-BookingService/pkg/types"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"d-M-yy", "1-6-25", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"dd-MM-yy", "01-06-25", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"d/MM/yyyy", "1/06/2025", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"dd/MM/yyyy", "15/12/2025", time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), false},
		{"padded input", "  01-06-25 ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"iso not supported", "2025-06-01", time.Time{}, true},
		{"garbage", "first of june", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.TimeString
		wantErr bool
	}{
		{"24-hour", "20:00", types.TimeString("20:00"), false},
		{"24-hour morning", "08:30", types.TimeString("08:30"), false},
		{"12-hour evening", "8PM", types.TimeString("20:00"), false},
		{"12-hour lowercase", "8pm", types.TimeString("20:00"), false},
		{"12-hour with minutes", "8:30PM", types.TimeString("20:30"), false},
		{"12-hour with space", "8 PM", types.TimeString("20:00"), false},
		{"noon", "12PM", types.TimeString("12:00"), false},
		{"midnight", "12AM", types.TimeString("00:00"), false},
		{"garbage", "evening", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
