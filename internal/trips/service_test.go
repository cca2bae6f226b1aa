package trips

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		departure string
		arrival   string
		want      string
	}{
		{"09:00", "11:30", "2h 30m"},
		{"09:00", "09:45", "45m"},
		{"09:00", "12:00", "3h"},
		{"06:00", "07:30", "1h 30m"},
		// Overnight run wraps past midnight
		{"22:30", "00:15", "1h 45m"},
		{"23:00", "05:00", "6h"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.departure, tc.arrival),
			"%s -> %s", tc.departure, tc.arrival)
	}
}

func TestFormatDuration_InvalidInput(t *testing.T) {
	assert.Equal(t, "", FormatDuration("not-a-time", "10:00"))
	assert.Equal(t, "", FormatDuration("10:00", "25:99"))
}

func TestEstimatedAvailability_Bounds(t *testing.T) {
	provider := NewEstimatedAvailability(1)

	for i := 0; i < 200; i++ {
		seats, err := provider.AvailableSeats(context.Background(), string(rune('a'+i%26))+string(rune('0'+i/26)))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, seats, 25)
		assert.LessOrEqual(t, seats, BusCapacity)
	}
}

func TestEstimatedAvailability_StablePerRoute(t *testing.T) {
	provider := NewEstimatedAvailability(42)

	first, err := provider.AvailableSeats(context.Background(), "route-1")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := provider.AvailableSeats(context.Background(), "route-1")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
