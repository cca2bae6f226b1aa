package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, PurchaseBudget, Remaining(start, start))
	assert.Equal(t, 4*time.Minute, Remaining(start, start.Add(time.Minute)))
	assert.Equal(t, time.Duration(0), Remaining(start, start.Add(PurchaseBudget)))

	// A stale session never yields a negative remainder
	assert.Equal(t, time.Duration(0), Remaining(start, start.Add(301*time.Second)))
	assert.Equal(t, time.Duration(0), Remaining(start, start.Add(time.Hour)))
}

func TestRemaining_ShrinksMonotonically(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	prev := Remaining(start, start)
	for elapsed := 10 * time.Second; elapsed <= 6*time.Minute; elapsed += 10 * time.Second {
		cur := Remaining(start, start.Add(elapsed))
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestExpired(t *testing.T) {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	assert.False(t, Expired(start, start))
	assert.False(t, Expired(start, start.Add(PurchaseBudget-time.Second)))
	assert.True(t, Expired(start, start.Add(PurchaseBudget)))
	assert.True(t, Expired(start, start.Add(301*time.Second)))
}
