package trips

import (
	"context"
	"math/rand"
	"sync"
)

const (
	// BusCapacity is the seat count of every coach in the fleet
	BusCapacity = 44

	minEstimatedSeats = 25
)

// SeatAvailabilityProvider reports how many seats remain on a route's
// next departure. The production implementation would ask the fleet
// inventory system; the default estimator stands in for it.
type SeatAvailabilityProvider interface {
	AvailableSeats(ctx context.Context, routeID string) (int, error)
}

// estimatedAvailability returns a stable pseudo-random count in
// [25, 44] per route, so repeated searches within a process agree.
type estimatedAvailability struct {
	mu    sync.Mutex
	rng   *rand.Rand
	known map[string]int
}

func NewEstimatedAvailability(seed int64) SeatAvailabilityProvider {
	return &estimatedAvailability{
		rng:   rand.New(rand.NewSource(seed)),
		known: make(map[string]int),
	}
}

func (e *estimatedAvailability) AvailableSeats(_ context.Context, routeID string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if seats, ok := e.known[routeID]; ok {
		return seats, nil
	}

	seats := minEstimatedSeats + e.rng.Intn(BusCapacity-minEstimatedSeats+1)
	e.known[routeID] = seats
	return seats, nil
}
