package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transroute/internal/shared/constants"
	"transroute/internal/trips"

	"github.com/redis/go-redis/v9"
)

var ErrNoActiveSession = errors.New("no active purchase session")

// TripInfo is the search context the traveler came from
type TripInfo struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	PassengerCount int    `json:"passengerCount"`
	TravelDate     string `json:"travelDate,omitempty"`
}

// SessionPassenger is one traveler on the booking being built
type SessionPassenger struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Seat     int    `json:"seatNumber"`
}

// PurchaseSession is the in-flight booking for one user. The JSON field
// names are a stable contract with clients that mirror the session into
// their own storage; renaming them breaks resume-after-reload.
type PurchaseSession struct {
	UserID            string             `json:"userId"`
	Step              Step               `json:"step"`
	TripInfo          TripInfo           `json:"tripInfo"`
	SelectedTrip      trips.TripOffer    `json:"selectedTrip"`
	SelectedSeats     []int              `json:"selectedSeats"`
	Passengers        []SessionPassenger `json:"passengers"`
	Email             string             `json:"email"`
	PurchaseStartTime time.Time          `json:"purchaseStartTime"`
}

// Remaining returns the unexpired part of the session's purchase budget
func (s *PurchaseSession) Remaining(now time.Time) time.Duration {
	return Remaining(s.PurchaseStartTime, now)
}

// SessionStore persists purchase sessions. A user has at most one
// in-flight session at a time.
type SessionStore interface {
	Get(ctx context.Context, userID string) (*PurchaseSession, error)
	Save(ctx context.Context, session *PurchaseSession, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}

// redisSessionStore keeps sessions in Redis with the purchase budget as
// the key TTL, so expiry doubles as authoritative teardown.
type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (r *redisSessionStore) Get(ctx context.Context, userID string) (*PurchaseSession, error) {
	key := constants.BuildPurchaseSessionKey(userID)

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to load purchase session: %w", err)
	}

	var session PurchaseSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode purchase session: %w", err)
	}

	return &session, nil
}

func (r *redisSessionStore) Save(ctx context.Context, session *PurchaseSession, ttl time.Duration) error {
	if ttl <= 0 {
		return r.Delete(ctx, session.UserID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode purchase session: %w", err)
	}

	key := constants.BuildPurchaseSessionKey(session.UserID)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save purchase session: %w", err)
	}

	return nil
}

func (r *redisSessionStore) Delete(ctx context.Context, userID string) error {
	key := constants.BuildPurchaseSessionKey(userID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete purchase session: %w", err)
	}
	return nil
}
