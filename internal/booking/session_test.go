package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"transroute/internal/shared/constants"
	"transroute/internal/trips"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Clients mirror the session into their own storage keyed by these
// exact JSON names; this test pins the contract.
func TestPurchaseSession_JSONContract(t *testing.T) {
	session := PurchaseSession{
		UserID: "u1",
		Step:   StepSelectingSeats,
		TripInfo: TripInfo{
			Origin:         "Orizaba",
			Destination:    "Zongolica",
			PassengerCount: 2,
		},
		SelectedSeats:     []int{7, 8},
		Passengers:        []SessionPassenger{{Name: "Ana", LastName: "Torres", Seat: 7}},
		Email:             "ana@example.com",
		PurchaseStartTime: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(&session)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{
		"userId", "step", "tripInfo", "selectedTrip",
		"selectedSeats", "passengers", "email", "purchaseStartTime",
	} {
		assert.Contains(t, raw, key)
	}

	var rawPassengers []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["passengers"], &rawPassengers))
	require.Len(t, rawPassengers, 1)
	for _, key := range []string{"name", "lastName", "seatNumber"} {
		assert.Contains(t, rawPassengers[0], key)
	}

	var roundTrip PurchaseSession
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, session, roundTrip)
}

func TestRedisSessionStore_SaveAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(client)

	session := &PurchaseSession{
		UserID:            "u1",
		Step:              StepSelectingSeats,
		SelectedTrip:      trips.TripOffer{RouteID: "r1"},
		SelectedSeats:     []int{},
		Passengers:        []SessionPassenger{},
		PurchaseStartTime: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	key := constants.BuildPurchaseSessionKey("u1")
	payload, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet(key, payload, PurchaseBudget).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), session, PurchaseBudget))

	mock.ExpectGet(key).SetVal(string(payload))
	got, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSessionStore_GetMissing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(client)

	mock.ExpectGet(constants.BuildPurchaseSessionKey("u1")).RedisNil()

	_, err := store.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestRedisSessionStore_SaveWithSpentBudgetDeletes(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(client)

	session := &PurchaseSession{UserID: "u1"}

	mock.ExpectDel(constants.BuildPurchaseSessionKey("u1")).SetVal(1)
	require.NoError(t, store.Save(context.Background(), session, 0))

	assert.NoError(t, mock.ExpectationsWereMet())
}
