package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"transroute/internal/trips"
	"transroute/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memSessionStore struct {
	sessions map[string]*PurchaseSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*PurchaseSession)}
}

func (m *memSessionStore) Get(_ context.Context, userID string) (*PurchaseSession, error) {
	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	copied := *session
	return &copied, nil
}

func (m *memSessionStore) Save(_ context.Context, session *PurchaseSession, ttl time.Duration) error {
	if ttl <= 0 {
		delete(m.sessions, session.UserID)
		return nil
	}
	copied := *session
	m.sessions[session.UserID] = &copied
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, userID string) error {
	delete(m.sessions, userID)
	return nil
}

type memRepository struct {
	bookings map[uuid.UUID]*Booking
}

func newMemRepository() *memRepository {
	return &memRepository{bookings: make(map[uuid.UUID]*Booking)}
}

func (r *memRepository) Create(_ context.Context, booking *Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (r *memRepository) GetByFolio(_ context.Context, folio string) (*Booking, error) {
	for _, booking := range r.bookings {
		if booking.Folio == folio {
			return booking, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *memRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]Booking, error) {
	var out []Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (r *memRepository) UpdateStatus(_ context.Context, id uuid.UUID, status BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

type stubTrips struct {
	offer trips.TripOffer
}

func (s *stubTrips) Search(context.Context, string, string) ([]trips.TripOffer, error) {
	return []trips.TripOffer{s.offer}, nil
}

func (s *stubTrips) GetByRouteID(context.Context, string) (*trips.TripOffer, error) {
	offer := s.offer
	return &offer, nil
}

// passCache skips caching entirely: every read goes to the fetcher.
type passCache struct{}

func (passCache) Get(context.Context, string, interface{}) error        { return nil }
func (passCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (passCache) Delete(context.Context, string) error                  { return nil }
func (passCache) DeletePattern(context.Context, string) error           { return nil }
func (passCache) Exists(context.Context, string) bool                   { return false }
func (passCache) Ping(context.Context) error                            { return nil }

func (passCache) GetOrSet(_ context.Context, _ string, _ time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	value, err := fetcher()
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

type recordingNotifier struct {
	completed []*Booking
}

func (n *recordingNotifier) BookingCompleted(_ context.Context, booking *Booking) {
	n.completed = append(n.completed, booking)
}

// --- harness ---

type flowHarness struct {
	svc      Service
	clock    *fakeClock
	store    *memSessionStore
	repo     *memRepository
	notifier *recordingNotifier
	userID   string
}

func newFlowHarness(t *testing.T, gatewayOpts ...SimulatorOption) *flowHarness {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)}
	store := newMemSessionStore()
	repo := newMemRepository()
	notifier := &recordingNotifier{}

	offer := trips.TripOffer{
		RouteID:        uuid.NewString(),
		Origin:         "Orizaba",
		Destination:    "Zongolica",
		DepartureTime:  "09:00",
		ArrivalTime:    "10:15",
		Duration:       "1h 15m",
		PriceCents:     4000,
		Price:          40.00,
		ServiceType:    "Rápido",
		AvailableSeats: 30,
	}

	opts := append([]SimulatorOption{WithSettlementDelay(0)}, gatewayOpts...)
	gateway := NewSimulatedGateway(clock, opts...)

	svc := NewService(store, repo, &stubTrips{offer: offer}, gateway, clock, passCache{}, notifier, logger.New())

	return &flowHarness{
		svc:      svc,
		clock:    clock,
		store:    store,
		repo:     repo,
		notifier: notifier,
		userID:   uuid.NewString(),
	}
}

func (h *flowHarness) start(t *testing.T, passengers int) *SessionResponse {
	t.Helper()
	resp, err := h.svc.Start(context.Background(), h.userID, &StartPurchaseRequest{
		RouteID: uuid.NewString(),
		TripInfo: TripInfo{
			Origin:         "Orizaba",
			Destination:    "Zongolica",
			PassengerCount: passengers,
			TravelDate:     "2026-03-20",
		},
	})
	require.NoError(t, err)
	return resp
}

func (h *flowHarness) toConfirming(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Seats: []int{20, 21}, Continue: true})
	require.NoError(t, err)

	_, err = h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers: []PassengerInput{
			{Name: "Ana", LastName: "Torres"},
			{Name: "Luis", LastName: "Vega"},
		},
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@example.com",
		TermsAccepted: true,
	})
	require.NoError(t, err)
}

// --- tests ---

func TestFlow_HappyPath(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	resp := h.start(t, 2)
	assert.Equal(t, StepSelectingSeats, resp.Session.Step)
	assert.Equal(t, int(PurchaseBudget.Seconds()), resp.RemainingSeconds)
	require.NotNil(t, resp.SeatMap)

	h.toConfirming(t)

	session, err := h.svc.GetSession(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, StepConfirming, session.Session.Step)
	assert.Equal(t, []SessionPassenger{
		{Name: "Ana", LastName: "Torres", Seat: 20},
		{Name: "Luis", LastName: "Vega", Seat: 21},
	}, session.Session.Passengers)

	_, err = h.svc.Confirm(ctx, h.userID)
	require.NoError(t, err)

	booking, err := h.svc.Pay(ctx, h.userID, &PayRequest{Method: "credit"})
	require.NoError(t, err)

	assert.Equal(t, 126.80, booking.Total)
	assert.Regexp(t, `^ADS[0-9A-Z]{9}$`, booking.Folio)
	assert.Equal(t, string(StatusConfirmed), booking.Status)
	assert.Len(t, booking.Passengers, 2)

	// The session is gone once the purchase settles
	_, err = h.svc.GetSession(ctx, h.userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	require.Len(t, h.notifier.completed, 1)
	assert.Equal(t, booking.Folio, h.notifier.completed[0].Folio)
}

func TestFlow_DeepLinkWithoutSession(t *testing.T) {
	h := newFlowHarness(t)

	_, err := h.svc.GetSession(context.Background(), h.userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = h.svc.Pay(context.Background(), h.userID, &PayRequest{Method: "credit"})
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestFlow_ExpiryAbortsOnResume(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	h.clock.Advance(301 * time.Second)

	_, err := h.svc.GetSession(ctx, h.userID)
	assert.ErrorIs(t, err, ErrPurchaseExpired)

	// Teardown already happened; the next resume sees no session at all
	_, err = h.svc.GetSession(ctx, h.userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestFlow_ExpiryGuardsEveryStep(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	h.toConfirming(t)
	_, err := h.svc.Confirm(ctx, h.userID)
	require.NoError(t, err)

	h.clock.Advance(PurchaseBudget + time.Second)

	_, err = h.svc.Pay(ctx, h.userID, &PayRequest{Method: "credit"})
	assert.ErrorIs(t, err, ErrPurchaseExpired)
	assert.Empty(t, h.repo.bookings)
}

func TestFlow_StepGuards(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)

	// Cannot pay or register passengers while still selecting seats
	_, err := h.svc.Pay(ctx, h.userID, &PayRequest{Method: "credit"})
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers: []PassengerInput{
			{Name: "Ana", LastName: "Torres"},
			{Name: "Luis", LastName: "Vega"},
		},
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@example.com",
		TermsAccepted: true,
	})
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = h.svc.Confirm(ctx, h.userID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestFlow_SeatToggleAndContinueGuard(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)

	seat := 20
	resp, err := h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Toggle: &seat})
	require.NoError(t, err)
	assert.Equal(t, []int{20}, resp.Session.SelectedSeats)

	// A partial replacement selection is accepted as long as the
	// traveler does not continue
	resp, err = h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Seats: []int{20}})
	require.NoError(t, err)
	assert.Equal(t, StepSelectingSeats, resp.Session.Step)

	// Continue with an incomplete selection is rejected
	_, err = h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Seats: []int{20}, Continue: true})
	assert.ErrorIs(t, err, ErrSelectionPending)

	// Toggling the same seat off again
	resp, err = h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Toggle: &seat})
	require.NoError(t, err)
	assert.Empty(t, resp.Session.SelectedSeats)
}

func TestFlow_DeclineKeepsSessionAlive(t *testing.T) {
	h := newFlowHarness(t, WithDeclineRate(1))
	ctx := context.Background()

	h.start(t, 2)
	h.toConfirming(t)
	_, err := h.svc.Confirm(ctx, h.userID)
	require.NoError(t, err)

	_, err = h.svc.Pay(ctx, h.userID, &PayRequest{Method: "credit"})
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	// Still in the paying step, ready for another attempt
	session, err := h.svc.GetSession(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, StepPaying, session.Session.Step)
	assert.Empty(t, h.repo.bookings)
	assert.Empty(t, h.notifier.completed)
}

func TestFlow_CancelClearsSession(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	require.NoError(t, h.svc.Cancel(ctx, h.userID))

	_, err := h.svc.GetSession(ctx, h.userID)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// Cancel with nothing in flight reports the missing session
	assert.ErrorIs(t, h.svc.Cancel(ctx, h.userID), ErrNoActiveSession)
}

func TestFlow_FreshSessionReplacesOldOne(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	h.toConfirming(t)

	h.clock.Advance(4 * time.Minute)

	// Starting over resets the step, the selection and the budget
	resp := h.start(t, 1)
	assert.Equal(t, StepSelectingSeats, resp.Session.Step)
	assert.Empty(t, resp.Session.SelectedSeats)
	assert.Empty(t, resp.Session.Passengers)
	assert.Equal(t, int(PurchaseBudget.Seconds()), resp.RemainingSeconds)

	session, err := h.svc.GetSession(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Session.TripInfo.PassengerCount)
}

func TestFlow_PassengerCountMustMatchSeats(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	_, err := h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Seats: []int{20, 21}, Continue: true})
	require.NoError(t, err)

	_, err = h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers:    []PassengerInput{{Name: "Ana", LastName: "Torres"}},
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@example.com",
		TermsAccepted: true,
	})
	assert.ErrorIs(t, err, ErrPassengerCount)
}

func TestFlow_RegistrationGuards(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	_, err := h.svc.UpdateSeats(ctx, h.userID, &UpdateSeatsRequest{Seats: []int{20, 21}, Continue: true})
	require.NoError(t, err)

	passengers := []PassengerInput{
		{Name: "Ana", LastName: "Torres"},
		{Name: "Luis", LastName: "Vega"},
	}

	// The confirmation email must match exactly
	_, err = h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers:    passengers,
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@exampel.com",
		TermsAccepted: true,
	})
	assert.ErrorIs(t, err, ErrEmailMismatch)

	// Terms must be accepted
	_, err = h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers:    passengers,
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@example.com",
		TermsAccepted: false,
	})
	assert.ErrorIs(t, err, ErrTermsNotAccepted)

	// Every passenger needs both name fields
	_, err = h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers: []PassengerInput{
			{Name: "Ana", LastName: "Torres"},
			{Name: "Luis", LastName: "  "},
		},
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@example.com",
		TermsAccepted: true,
	})
	assert.ErrorIs(t, err, ErrPassengerName)

	// A rejected registration leaves the step untouched
	session, err := h.svc.GetSession(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, StepRegisteringPassengers, session.Session.Step)

	// With both guards satisfied the flow moves on
	resp, err := h.svc.RegisterPassengers(ctx, h.userID, &RegisterPassengersRequest{
		Passengers:    passengers,
		Email:         "ana@example.com",
		ConfirmEmail:  "ana@example.com",
		TermsAccepted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, StepConfirming, resp.Session.Step)
}

func TestFlow_GetBookingOwnership(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	h.toConfirming(t)
	_, err := h.svc.Confirm(ctx, h.userID)
	require.NoError(t, err)
	paid, err := h.svc.Pay(ctx, h.userID, &PayRequest{Method: "paypal"})
	require.NoError(t, err)

	bookingID := uuid.MustParse(paid.ID)

	got, err := h.svc.GetBooking(ctx, h.userID, bookingID)
	require.NoError(t, err)
	assert.Equal(t, paid.Folio, got.Folio)

	// Another user cannot read it
	_, err = h.svc.GetBooking(ctx, uuid.NewString(), bookingID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestFlow_CancelBooking(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	h.start(t, 2)
	h.toConfirming(t)
	_, err := h.svc.Confirm(ctx, h.userID)
	require.NoError(t, err)
	paid, err := h.svc.Pay(ctx, h.userID, &PayRequest{Method: "credit"})
	require.NoError(t, err)

	bookingID := uuid.MustParse(paid.ID)
	require.NoError(t, h.svc.CancelBooking(ctx, bookingID))

	got, err := h.svc.GetBooking(ctx, h.userID, bookingID)
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), got.Status)

	// Unknown bookings are reported, not silently ignored
	err = h.svc.CancelBooking(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
