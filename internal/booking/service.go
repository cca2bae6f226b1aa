package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"transroute/internal/shared/constants"
	"transroute/internal/tickets"
	"transroute/internal/trips"
	"transroute/pkg/cache"
	"transroute/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrPurchaseExpired  = errors.New("purchase window expired")
	ErrInvalidStep      = errors.New("operation not allowed in current step")
	ErrSelectionPending = errors.New("seat selection incomplete")
	ErrPassengerCount   = errors.New("one passenger per selected seat required")
	ErrPassengerName    = errors.New("passenger name and last name are required")
	ErrEmailMismatch    = errors.New("email confirmation does not match")
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")
)

// Notifier is told about settled bookings so tickets can be delivered.
// Implementations must not block the purchase path.
type Notifier interface {
	BookingCompleted(ctx context.Context, booking *Booking)
}

type Service interface {
	Start(ctx context.Context, userID string, req *StartPurchaseRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, userID string) (*SessionResponse, error)
	UpdateSeats(ctx context.Context, userID string, req *UpdateSeatsRequest) (*SessionResponse, error)
	RegisterPassengers(ctx context.Context, userID string, req *RegisterPassengersRequest) (*SessionResponse, error)
	Confirm(ctx context.Context, userID string) (*SessionResponse, error)
	Pay(ctx context.Context, userID string, req *PayRequest) (*BookingResponse, error)
	Cancel(ctx context.Context, userID string) error

	GetBooking(ctx context.Context, userID string, bookingID uuid.UUID) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
}

type service struct {
	sessions SessionStore
	repo     Repository
	trips    trips.Service
	gateway  PaymentGateway
	clock    Clock
	cache    cache.Service
	notifier Notifier
	log      *logger.Logger

	// Serializes events per user so a timer expiry and a user action
	// cannot interleave mid-transition. Redis holds the state; this
	// only funnels access within the process.
	userLocks sync.Map
}

func NewService(
	sessions SessionStore,
	repo Repository,
	tripService trips.Service,
	gateway PaymentGateway,
	clock Clock,
	cacheService cache.Service,
	notifier Notifier,
	log *logger.Logger,
) Service {
	return &service{
		sessions: sessions,
		repo:     repo,
		trips:    tripService,
		gateway:  gateway,
		clock:    clock,
		cache:    cacheService,
		notifier: notifier,
		log:      log,
	}
}

func (s *service) lockUser(userID string) func() {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Start opens a fresh purchase session. Any session the user already
// had is discarded; the budget never carries over between purchases.
func (s *service) Start(ctx context.Context, userID string, req *StartPurchaseRequest) (*SessionResponse, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	offer, err := s.trips.GetByRouteID(ctx, req.RouteID)
	if err != nil {
		return nil, err
	}

	if req.TripInfo.PassengerCount < 1 {
		return nil, fmt.Errorf("passenger count must be at least 1")
	}
	if req.TripInfo.PassengerCount > offer.AvailableSeats {
		return nil, fmt.Errorf("only %d seats available", offer.AvailableSeats)
	}

	session := &PurchaseSession{
		UserID:            userID,
		Step:              StepSelectingSeats,
		TripInfo:          req.TripInfo,
		SelectedTrip:      *offer,
		SelectedSeats:     []int{},
		Passengers:        []SessionPassenger{},
		PurchaseStartTime: s.clock.Now(),
	}

	if err := s.sessions.Save(ctx, session, PurchaseBudget); err != nil {
		return nil, err
	}

	s.log.LogPurchaseStarted(ctx, userID, req.RouteID)
	return s.toSessionResponse(session), nil
}

// GetSession resumes an in-flight purchase. An expired session is torn
// down on sight rather than handed back.
func (s *service) GetSession(ctx context.Context, userID string) (*SessionResponse, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.loadLiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.toSessionResponse(session), nil
}

func (s *service) UpdateSeats(ctx context.Context, userID string, req *UpdateSeatsRequest) (*SessionResponse, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.loadLiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if session.Step != StepSelectingSeats {
		return nil, ErrInvalidStep
	}

	seatMap, err := NewSeatMap(session.SelectedTrip.AvailableSeats)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Toggle != nil:
		selection, err := seatMap.Toggle(session.SelectedSeats, *req.Toggle, session.TripInfo.PassengerCount)
		if err != nil {
			return nil, err
		}
		session.SelectedSeats = selection

	case req.Seats != nil:
		if err := seatMap.ValidateSelection(req.Seats, session.TripInfo.PassengerCount); err != nil {
			return nil, err
		}
		session.SelectedSeats = req.Seats

	default:
		return nil, fmt.Errorf("either seats or toggle must be provided")
	}

	// The step only advances on an explicit continue with a full selection
	if req.Continue {
		if len(session.SelectedSeats) != session.TripInfo.PassengerCount {
			return nil, ErrSelectionPending
		}
		session.Step = StepRegisteringPassengers
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return s.toSessionResponse(session), nil
}

func (s *service) RegisterPassengers(ctx context.Context, userID string, req *RegisterPassengersRequest) (*SessionResponse, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.loadLiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if session.Step != StepRegisteringPassengers {
		return nil, ErrInvalidStep
	}

	if len(req.Passengers) != len(session.SelectedSeats) {
		return nil, ErrPassengerCount
	}

	if req.Email != req.ConfirmEmail {
		return nil, ErrEmailMismatch
	}
	if !req.TermsAccepted {
		return nil, ErrTermsNotAccepted
	}

	// Passengers take seats in selection order
	passengers := make([]SessionPassenger, len(req.Passengers))
	for i, p := range req.Passengers {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.LastName) == "" {
			return nil, ErrPassengerName
		}
		passengers[i] = SessionPassenger{
			Name:     p.Name,
			LastName: p.LastName,
			Seat:     session.SelectedSeats[i],
		}
	}

	session.Passengers = passengers
	session.Email = req.Email
	session.Step = StepConfirming

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return s.toSessionResponse(session), nil
}

func (s *service) Confirm(ctx context.Context, userID string) (*SessionResponse, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.loadLiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if session.Step != StepConfirming {
		return nil, ErrInvalidStep
	}

	session.Step = StepPaying

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return s.toSessionResponse(session), nil
}

// Pay runs settlement. The window must be open when the charge starts;
// once the gateway is called the attempt runs to completion. A decline
// keeps the session alive in the paying step for another attempt.
func (s *service) Pay(ctx context.Context, userID string, req *PayRequest) (*BookingResponse, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.loadLiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if session.Step != StepPaying {
		return nil, ErrInvalidStep
	}

	if !IsValidPaymentMethod(req.Method) {
		return nil, fmt.Errorf("unsupported payment method %q", req.Method)
	}

	price := ComputePrice(session.SelectedTrip.PriceCents, len(session.Passengers))

	result, err := s.gateway.Settle(ctx, PaymentMethod(req.Method), price.TotalCents)
	if err != nil {
		return nil, fmt.Errorf("settlement failed: %w", err)
	}

	if !result.Approved {
		if saveErr := s.save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.FailureReason)
	}

	booking, err := s.persistBooking(ctx, session, price, result)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, userID); err != nil {
		s.log.ErrorWithContext(ctx, "failed to clear settled session", err, map[string]interface{}{"user_id": userID})
	}

	s.invalidateUserBookings(ctx, userID)

	if s.notifier != nil {
		s.notifier.BookingCompleted(ctx, booking)
	}

	s.log.LogPurchaseCompleted(ctx, booking.ID.String(), booking.Folio, userID)

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *service) Cancel(ctx context.Context, userID string) error {
	unlock := s.lockUser(userID)
	defer unlock()

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return err
	}

	if session.Step.Terminal() {
		return ErrInvalidStep
	}

	if err := s.sessions.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.LogPurchaseAborted(ctx, userID, "cancelled")
	return nil
}

func (s *service) GetBooking(ctx context.Context, userID string, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Bookings are private to their owner
	if booking.UserID.String() != userID {
		return nil, ErrBookingNotFound
	}

	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID string) ([]BookingResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	var resp []BookingResponse
	cacheKey := constants.CACHE_KEY_USER_BOOKINGS + userID

	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_USER_BOOKINGS, func() (interface{}, error) {
		bookings, err := s.repo.GetByUserID(ctx, uid)
		if err != nil {
			return nil, err
		}
		return toBookingResponses(bookings), nil
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// CancelBooking voids a settled booking. This is an operator action,
// used when a corrida is suspended or a refund is issued at the
// counter; the booking row stays for the sales record.
func (s *service) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, StatusCancelled); err != nil {
		return err
	}

	s.invalidateUserBookings(ctx, booking.UserID.String())
	return nil
}

// loadLiveSession fetches the session and enforces the purchase budget:
// an expired session aborts immediately, before any event is processed.
func (s *service) loadLiveSession(ctx context.Context, userID string) (*PurchaseSession, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if Expired(session.PurchaseStartTime, s.clock.Now()) {
		if err := s.sessions.Delete(ctx, userID); err != nil {
			s.log.ErrorWithContext(ctx, "failed to clear expired session", err, map[string]interface{}{"user_id": userID})
		}
		s.log.LogPurchaseAborted(ctx, userID, "expired")
		return nil, ErrPurchaseExpired
	}

	return session, nil
}

func (s *service) save(ctx context.Context, session *PurchaseSession) error {
	return s.sessions.Save(ctx, session, session.Remaining(s.clock.Now()))
}

func (s *service) persistBooking(ctx context.Context, session *PurchaseSession, price PriceBreakdown, result *SettlementResult) (*Booking, error) {
	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	routeID, err := uuid.Parse(session.SelectedTrip.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route id: %w", err)
	}

	booking := &Booking{
		Folio:           tickets.GenerateFolio(),
		UserID:          userID,
		RouteID:         routeID,
		Origin:          session.SelectedTrip.Origin,
		Destination:     session.SelectedTrip.Destination,
		DepartureTime:   session.SelectedTrip.DepartureTime,
		ArrivalTime:     session.SelectedTrip.ArrivalTime,
		ServiceType:     session.SelectedTrip.ServiceType,
		TravelDate:      session.TripInfo.TravelDate,
		Email:           session.Email,
		SubtotalCents:   price.SubtotalCents,
		TaxCents:        price.TaxCents,
		AssistanceCents: price.AssistanceCents,
		TotalCents:      price.TotalCents,
		PaymentMethod:   string(result.Method),
		PaymentAuthCode: result.AuthCode,
		Status:          StatusConfirmed,
	}

	for _, p := range session.Passengers {
		booking.Passengers = append(booking.Passengers, Passenger{
			Name:       p.Name,
			LastName:   p.LastName,
			SeatNumber: p.Seat,
		})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *service) invalidateUserBookings(ctx context.Context, userID string) {
	pattern := constants.PATTERN_INVALIDATE_BOOKINGS_USER + userID + "*"
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.log.ErrorWithContext(ctx, "failed to invalidate bookings cache", err, map[string]interface{}{"user_id": userID})
	}
}

func (s *service) toSessionResponse(session *PurchaseSession) *SessionResponse {
	remaining := session.Remaining(s.clock.Now())

	resp := &SessionResponse{
		Session:          session,
		RemainingSeconds: int(remaining.Seconds()),
	}

	if len(session.SelectedSeats) > 0 || session.Step != StepSelectingSeats {
		price := ComputePrice(session.SelectedTrip.PriceCents, session.TripInfo.PassengerCount)
		resp.Price = &price
	}

	if seatMap, err := NewSeatMap(session.SelectedTrip.AvailableSeats); err == nil {
		resp.SeatMap = seatMap.Layout(session.SelectedSeats)
	}

	return resp
}
