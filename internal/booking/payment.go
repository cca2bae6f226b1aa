package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// PaymentMethod is the instrument the traveler pays with
type PaymentMethod string

const (
	MethodCredit   PaymentMethod = "credit"
	MethodSaldoMax PaymentMethod = "saldo_max"
	MethodPayPal   PaymentMethod = "paypal"
)

func IsValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case MethodCredit, MethodSaldoMax, MethodPayPal:
		return true
	}
	return false
}

var ErrPaymentDeclined = errors.New("payment declined")

// SettlementResult is the gateway's answer to a charge attempt
type SettlementResult struct {
	Approved      bool          `json:"approved"`
	AuthCode      string        `json:"auth_code,omitempty"`
	Method        PaymentMethod `json:"method"`
	AmountCents   int64         `json:"amount_cents"`
	FailureReason string        `json:"failure_reason,omitempty"`
	SettledAt     time.Time     `json:"settled_at"`
}

// PaymentGateway charges cards. Settle blocks until the charge
// resolves or ctx is cancelled.
type PaymentGateway interface {
	Settle(ctx context.Context, method PaymentMethod, amountCents int64) (*SettlementResult, error)
}

// simulatedGateway approves every charge after a settlement delay, the
// stand-in for a real acquirer integration. DeclineRate above zero
// makes a fraction of charges fail, which tests use.
type simulatedGateway struct {
	clock       Clock
	delay       time.Duration
	declineRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// SimulatorOption tweaks the simulated gateway
type SimulatorOption func(*simulatedGateway)

// WithSettlementDelay overrides the default ~2s settlement time
func WithSettlementDelay(d time.Duration) SimulatorOption {
	return func(g *simulatedGateway) { g.delay = d }
}

// WithDeclineRate makes the given fraction of charges decline
func WithDeclineRate(rate float64) SimulatorOption {
	return func(g *simulatedGateway) { g.declineRate = rate }
}

func NewSimulatedGateway(clock Clock, opts ...SimulatorOption) PaymentGateway {
	g := &simulatedGateway{
		clock: clock,
		delay: 2 * time.Second,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *simulatedGateway) Settle(ctx context.Context, method PaymentMethod, amountCents int64) (*SettlementResult, error) {
	if !IsValidPaymentMethod(string(method)) {
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("invalid charge amount %d", amountCents)
	}

	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	result := &SettlementResult{
		Method:      method,
		AmountCents: amountCents,
		SettledAt:   g.clock.Now(),
	}

	if g.declineRate > 0 && g.roll() < g.declineRate {
		result.FailureReason = "issuer declined the charge"
		return result, nil
	}

	result.Approved = true
	result.AuthCode = g.authCode()
	return result, nil
}

func (g *simulatedGateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *simulatedGateway) authCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("AUTH-%06d", g.rng.Intn(1000000))
}
