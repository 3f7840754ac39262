// Package payment defines the external payout capability the
// withdrawal wizard depends on. The gateway is an interface so the
// always-failing simulation shipped here is an injected double, not
// control flow baked into the state machine; a real processor can be
// substituted without touching the wizard.
package payment

import (
	"context"
	"errors"
	"time"

	"shippy/internal/types"
)

// Support contact surfaced on the failure screen.
const (
	SupportEmail = "support@shippy.com"
	SupportPhone = "+91 9876543210"
)

// ErrUnavailable is returned when the payout backend cannot be
// reached. The simulated gateway returns it unconditionally.
var ErrUnavailable = errors.New("unable to connect to payment server")

// Receipt describes a completed payout.
type Receipt struct {
	Reference   string
	Amount      float64
	Method      types.WithdrawalMethod
	ProcessedAt time.Time
}

// Gateway submits a withdrawal request to an external processor.
type Gateway interface {
	Submit(ctx context.Context, req types.WithdrawalRequest) (*Receipt, error)
}

// SimulatedGateway mimics a backend round-trip that always times out:
// it holds the request for a fixed delay, then fails. No retry is
// attempted and no request ever leaves the process.
type SimulatedGateway struct {
	delay time.Duration
}

// NewSimulatedGateway returns a gateway that fails every submission
// after the given delay.
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

// Submit waits out the simulated round-trip and returns
// ErrUnavailable. Context cancellation cuts the wait short.
func (g *SimulatedGateway) Submit(ctx context.Context, req types.WithdrawalRequest) (*Receipt, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil, ErrUnavailable
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
