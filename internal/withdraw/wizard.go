// Package withdraw implements the withdrawal wizard state machine:
// amount entry, method/detail entry, a gateway round-trip, and a
// terminal failure screen. The machine owns no timers and performs no
// I/O itself; the view layer drives the gateway call and feeds the
// result back, so the whole flow is testable synchronously.
package withdraw

import (
	"shippy/internal/logging"
	"shippy/internal/payment"
	"shippy/internal/types"
)

// State is the wizard's position in its linear flow.
type State int

const (
	// StateAmountEntry is the initial state: the user enters how much
	// to withdraw.
	StateAmountEntry State = iota

	// StateMethodEntry collects the payout method and its details.
	StateMethodEntry

	// StateProcessing means the gateway call is in flight. The wizard
	// cannot be cancelled from here; the request runs to completion.
	StateProcessing

	// StateFailed is the terminal failure screen. There is no success
	// state: every completion lands here.
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAmountEntry:
		return "amount-entry"
	case StateMethodEntry:
		return "method-entry"
	case StateProcessing:
		return "processing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Wizard is one modal session of the withdrawal flow. The request it
// assembles is transient: it is discarded on close, cancel or failure
// and never persisted or logged.
type Wizard struct {
	state     State
	req       types.WithdrawalRequest
	gateway   payment.Gateway
	available float64
	err       error
	log       *logging.Logger
}

// New opens a wizard session against the given gateway. available is
// the total earnings balance captured when the modal opens; it caps
// the amount the guard will accept.
func New(gw payment.Gateway, available float64) *Wizard {
	return &Wizard{
		state:     StateAmountEntry,
		req:       types.WithdrawalRequest{Method: types.MethodBank},
		gateway:   gw,
		available: available,
		log:       logging.Get(logging.CategoryWithdraw),
	}
}

// State returns the current state.
func (w *Wizard) State() State {
	return w.state
}

// Request returns the in-progress request for the detail forms to
// fill in. Detail fields are never validated.
func (w *Wizard) Request() *types.WithdrawalRequest {
	return &w.req
}

// Available returns the balance captured at open.
func (w *Wizard) Available() float64 {
	return w.available
}

// Err returns the gateway error after a failed submission.
func (w *Wizard) Err() error {
	return w.err
}

// Gateway returns the injected payout gateway.
func (w *Wizard) Gateway() payment.Gateway {
	return w.gateway
}

// CanSubmitAmount reports whether the amount guard would pass. The
// view uses it to disable the continue action.
func (w *Wizard) CanSubmitAmount() bool {
	return w.req.Amount > 0 && w.req.Amount <= w.available
}

// SubmitAmount advances AmountEntry to MethodEntry when the amount is
// positive and within the available balance. A violating amount leaves
// the state unchanged; there is no separate error state.
func (w *Wizard) SubmitAmount() bool {
	if w.state != StateAmountEntry || !w.CanSubmitAmount() {
		return false
	}
	w.state = StateMethodEntry
	w.log.Debug("amount accepted: %.2f of %.2f", w.req.Amount, w.available)
	return true
}

// Back returns from MethodEntry to AmountEntry.
func (w *Wizard) Back() bool {
	if w.state != StateMethodEntry {
		return false
	}
	w.state = StateAmountEntry
	return true
}

// BeginProcessing advances MethodEntry to Processing unconditionally;
// payment details are not checked at all. The caller is responsible
// for actually running Gateway().Submit and reporting back through
// Complete.
func (w *Wizard) BeginProcessing() bool {
	if w.state != StateMethodEntry {
		return false
	}
	w.state = StateProcessing
	w.log.Info("processing withdrawal via %s", w.req.Method)
	return true
}

// Complete records the gateway outcome and moves Processing to the
// terminal Failed screen. The machine has no success state, so even a
// nil error lands on Failed; the simulated gateway never returns nil.
func (w *Wizard) Complete(err error) {
	if w.state != StateProcessing {
		return
	}
	w.err = err
	w.state = StateFailed
	w.log.Info("withdrawal failed: %v", err)
}

// Cancel closes the wizard from AmountEntry or MethodEntry, discarding
// the request immediately. Once Processing has begun there is no
// cancel affordance; Cancel reports false and changes nothing.
func (w *Wizard) Cancel() bool {
	switch w.state {
	case StateAmountEntry, StateMethodEntry:
		w.Reset()
		return true
	default:
		return false
	}
}

// Reset returns the wizard to AmountEntry with a blank request. The
// view calls this when the failure screen times out.
func (w *Wizard) Reset() {
	w.state = StateAmountEntry
	w.req = types.WithdrawalRequest{Method: types.MethodBank}
	w.err = nil
}
