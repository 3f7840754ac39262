package withdraw

import (
	"context"
	"testing"
	"time"

	"shippy/internal/payment"
	"shippy/internal/types"
)

func newTestWizard() *Wizard {
	return New(payment.NewSimulatedGateway(time.Millisecond), 170000)
}

func TestInitialState(t *testing.T) {
	t.Parallel()
	w := newTestWizard()

	if w.State() != StateAmountEntry {
		t.Errorf("initial state = %v, want %v", w.State(), StateAmountEntry)
	}
	if w.Request().Method != types.MethodBank {
		t.Errorf("default method = %v, want %v", w.Request().Method, types.MethodBank)
	}
	if w.Available() != 170000 {
		t.Errorf("available = %v, want 170000", w.Available())
	}
}

func TestSubmitAmountWithinBalance(t *testing.T) {
	t.Parallel()
	w := newTestWizard()

	w.Request().Amount = 5000
	if !w.SubmitAmount() {
		t.Fatal("SubmitAmount rejected a valid amount")
	}
	if w.State() != StateMethodEntry {
		t.Errorf("state = %v, want %v", w.State(), StateMethodEntry)
	}
}

func TestSubmitAmountGuard(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		amount float64
		ok     bool
	}{
		{"zero", 0, false},
		{"negative", -100, false},
		{"over balance", 200000, false},
		{"exactly balance", 170000, true},
		{"one rupee", 1, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := newTestWizard()
			w.Request().Amount = tc.amount

			if got := w.SubmitAmount(); got != tc.ok {
				t.Errorf("SubmitAmount(%v) = %v, want %v", tc.amount, got, tc.ok)
			}
			wantState := StateAmountEntry
			if tc.ok {
				wantState = StateMethodEntry
			}
			if w.State() != wantState {
				t.Errorf("state = %v, want %v", w.State(), wantState)
			}
		})
	}
}

func TestBackReturnsToAmountEntry(t *testing.T) {
	t.Parallel()
	w := newTestWizard()
	w.Request().Amount = 100
	w.SubmitAmount()

	if !w.Back() {
		t.Fatal("Back failed from method entry")
	}
	if w.State() != StateAmountEntry {
		t.Errorf("state = %v, want %v", w.State(), StateAmountEntry)
	}
	if w.Request().Amount != 100 {
		t.Errorf("amount lost on back: %v", w.Request().Amount)
	}
}

func TestBeginProcessingSkipsDetailValidation(t *testing.T) {
	t.Parallel()
	w := newTestWizard()
	w.Request().Amount = 100
	w.SubmitAmount()

	// Details deliberately left blank.
	if !w.BeginProcessing() {
		t.Fatal("BeginProcessing failed with empty details")
	}
	if w.State() != StateProcessing {
		t.Errorf("state = %v, want %v", w.State(), StateProcessing)
	}
}

func TestBeginProcessingOnlyFromMethodEntry(t *testing.T) {
	t.Parallel()
	w := newTestWizard()

	if w.BeginProcessing() {
		t.Error("BeginProcessing succeeded from amount entry")
	}
}

func TestCompleteAlwaysLandsOnFailed(t *testing.T) {
	t.Parallel()
	w := newTestWizard()
	w.Request().Amount = 100
	w.SubmitAmount()
	w.BeginProcessing()

	_, err := w.Gateway().Submit(context.Background(), *w.Request())
	w.Complete(err)

	if w.State() != StateFailed {
		t.Errorf("state = %v, want %v", w.State(), StateFailed)
	}
	if w.Err() == nil {
		t.Error("expected gateway error to be recorded")
	}
}

func TestCompleteWithNilErrorStillFails(t *testing.T) {
	t.Parallel()
	w := newTestWizard()
	w.Request().Amount = 100
	w.SubmitAmount()
	w.BeginProcessing()

	w.Complete(nil)
	if w.State() != StateFailed {
		t.Errorf("state = %v, want %v (there is no success state)", w.State(), StateFailed)
	}
}

func TestCancelAllowedBeforeProcessing(t *testing.T) {
	t.Parallel()

	w := newTestWizard()
	w.Request().Amount = 50
	if !w.Cancel() {
		t.Error("Cancel failed from amount entry")
	}
	if w.State() != StateAmountEntry || w.Request().Amount != 0 {
		t.Error("Cancel did not reset the request")
	}

	w = newTestWizard()
	w.Request().Amount = 50
	w.SubmitAmount()
	if !w.Cancel() {
		t.Error("Cancel failed from method entry")
	}
}

func TestCancelBlockedDuringProcessing(t *testing.T) {
	t.Parallel()
	w := newTestWizard()
	w.Request().Amount = 50
	w.SubmitAmount()
	w.BeginProcessing()

	if w.Cancel() {
		t.Error("Cancel succeeded during processing")
	}
	if w.State() != StateProcessing {
		t.Errorf("state = %v, want %v", w.State(), StateProcessing)
	}

	w.Complete(payment.ErrUnavailable)
	if w.Cancel() {
		t.Error("Cancel succeeded on the failure screen")
	}
}

func TestResetClearsEverything(t *testing.T) {
	t.Parallel()
	w := newTestWizard()
	w.Request().Amount = 50
	w.Request().Method = types.MethodUPI
	w.Request().UPIID = "user@paytm"
	w.SubmitAmount()
	w.BeginProcessing()
	w.Complete(payment.ErrUnavailable)

	w.Reset()

	if w.State() != StateAmountEntry {
		t.Errorf("state = %v, want %v", w.State(), StateAmountEntry)
	}
	if w.Err() != nil {
		t.Error("error survived reset")
	}
	req := w.Request()
	if req.Amount != 0 || req.Method != types.MethodBank || req.UPIID != "" {
		t.Errorf("request survived reset: %+v", req)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()
	cases := map[State]string{
		StateAmountEntry: "amount-entry",
		StateMethodEntry: "method-entry",
		StateProcessing:  "processing",
		StateFailed:      "failed",
		State(99):        "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
