package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shippy/internal/config"
	"shippy/internal/payment"
	"shippy/internal/withdraw"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st := openTestStore(t)
	cfg := config.Default(t.TempDir())
	m, err := New(cfg, st, payment.NewSimulatedGateway(time.Millisecond))
	require.NoError(t, err)
	return m
}

// press feeds key events into the model's Update loop. Named keys map
// to their key types; anything else is typed as runes.
func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

// signIn drives the login form with accepted credentials.
func signIn(m *Model) {
	press(m, "admin", "tab", "secret", "enter")
}

func TestLoginRequiredBeforeDashboard(t *testing.T) {
	m := newTestModel(t)

	assert.False(t, m.Router().Authenticated())
	view := m.View()
	assert.Contains(t, view, "Username")
	assert.Contains(t, view, "Password")

	// Navigation keys do nothing while logged out.
	press(m, "p")
	assert.Equal(t, TabOverview, m.Router().Active())
	assert.False(t, m.Router().Authenticated())
}

func TestLoginAcceptsAnyNonEmptyCredentials(t *testing.T) {
	m := newTestModel(t)
	signIn(m)

	assert.True(t, m.Router().Authenticated())
	assert.Equal(t, TabOverview, m.Router().Active())
}

func TestLoginRejectsEmptyPassword(t *testing.T) {
	m := newTestModel(t)
	press(m, "admin", "enter")

	assert.False(t, m.Router().Authenticated())
}

func TestTabNavigationKeys(t *testing.T) {
	m := newTestModel(t)
	signIn(m)

	press(m, "p")
	assert.Equal(t, TabProducts, m.Router().Active())
	press(m, "s")
	assert.Equal(t, TabSalary, m.Router().Active())
	press(m, "t")
	assert.Equal(t, TabTeam, m.Router().Active())
	press(m, "o")
	assert.Equal(t, TabOverview, m.Router().Active())

	press(m, "tab")
	assert.Equal(t, TabProducts, m.Router().Active())
	press(m, "shift+tab")
	assert.Equal(t, TabOverview, m.Router().Active())
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s")

	press(m, "L")
	assert.False(t, m.Router().Authenticated())

	// Logging back in needs fresh credentials and lands on overview.
	press(m, "enter")
	assert.False(t, m.Router().Authenticated())
	signIn(m)
	assert.True(t, m.Router().Authenticated())
	assert.Equal(t, TabOverview, m.Router().Active())
}

func TestAddProductThroughForm(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "p", "a")
	require.NotNil(t, m.addForm)

	press(m, "Gym Bag", "enter")

	assert.Nil(t, m.addForm)
	require.Equal(t, 11, m.Products().Len())
	added := m.Products().Items()[10]
	assert.Equal(t, "Gym Bag", added.Name)
	assert.Equal(t, "T-Shirt", added.Category) // first option is the default
	assert.Equal(t, "18%", added.GST)
	assert.Equal(t, "New", added.Condition)
	assert.NotEmpty(t, added.ID)
}

func TestAddFormEscCancels(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "p", "a", "Half Typed", "esc")

	assert.Nil(t, m.addForm)
	assert.Equal(t, 10, m.Products().Len())
}

func TestAddMemberWithoutEmailIsSilentlyDropped(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "t", "a", "No Email", "enter")

	assert.Nil(t, m.addForm)
	assert.Equal(t, 3, m.Team().Len())
}

func TestDeleteSelectedProduct(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "p", "down", "d")

	assert.Equal(t, 9, m.Products().Len())
	_, found := m.Products().Find("2")
	assert.False(t, found)
}

func TestInlineEditTextField(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "p", "e")
	require.Equal(t, "1", m.Products().EditingID())

	press(m, " Pro", "enter")

	assert.Empty(t, m.Products().EditingID())
	p, _ := m.Products().Find("1")
	assert.Equal(t, "Cotton T-Shirt Pro", p.Name)
}

func TestInlineEditEnumCyclesImmediately(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "p", "e", "tab") // name -> category

	press(m, "right")
	p, _ := m.Products().Find("1")
	assert.Equal(t, "Pants", p.Category)

	press(m, "left", "left")
	p, _ = m.Products().Find("1")
	assert.Equal(t, "Sports", p.Category) // wraps backwards

	press(m, "esc")
	assert.Empty(t, m.Products().EditingID())
}

func TestSalaryFieldEdit(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "1")
	require.NotEmpty(t, m.Salary().EditingField())

	// The input is pre-filled with the current value; typing appends.
	press(m, "0", "enter")

	assert.Empty(t, m.Salary().EditingField())
	assert.Equal(t, 450000.0, m.Salary().State().CurrentSalary)
}

func TestSalaryEditEscCancels(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "4", "9", "esc")

	assert.Empty(t, m.Salary().EditingField())
	assert.Equal(t, 170000.0, m.Salary().State().TotalEarnings)
}

func TestWithdrawalHappyPathAlwaysFails(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w")
	require.NotNil(t, m.Wizard())
	assert.Equal(t, withdraw.StateAmountEntry, m.Wizard().State())
	assert.Equal(t, 170000.0, m.Wizard().Available())

	press(m, "5000", "enter")
	assert.Equal(t, withdraw.StateMethodEntry, m.Wizard().State())

	press(m, "enter")
	assert.Equal(t, withdraw.StateProcessing, m.Wizard().State())

	// The gateway result arrives as a message.
	m.Update(withdrawDoneMsg{err: payment.ErrUnavailable})
	require.Equal(t, withdraw.StateFailed, m.Wizard().State())
	view := m.View()
	assert.Contains(t, view, payment.SupportEmail)
	assert.Contains(t, view, payment.SupportPhone)

	// The failure screen dismisses itself and discards the session.
	m.Update(failureTimeoutMsg{})
	assert.Nil(t, m.Wizard())
}

func TestWithdrawalRejectsAmountOverBalance(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w", "200000", "enter")

	assert.Equal(t, withdraw.StateAmountEntry, m.Wizard().State())
}

func TestWithdrawalAmountWarningTracksTyping(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w")

	const warning = "Enter an amount between"
	assert.NotContains(t, m.View(), warning)

	// A valid amount being typed must not warn before enter is pressed.
	press(m, "5000")
	assert.NotContains(t, m.View(), warning)

	// Growing it past the balance warns immediately.
	press(m, "00")
	assert.Contains(t, m.View(), warning)

	// Shrinking it back below the balance clears the warning.
	press(m, "backspace", "backspace")
	assert.NotContains(t, m.View(), warning)
}

func TestWithdrawalEscClosesFromAmountEntry(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w", "esc")

	assert.Nil(t, m.Wizard())
}

func TestWithdrawalEscStepsBackFromMethodEntry(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w", "5000", "enter")
	require.Equal(t, withdraw.StateMethodEntry, m.Wizard().State())

	press(m, "esc")
	assert.Equal(t, withdraw.StateAmountEntry, m.Wizard().State())
	assert.Equal(t, 5000.0, m.Wizard().Request().Amount)
}

func TestWithdrawalMethodCycling(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w", "100", "enter")

	press(m, "right")
	assert.Equal(t, "upi", string(m.Wizard().Request().Method))
	press(m, "right")
	assert.Equal(t, "card", string(m.Wizard().Request().Method))
	press(m, "right")
	assert.Equal(t, "bank", string(m.Wizard().Request().Method))
}

func TestWithdrawalNoCancelWhileProcessing(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w", "100", "enter", "enter")
	require.Equal(t, withdraw.StateProcessing, m.Wizard().State())

	press(m, "esc", "q")
	assert.NotNil(t, m.Wizard())
	assert.Equal(t, withdraw.StateProcessing, m.Wizard().State())
}

func TestWithdrawalDetailsCollected(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s", "w", "2500", "enter")

	// Switch to UPI and fill in the id.
	press(m, "right", "tab", "user@paytm", "enter")
	require.Equal(t, withdraw.StateProcessing, m.Wizard().State())
	req := m.Wizard().Request()
	assert.Equal(t, 2500.0, req.Amount)
	assert.Equal(t, "upi", string(req.Method))
	assert.Equal(t, "user@paytm", req.UPIID)
}

func TestOverviewViewShowsStats(t *testing.T) {
	m := newTestModel(t)
	signIn(m)

	view := m.View()
	assert.Contains(t, view, "Total Earnings")
	assert.Contains(t, view, "Total Products")
	assert.Contains(t, view, "10")
	assert.Contains(t, view, "Team Members")
	assert.Contains(t, view, "Monthly Progress")
	assert.Contains(t, view, "Recent Activity")
	assert.Contains(t, view, "Quick Actions")
}

func TestProductsViewListsSeedData(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "p")

	view := m.View()
	assert.Contains(t, view, "Cotton T-Shirt")
	assert.Contains(t, view, "Sunglasses")
	assert.True(t, strings.Contains(view, "Category"))
}

func TestSalaryViewShowsHistory(t *testing.T) {
	m := newTestModel(t)
	signIn(m)
	press(m, "s")

	view := m.View()
	assert.Contains(t, view, "Salary History")
	assert.Contains(t, view, "July 2025")
	assert.Contains(t, view, "Paid")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	signIn(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestClockTickReschedules(t *testing.T) {
	m := newTestModel(t)

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	_, cmd := m.Update(clockTickMsg(now))
	assert.Equal(t, now, m.now)
	assert.NotNil(t, cmd)
}
