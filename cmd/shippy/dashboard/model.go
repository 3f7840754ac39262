// Package dashboard implements the interactive Shippy admin dashboard:
// a login gate, four tabbed views over the product/team/salary
// controllers, and the withdrawal wizard modal.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shippy/cmd/shippy/ui"
	"shippy/internal/config"
	"shippy/internal/logging"
	"shippy/internal/payment"
	"shippy/internal/records"
	"shippy/internal/salary"
	"shippy/internal/store"
	"shippy/internal/types"
	"shippy/internal/withdraw"
)

// =============================================================================
// MESSAGES
// =============================================================================

// clockTickMsg drives the header clock, once per second.
type clockTickMsg time.Time

// withdrawDoneMsg carries the gateway outcome back into the Update
// loop.
type withdrawDoneMsg struct{ err error }

// failureTimeoutMsg closes the withdrawal failure screen.
type failureTimeoutMsg struct{}

func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the whole dashboard.
type Model struct {
	cfg    *config.Config
	st     *store.Store
	styles ui.Styles
	router *Router
	log    *logging.Logger

	products *records.Collection[types.Product]
	team     *records.Collection[types.TeamMember]
	salary   *salary.Controller
	gateway  payment.Gateway

	width  int
	height int
	now    time.Time

	// Login page
	username   textinput.Model
	password   textinput.Model
	loginFocus int

	// Record tables
	productCursor int
	teamCursor    int
	addForm       *form // non-nil while an add form is open
	editIdx       int   // field index during inline edit
	editInput     textinput.Model

	// Salary tab
	salaryInput textinput.Model

	// Withdrawal wizard modal
	wizard      *withdraw.Wizard
	amountInput textinput.Model
	bankAccount textinput.Model
	bankHolder  textinput.Model
	upiID       textinput.Model
	cardNumber  textinput.Model
	ifscIdx     int
	wizFocus    int
	spinner     spinner.Model

	quitting bool
}

// New wires a dashboard model over an opened store. The payment
// gateway is injected so tests can substitute a fast double for the
// slow simulated one.
func New(cfg *config.Config, st *store.Store, gw payment.Gateway) (*Model, error) {
	productsCol, err := records.Open(st, store.KeyProducts, types.SampleProducts())
	if err != nil {
		return nil, err
	}
	teamCol, err := records.Open(st, store.KeyTeamMembers, types.SampleTeamMembers())
	if err != nil {
		return nil, err
	}
	salaryCtl, err := salary.Open(st)
	if err != nil {
		return nil, err
	}

	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 28
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword

	salaryInput := textinput.New()
	salaryInput.CharLimit = 32
	salaryInput.Width = 20

	editInput := textinput.New()
	editInput.CharLimit = 64
	editInput.Width = 28

	amountInput := textinput.New()
	amountInput.Placeholder = "Enter amount to withdraw"
	amountInput.CharLimit = 16
	amountInput.Width = 24

	bankAccount := textinput.New()
	bankAccount.Placeholder = "Enter account number"
	bankAccount.CharLimit = 24
	bankAccount.Width = 28

	bankHolder := textinput.New()
	bankHolder.Placeholder = "Enter account holder name"
	bankHolder.CharLimit = 64
	bankHolder.Width = 28

	upiID := textinput.New()
	upiID.Placeholder = "Enter UPI ID (e.g., user@paytm)"
	upiID.CharLimit = 64
	upiID.Width = 28

	cardNumber := textinput.New()
	cardNumber.Placeholder = "Enter card number"
	cardNumber.CharLimit = 16
	cardNumber.Width = 28

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		cfg:         cfg,
		st:          st,
		styles:      ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		router:      NewRouter(st),
		log:         logging.Get(logging.CategoryUI),
		products:    productsCol,
		team:        teamCol,
		salary:      salaryCtl,
		gateway:     gw,
		now:         time.Now(),
		username:    username,
		password:    password,
		salaryInput: salaryInput,
		editInput:   editInput,
		amountInput: amountInput,
		bankAccount: bankAccount,
		bankHolder:  bankHolder,
		upiID:       upiID,
		cardNumber:  cardNumber,
		spinner:     sp,
	}
	return m, nil
}

// Init starts the header clock and cursor blinking.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, clockCmd())
}

// Router exposes the view router, mainly for tests.
func (m *Model) Router() *Router {
	return m.router
}

// Products exposes the product collection, mainly for tests.
func (m *Model) Products() *records.Collection[types.Product] {
	return m.products
}

// Team exposes the team collection, mainly for tests.
func (m *Model) Team() *records.Collection[types.TeamMember] {
	return m.team
}

// Salary exposes the salary controller, mainly for tests.
func (m *Model) Salary() *salary.Controller {
	return m.salary
}

// Wizard exposes the active withdrawal wizard session, or nil.
func (m *Model) Wizard() *withdraw.Wizard {
	return m.wizard
}

// productEditFields lists the inline-editable product columns in
// order.
func productEditFields() []string {
	return []string{"name", "category", "stock", "price", "gst", "condition"}
}

// memberEditFields lists the inline-editable member columns in order.
func memberEditFields() []string {
	return []string{"name", "email", "phone", "role", "joinDate"}
}

// enumOptionsFor returns the closed option set for a field, or nil
// for free-text fields.
func enumOptionsFor(field string) []string {
	switch field {
	case "category":
		return types.Categories()
	case "gst":
		return types.GSTOptions()
	case "condition":
		return types.Conditions()
	case "role":
		return types.Roles()
	default:
		return nil
	}
}
