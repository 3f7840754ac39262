package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cast"

	"shippy/internal/salary"
	"shippy/internal/types"
	"shippy/internal/withdraw"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the bubbletea message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockCmd()

	case spinner.TickMsg:
		if m.wizard != nil && m.wizard.State() == withdraw.StateProcessing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case withdrawDoneMsg:
		if m.wizard != nil {
			m.wizard.Complete(msg.err)
			return m, m.failureTimeoutCmd()
		}
		return m, nil

	case failureTimeoutMsg:
		if m.wizard != nil && m.wizard.State() == withdraw.StateFailed {
			m.wizard.Reset()
			m.wizard = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards non-key messages (cursor blinks) to
// whichever text input currently has focus.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if !m.router.Authenticated() {
		m.username, cmd = m.username.Update(msg)
		cmds = append(cmds, cmd)
		m.password, cmd = m.password.Update(msg)
		cmds = append(cmds, cmd)
		return tea.Batch(cmds...)
	}
	if m.wizard != nil {
		for _, ti := range []*textinput.Model{&m.amountInput, &m.bankAccount, &m.bankHolder, &m.upiID, &m.cardNumber} {
			*ti, cmd = ti.Update(msg)
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}
	if m.addForm != nil {
		for i := range m.addForm.fields {
			m.addForm.fields[i].input, cmd = m.addForm.fields[i].input.Update(msg)
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}
	m.editInput, cmd = m.editInput.Update(msg)
	cmds = append(cmds, cmd)
	m.salaryInput, cmd = m.salaryInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// =============================================================================
// KEY DISPATCH
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.router.Authenticated() {
		return m.handleLoginKey(msg)
	}
	if m.wizard != nil {
		return m.handleWizardKey(msg)
	}
	if m.addForm != nil {
		return m.handleFormKey(msg)
	}
	if m.salary.EditingField() != "" {
		return m.handleSalaryEditKey(msg)
	}
	if m.editingCollection() != "" {
		return m.handleRecordEditKey(msg)
	}
	return m.handleGlobalKey(msg)
}

// editingCollection reports which collection has an open inline edit,
// or "" when none does.
func (m *Model) editingCollection() string {
	if m.products.EditingID() != "" {
		return "products"
	}
	if m.team.EditingID() != "" {
		return "team"
	}
	return ""
}

// =============================================================================
// LOGIN
// =============================================================================

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.password.Blur()
			return m, m.username.Focus()
		}
		m.username.Blur()
		return m, m.password.Focus()

	case "enter":
		// Any non-empty credentials are accepted.
		if m.username.Value() != "" && m.password.Value() != "" {
			m.router.Login()
			m.username.Blur()
			m.password.Blur()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// GLOBAL NAVIGATION
// =============================================================================

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "L":
		m.router.Logout()
		m.username.SetValue("")
		m.password.SetValue("")
		m.loginFocus = 0
		m.password.Blur()
		return m, m.username.Focus()

	case "o":
		m.router.Navigate(TabOverview)
		return m, nil
	case "p":
		m.router.Navigate(TabProducts)
		return m, nil
	case "s":
		m.router.Navigate(TabSalary)
		return m, nil
	case "t":
		m.router.Navigate(TabTeam)
		return m, nil

	case "tab":
		tabs := Tabs()
		m.router.Navigate(tabs[(int(m.router.Active())+1)%len(tabs)])
		return m, nil
	case "shift+tab":
		tabs := Tabs()
		m.router.Navigate(tabs[(int(m.router.Active())-1+len(tabs))%len(tabs)])
		return m, nil
	}

	switch m.router.Active() {
	case TabProducts:
		return m.handleProductsKey(msg)
	case TabTeam:
		return m.handleTeamKey(msg)
	case TabSalary:
		return m.handleSalaryKey(msg)
	}
	return m, nil
}

// =============================================================================
// PRODUCTS / TEAM TABLES
// =============================================================================

func (m *Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.productCursor > 0 {
			m.productCursor--
		}
	case "down", "j":
		if m.productCursor < m.products.Len()-1 {
			m.productCursor++
		}
	case "a":
		m.addForm = newProductForm()
		return m, m.addForm.syncFocus()
	case "e":
		items := m.products.Items()
		if m.productCursor < len(items) {
			m.products.BeginEdit(items[m.productCursor].ID)
			m.editIdx = 0
			return m, m.loadEditField()
		}
	case "d":
		items := m.products.Items()
		if m.productCursor < len(items) {
			m.products.Remove(items[m.productCursor].ID)
			if m.productCursor >= m.products.Len() && m.productCursor > 0 {
				m.productCursor--
			}
		}
	}
	return m, nil
}

func (m *Model) handleTeamKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.teamCursor > 0 {
			m.teamCursor--
		}
	case "down", "j":
		if m.teamCursor < m.team.Len()-1 {
			m.teamCursor++
		}
	case "a":
		m.addForm = newMemberForm(m.now)
		return m, m.addForm.syncFocus()
	case "e":
		items := m.team.Items()
		if m.teamCursor < len(items) {
			m.team.BeginEdit(items[m.teamCursor].ID)
			m.editIdx = 0
			return m, m.loadEditField()
		}
	case "d":
		items := m.team.Items()
		if m.teamCursor < len(items) {
			m.team.Remove(items[m.teamCursor].ID)
			if m.teamCursor >= m.team.Len() && m.teamCursor > 0 {
				m.teamCursor--
			}
		}
	}
	return m, nil
}

// handleFormKey drives the open add form.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addForm = nil
		return m, nil
	case "tab", "down":
		return m, m.addForm.next()
	case "shift+tab", "up":
		return m, m.addForm.prev()
	case "enter":
		switch m.router.Active() {
		case TabProducts:
			m.products.Add(m.addForm.draftProduct())
		case TabTeam:
			m.team.Add(m.addForm.draftMember())
		}
		m.addForm = nil
		return m, nil
	}
	return m, m.addForm.handleKey(msg)
}

// =============================================================================
// INLINE RECORD EDIT
// =============================================================================

// editFields returns the field list for the collection being edited.
func (m *Model) editFields() []string {
	if m.editingCollection() == "team" {
		return memberEditFields()
	}
	return productEditFields()
}

// editField returns the field currently under the edit cursor.
func (m *Model) editField() string {
	fields := m.editFields()
	if m.editIdx >= len(fields) {
		return fields[0]
	}
	return fields[m.editIdx]
}

// loadEditField seeds the edit input with the current value of the
// field under the cursor, or blurs it for enum fields.
func (m *Model) loadEditField() tea.Cmd {
	field := m.editField()
	if enumOptionsFor(field) != nil {
		m.editInput.Blur()
		return nil
	}
	m.editInput.SetValue(m.currentFieldValue(field))
	m.editInput.CursorEnd()
	return m.editInput.Focus()
}

// currentFieldValue reads the edited record's field as a string.
func (m *Model) currentFieldValue(field string) string {
	if m.editingCollection() == "team" {
		mem, ok := m.team.Find(m.team.EditingID())
		if !ok {
			return ""
		}
		switch field {
		case "name":
			return mem.Name
		case "email":
			return mem.Email
		case "phone":
			return mem.Phone
		case "role":
			return mem.Role
		case "joinDate":
			return mem.JoinDate
		}
		return ""
	}
	p, ok := m.products.Find(m.products.EditingID())
	if !ok {
		return ""
	}
	switch field {
	case "name":
		return p.Name
	case "category":
		return p.Category
	case "stock":
		return cast.ToString(p.Stock)
	case "price":
		return cast.ToString(p.Price)
	case "gst":
		return p.GST
	case "condition":
		return p.Condition
	}
	return ""
}

// applyEditField writes the edit input's text back through the
// collection. Enum fields are applied immediately on cycle, so this is
// a no-op for them.
func (m *Model) applyEditField() {
	field := m.editField()
	if enumOptionsFor(field) != nil {
		return
	}
	if m.editingCollection() == "team" {
		m.team.Update(m.team.EditingID(), field, m.editInput.Value())
		return
	}
	m.products.Update(m.products.EditingID(), field, m.editInput.Value())
}

// cycleEditEnum rotates an enum field's value and persists it.
func (m *Model) cycleEditEnum(delta int) {
	field := m.editField()
	options := enumOptionsFor(field)
	if options == nil {
		return
	}
	current := m.currentFieldValue(field)
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(options)
	next := options[((idx+delta)%n+n)%n]
	if m.editingCollection() == "team" {
		m.team.Update(m.team.EditingID(), field, next)
	} else {
		m.products.Update(m.products.EditingID(), field, next)
	}
}

func (m *Model) endEdit() {
	m.products.EndEdit()
	m.team.EndEdit()
	m.editInput.Blur()
	m.editInput.SetValue("")
}

func (m *Model) handleRecordEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.editFields()
	switch msg.String() {
	case "esc":
		m.endEdit()
		return m, nil
	case "enter":
		m.applyEditField()
		m.endEdit()
		return m, nil
	case "tab", "down":
		m.applyEditField()
		m.editIdx = (m.editIdx + 1) % len(fields)
		return m, m.loadEditField()
	case "shift+tab", "up":
		m.applyEditField()
		m.editIdx = (m.editIdx - 1 + len(fields)) % len(fields)
		return m, m.loadEditField()
	case "left":
		if enumOptionsFor(m.editField()) != nil {
			m.cycleEditEnum(-1)
			return m, nil
		}
	case "right":
		if enumOptionsFor(m.editField()) != nil {
			m.cycleEditEnum(1)
			return m, nil
		}
	}
	if enumOptionsFor(m.editField()) == nil {
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// SALARY TAB
// =============================================================================

func (m *Model) handleSalaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := ""
	switch msg.String() {
	case "1":
		field = salary.FieldCurrentSalary
	case "2":
		field = salary.FieldNextSalaryDate
	case "3":
		field = salary.FieldNextSalaryAmount
	case "4":
		field = salary.FieldTotalEarnings
	case "w":
		m.openWizard()
		return m, m.amountInput.Focus()
	default:
		return m, nil
	}

	m.salary.Edit(field)
	m.salaryInput.SetValue(m.salary.Buffer())
	m.salaryInput.CursorEnd()
	return m, m.salaryInput.Focus()
}

func (m *Model) handleSalaryEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.salary.Cancel()
		m.salaryInput.Blur()
		return m, nil
	case "enter":
		m.salary.SetBuffer(m.salaryInput.Value())
		m.salary.Commit(m.salary.EditingField())
		m.salaryInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.salaryInput, cmd = m.salaryInput.Update(msg)
	return m, cmd
}

// =============================================================================
// WITHDRAWAL WIZARD
// =============================================================================

// openWizard starts a fresh wizard session capped at the current total
// earnings balance.
func (m *Model) openWizard() {
	m.wizard = withdraw.New(m.gateway, m.salary.State().TotalEarnings)
	m.amountInput.SetValue("")
	m.bankAccount.SetValue("")
	m.bankHolder.SetValue("")
	m.upiID.SetValue("")
	m.cardNumber.SetValue("")
	m.ifscIdx = 0
	m.wizFocus = 0
}

// closeWizard discards the session entirely.
func (m *Model) closeWizard() {
	m.wizard = nil
	m.amountInput.Blur()
	m.bankAccount.Blur()
	m.bankHolder.Blur()
	m.upiID.Blur()
	m.cardNumber.Blur()
}

// wizardMethods lists the payout methods in display order.
func wizardMethods() []types.WithdrawalMethod {
	return []types.WithdrawalMethod{types.MethodBank, types.MethodUPI, types.MethodCard}
}

// cycleMethod rotates the selected payout method.
func (m *Model) cycleMethod(delta int) {
	methods := wizardMethods()
	idx := 0
	for i, meth := range methods {
		if meth == m.wizard.Request().Method {
			idx = i
			break
		}
	}
	n := len(methods)
	m.wizard.Request().Method = methods[((idx+delta)%n+n)%n]
}

// wizardDetailFocusMax returns the highest focus index for the current
// method's detail fields. Focus 0 is always the method selector.
func (m *Model) wizardDetailFocusMax() int {
	switch m.wizard.Request().Method {
	case types.MethodBank:
		return 3 // account, IFSC, holder
	default:
		return 1 // single field for UPI and card
	}
}

// syncWizardFocus focuses the detail input matching wizFocus.
func (m *Model) syncWizardFocus() tea.Cmd {
	m.bankAccount.Blur()
	m.bankHolder.Blur()
	m.upiID.Blur()
	m.cardNumber.Blur()
	switch m.wizard.Request().Method {
	case types.MethodBank:
		switch m.wizFocus {
		case 1:
			return m.bankAccount.Focus()
		case 3:
			return m.bankHolder.Focus()
		}
	case types.MethodUPI:
		if m.wizFocus == 1 {
			return m.upiID.Focus()
		}
	case types.MethodCard:
		if m.wizFocus == 1 {
			return m.cardNumber.Focus()
		}
	}
	return nil
}

// applyWizardDetails copies the detail inputs into the request. The
// details are never validated.
func (m *Model) applyWizardDetails() {
	req := m.wizard.Request()
	switch req.Method {
	case types.MethodBank:
		req.AccountNumber = m.bankAccount.Value()
		req.IFSCCode = types.IFSCCodes()[m.ifscIdx]
		req.AccountHolderName = m.bankHolder.Value()
	case types.MethodUPI:
		req.UPIID = m.upiID.Value()
	case types.MethodCard:
		req.CardNumber = m.cardNumber.Value()
	}
}

// submitWithdrawal runs the gateway call off the Update loop.
func (m *Model) submitWithdrawal() tea.Cmd {
	req := *m.wizard.Request()
	gw := m.wizard.Gateway()
	return func() tea.Msg {
		_, err := gw.Submit(context.Background(), req)
		return withdrawDoneMsg{err: err}
	}
}

func (m *Model) failureTimeoutCmd() tea.Cmd {
	return tea.Tick(m.cfg.FailureNoticeDelay(), func(time.Time) tea.Msg {
		return failureTimeoutMsg{}
	})
}

func (m *Model) handleWizardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.wizard.State() {
	case withdraw.StateAmountEntry:
		switch msg.String() {
		case "esc":
			m.wizard.Cancel()
			m.closeWizard()
			return m, nil
		case "enter":
			m.wizard.Request().Amount = cast.ToFloat64(m.amountInput.Value())
			if m.wizard.SubmitAmount() {
				m.amountInput.Blur()
				m.wizFocus = 0
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd

	case withdraw.StateMethodEntry:
		switch msg.String() {
		case "esc":
			// Step back to the amount; a second esc closes the modal.
			m.wizard.Back()
			m.wizFocus = 0
			m.amountInput.CursorEnd()
			return m, m.amountInput.Focus()
		case "tab", "down":
			m.wizFocus = (m.wizFocus + 1) % (m.wizardDetailFocusMax() + 1)
			return m, m.syncWizardFocus()
		case "shift+tab", "up":
			max := m.wizardDetailFocusMax() + 1
			m.wizFocus = (m.wizFocus - 1 + max) % max
			return m, m.syncWizardFocus()
		case "left":
			if m.wizFocus == 0 {
				m.cycleMethod(-1)
				m.wizFocus = 0
				return m, m.syncWizardFocus()
			}
			if m.wizard.Request().Method == types.MethodBank && m.wizFocus == 2 {
				n := len(types.IFSCCodes())
				m.ifscIdx = (m.ifscIdx - 1 + n) % n
				return m, nil
			}
		case "right":
			if m.wizFocus == 0 {
				m.cycleMethod(1)
				m.wizFocus = 0
				return m, m.syncWizardFocus()
			}
			if m.wizard.Request().Method == types.MethodBank && m.wizFocus == 2 {
				m.ifscIdx = (m.ifscIdx + 1) % len(types.IFSCCodes())
				return m, nil
			}
		case "enter":
			m.applyWizardDetails()
			if m.wizard.BeginProcessing() {
				return m, tea.Batch(m.spinner.Tick, m.submitWithdrawal())
			}
			return m, nil
		}
		// Feed remaining keys to the focused detail input.
		var cmd tea.Cmd
		switch m.wizard.Request().Method {
		case types.MethodBank:
			switch m.wizFocus {
			case 1:
				m.bankAccount, cmd = m.bankAccount.Update(msg)
			case 3:
				m.bankHolder, cmd = m.bankHolder.Update(msg)
			}
		case types.MethodUPI:
			if m.wizFocus == 1 {
				m.upiID, cmd = m.upiID.Update(msg)
			}
		case types.MethodCard:
			if m.wizFocus == 1 {
				m.cardNumber, cmd = m.cardNumber.Update(msg)
			}
		}
		return m, cmd

	case withdraw.StateProcessing:
		// No cancel affordance; the request runs to completion.
		return m, nil

	case withdraw.StateFailed:
		// The failure screen dismisses itself on its own timer.
		return m, nil
	}
	return m, nil
}
