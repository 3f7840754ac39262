package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"

	"shippy/cmd/shippy/ui"
	"shippy/internal/payment"
	"shippy/internal/salary"
	"shippy/internal/types"
	"shippy/internal/withdraw"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole dashboard.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.router.Authenticated() {
		return m.loginView()
	}

	var sb strings.Builder
	sb.WriteString(m.headerView())
	sb.WriteString("\n")

	if m.wizard != nil {
		sb.WriteString(m.styles.Content.Render(m.wizardView()))
		sb.WriteString("\n")
		sb.WriteString(m.footerView())
		return sb.String()
	}

	var body string
	switch m.router.Active() {
	case TabOverview:
		body = m.overviewView()
	case TabProducts:
		body = m.productsView()
	case TabSalary:
		body = m.salaryView()
	case TabTeam:
		body = m.teamView()
	}
	sb.WriteString(m.styles.Content.Render(body))
	sb.WriteString("\n")
	sb.WriteString(m.footerView())
	return sb.String()
}

// =============================================================================
// LOGIN
// =============================================================================

func (m *Model) loginView() string {
	var sb strings.Builder
	sb.WriteString(ui.Logo(m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Sign in to your admin dashboard"))
	sb.WriteString("\n\n")

	userMarker, passMarker := "  ", "  "
	if m.loginFocus == 0 {
		userMarker = m.styles.StatValue.Render("> ")
	} else {
		passMarker = m.styles.StatValue.Render("> ")
	}
	sb.WriteString(userMarker + m.styles.Label.Render("Username") + m.username.View() + "\n")
	sb.WriteString(passMarker + m.styles.Label.Render("Password") + m.password.View() + "\n\n")
	sb.WriteString(m.styles.Muted.Render("tab: switch field · enter: sign in · ctrl+c: quit"))
	sb.WriteString("\n")

	card := m.styles.Modal.Render(sb.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

// =============================================================================
// CHROME
// =============================================================================

func (m *Model) headerView() string {
	var tabs []string
	for _, t := range Tabs() {
		label := t.Title()
		if t == m.router.Active() {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}

	left := m.styles.Header.Render(" SHIPPY ")
	middle := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
	clock := m.styles.Muted.Render(m.now.Format("Mon, 02 Jan 2006 15:04:05"))
	return lipgloss.JoinHorizontal(lipgloss.Center, left, middle, "  ", clock)
}

func (m *Model) footerView() string {
	var help string
	switch {
	case m.wizard != nil:
		help = "withdrawal in progress"
	case m.addForm != nil:
		help = "tab: next field · enter: save · esc: cancel"
	case m.editingCollection() != "":
		help = "tab: next field · ←/→: change option · enter: save · esc: done"
	case m.salary.EditingField() != "":
		help = "enter: save · esc: cancel"
	default:
		switch m.router.Active() {
		case TabProducts, TabTeam:
			help = "↑/↓: select · a: add · e: edit · d: delete · o/p/s/t: tabs · L: logout · q: quit"
		case TabSalary:
			help = "1-4: edit field · w: withdraw · o/p/s/t: tabs · L: logout · q: quit"
		default:
			help = "o/p/s/t: tabs · tab: next tab · L: logout · q: quit"
		}
	}
	return m.styles.Footer.Render(help)
}

// tabHeading renders the per-tab title block.
func (m *Model) tabHeading(t Tab) string {
	return m.styles.Title.Render(t.Title()) + "\n" +
		m.styles.Subtitle.Render(t.Subtitle()) + "\n"
}

// statCard renders a small labelled metric card.
func (m *Model) statCard(label, value string) string {
	inner := m.styles.CardTitle.Render(label) + "\n" + m.styles.StatValue.Render(value)
	return m.styles.Card.Render(inner)
}

// rupees formats an amount with the currency sign.
func rupees(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// =============================================================================
// OVERVIEW
// =============================================================================

func (m *Model) overviewView() string {
	var sb strings.Builder
	sb.WriteString(m.tabHeading(TabOverview))
	sb.WriteString("\n")

	st := m.salary.State()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Total Earnings", rupees(st.TotalEarnings)),
		" ",
		m.statCard("Total Products", fmt.Sprintf("%d", m.products.Len())),
		" ",
		m.statCard("Team Members", fmt.Sprintf("%d", m.team.Len())),
		" ",
		m.statCard("Next Salary", fmt.Sprintf("%s on %s", rupees(st.NextSalaryAmount), st.NextSalaryDate)),
	))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.CardTitle.Render("Monthly Progress"))
	sb.WriteString("\n")
	sb.WriteString(m.progressBar(m.salary.MonthlyProgress(), 40))
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %d days until next salary", m.salary.DaysUntilNextSalary())))
	sb.WriteString("\n\n")

	growth := ui.NewTable("Monthly Earnings", []string{"Month", "Amount", "Status"})
	for _, entry := range types.SalaryHistory() {
		growth.AddRow(entry.Month, rupees(entry.Amount), entry.Status)
	}
	sb.WriteString(growth.View(m.styles))
	sb.WriteString("\n")

	sb.WriteString(m.styles.CardTitle.Render("Recent Activity"))
	sb.WriteString("\n")
	for _, line := range m.recentActivity() {
		sb.WriteString(m.styles.Body.Render("  • " + line))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.CardTitle.Render("Quick Actions"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("  [p] Manage products   [t] Manage team   [s] Salary & withdrawals"))
	sb.WriteString("\n")
	return sb.String()
}

// recentActivity builds the overview feed from the current state.
func (m *Model) recentActivity() []string {
	st := m.salary.State()
	lines := []string{
		fmt.Sprintf("Salary of %s scheduled for %s", rupees(st.NextSalaryAmount), st.NextSalaryDate),
		fmt.Sprintf("%d products in inventory", m.products.Len()),
		fmt.Sprintf("%d team members on the roster", m.team.Len()),
	}
	if st.LastUpdate != "" {
		lines = append(lines, "Salary details last updated "+st.LastUpdate)
	}
	return lines
}

// progressBar renders a simple percentage bar.
func (m *Model) progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := m.styles.Success.Render(strings.Repeat("█", filled)) +
		m.styles.Divider.Render(strings.Repeat("░", width-filled))
	return bar + m.styles.Body.Render(fmt.Sprintf(" %d%%", percent))
}

// =============================================================================
// PRODUCTS
// =============================================================================

func (m *Model) productsView() string {
	var sb strings.Builder
	sb.WriteString(m.tabHeading(TabProducts))

	if m.addForm != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Modal.Render(m.addForm.view(m.styles)))
		sb.WriteString("\n")
		return sb.String()
	}

	table := ui.NewTable("", []string{"Name", "Category", "Stock", "Price", "GST", "Condition"})
	for _, p := range m.products.Items() {
		table.AddRow(p.Name, p.Category, fmt.Sprintf("%d", p.Stock), rupees(p.Price), p.GST, p.Condition)
	}
	table.Selected = m.productCursor
	sb.WriteString(table.View(m.styles))

	if m.products.EditingID() != "" {
		sb.WriteString("\n")
		sb.WriteString(m.editPanel())
	}
	return sb.String()
}

// editPanel renders the inline field editor shared by both tables.
func (m *Model) editPanel() string {
	var sb strings.Builder
	sb.WriteString(m.styles.CardTitle.Render("Edit Record"))
	sb.WriteString("\n")
	for i, field := range m.editFields() {
		marker := "  "
		if i == m.editIdx {
			marker = m.styles.StatValue.Render("> ")
		}
		sb.WriteString(marker)
		sb.WriteString(m.styles.Label.Render(field))
		if enumOptionsFor(field) != nil {
			val := m.currentFieldValue(field)
			if i == m.editIdx {
				sb.WriteString(m.styles.Bold.Render("< " + val + " >"))
			} else {
				sb.WriteString(m.styles.Body.Render(val))
			}
		} else if i == m.editIdx {
			sb.WriteString(m.editInput.View())
		} else {
			sb.WriteString(m.styles.Body.Render(m.currentFieldValue(field)))
		}
		sb.WriteString("\n")
	}
	return m.styles.Card.Render(sb.String())
}

// =============================================================================
// TEAM
// =============================================================================

func (m *Model) teamView() string {
	var sb strings.Builder
	sb.WriteString(m.tabHeading(TabTeam))

	if m.addForm != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Modal.Render(m.addForm.view(m.styles)))
		sb.WriteString("\n")
		return sb.String()
	}

	roleCounts := make(map[string]int)
	for _, mem := range m.team.Items() {
		roleCounts[mem.Role]++
	}
	cards := []string{m.statCard("Total Members", fmt.Sprintf("%d", m.team.Len()))}
	for _, role := range types.Roles() {
		if n := roleCounts[role]; n > 0 {
			cards = append(cards, " ", m.statCard(role+"s", fmt.Sprintf("%d", n)))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	sb.WriteString("\n\n")

	table := ui.NewTable("", []string{"Name", "Email", "Phone", "Role", "Join Date"})
	for _, mem := range m.team.Items() {
		table.AddRow(mem.Name, mem.Email, mem.Phone, mem.Role, mem.JoinDate)
	}
	table.Selected = m.teamCursor
	sb.WriteString(table.View(m.styles))

	if m.team.EditingID() != "" {
		sb.WriteString("\n")
		sb.WriteString(m.editPanel())
	}
	return sb.String()
}

// =============================================================================
// SALARY
// =============================================================================

func (m *Model) salaryView() string {
	var sb strings.Builder
	sb.WriteString(m.tabHeading(TabSalary))
	sb.WriteString("\n")

	st := m.salary.State()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.salaryCard("1", "Current Salary", salary.FieldCurrentSalary, rupees(st.CurrentSalary)),
		" ",
		m.salaryCard("2", "Next Salary Date", salary.FieldNextSalaryDate, st.NextSalaryDate),
		" ",
		m.salaryCard("3", "Next Salary Amount", salary.FieldNextSalaryAmount, rupees(st.NextSalaryAmount)),
		" ",
		m.salaryCard("4", "Total Earnings", salary.FieldTotalEarnings, rupees(st.TotalEarnings)),
	))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard("Days Until Next Salary", fmt.Sprintf("%d", m.salary.DaysUntilNextSalary())),
		" ",
		m.statCard("Monthly Progress", fmt.Sprintf("%d%%", m.salary.MonthlyProgress())),
		" ",
		m.statCard("Average Monthly", fmt.Sprintf("₹%d", m.salary.AverageMonthly())),
	))
	sb.WriteString("\n\n")

	info := m.styles.CardTitle.Render("Salary Information") + "\n" +
		m.styles.Body.Render("Currency: INR (₹)    Pay cycle: Monthly, 25th")
	if st.LastUpdate != "" {
		info += "\n" + m.styles.Muted.Render("Last updated: "+st.LastUpdate)
	}
	sb.WriteString(m.styles.Card.Render(info))
	sb.WriteString("\n\n")

	history := ui.NewTable("Salary History", []string{"Month", "Amount", "Status", "Paid On"})
	for _, entry := range types.SalaryHistory() {
		history.AddRow(entry.Month, rupees(entry.Amount), entry.Status, entry.Date)
	}
	sb.WriteString(history.View(m.styles))
	return sb.String()
}

// salaryCard renders one editable salary figure; the open editor is
// drawn in place of the value.
func (m *Model) salaryCard(key, label, field, value string) string {
	title := m.styles.CardTitle.Render(fmt.Sprintf("[%s] %s", key, label))
	body := m.styles.StatValue.Render(value)
	if m.salary.EditingField() == field {
		body = m.salaryInput.View()
	}
	return m.styles.Card.Render(title + "\n" + body)
}

// =============================================================================
// WITHDRAWAL MODAL
// =============================================================================

func (m *Model) wizardView() string {
	var sb strings.Builder
	switch m.wizard.State() {
	case withdraw.StateAmountEntry:
		sb.WriteString(m.styles.Title.Render("Withdraw Funds"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Available balance: " + rupees(m.wizard.Available())))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Label.Render("Amount (₹)"))
		sb.WriteString(m.amountInput.View())
		sb.WriteString("\n\n")
		// The request amount only syncs on enter, so validate what is
		// being typed right now.
		if v := m.amountInput.Value(); v != "" {
			amt := cast.ToFloat64(v)
			if amt <= 0 || amt > m.wizard.Available() {
				sb.WriteString(m.styles.Warning.Render("Enter an amount between ₹1 and the available balance"))
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(m.styles.Muted.Render("enter: continue · esc: close"))

	case withdraw.StateMethodEntry:
		sb.WriteString(m.styles.Title.Render("Select Payment Method"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Withdrawing " + rupees(m.wizard.Request().Amount)))
		sb.WriteString("\n\n")
		sb.WriteString(m.methodRow())
		sb.WriteString("\n")
		sb.WriteString(m.detailRows())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("tab: next field · ←/→: change option · enter: withdraw · esc: back"))

	case withdraw.StateProcessing:
		sb.WriteString(m.styles.Title.Render("Processing Withdrawal"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Spinner.Render(m.spinner.View()))
		sb.WriteString(m.styles.Body.Render(" Connecting to payment server..."))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("Please wait, this can take a few seconds"))

	case withdraw.StateFailed:
		sb.WriteString(m.styles.Error.Render("Withdrawal Failed"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Body.Render("We were unable to process your withdrawal at this time."))
		sb.WriteString("\n")
		if err := m.wizard.Err(); err != nil {
			sb.WriteString(m.styles.Muted.Render("Reason: " + err.Error()))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Body.Render("Please contact support:"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Info.Render("  " + payment.SupportEmail))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Info.Render("  " + payment.SupportPhone))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("Returning to the dashboard shortly..."))
	}

	return m.styles.Modal.Render(sb.String())
}

// methodRow renders the payout method selector.
func (m *Model) methodRow() string {
	labels := map[types.WithdrawalMethod]string{
		types.MethodBank: "Bank Transfer",
		types.MethodUPI:  "UPI",
		types.MethodCard: "Card",
	}
	var parts []string
	for _, meth := range wizardMethods() {
		label := labels[meth]
		if meth == m.wizard.Request().Method {
			parts = append(parts, m.styles.Badge.Render(label))
		} else {
			parts = append(parts, m.styles.Tab.Render(label))
		}
	}
	marker := "  "
	if m.wizFocus == 0 {
		marker = m.styles.StatValue.Render("> ")
	}
	return marker + m.styles.Label.Render("Method") + strings.Join(parts, " ")
}

// detailRows renders the per-method detail inputs.
func (m *Model) detailRows() string {
	var sb strings.Builder
	row := func(focus int, label, view string) {
		marker := "  "
		if m.wizFocus == focus {
			marker = m.styles.StatValue.Render("> ")
		}
		sb.WriteString(marker + m.styles.Label.Render(label) + view + "\n")
	}

	switch m.wizard.Request().Method {
	case types.MethodBank:
		row(1, "Account Number", m.bankAccount.View())
		ifsc := types.IFSCCodes()[m.ifscIdx]
		if m.wizFocus == 2 {
			row(2, "IFSC Code", m.styles.Bold.Render("< "+ifsc+" >"))
		} else {
			row(2, "IFSC Code", m.styles.Body.Render(ifsc))
		}
		row(3, "Account Holder Name", m.bankHolder.View())
	case types.MethodUPI:
		row(1, "UPI ID", m.upiID.View())
	case types.MethodCard:
		row(1, "Card Number", m.cardNumber.View())
	}
	return sb.String()
}
