package dashboard

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shippy/cmd/shippy/ui"
	"shippy/internal/types"
)

// fieldKind distinguishes free-text fields from closed-set dropdowns.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldEnum
)

// formField is one input of an add/edit form. Text fields use a
// bubbles textinput; enum fields cycle a fixed option list with the
// left/right keys, mirroring the dropdowns of the web forms.
type formField struct {
	name     string
	label    string
	kind     fieldKind
	input    textinput.Model
	options  []string
	optIndex int
}

func newTextField(name, label, placeholder, value string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(value)
	return formField{name: name, label: label, kind: fieldText, input: ti}
}

func newEnumField(name, label string, options []string, optIndex int) formField {
	return formField{name: name, label: label, kind: fieldEnum, options: options, optIndex: optIndex}
}

// value returns the field's current raw value.
func (f *formField) value() string {
	if f.kind == fieldEnum {
		return f.options[f.optIndex]
	}
	return f.input.Value()
}

// cycle advances an enum field by delta, wrapping around.
func (f *formField) cycle(delta int) {
	if f.kind != fieldEnum {
		return
	}
	n := len(f.options)
	f.optIndex = ((f.optIndex+delta)%n + n) % n
}

// form is a focus-managed stack of fields.
type form struct {
	title  string
	fields []formField
	focus  int
}

func (f *form) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.fields {
		if i == f.focus && f.fields[i].kind == fieldText {
			cmd = f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
	return cmd
}

func (f *form) next() tea.Cmd {
	f.focus = (f.focus + 1) % len(f.fields)
	return f.syncFocus()
}

func (f *form) prev() tea.Cmd {
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	return f.syncFocus()
}

// handleKey routes a key to the focused field. Left/right cycle enum
// options; everything else feeds the text input.
func (f *form) handleKey(msg tea.KeyMsg) tea.Cmd {
	field := &f.fields[f.focus]
	switch msg.String() {
	case "left":
		if field.kind == fieldEnum {
			field.cycle(-1)
			return nil
		}
	case "right":
		if field.kind == fieldEnum {
			field.cycle(1)
			return nil
		}
	}
	if field.kind == fieldText {
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)
		return cmd
	}
	return nil
}

// value returns the named field's raw value.
func (f *form) value(name string) string {
	for i := range f.fields {
		if f.fields[i].name == name {
			return f.fields[i].value()
		}
	}
	return ""
}

// view renders the form with the focused field marked.
func (f *form) view(styles ui.Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(f.title))
	sb.WriteString("\n")
	for i := range f.fields {
		field := &f.fields[i]
		marker := "  "
		if i == f.focus {
			marker = styles.StatValue.Render("> ")
		}
		sb.WriteString(marker)
		sb.WriteString(styles.Label.Render(field.label))
		switch field.kind {
		case fieldEnum:
			opt := field.options[field.optIndex]
			if i == f.focus {
				sb.WriteString(styles.Bold.Render("< " + opt + " >"))
			} else {
				sb.WriteString(styles.Body.Render(opt))
			}
		default:
			sb.WriteString(field.input.View())
		}
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Muted.Render("tab: next field · enter: save · esc: cancel"))
	sb.WriteString("\n")
	return sb.String()
}

// newProductForm builds the add-product form with the same defaults
// the web form used.
func newProductForm() *form {
	f := &form{
		title: "Add New Product",
		fields: []formField{
			newTextField("name", "Product Name", "Enter product name", ""),
			newEnumField("category", "Category", types.Categories(), 0),
			newTextField("stock", "Stock", "0", ""),
			newTextField("price", "Price (₹)", "0.00", ""),
			newEnumField("gst", "GST", types.GSTOptions(), 3), // 18%
			newEnumField("condition", "Condition", types.Conditions(), 0),
		},
	}
	return f
}

// draftProduct assembles a Product draft from the form values. The id
// is left for the collection to assign.
func (f *form) draftProduct() types.Product {
	var p types.Product
	p = p.WithField("name", f.value("name"))
	p = p.WithField("category", f.value("category"))
	p = p.WithField("stock", f.value("stock"))
	p = p.WithField("price", f.value("price"))
	p = p.WithField("gst", f.value("gst"))
	p = p.WithField("condition", f.value("condition"))
	return p
}

// newMemberForm builds the add-member form; join date defaults to
// today.
func newMemberForm(now time.Time) *form {
	f := &form{
		title: "Add New Team Member",
		fields: []formField{
			newTextField("name", "Full Name", "Enter full name", ""),
			newTextField("email", "Email Address", "Enter email address", ""),
			newTextField("phone", "Phone Number", "Enter phone number", ""),
			newEnumField("role", "Role", types.Roles(), 2), // Employee
			newTextField("joinDate", "Join Date", types.DateOnly, now.Format(types.DateOnly)),
		},
	}
	return f
}

// draftMember assembles a TeamMember draft from the form values.
func (f *form) draftMember() types.TeamMember {
	var m types.TeamMember
	m = m.WithField("name", f.value("name"))
	m = m.WithField("email", f.value("email"))
	m = m.WithField("phone", f.value("phone"))
	m = m.WithField("role", f.value("role"))
	m = m.WithField("joinDate", f.value("joinDate"))
	return m
}
