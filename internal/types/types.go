// Package types holds the record types shared by the Shippy dashboard:
// inventory products, team members, the salary singleton and the
// transient withdrawal request. All records serialize to the JSON
// shapes persisted by the store.
package types

import (
	"strings"

	"github.com/spf13/cast"
)

// DateOnly is the wire format for all calendar dates in the store.
const DateOnly = "2006-01-02"

// Product is a single inventory record. Products are independent;
// there are no foreign keys.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
	Price     float64 `json:"price"`
	GST       string  `json:"gst"`
	Condition string  `json:"condition"`
}

// GetID returns the record id.
func (p Product) GetID() string { return p.ID }

// WithID returns a copy with the id set. Ids are assigned once at
// creation and never reassigned.
func (p Product) WithID(id string) Product {
	p.ID = id
	return p
}

// Validate reports whether the required display fields are populated.
func (p Product) Validate() bool {
	return strings.TrimSpace(p.Name) != ""
}

// WithField returns a copy with the named field replaced. Values are
// coerced loosely, matching what a form widget would hand over; there
// is no range validation here.
func (p Product) WithField(field string, value any) Product {
	switch field {
	case "name":
		p.Name = cast.ToString(value)
	case "category":
		p.Category = cast.ToString(value)
	case "stock":
		p.Stock = cast.ToInt(value)
	case "price":
		p.Price = cast.ToFloat64(value)
	case "gst":
		p.GST = cast.ToString(value)
	case "condition":
		p.Condition = cast.ToString(value)
	}
	return p
}

// TeamMember is a single team directory record.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	JoinDate string `json:"joinDate"`
}

// GetID returns the record id.
func (m TeamMember) GetID() string { return m.ID }

// WithID returns a copy with the id set.
func (m TeamMember) WithID(id string) TeamMember {
	m.ID = id
	return m
}

// Validate reports whether the required display fields are populated.
// Team members need both a name and an email.
func (m TeamMember) Validate() bool {
	return strings.TrimSpace(m.Name) != "" && strings.TrimSpace(m.Email) != ""
}

// WithField returns a copy with the named field replaced.
func (m TeamMember) WithField(field string, value any) TeamMember {
	switch field {
	case "name":
		m.Name = cast.ToString(value)
	case "email":
		m.Email = cast.ToString(value)
	case "phone":
		m.Phone = cast.ToString(value)
	case "role":
		m.Role = cast.ToString(value)
	case "joinDate":
		m.JoinDate = cast.ToString(value)
	}
	return m
}

// SalaryState is the singleton earnings record. It is overwritten in
// place and never deleted.
type SalaryState struct {
	CurrentSalary    float64 `json:"currentSalary"`
	NextSalaryDate   string  `json:"nextSalaryDate"`
	NextSalaryAmount float64 `json:"nextSalaryAmount"`
	TotalEarnings    float64 `json:"totalEarnings"`
	LastUpdate       string  `json:"lastUpdate"`
}

// WithdrawalMethod selects how a withdrawal should be paid out.
type WithdrawalMethod string

const (
	MethodBank WithdrawalMethod = "bank"
	MethodUPI  WithdrawalMethod = "upi"
	MethodCard WithdrawalMethod = "card"
)

// WithdrawalRequest is the transient payload assembled by the
// withdrawal wizard. It lives for one modal session and is discarded
// afterwards, whether cancelled or failed; it is never persisted.
type WithdrawalRequest struct {
	Amount float64          `json:"amount"`
	Method WithdrawalMethod `json:"method"`

	// Bank transfer details
	AccountNumber     string `json:"accountNumber,omitempty"`
	IFSCCode          string `json:"ifscCode,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`

	// UPI details
	UPIID string `json:"upiId,omitempty"`

	// Card details
	CardNumber string `json:"cardNumber,omitempty"`
}
