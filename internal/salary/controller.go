// Package salary manages the singleton earnings record: seeding,
// automatic payday roll-forward, staged single-field edits and the
// derived countdown metrics shown on the salary tab.
package salary

import (
	"math"
	"time"

	"github.com/spf13/cast"

	"shippy/internal/logging"
	"shippy/internal/store"
	"shippy/internal/types"
)

// Editable field names, matching the JSON keys of types.SalaryState.
const (
	FieldCurrentSalary    = "currentSalary"
	FieldNextSalaryDate   = "nextSalaryDate"
	FieldNextSalaryAmount = "nextSalaryAmount"
	FieldTotalEarnings    = "totalEarnings"
)

// Controller owns the SalaryState singleton. At most one field is
// staged for editing at a time; staging a new field abandons any
// unsaved buffer for the previous one.
type Controller struct {
	st           *store.Store
	state        types.SalaryState
	editingField string
	buffer       string
	now          func() time.Time
	log          *logging.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Open loads the salary singleton, seeding fixed defaults on first
// load and rolling nextSalaryDate forward if it has already passed.
// The rolled state is persisted before anything renders.
func Open(st *store.Store, opts ...Option) (*Controller, error) {
	c := &Controller{
		st:  st,
		now: time.Now,
		log: logging.Get(logging.CategorySalary),
	}
	for _, opt := range opts {
		opt(c)
	}

	state, err := store.LoadOrSeed(st, store.KeySalary, types.DefaultSalaryState(c.now()))
	if err != nil {
		return nil, err
	}
	c.state = state
	c.autoAdvance()
	return c, nil
}

// autoAdvance rolls nextSalaryDate to the 25th of the month after
// today when the stored date is already in the past.
func (c *Controller) autoAdvance() {
	next, err := time.Parse(types.DateOnly, c.state.NextSalaryDate)
	if err != nil {
		return
	}
	today := c.now()
	if !today.After(next) {
		return
	}

	rolled := time.Date(today.Year(), today.Month()+1, 25, 0, 0, 0, 0, today.Location())
	c.state.NextSalaryDate = rolled.Format(types.DateOnly)
	c.persist()
	c.log.Info("next salary date rolled forward to %s", c.state.NextSalaryDate)
}

// State returns the current salary state.
func (c *Controller) State() types.SalaryState {
	return c.state
}

// Edit stages the named field for editing, loading its current value
// into the buffer. Any previously staged field is abandoned.
func (c *Controller) Edit(field string) {
	c.editingField = field
	switch field {
	case FieldCurrentSalary:
		c.buffer = cast.ToString(c.state.CurrentSalary)
	case FieldNextSalaryDate:
		c.buffer = c.state.NextSalaryDate
	case FieldNextSalaryAmount:
		c.buffer = cast.ToString(c.state.NextSalaryAmount)
	case FieldTotalEarnings:
		c.buffer = cast.ToString(c.state.TotalEarnings)
	default:
		c.editingField = ""
		c.buffer = ""
	}
}

// EditingField returns the staged field name, or "".
func (c *Controller) EditingField() string {
	return c.editingField
}

// Buffer returns the staged raw value.
func (c *Controller) Buffer() string {
	return c.buffer
}

// SetBuffer replaces the staged raw value.
func (c *Controller) SetBuffer(v string) {
	c.buffer = v
}

// Commit writes the staged buffer into the named field, stamps
// lastUpdate with today's date and persists. Numeric fields coerce the
// way a number widget would: garbage becomes zero.
func (c *Controller) Commit(field string) {
	if c.editingField != field {
		return
	}
	switch field {
	case FieldCurrentSalary:
		c.state.CurrentSalary = cast.ToFloat64(c.buffer)
	case FieldNextSalaryDate:
		c.state.NextSalaryDate = c.buffer
	case FieldNextSalaryAmount:
		c.state.NextSalaryAmount = cast.ToFloat64(c.buffer)
	case FieldTotalEarnings:
		c.state.TotalEarnings = cast.ToFloat64(c.buffer)
	default:
		return
	}
	c.state.LastUpdate = c.now().Format(types.DateOnly)
	c.persist()
	c.editingField = ""
	c.buffer = ""
}

// Cancel discards the staged buffer without touching persisted state.
func (c *Controller) Cancel() {
	c.editingField = ""
	c.buffer = ""
}

// DaysUntilNextSalary returns the whole days remaining until the next
// payday, rounding partial days up. Past dates yield zero or negative.
func (c *Controller) DaysUntilNextSalary() int {
	next, err := time.Parse(types.DateOnly, c.state.NextSalaryDate)
	if err != nil {
		return 0
	}
	diff := next.Sub(c.now())
	return int(math.Ceil(diff.Hours() / 24))
}

// MonthlyProgress returns how far through the 30-day pay cycle today
// is, as a rounded percentage.
func (c *Controller) MonthlyProgress() int {
	days := c.DaysUntilNextSalary()
	if days < 0 {
		days = 0
	}
	return int(math.Round(float64(30-days) / 30 * 100))
}

// AverageMonthly returns total earnings averaged over the five months
// of recorded history.
func (c *Controller) AverageMonthly() int {
	return int(math.Round(c.state.TotalEarnings / 5))
}

func (c *Controller) persist() {
	if err := store.Save(c.st, store.KeySalary, c.state); err != nil {
		c.log.Error("save failed: %v", err)
	}
}
