// Package clock holds the simulated current date.
package clock

import "github.com/heartmarshall/vaxsim/internal/domain"

// Clock is the simulated calendar. It only moves forward.
type Clock struct {
	today domain.Date
}

// New creates a clock set to start. The start date must be valid.
func New(start domain.Date) *Clock {
	return &Clock{today: start}
}

// Today returns the current simulated date.
func (c *Clock) Today() domain.Date {
	return c.today
}

// Advance moves the clock to date. Returns domain.ErrInvalidDate if date is
// not a calendar day or lies before the current date; the clock is left
// unchanged in that case. Advancing to the current date is allowed.
func (c *Clock) Advance(date domain.Date) error {
	if !date.IsValid() || date.Before(c.today) {
		return domain.ErrInvalidDate
	}
	c.today = date
	return nil
}
