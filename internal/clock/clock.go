// Package clock supplies the wall-clock source used by request handlers.
package clock

import "time"

// Clock provides time to the application.
type Clock interface {
	Now() time.Time
}

// System reads the operating system clock, always in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant. Tests use it.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f).UTC() }
