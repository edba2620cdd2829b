// Package clock abstracts time so backups, change timestamps and the file
// watcher's debounce can be driven by tests.
package clock

import (
	"time"
)

// Clock is the time source used across hyprconf.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time                         { return time.Now() }
func (System) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (System) NewTicker(d time.Duration) Ticker {
	return &systemTicker{time.NewTicker(d)}
}

type systemTicker struct{ *time.Ticker }

func (t *systemTicker) C() <-chan time.Time { return t.Ticker.C }
func (t *systemTicker) Stop()               { t.Ticker.Stop() }

// Or returns c, or the wall clock when c is nil.
func Or(c Clock) Clock {
	if c == nil {
		return System{}
	}
	return c
}
