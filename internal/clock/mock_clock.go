package clock

import (
	"sync"
	"time"
)

// Mock is a manually advanced clock for tests.
type Mock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*MockTicker
	waiters []waiter
}

type waiter struct {
	at time.Time
	ch chan time.Time
}

// NewMock returns a Mock reading start.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (c *Mock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After fires once Advance has moved the clock by at least d.
func (c *Mock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.now
		return ch
	}
	c.waiters = append(c.waiters, waiter{at: c.now.Add(d), ch: ch})
	return ch
}

func (c *Mock) NewTicker(d time.Duration) Ticker {
	t := &MockTicker{
		ch:     make(chan time.Time, 100),
		clock:  c,
		period: d,
	}
	c.mu.Lock()
	t.last = c.now
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Set moves the clock to t without firing anything.
func (c *Mock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d, firing due timers and tickers.
func (c *Mock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	pending := c.waiters[:0]
	for _, w := range c.waiters {
		if now.Before(w.at) {
			pending = append(pending, w)
			continue
		}
		w.ch <- now
	}
	c.waiters = pending
	tickers := append([]*MockTicker(nil), c.tickers...)
	c.mu.Unlock()

	for _, t := range tickers {
		t.tickUntil(now)
	}
}

// MockTicker is the Ticker returned by Mock.
type MockTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	clock   *Mock
	period  time.Duration
	last    time.Time
	stopped bool
}

func (t *MockTicker) C() <-chan time.Time {
	return t.ch
}

func (t *MockTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.stopped = true
		close(t.ch)
	}
}

func (t *MockTicker) tickUntil(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.period <= 0 {
		return
	}
	for !t.last.Add(t.period).After(now) {
		t.last = t.last.Add(t.period)
		select {
		case t.ch <- t.last:
		default:
		}
	}
}
