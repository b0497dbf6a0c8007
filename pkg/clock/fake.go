package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a controllable Clock for tests. Time only moves when Advance
// is called; due callbacks run synchronously on the advancing
// goroutine, in schedule order.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	pending []*fakeTimer
	seq     int
}

type fakeTimer struct {
	clk     *Fake
	when    time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewFake returns a Fake positioned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fake) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	t := &fakeTimer{clk: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.seq++
	c.pending = append(c.pending, t)
	c.mu.Unlock()

	if d <= 0 {
		c.Advance(0)
	}
	return t
}

// Advance moves the clock forward by d and fires every timer that
// comes due, earliest first.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	deadline := c.now

	var due []*fakeTimer
	var rest []*fakeTimer
	for _, t := range c.pending {
		if !t.stopped && !t.when.After(deadline) {
			// Marked under the lock so a concurrent Stop sees it.
			t.fired = true
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.pending = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].when.Equal(due[j].when) {
			return due[i].seq < due[j].seq
		}
		return due[i].when.Before(due[j].when)
	})
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
