// Package clock abstracts time for code that schedules deferred work.
// Production code injects Real(); tests inject a Fake and advance it
// deterministically instead of sleeping.
package clock

import "time"

// Clock is the minimal timing surface the gateway needs: reading the
// current time and scheduling a callback.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for duration d, then calls f in its own
	// goroutine. The returned Timer cancels the pending call with
	// Stop. If d <= 0, f runs immediately.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the
	// call stopped the timer before it fired.
	Stop() bool
}

type realClock struct{}

type realTimer struct{ t *time.Timer }

// Real returns a Clock backed by the time package.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

func (rt realTimer) Stop() bool { return rt.t.Stop() }
