package sortable

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from running. It reports whether the call was
	// still pending.
	Stop() bool
}

// Scheduler defers work, like a browser's setTimeout. Hosts with their own
// event loop should supply a Scheduler that posts onto it.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler runs deferred work on runtime timers.
var SystemScheduler Scheduler = timeScheduler{}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
