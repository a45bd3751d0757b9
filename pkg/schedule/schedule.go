package schedule

import "time"

// Deadline reports how much of the current idle slot's budget remains.
type Deadline interface {
	// TimeRemaining returns the remaining time in the slot. It never
	// returns a negative duration.
	TimeRemaining() time.Duration
}

// Scheduler grants idle slots to cooperative work.
type Scheduler interface {
	// RequestIdle schedules cb to run when the host has spare time,
	// passing the slot's deadline. Callbacks for one scheduler run
	// serially, never concurrently. It reports whether the callback was
	// accepted; a stopped scheduler refuses work and the callback will
	// never run.
	RequestIdle(cb func(Deadline)) bool
}

// slotDeadline is a wall-clock deadline.
type slotDeadline struct {
	end time.Time
}

func (d slotDeadline) TimeRemaining() time.Duration {
	r := time.Until(d.end)
	if r < 0 {
		return 0
	}
	return r
}

// unbounded is a deadline that never expires.
type unbounded struct{}

func (unbounded) TimeRemaining() time.Duration {
	return time.Hour
}

// Unbounded returns a Deadline that never expires.
func Unbounded() Deadline {
	return unbounded{}
}

// Expired returns a Deadline with no remaining time. Useful in tests to
// force a yield after every unit of work.
func Expired() Deadline {
	return slotDeadline{end: time.Now()}
}

// Immediate is a Scheduler that grants an unbounded slot synchronously on
// the caller's goroutine. It is used by tests, the CLI, and anywhere
// incremental pacing is not wanted.
type Immediate struct{}

// RequestIdle implements Scheduler. It always accepts.
func (Immediate) RequestIdle(cb func(Deadline)) bool {
	cb(unbounded{})
	return true
}
