package schedule

import (
	"sync"
	"time"
)

const (
	// DefaultFrameInterval is the spacing between idle slots.
	DefaultFrameInterval = 16 * time.Millisecond

	// DefaultSlotBudget is the time budget granted per idle slot.
	DefaultSlotBudget = 5 * time.Millisecond
)

// FrameScheduler grants one idle slot per frame interval, each with a
// fixed time budget. Callbacks run serially on a single worker goroutine,
// preserving the engine's single-logical-thread model.
type FrameScheduler struct {
	frame time.Duration
	slot  time.Duration

	mu      sync.Mutex
	queue   []func(Deadline)
	wake    chan struct{}
	done    chan struct{}
	stopped bool
}

// FrameOption configures a FrameScheduler.
type FrameOption func(*FrameScheduler)

// WithFrameInterval sets the spacing between idle slots.
func WithFrameInterval(d time.Duration) FrameOption {
	return func(s *FrameScheduler) {
		s.frame = d
	}
}

// WithSlotBudget sets the time budget granted per slot.
func WithSlotBudget(d time.Duration) FrameOption {
	return func(s *FrameScheduler) {
		s.slot = d
	}
}

// NewFrameScheduler creates and starts a FrameScheduler.
func NewFrameScheduler(opts ...FrameOption) *FrameScheduler {
	s := &FrameScheduler{
		frame: DefaultFrameInterval,
		slot:  DefaultSlotBudget,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.loop()
	return s
}

// RequestIdle implements Scheduler. The callback runs during the next
// available frame's idle slot. A stopped scheduler refuses the request.
func (s *FrameScheduler) RequestIdle(cb func(Deadline)) bool {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, cb)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return true
}

// Stop shuts the scheduler down. Queued callbacks that have not run are
// dropped.
func (s *FrameScheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()
	close(s.done)
}

func (s *FrameScheduler) loop() {
	ticker := time.NewTicker(s.frame)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		case <-ticker.C:
		}

		for {
			cb := s.dequeue()
			if cb == nil {
				break
			}
			cb(slotDeadline{end: time.Now().Add(s.slot)})

			// One slot per frame: wait for the next tick before
			// granting more time.
			select {
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}
}

func (s *FrameScheduler) dequeue() func(Deadline) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil
	}
	cb := s.queue[0]
	s.queue = s.queue[1:]
	return cb
}
