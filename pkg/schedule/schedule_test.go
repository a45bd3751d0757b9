package schedule

import (
	"sync"
	"testing"
	"time"
)

func TestImmediateRunsSynchronously(t *testing.T) {
	ran := false
	accepted := Immediate{}.RequestIdle(func(d Deadline) {
		ran = true
		if d.TimeRemaining() <= 0 {
			t.Error("immediate slot should be unbounded")
		}
	})
	if !accepted {
		t.Fatal("immediate scheduler refused work")
	}
	if !ran {
		t.Fatal("callback did not run synchronously")
	}
}

func TestExpiredDeadline(t *testing.T) {
	if Expired().TimeRemaining() != 0 {
		t.Error("expired deadline should report zero remaining")
	}
}

func TestFrameSchedulerRunsCallbacks(t *testing.T) {
	s := NewFrameScheduler(
		WithFrameInterval(time.Millisecond),
		WithSlotBudget(time.Millisecond),
	)
	defer s.Stop()

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})

	for i := 0; i < 3; i++ {
		i := i
		s.RequestIdle(func(d Deadline) {
			mu.Lock()
			order = append(order, i)
			n := len(order)
			mu.Unlock()
			if n == 3 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callbacks did not all run")
	}

	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want FIFO", order)
		}
	}
}

func TestFrameSchedulerRefusesAfterStop(t *testing.T) {
	s := NewFrameScheduler(WithFrameInterval(time.Hour))
	s.Stop()

	ran := make(chan struct{}, 1)
	accepted := s.RequestIdle(func(Deadline) {
		ran <- struct{}{}
	})

	if accepted {
		t.Error("stopped scheduler accepted work")
	}
	select {
	case <-ran:
		t.Fatal("callback ran after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}
