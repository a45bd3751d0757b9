package live

import (
	"log/slog"
	"sync"
	"testing"
)

func TestSubscriberCloseConcurrent(t *testing.T) {
	// The broadcaster dropping a slow client races the write loop's own
	// error path; both may call close at the same instant. A double
	// channel close would panic and take the server down.
	for i := 0; i < 1000; i++ {
		sub := newSubscriber(nil, slog.Default())

		start := make(chan struct{})
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				sub.close()
			}()
		}
		close(start)
		wg.Wait()

		select {
		case <-sub.done:
		default:
			t.Fatal("subscriber not closed")
		}
	}
}

func TestSendAfterCloseRefused(t *testing.T) {
	sub := newSubscriber(nil, slog.Default())
	sub.close()

	if sub.send([]byte{0x01}) {
		t.Error("send accepted after close")
	}
}

func TestSendReportsFullBuffer(t *testing.T) {
	sub := newSubscriber(nil, slog.Default())

	frame := []byte{0x01}
	for i := 0; i < sendBuffer; i++ {
		if !sub.send(frame) {
			t.Fatalf("send %d refused below capacity", i)
		}
	}
	if sub.send(frame) {
		t.Error("send accepted beyond buffer capacity")
	}
}
