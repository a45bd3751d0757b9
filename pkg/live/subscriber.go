package live

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second

	// pongWait is how long the read side tolerates silence before the
	// connection is considered dead. Must exceed pingInterval so a
	// healthy client's pongs keep extending it.
	pongWait = 60 * time.Second

	// maxInboundBytes caps inbound messages. Clients only send control
	// frames; anything larger is a misbehaving peer.
	maxInboundBytes = 512

	// sendBuffer bounds how many frames a slow client may lag before it
	// is dropped.
	sendBuffer = 32
)

// subscriber is one connected preview client. Frames are queued on a
// buffered channel and written by a dedicated goroutine so a stalled
// connection never blocks the broadcaster.
type subscriber struct {
	conn   *websocket.Conn
	logger *slog.Logger
	frames chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newSubscriber(conn *websocket.Conn, logger *slog.Logger) *subscriber {
	return &subscriber{
		conn:   conn,
		logger: logger,
		frames: make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
}

// send queues a frame for delivery. It reports false when the client's
// buffer is full or the subscriber is closed.
func (s *subscriber) send(frame []byte) bool {
	select {
	case <-s.done:
		return false
	case s.frames <- frame:
		return true
	default:
		return false
	}
}

// close marks the subscriber dead. Safe to call from any goroutine, any
// number of times: the broadcaster dropping a slow client and the write
// loop's own error path may race here.
func (s *subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// readLoop drains inbound messages so close frames and pongs are
// processed, and tears the subscriber down as soon as the peer goes
// away. Inbound payloads are discarded; clients have nothing to say.
func (s *subscriber) readLoop() {
	defer s.close()

	s.conn.SetReadLimit(maxInboundBytes)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop drains queued frames to the connection and keeps it alive
// with periodic pings. It returns when the subscriber is closed or a
// write fails.
func (s *subscriber) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer s.conn.Close()

	for {
		select {
		case <-s.done:
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeTimeout))
			return

		case frame := <-s.frames:
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					s.logger.Error("frame write failed", "error", err)
				}
				s.close()
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.close()
				return
			}
		}
	}
}
