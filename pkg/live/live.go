package live

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	weft "github.com/weft-dev/weft"
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
	"github.com/weft-dev/weft/pkg/protocol"
	"github.com/weft-dev/weft/pkg/snapshot"
)

// Server renders element trees into an in-memory host tree and streams
// the resulting patch frames to connected preview clients. New clients
// bootstrap from a full HTML snapshot, then apply frames in sequence.
type Server struct {
	logger   *slog.Logger
	store    snapshot.Store
	snapID   string
	rootOpts []weft.Option
	upgrader websocket.Upgrader

	mu        sync.Mutex
	container *host.MemNode
	rec       *host.RecordingHost
	root      *weft.Root
	lastSeq   uint64

	subsMu sync.Mutex
	subs   map[*subscriber]struct{}
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithStore sets the snapshot persistence backend. Defaults to an
// in-memory store.
func WithStore(store snapshot.Store) Option {
	return func(s *Server) { s.store = store }
}

// WithRootOptions passes options through to the underlying render root,
// e.g. a scheduler or metrics registry.
func WithRootOptions(opts ...weft.Option) Option {
	return func(s *Server) { s.rootOpts = opts }
}

// NewServer creates a live-preview server mounted on a fresh body
// container.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger: slog.Default(),
		snapID: snapshot.NewID(),
		subs:   make(map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = snapshot.NewMemoryStore()
	}

	s.container = host.NewContainer("body")
	s.rec = host.NewRecordingHost(host.NewMemoryHost())
	s.rec.RegisterRoot(s.container)
	s.root = weft.New(s.container, s.rec, s.rootOpts...)
	return s
}

// Render renders el, persists a fresh snapshot, and broadcasts the
// resulting patch frame to all connected clients.
func (s *Server) Render(ctx context.Context, el *element.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.root.Render(el); err != nil {
		return err
	}

	frame := s.rec.Flush()
	if frame == nil {
		return nil
	}
	s.lastSeq = frame.Seq

	snap := &snapshot.Snapshot{
		ID:        s.snapID,
		Seq:       frame.Seq,
		HTML:      host.RenderHTML(s.container),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, snap); err != nil {
		// A failed snapshot save doesn't invalidate the live stream.
		s.logger.Error("snapshot save failed", "id", s.snapID, "error", err)
	}

	s.broadcast(protocol.EncodeFrame(frame))
	return nil
}

// LastSeq returns the sequence number of the most recent frame.
func (s *Server) LastSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeq
}

// Handler returns the HTTP handler serving the preview page, the
// websocket patch stream, health and metrics endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	html := host.RenderHTML(s.container)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<!DOCTYPE html><html>" + html + "</html>"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sub := newSubscriber(conn, s.logger)
	s.subsMu.Lock()
	s.subs[sub] = struct{}{}
	s.subsMu.Unlock()

	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	go sub.readLoop()
	go func() {
		sub.writeLoop()
		s.subsMu.Lock()
		delete(s.subs, sub)
		s.subsMu.Unlock()
		s.logger.Info("client disconnected", "remote", conn.RemoteAddr())
	}()
}

// broadcast fans a frame out to all subscribers. Slow clients whose send
// buffers are full are dropped rather than allowed to stall the render
// loop.
func (s *Server) broadcast(frame []byte) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for sub := range s.subs {
		if !sub.send(frame) {
			sub.close()
			delete(s.subs, sub)
			s.logger.Warn("dropped slow client", "remote", sub.conn.RemoteAddr())
		}
	}
}

// Close disconnects all clients and closes the snapshot store.
func (s *Server) Close() error {
	s.subsMu.Lock()
	for sub := range s.subs {
		sub.close()
		delete(s.subs, sub)
	}
	s.subsMu.Unlock()
	return s.store.Close()
}
