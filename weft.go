// Package weft is the public API for the Weft incremental renderer.
//
// Weft maintains a host node tree from a declarative element tree,
// re-rendering efficiently by diffing against the previously committed
// render. Work is performed cooperatively: the fiber work loop processes
// one element at a time and yields between units so a large tree never
// monopolizes the host environment.
//
// Usage:
//
//	container := host.NewContainer("body")
//	root := weft.New(container, host.NewMemoryHost())
//
//	err := root.Render(
//	    element.Div(element.Class("app"),
//	        element.H1("Hello"),
//	        element.P("rendered by weft"),
//	    ),
//	)
package weft

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/fiber"
	"github.com/weft-dev/weft/pkg/host"
	"github.com/weft-dev/weft/pkg/metrics"
	"github.com/weft-dev/weft/pkg/schedule"
)

// Re-exports for the common case, so most applications only import weft
// and element.
type (
	// Element is the virtual element model (see pkg/element).
	Element = element.Element

	// Props holds element properties.
	Props = element.Props

	// PassStats summarizes one render pass (see pkg/fiber).
	PassStats = fiber.PassStats
)

// Root owns the render state for one container: the last committed fiber
// tree and the scheduler pacing its passes. Independent containers get
// independent Roots; nothing is shared between them.
//
// A Root serializes its render passes: a pass runs to its terminal commit
// (or fatal error) before the next may begin.
type Root struct {
	container host.Node
	renderer  host.Renderer
	sched     schedule.Scheduler
	logger    *slog.Logger
	metrics   *metrics.RenderMetrics
	tracer    trace.Tracer

	mu        sync.Mutex
	committed *fiber.Fiber
	lastStats fiber.PassStats
}

// Option configures a Root.
type Option func(*Root)

// WithScheduler sets the idle scheduler pacing render work.
// Default: schedule.Immediate (synchronous, unbounded slots).
func WithScheduler(s schedule.Scheduler) Option {
	return func(r *Root) {
		r.sched = s
	}
}

// WithLogger sets the logger for render diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Root) {
		r.logger = l
	}
}

// WithMetrics records pass statistics to the given Prometheus metrics.
func WithMetrics(m *metrics.RenderMetrics) Option {
	return func(r *Root) {
		r.metrics = m
	}
}

// WithTracer traces render passes with OpenTelemetry.
func WithTracer(t trace.Tracer) Option {
	return func(r *Root) {
		r.tracer = t
	}
}

// New creates a Root rendering into container through renderer.
func New(container host.Node, renderer host.Renderer, opts ...Option) *Root {
	r := &Root{
		container: container,
		renderer:  renderer,
		sched:     schedule.Immediate{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render reconciles el against the last committed tree and applies the
// resulting effects to the host tree. It blocks until the pass commits,
// pacing the walk through the Root's scheduler, and returns the fatal
// error if the pass aborted (in which case the previous baseline is
// untouched).
func (r *Root) Render(el *element.Element) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var span trace.Span
	if r.tracer != nil {
		_, span = r.tracer.Start(context.Background(), "weft.render")
		defer span.End()
	}

	pass := fiber.NewPass(r.container, r.renderer, el, r.committed,
		fiber.WithLogger(r.logger))

	start := time.Now()
	err := r.drive(pass)
	elapsed := time.Since(start)

	stats := pass.Stats()
	r.lastStats = stats
	r.metrics.ObservePass(stats, elapsed.Seconds(), err)

	if span != nil {
		span.SetAttributes(
			attribute.Int("weft.units_of_work", stats.UnitsOfWork),
			attribute.Int("weft.placements", stats.Placements),
			attribute.Int("weft.updates", stats.Updates),
			attribute.Int("weft.deletions", stats.Deletions),
			attribute.Int("weft.yields", stats.Yields),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}

	if err != nil {
		r.logger.Error("render pass aborted", "error", err)
		return err
	}

	r.committed = pass.CommittedRoot()
	r.logger.Debug("render pass committed",
		"units", stats.UnitsOfWork,
		"placements", stats.Placements,
		"updates", stats.Updates,
		"deletions", stats.Deletions,
		"yields", stats.Yields,
		"commit", stats.CommitDuration,
	)
	return nil
}

// drive runs the pass across idle slots until it terminates. A scheduler
// that refuses work (stopped mid-pass or before it) aborts the pass
// instead of stranding the caller.
func (r *Root) drive(pass *fiber.Pass) error {
	done := make(chan error, 1)

	var request func()
	request = func() {
		accepted := r.sched.RequestIdle(func(d schedule.Deadline) {
			finished, err := pass.Run(d)
			if err != nil {
				done <- err
				return
			}
			if finished {
				done <- nil
				return
			}
			request()
		})
		if !accepted {
			done <- errors.New("E005")
		}
	}
	request()

	return <-done
}

// LastStats returns the statistics of the most recent pass (committed or
// aborted).
func (r *Root) LastStats() fiber.PassStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastStats
}

// Committed reports whether the root has a committed tree.
func (r *Root) Committed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.committed != nil
}
