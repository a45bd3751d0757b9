package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/weft-dev/weft/pkg/fiber"
)

// Config configures the render metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "weft").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass and commit duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the render metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "weft",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// RenderMetrics collects Prometheus metrics for render passes.
//
// Metrics collected:
//   - weft_render_passes_total: Counter of passes by outcome
//   - weft_render_units_total: Counter of units of work performed
//   - weft_render_effects_total: Counter of committed effects by kind
//   - weft_render_yields_total: Counter of cooperative yields
//   - weft_render_pass_duration_seconds: Histogram of full pass duration
//   - weft_render_commit_duration_seconds: Histogram of commit phase duration
type RenderMetrics struct {
	passesTotal    *prometheus.CounterVec
	unitsTotal     prometheus.Counter
	effectsTotal   *prometheus.CounterVec
	yieldsTotal    prometheus.Counter
	passDuration   prometheus.Histogram
	commitDuration prometheus.Histogram
}

// New creates RenderMetrics registered with the configured registry.
func New(opts ...Option) *RenderMetrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &RenderMetrics{
		passesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_passes_total",
			Help:        "Total number of render passes by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		unitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_units_total",
			Help:        "Total units of work performed by the work loop",
			ConstLabels: config.ConstLabels,
		}),

		effectsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_effects_total",
			Help:        "Total committed effects by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"effect"}),

		yieldsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_yields_total",
			Help:        "Total cooperative yields between units of work",
			ConstLabels: config.ConstLabels,
		}),

		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_pass_duration_seconds",
			Help:        "Full render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		commitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_commit_duration_seconds",
			Help:        "Commit phase duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// ObservePass records a completed pass and its stats.
func (m *RenderMetrics) ObservePass(stats fiber.PassStats, passSeconds float64, err error) {
	if m == nil {
		return
	}

	outcome := "committed"
	if err != nil {
		outcome = "aborted"
	}
	m.passesTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		return
	}

	m.unitsTotal.Add(float64(stats.UnitsOfWork))
	m.yieldsTotal.Add(float64(stats.Yields))
	m.effectsTotal.WithLabelValues("placement").Add(float64(stats.Placements))
	m.effectsTotal.WithLabelValues("update").Add(float64(stats.Updates))
	m.effectsTotal.WithLabelValues("deletion").Add(float64(stats.Deletions))
	m.passDuration.Observe(passSeconds)
	m.commitDuration.Observe(stats.CommitDuration.Seconds())
}
