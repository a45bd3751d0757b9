// Package metrics exposes Prometheus metrics for the render engine.
//
// RenderMetrics counts render passes, units of work, effects by kind, and
// cooperative yields, and observes pass and commit durations. Wire it into
// a root with weft.WithMetrics and scrape it from the live server's
// /metrics endpoint.
package metrics
