package weft

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
	"github.com/weft-dev/weft/pkg/metrics"
	"github.com/weft-dev/weft/pkg/schedule"
)

func page(text string) *element.Element {
	return element.Div(element.Class("app"),
		element.H1("Weft"),
		element.P(text),
	)
}

func TestRootRenderAndRerender(t *testing.T) {
	container := host.NewContainer("body")
	root := New(container, host.NewMemoryHost())

	if err := root.Render(page("one")); err != nil {
		t.Fatal(err)
	}
	if !root.Committed() {
		t.Fatal("no committed tree after render")
	}
	first := container.String()

	if err := root.Render(page("two")); err != nil {
		t.Fatal(err)
	}

	stats := root.LastStats()
	if stats.Placements != 0 || stats.Deletions != 0 {
		t.Errorf("rerender stats = %+v, want reuse only", stats)
	}
	if container.String() == first {
		t.Error("text change not applied")
	}
}

func TestRootWithFrameScheduler(t *testing.T) {
	sched := schedule.NewFrameScheduler(
		schedule.WithFrameInterval(time.Millisecond),
		schedule.WithSlotBudget(time.Millisecond),
	)
	defer sched.Stop()

	container := host.NewContainer("body")
	root := New(container, host.NewMemoryHost(), WithScheduler(sched))

	items := make([]*element.Element, 50)
	for i := range items {
		items[i] = element.Li(element.Textf("item %d", i))
	}

	if err := root.Render(element.Ul(items)); err != nil {
		t.Fatal(err)
	}

	// Same tree as a synchronous render.
	refContainer := host.NewContainer("body")
	ref := New(refContainer, host.NewMemoryHost())
	refItems := make([]*element.Element, 50)
	for i := range refItems {
		refItems[i] = element.Li(element.Textf("item %d", i))
	}
	if err := ref.Render(element.Ul(refItems)); err != nil {
		t.Fatal(err)
	}

	if container.String() != refContainer.String() {
		t.Error("paced render diverged from synchronous render")
	}
}

func TestRenderErrorsOnStoppedScheduler(t *testing.T) {
	sched := schedule.NewFrameScheduler()
	sched.Stop()

	container := host.NewContainer("body")
	root := New(container, host.NewMemoryHost(), WithScheduler(sched))

	errCh := make(chan error, 1)
	go func() {
		errCh <- root.Render(page("never"))
	}()

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("render on a stopped scheduler reported success")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("render on a stopped scheduler hung")
	}

	if root.Committed() {
		t.Error("aborted render published a baseline")
	}
}

func TestRootIndependence(t *testing.T) {
	hostA := host.NewContainer("body")
	hostB := host.NewContainer("body")
	rootA := New(hostA, host.NewMemoryHost())
	rootB := New(hostB, host.NewMemoryHost())

	if err := rootA.Render(element.Div(element.Span("a"))); err != nil {
		t.Fatal(err)
	}
	if err := rootB.Render(element.Div(element.P("b"))); err != nil {
		t.Fatal(err)
	}
	if err := rootA.Render(element.Div(element.Span("a2"))); err != nil {
		t.Fatal(err)
	}

	// B's baseline is unaffected by A's renders.
	if got := rootB.LastStats().Placements; got == 0 {
		t.Errorf("rootB stats overwritten: %+v", rootB.LastStats())
	}
	if hostB.String() != `body(div(p(#"b")))` {
		t.Errorf("rootB tree = %s", hostB.String())
	}
}

func TestRootRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg))

	container := host.NewContainer("body")
	root := New(container, host.NewMemoryHost(), WithMetrics(m))

	if err := root.Render(page("hello")); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, want := range []string{
		"weft_render_passes_total",
		"weft_render_units_total",
		"weft_render_effects_total",
	} {
		if !found[want] {
			t.Errorf("metric %s not registered", want)
		}
	}
}
