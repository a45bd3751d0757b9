package fiber

import (
	"strings"
	"testing"

	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
)

func TestCommitPlacesParentsBeforeChildren(t *testing.T) {
	h := newOpsHost()
	container := host.NewContainer("body")

	renderOnce(t, container, h, element.Div(element.Span("hi")), nil)

	var appends []string
	for _, op := range h.ops {
		if strings.HasPrefix(op, "append") {
			appends = append(appends, op)
		}
	}

	want := []string{
		"append body > div",
		"append div > span",
		`append span > #"hi"`,
	}
	if len(appends) != len(want) {
		t.Fatalf("appends = %v", appends)
	}
	for i := range want {
		if appends[i] != want[i] {
			t.Errorf("append[%d] = %q, want %q", i, appends[i], want[i])
		}
	}
}

func TestDeletionRemovesChildrenBeforeNode(t *testing.T) {
	h := newOpsHost()
	container := host.NewContainer("body")

	committed, _ := renderOnce(t, container, h,
		element.Div(
			element.Span("keep"),
			element.P(element.Span("deep")),
		), nil)

	h.ops = nil
	renderOnce(t, container, h, element.Div(element.Span("keep")), committed)

	var removes []string
	for _, op := range h.ops {
		if strings.HasPrefix(op, "remove ") {
			removes = append(removes, op)
		}
	}

	// Bottom-up: the deep text detaches first, the deleted p last.
	want := []string{
		`remove span < #"deep"`,
		"remove p < span",
		"remove div < p",
	}
	if len(removes) != len(want) {
		t.Fatalf("removes = %v", removes)
	}
	for i := range want {
		if removes[i] != want[i] {
			t.Errorf("remove[%d] = %q, want %q", i, removes[i], want[i])
		}
	}
}

func TestUpdateDiffsProperties(t *testing.T) {
	h := host.NewMemoryHost()
	container := host.NewContainer("body")

	committed, _ := renderOnce(t, container, h,
		element.Div(element.Class("old"), element.ID("keep"), element.Attr{Key: "title", Value: "gone"}),
		nil)
	div := container.Children[0]

	renderOnce(t, container, h,
		element.Div(element.Class("new"), element.ID("keep"), element.Attr{Key: "lang", Value: "en"}),
		committed)

	if got := div.Props["class"]; got != "new" {
		t.Errorf("class = %v, want new", got)
	}
	if got := div.Props["id"]; got != "keep" {
		t.Errorf("id = %v, want keep", got)
	}
	if _, ok := div.Props["title"]; ok {
		t.Error("stale title attribute was not removed")
	}
	if got := div.Props["lang"]; got != "en" {
		t.Errorf("lang = %v, want en", got)
	}
}

func TestEventPropsNeverReachHost(t *testing.T) {
	h := host.NewMemoryHost()
	container := host.NewContainer("body")

	renderOnce(t, container, h,
		element.Div(element.Attr{Key: "onClick", Value: func() {}}, element.Class("x")),
		nil)

	div := container.Children[0]
	if _, ok := div.Props["onClick"]; ok {
		t.Error("event handler prop leaked into the host node")
	}
	if div.Props["class"] != "x" {
		t.Error("regular prop missing")
	}
}

func TestTextUpdateOnlyWhenChanged(t *testing.T) {
	h := newOpsHost()
	container := host.NewContainer("body")

	committed, _ := renderOnce(t, container, h, element.Div(element.Span("same")), nil)

	h.ops = nil
	committed, _ = renderOnce(t, container, h, element.Div(element.Span("same")), committed)
	for _, op := range h.ops {
		if strings.HasPrefix(op, "setText") {
			t.Errorf("unchanged text triggered %q", op)
		}
	}

	h.ops = nil
	renderOnce(t, container, h, element.Div(element.Span("changed")), committed)
	found := false
	for _, op := range h.ops {
		if op == `setText "changed"` {
			found = true
		}
	}
	if !found {
		t.Errorf("changed text did not reach the host: %v", h.ops)
	}
}

func TestPropsEqual(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{"a", "a", true},
		{"a", "b", false},
		{1, 1, true},
		{1, 2, false},
		{1, "1", false},
		{int64(5), int64(5), true},
		{1.5, 1.5, true},
		{true, true, true},
		{true, false, false},
		{nil, nil, true},
		{nil, "x", false},
		{[]int{1, 2}, []int{1, 2}, true},
		{[]int{1, 2}, []int{2, 1}, false},
	}

	for _, tc := range cases {
		if got := propsEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("propsEqual(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
