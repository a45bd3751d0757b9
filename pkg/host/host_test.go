package host

import (
	"strings"
	"testing"
)

func TestMemoryHostTree(t *testing.T) {
	h := NewMemoryHost()
	body := NewContainer("body")

	div := h.CreateContainer("div")
	h.SetProperty(div, "class", "card")
	span := h.CreateLeaf("hi")
	h.AppendChild(div, span)
	h.AppendChild(body, div)

	if got, want := body.String(), `body(div[class=card](#"hi"))`; got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}

	h.SetText(span, "bye")
	h.RemoveProperty(div, "class")
	if got, want := body.String(), `body(div(#"bye"))`; got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}

	h.RemoveChild(body, div)
	if got := body.String(); got != "body" {
		t.Errorf("tree = %s, want body", got)
	}
	// Removing an already detached child is a no-op.
	h.RemoveChild(body, div)
}

func TestMemoryHostLeafGuards(t *testing.T) {
	h := NewMemoryHost()

	leaf := h.CreateLeaf("x")
	if !h.IsLeaf(leaf) {
		t.Error("leaf not reported as leaf")
	}
	h.SetProperty(leaf, "class", "nope")
	if leaf.(*MemNode).Props != nil {
		t.Error("property stored on leaf")
	}

	div := h.CreateContainer("div")
	if h.IsLeaf(div) {
		t.Error("container reported as leaf")
	}
	h.SetText(div, "nope")
	if div.(*MemNode).Text != "" {
		t.Error("text stored on container")
	}
}

func TestRenderHTML(t *testing.T) {
	h := NewMemoryHost()
	body := NewContainer("body")

	div := h.CreateContainer("div")
	h.SetProperty(div, "class", "app")
	h.SetProperty(div, "id", "main")
	h.AppendChild(div, h.CreateLeaf("a < b & c"))
	h.AppendChild(body, div)

	got := RenderHTML(body)
	want := `<body><div class="app" id="main">a &lt; b &amp; c</div></body>`
	if got != want {
		t.Errorf("html = %s, want %s", got, want)
	}
}

func TestRenderHTMLBooleanAndVoid(t *testing.T) {
	h := NewMemoryHost()
	form := NewContainer("form")

	input := h.CreateContainer("input")
	h.SetProperty(input, "disabled", true)
	h.SetProperty(input, "hidden", false)
	h.SetProperty(input, "value", `say "hi"`)
	h.AppendChild(form, input)
	h.AppendChild(form, h.CreateContainer("br"))

	got := RenderHTML(form)
	want := `<form><input disabled value="say &quot;hi&quot;"><br></form>`
	if got != want {
		t.Errorf("html = %s, want %s", got, want)
	}
}

func TestWriteHTML(t *testing.T) {
	body := NewContainer("body")
	var b strings.Builder
	if err := WriteHTML(&b, body); err != nil {
		t.Fatal(err)
	}
	if b.String() != "<body></body>" {
		t.Errorf("html = %s", b.String())
	}
}
