package element

import "testing"

func TestElBasic(t *testing.T) {
	e := Div(Class("card"), ID("main"),
		H1("Title"),
		P("Content"),
	)

	if e.Type != "div" {
		t.Errorf("Type = %q, want div", e.Type)
	}
	if e.Props["class"] != "card" {
		t.Errorf("class = %v, want card", e.Props["class"])
	}
	if e.Props["id"] != "main" {
		t.Errorf("id = %v, want main", e.Props["id"])
	}
	if len(e.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(e.Children))
	}
	if e.Children[0].Type != "h1" || e.Children[1].Type != "p" {
		t.Errorf("child types = %q, %q", e.Children[0].Type, e.Children[1].Type)
	}
}

func TestElStringBecomesTextChild(t *testing.T) {
	e := Span("hello")

	if len(e.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(e.Children))
	}
	c := e.Children[0]
	if !c.IsText() {
		t.Fatalf("child is not a text element: %q", c.Type)
	}
	if c.TextValue() != "hello" {
		t.Errorf("TextValue = %q, want hello", c.TextValue())
	}
	if len(c.Children) != 0 {
		t.Errorf("text element has %d children, want 0", len(c.Children))
	}
}

func TestElNilArgsIgnored(t *testing.T) {
	var missing *Element
	e := Div(nil, missing, Span("a"))

	if len(e.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(e.Children))
	}
}

func TestElChildSlice(t *testing.T) {
	items := []*Element{Li("one"), Li("two"), nil, Li("three")}
	e := Ul(items)

	if len(e.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(e.Children))
	}
}

func TestTextf(t *testing.T) {
	e := Textf("count: %d", 7)
	if e.TextValue() != "count: 7" {
		t.Errorf("TextValue = %q", e.TextValue())
	}
}

func TestTextValueOnNonText(t *testing.T) {
	if got := Div().TextValue(); got != "" {
		t.Errorf("TextValue on div = %q, want empty", got)
	}
	var nilEl *Element
	if nilEl.IsText() {
		t.Error("nil element reported as text")
	}
}

func TestCloneCopiesProps(t *testing.T) {
	e := Div(Class("a"))
	c := e.Clone()
	c.Props["class"] = "b"

	if e.Props["class"] != "a" {
		t.Errorf("original mutated: class = %v", e.Props["class"])
	}
	if len(c.Children) != len(e.Children) {
		t.Errorf("children not carried over")
	}
}
