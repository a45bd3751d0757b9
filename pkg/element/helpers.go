package element

import "fmt"

// Attr is a single property to set on an element.
type Attr struct {
	Key   string
	Value any
}

// El creates a new element with the given type.
// Arguments can be: nil, Attr, []Attr, Props, *Element, []*Element, or
// string (wrapped as a text child). Nil arguments are ignored so callers
// can build trees conditionally.
func El(typ string, args ...any) *Element {
	e := &Element{
		Type:     typ,
		Props:    make(Props),
		Children: make([]*Element, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.Key != "" {
				e.Props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					e.Props[a.Key] = a.Value
				}
			}
		case Props:
			for k, val := range v {
				e.Props[k] = val
			}
		case *Element:
			if v != nil {
				e.Children = append(e.Children, v)
			}
		case []*Element:
			for _, c := range v {
				if c != nil {
					e.Children = append(e.Children, c)
				}
			}
		case string:
			e.Children = append(e.Children, Text(v))
		default:
			panic(fmt.Sprintf("element: unsupported argument type %T", arg))
		}
	}

	return e
}

// Text creates a reserved text element carrying the given string.
func Text(content string) *Element {
	return &Element{
		Type:  TextType,
		Props: Props{NodeValueProp: content},
	}
}

// Textf creates a text element from a format string.
func Textf(format string, args ...any) *Element {
	return Text(fmt.Sprintf(format, args...))
}

// Class is shorthand for the "class" attribute.
func Class(v string) Attr { return Attr{Key: "class", Value: v} }

// ID is shorthand for the "id" attribute.
func ID(v string) Attr { return Attr{Key: "id", Value: v} }

// Common HTML element constructors.
func Div(args ...any) *Element    { return El("div", args...) }
func Span(args ...any) *Element   { return El("span", args...) }
func P(args ...any) *Element      { return El("p", args...) }
func H1(args ...any) *Element     { return El("h1", args...) }
func H2(args ...any) *Element     { return El("h2", args...) }
func Ul(args ...any) *Element     { return El("ul", args...) }
func Li(args ...any) *Element     { return El("li", args...) }
func Button(args ...any) *Element { return El("button", args...) }
func A(args ...any) *Element      { return El("a", args...) }
func Pre(args ...any) *Element    { return El("pre", args...) }
