package element

// TextType is the reserved element type for raw text content.
// Text elements carry their string in Props[NodeValueProp] and have no
// children.
const TextType = "#text"

// NodeValueProp is the property key holding a text element's string value.
const NodeValueProp = "nodeValue"

// ChildrenProp is reserved: it never names a host property. Children are
// carried on the Element struct itself, but the key is still rejected by
// property diffing for compatibility with prop-map producers.
const ChildrenProp = "children"

// Props holds an element's properties (host attributes plus reserved keys).
type Props map[string]any

// Element is an immutable description of a desired node.
type Element struct {
	Type     string     // Host tag name, or TextType for raw text
	Props    Props      // Attributes; text elements carry NodeValueProp
	Children []*Element // Ordered; order is render order
}

// IsText reports whether the element is a reserved text element.
func (e *Element) IsText() bool {
	return e != nil && e.Type == TextType
}

// TextValue returns the string value of a text element, or "" for
// non-text elements.
func (e *Element) TextValue() string {
	if e == nil || e.Props == nil {
		return ""
	}
	if s, ok := e.Props[NodeValueProp].(string); ok {
		return s
	}
	return ""
}

// Clone returns a shallow copy of the element with a copied Props map.
// Children are shared; elements are treated as immutable so sharing is safe.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	props := make(Props, len(e.Props))
	for k, v := range e.Props {
		props[k] = v
	}
	return &Element{Type: e.Type, Props: props, Children: e.Children}
}
