package host

import (
	"fmt"
	"sort"
	"strings"
)

// MemNode is a DOM-like in-memory node. Leaf nodes carry Text and no
// children; container nodes carry a Tag, Props and an ordered child list.
type MemNode struct {
	Tag      string
	Text     string
	Leaf     bool
	Props    map[string]any
	Children []*MemNode
}

// MemoryHost implements Renderer over MemNode trees. It is the reference
// host used by the engine's tests and by the HTML and terminal renderers.
type MemoryHost struct{}

// NewMemoryHost returns a MemoryHost.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{}
}

// NewContainer returns a detached container MemNode suitable as a render
// root ("the element you mount into").
func NewContainer(tag string) *MemNode {
	return &MemNode{Tag: tag, Props: make(map[string]any)}
}

// CreateLeaf implements Renderer.
func (h *MemoryHost) CreateLeaf(text string) Node {
	return &MemNode{Leaf: true, Text: text}
}

// CreateContainer implements Renderer.
func (h *MemoryHost) CreateContainer(typ string) Node {
	return &MemNode{Tag: typ, Props: make(map[string]any)}
}

// SetProperty implements Renderer.
func (h *MemoryHost) SetProperty(n Node, key string, value any) {
	mn := n.(*MemNode)
	if mn.Leaf {
		return
	}
	if mn.Props == nil {
		mn.Props = make(map[string]any)
	}
	mn.Props[key] = value
}

// RemoveProperty implements Renderer.
func (h *MemoryHost) RemoveProperty(n Node, key string) {
	mn := n.(*MemNode)
	delete(mn.Props, key)
}

// SetText implements Renderer.
func (h *MemoryHost) SetText(n Node, text string) {
	mn := n.(*MemNode)
	if !mn.Leaf {
		return
	}
	mn.Text = text
}

// AppendChild implements Renderer.
func (h *MemoryHost) AppendChild(parent, child Node) {
	p := parent.(*MemNode)
	c := child.(*MemNode)
	p.Children = append(p.Children, c)
}

// RemoveChild implements Renderer.
func (h *MemoryHost) RemoveChild(parent, child Node) {
	p := parent.(*MemNode)
	c := child.(*MemNode)
	for i, existing := range p.Children {
		if existing == c {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			return
		}
	}
}

// IsLeaf implements Renderer.
func (h *MemoryHost) IsLeaf(n Node) bool {
	return n.(*MemNode).Leaf
}

// String returns a compact single-line description of the subtree,
// e.g. `div[class=card](span(#"hi"))`. Props are sorted for stable output;
// intended for tests and debug logging.
func (n *MemNode) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *MemNode) writeTo(b *strings.Builder) {
	if n.Leaf {
		fmt.Fprintf(b, "#%q", n.Text)
		return
	}
	b.WriteString(n.Tag)
	if len(n.Props) > 0 {
		keys := make([]string, 0, len(n.Props))
		for k := range n.Props {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('[')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%s=%v", k, n.Props[k])
		}
		b.WriteByte(']')
	}
	if len(n.Children) > 0 {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			c.writeTo(b)
		}
		b.WriteByte(')')
	}
}
