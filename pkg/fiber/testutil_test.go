package fiber

import (
	"fmt"
	"testing"

	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
)

// opsHost wraps MemoryHost and records every mutation in order. Used to
// assert commit ordering (parents placed before children, deletions
// bottom-up).
type opsHost struct {
	*host.MemoryHost
	ops []string
}

func newOpsHost() *opsHost {
	return &opsHost{MemoryHost: host.NewMemoryHost()}
}

func label(n host.Node) string {
	mn := n.(*host.MemNode)
	if mn.Leaf {
		return fmt.Sprintf("#%q", mn.Text)
	}
	return mn.Tag
}

func (h *opsHost) CreateLeaf(text string) host.Node {
	n := h.MemoryHost.CreateLeaf(text)
	h.ops = append(h.ops, fmt.Sprintf("createLeaf %q", text))
	return n
}

func (h *opsHost) CreateContainer(typ string) host.Node {
	n := h.MemoryHost.CreateContainer(typ)
	h.ops = append(h.ops, "createContainer "+typ)
	return n
}

func (h *opsHost) SetProperty(n host.Node, key string, value any) {
	h.MemoryHost.SetProperty(n, key, value)
	h.ops = append(h.ops, fmt.Sprintf("setProp %s.%s=%v", label(n), key, value))
}

func (h *opsHost) RemoveProperty(n host.Node, key string) {
	h.MemoryHost.RemoveProperty(n, key)
	h.ops = append(h.ops, fmt.Sprintf("removeProp %s.%s", label(n), key))
}

func (h *opsHost) SetText(n host.Node, text string) {
	h.MemoryHost.SetText(n, text)
	h.ops = append(h.ops, fmt.Sprintf("setText %q", text))
}

func (h *opsHost) AppendChild(parent, child host.Node) {
	h.MemoryHost.AppendChild(parent, child)
	h.ops = append(h.ops, fmt.Sprintf("append %s > %s", label(parent), label(child)))
}

func (h *opsHost) RemoveChild(parent, child host.Node) {
	h.MemoryHost.RemoveChild(parent, child)
	h.ops = append(h.ops, fmt.Sprintf("remove %s < %s", label(parent), label(child)))
}

// renderOnce drives a full pass synchronously and returns the committed
// root for use as the next pass's baseline.
func renderOnce(t *testing.T, container *host.MemNode, r host.Renderer, el *element.Element, prev *Fiber) (*Fiber, PassStats) {
	t.Helper()
	p := NewPass(container, r, el, prev)
	if err := p.RunToCompletion(); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return p.CommittedRoot(), p.Stats()
}
