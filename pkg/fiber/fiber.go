package fiber

import (
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
)

// RootType is the synthetic element type wrapping the container node at
// the top of every fiber tree. It never reaches the host renderer.
const RootType = "#root"

// Effect is the action a fiber's host node requires during commit.
type Effect uint8

const (
	EffectNone      Effect = iota // Nothing to do (root, or skipped subtree)
	EffectUpdate                  // Reuse host node, sync properties
	EffectPlacement               // Attach newly created host node
	EffectDeletion                // Remove host node and subtree
)

// String returns the string representation of the Effect.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectUpdate:
		return "Update"
	case EffectPlacement:
		return "Placement"
	case EffectDeletion:
		return "Deletion"
	default:
		return "Unknown"
	}
}

// Fiber is the mutable per-render record for one tree position.
//
// Child and Sibling are the owning links of the left-child, right-sibling
// tree. Parent is a non-owning back-reference used only for upward
// traversal. Alternate points at the fiber for the same position in the
// previously committed render; it is severed when the pass that created
// the fiber commits, so old trees do not chain indefinitely.
type Fiber struct {
	Element   *element.Element
	Node      host.Node
	Parent    *Fiber
	Child     *Fiber
	Sibling   *Fiber
	Alternate *Fiber
	Effect    Effect
}

// newRootFiber builds the synthetic root fiber binding container to the
// element tree, with the previously committed root as alternate.
func newRootFiber(container host.Node, el *element.Element, prev *Fiber) *Fiber {
	return &Fiber{
		Element: &element.Element{
			Type:     RootType,
			Props:    element.Props{},
			Children: []*element.Element{el},
		},
		Node:      container,
		Alternate: prev,
	}
}
