package host

// Node is an opaque handle to a concrete host node. The engine stores and
// passes these back to the Renderer that created them but never looks
// inside.
type Node any

// Renderer is the abstract capability the engine requires from a host
// platform. Implementations own the concrete node representation.
//
// Property reconciliation is driven by the engine: it diffs previous and
// next element properties and calls SetProperty/RemoveProperty for each
// difference, and SetText when a leaf's value changes. Implementations
// only apply single operations; they never diff.
type Renderer interface {
	// CreateLeaf creates a detached leaf (text) node with the given value.
	CreateLeaf(text string) Node

	// CreateContainer creates a detached container node of the given type.
	CreateContainer(typ string) Node

	// SetProperty sets one host-level property on a node.
	SetProperty(n Node, key string, value any)

	// RemoveProperty removes one host-level property from a node.
	RemoveProperty(n Node, key string)

	// SetText replaces the value of a leaf node.
	SetText(n Node, text string)

	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node)

	// RemoveChild detaches child from parent. Removing a child that is
	// not attached to parent is a no-op.
	RemoveChild(parent, child Node)

	// IsLeaf reports whether n is a leaf node. Leaves cannot host
	// children; the engine skips subtrees that would attach into one.
	IsLeaf(n Node) bool
}
