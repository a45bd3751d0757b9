// Package fiber implements the incremental reconciliation engine.
//
// A Fiber is the unit-of-work record mirroring one element instance for one
// render pass. Fibers form a tree in left-child, right-sibling encoding and
// carry a link ("alternate") to the fiber that occupied the same position
// in the previously committed render.
//
// A Pass is one full render: a resumable state machine that walks the fiber
// tree depth-first, one fiber per Step, reconciling each fiber's children
// against the previous render and tagging every new fiber with the effect
// it needs (update, placement) while collecting unmatched old fibers for
// deletion. When the walk completes, the pass commits: every effect is
// applied to the host tree through the host.Renderer adapter in a single
// synchronous phase, and the new tree becomes the baseline for the next
// pass.
//
// Reconciliation matches children by element type only, first available
// wins. There is no key-based or positional-distance matching: reordering
// same-typed siblings reuses host nodes in an order that may not match the
// visual reorder. This is a known, deliberate limitation kept for
// compatibility with existing renders.
//
// The pass suspends only between units of work. Run performs steps until
// the supplied deadline is nearly exhausted; resuming later continues from
// the exact fiber the traversal had reached, so a pass split across many
// idle slots visits every fiber exactly once, in the same order as an
// uninterrupted pass.
package fiber
