package fiber

import (
	"log/slog"
	"time"

	"github.com/weft-dev/weft/internal/errors"
	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
	"github.com/weft-dev/weft/pkg/schedule"
)

// YieldThreshold is the minimum remaining slot time below which Run
// suspends instead of starting another unit of work.
const YieldThreshold = time.Millisecond

// PassStats summarizes one render pass.
type PassStats struct {
	UnitsOfWork    int // Fibers visited by the work loop
	Placements     int // Fibers tagged for host node attachment
	Updates        int // Fibers reusing their previous host node
	Deletions      int // Unmatched previous fibers (subtree roots)
	Skips          int // Subtrees dropped for a leaf parent
	Yields         int // Times Run suspended on budget exhaustion
	CommitDuration time.Duration
}

// Pass is one render pass over a root: a resumable work-loop state machine.
//
// A Pass is single-use. Create it with the new element tree and the
// previously committed root fiber, drive it with Step or Run until done,
// then read CommittedRoot as the baseline for the next pass. A Pass is not
// safe for concurrent use; callers serialize passes per root.
type Pass struct {
	root     *Fiber
	next     *Fiber // Resumption point; nil once traversal completed
	renderer host.Renderer
	logger   *slog.Logger

	deletions []*Fiber
	stats     PassStats
	done      bool
	err       error
}

// PassOption configures a Pass.
type PassOption func(*Pass)

// WithLogger sets the logger used for recoverable diagnostics.
func WithLogger(l *slog.Logger) PassOption {
	return func(p *Pass) {
		p.logger = l
	}
}

// NewPass creates a render pass that will render el into container,
// diffing against prev (the previously committed root fiber, or nil on
// first render).
func NewPass(container host.Node, r host.Renderer, el *element.Element, prev *Fiber, opts ...PassOption) *Pass {
	p := &Pass{
		renderer: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.root = newRootFiber(container, el, prev)
	p.next = p.root
	return p
}

// Step performs exactly one unit of work. It returns done=true once the
// pass has committed (or aborted with an error). A Pass is single-use:
// stepping again after the commit returns a consumption error, and
// stepping after an abort returns the original fatal error.
func (p *Pass) Step() (done bool, err error) {
	if p.err != nil {
		return true, p.err
	}
	if p.done {
		return true, errors.New("E004")
	}

	f := p.next
	p.next, p.err = p.performUnit(f)
	if p.err != nil {
		// Fatal: abort with no commit. The previous baseline stands
		// untouched and the pass-local deletion set is discarded.
		return true, p.err
	}

	if p.next == nil {
		p.commit()
		p.done = true
		return true, nil
	}
	return false, nil
}

// Run steps the pass until it completes or the deadline's remaining time
// drops below YieldThreshold. On a yield it returns done=false; the caller
// resumes by calling Run again in a later idle slot. No traversal state is
// lost across a yield.
func (p *Pass) Run(d schedule.Deadline) (done bool, err error) {
	for {
		done, err = p.Step()
		if done || err != nil {
			return done, err
		}
		if d.TimeRemaining() < YieldThreshold {
			p.stats.Yields++
			return false, nil
		}
	}
}

// RunToCompletion drives the pass with an unbounded budget.
func (p *Pass) RunToCompletion() error {
	_, err := p.Run(schedule.Unbounded())
	return err
}

// Done reports whether the pass has committed.
func (p *Pass) Done() bool {
	return p.done
}

// CommittedRoot returns the root fiber of the committed tree, or nil if
// the pass has not committed. It is the alternate for the next pass.
func (p *Pass) CommittedRoot() *Fiber {
	if !p.done {
		return nil
	}
	return p.root
}

// Stats returns the pass statistics collected so far.
func (p *Pass) Stats() PassStats {
	return p.stats
}

// performUnit processes one fiber: validate its container, realize its
// host node, reconcile its children, and return the next fiber to visit
// (nil when the whole tree has been walked).
func (p *Pass) performUnit(f *Fiber) (*Fiber, error) {
	p.stats.UnitsOfWork++

	if f != p.root {
		if f.Parent == nil {
			return nil, errors.New("E001")
		}
		if f.Parent.Node == nil {
			return nil, errors.New("E002")
		}
		if p.renderer.IsLeaf(f.Parent.Node) {
			// Recoverable: a text node cannot host children. Drop
			// this subtree and keep walking the rest of the tree.
			p.logger.Warn("dropping subtree under leaf node",
				"code", "E003",
				"type", f.Element.Type,
			)
			// The parent's reconcile counted this fiber's effect; it
			// will never commit, so take it back out of the stats.
			switch f.Effect {
			case EffectPlacement:
				p.stats.Placements--
			case EffectUpdate:
				p.stats.Updates--
			}
			p.stats.Skips++
			f.Effect = EffectNone
			return p.nextUnit(f), nil
		}
	}

	if f.Node == nil {
		f.Node = p.createNode(f.Element)
	}

	p.reconcileChildren(f)

	return p.nextUnit(f), nil
}

// createNode realizes an element as a detached host node. Attachment into
// the host tree happens only at commit.
func (p *Pass) createNode(el *element.Element) host.Node {
	if el.IsText() {
		return p.renderer.CreateLeaf(el.TextValue())
	}
	n := p.renderer.CreateContainer(el.Type)
	p.applyProperties(n, nil, el.Props)
	return n
}

// nextUnit computes the next fiber in depth-first pre-order: the child if
// one was produced, otherwise the nearest sibling walking up through
// ancestors. Returns nil at the root, signalling traversal completion.
func (p *Pass) nextUnit(f *Fiber) *Fiber {
	if f.Child != nil {
		return f.Child
	}
	for n := f; n != nil; n = n.Parent {
		if n == p.root {
			return nil
		}
		if n.Sibling != nil {
			return n.Sibling
		}
	}
	return nil
}
