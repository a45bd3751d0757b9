package fiber

import (
	"time"

	"github.com/weft-dev/weft/pkg/element"
)

// commit applies every effect computed across the walk to the host tree
// in one synchronous pass, then publishes the new baseline.
func (p *Pass) commit() {
	start := time.Now()

	// New tree first, descendants before next sibling, so a newly placed
	// parent exists in the host tree before its children attach into it.
	p.commitFiber(p.root.Child)

	// Then the separately tracked deletion set. Removal is bottom-up:
	// descendants detach before the node itself.
	for _, d := range p.deletions {
		p.commitDeletion(d)
	}
	p.deletions = nil

	// Sever alternates so committed fibers do not chain every historical
	// tree together; the alternate was only needed for this pass's diff.
	severAlternates(p.root)

	p.stats.CommitDuration = time.Since(start)
}

// commitFiber applies one fiber's effect, then recurses child-first.
// A fiber without a host node, or whose parent lacks one, was already
// handled (or skipped) during the walk; it is a silent no-op here.
func (p *Pass) commitFiber(f *Fiber) {
	if f == nil {
		return
	}

	if f.Node != nil && f.Parent != nil && f.Parent.Node != nil {
		switch f.Effect {
		case EffectPlacement:
			p.renderer.AppendChild(f.Parent.Node, f.Node)
		case EffectUpdate:
			p.updateNode(f)
		}
	}

	p.commitFiber(f.Child)
	p.commitFiber(f.Sibling)
}

// updateNode syncs host-level state for a reused node: text leaves get
// their value replaced only when changed, containers get a full property
// diff against the previous render's element.
func (p *Pass) updateNode(f *Fiber) {
	var prevEl *element.Element
	if f.Alternate != nil {
		prevEl = f.Alternate.Element
	}

	if f.Element.IsText() {
		if prevEl == nil || prevEl.TextValue() != f.Element.TextValue() {
			p.renderer.SetText(f.Node, f.Element.TextValue())
		}
		return
	}

	var prevProps element.Props
	if prevEl != nil {
		prevProps = prevEl.Props
	}
	p.applyProperties(f.Node, prevProps, f.Element.Props)
}

// commitDeletion removes a deleted fiber's entire previous subtree from
// the host tree, children before the node itself.
func (p *Pass) commitDeletion(f *Fiber) {
	for c := f.Child; c != nil; c = c.Sibling {
		p.commitDeletion(c)
	}
	if f.Node != nil && f.Parent != nil && f.Parent.Node != nil {
		p.renderer.RemoveChild(f.Parent.Node, f.Node)
	}
}

func severAlternates(f *Fiber) {
	if f == nil {
		return
	}
	f.Alternate = nil
	severAlternates(f.Child)
	severAlternates(f.Sibling)
}
