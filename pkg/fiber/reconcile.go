package fiber

// reconcileChildren turns f's new child elements plus the previous
// render's child chain (from f.Alternate) into a new child/sibling chain
// on f, tagging each new fiber with its effect and recording every
// unmatched previous fiber for deletion.
//
// Matching is by element type only, first available wins, in new-children
// order. Reordering same-typed siblings therefore reuses previous host
// nodes in claim order, not visual order; that behavior is preserved
// deliberately.
func (p *Pass) reconcileChildren(f *Fiber) {
	var oldChain *Fiber
	if f.Alternate != nil {
		oldChain = f.Alternate.Child
	}

	// Previous children grouped by type, preserving their order within
	// each group.
	byType := make(map[string][]*Fiber)
	for old := oldChain; old != nil; old = old.Sibling {
		byType[old.Element.Type] = append(byType[old.Element.Type], old)
	}

	claimed := make(map[*Fiber]bool)
	var prev *Fiber

	for _, el := range f.Element.Children {
		var match *Fiber
		if group := byType[el.Type]; len(group) > 0 {
			match = group[0]
			byType[el.Type] = group[1:]
			claimed[match] = true
		}

		nf := &Fiber{Element: el, Parent: f}
		if match != nil {
			nf.Node = match.Node
			nf.Alternate = match
			nf.Effect = EffectUpdate
			p.stats.Updates++
		} else {
			nf.Effect = EffectPlacement
			p.stats.Placements++
		}

		if prev == nil {
			f.Child = nf
		} else {
			prev.Sibling = nf
		}
		prev = nf
	}

	// Unclaimed previous children are gone from the new tree. They are
	// tracked separately so they no longer participate in traversal but
	// are still committed (removed) exactly once.
	for old := oldChain; old != nil; old = old.Sibling {
		if !claimed[old] {
			old.Effect = EffectDeletion
			p.deletions = append(p.deletions, old)
			p.stats.Deletions++
		}
	}
}
