package outline

// ResolveEnd computes the inclusive end page for one selected node.
//
// The end boundary comes from the next entry at the node's level or
// higher: one page before it normally, its own start page in complete
// mode or when both start on the same page (same-page siblings collapse
// to a single page). A node with no following sibling inherits the
// boundary from its nearest ancestor's next sibling, walking up the
// chain as far as needed. If nothing resolves, the segment runs to the
// end of the document.
func ResolveEnd(n Node, all []Node, totalPages int, complete bool) int {
	idx := n.OriginalIndex
	if idx < 0 || idx >= len(all) {
		idx = indexOf(all, n.Title, n.Page)
		if idx < 0 {
			return totalPages
		}
	}

	start := n.Page
	if start < 1 {
		start = 1
	}

	cur := all[idx]
	searchIdx, searchLevel := cur.OriginalIndex, cur.Level
	chain := cur.ParentChain
	pos := 0
	for {
		if next := nextAtOrAbove(all, searchIdx, searchLevel); next != nil && next.Page > 0 {
			if complete || next.Page == start {
				return next.Page
			}
			return next.Page - 1
		}
		if pos >= len(chain) {
			return totalPages
		}
		anc := all[chain[pos]]
		searchIdx, searchLevel = anc.OriginalIndex, anc.Level
		pos++
	}
}

// nextAtOrAbove finds the first node after idx whose level is at or
// above (numerically <=) the given level: the next sibling, or the next
// entry of any shallower level.
func nextAtOrAbove(all []Node, idx, level int) *Node {
	for i := idx + 1; i < len(all); i++ {
		if all[i].Level <= level {
			return &all[i]
		}
	}
	return nil
}

func indexOf(all []Node, title string, page int) int {
	for i, n := range all {
		if n.Title == title && n.Page == page {
			return i
		}
	}
	return -1
}
