package outline

type segKey struct {
	title string
	page  int
}

// SelectAtDepth picks the nodes that become segments for a requested
// split depth. Level depth-1 entries are always selected. Shallower
// entries with no descendants at all are selected whole: they represent
// branches that never reach the target depth. When depth > 1, shallower
// entries that do have descendants are additionally emitted as their own
// segments, so a chapter still gets an output unit alongside its
// sections; the merged result is de-duplicated by (title, page).
//
// The result preserves original relative order and is not sorted by page.
// Precondition: 1 <= depth <= MaxDepth(nodes); callers clamp (Plan does).
func SelectAtDepth(nodes []Node, depth int) []Node {
	if len(nodes) == 0 {
		return nil
	}
	target := depth - 1
	hasChild := descendantIndex(nodes)

	var selected []Node
	for _, n := range nodes {
		if n.Level == target || (n.Level < target && !hasChild[n.OriginalIndex]) {
			selected = append(selected, n)
		}
	}
	if depth == 1 {
		return selected
	}

	// Ancestors above the target level that have descendants become
	// extra segments of their own, one per ancestor level.
	for _, n := range nodes {
		if n.Level < target && hasChild[n.OriginalIndex] {
			selected = append(selected, n)
		}
	}

	// Two entries coinciding on both title and page count as one.
	seen := make(map[segKey]bool, len(selected))
	out := selected[:0]
	for _, n := range selected {
		k := segKey{n.Title, n.Page}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, n)
	}
	return out
}
