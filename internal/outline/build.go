package outline

// Build augments a flat pre-order entry list with positions and parent
// chains. For the entry at index i with level L, the chain is found by
// scanning backwards for the first entry below L, then the first entry
// below that one's level, and so on, one ancestor per level, stopping
// once a level-0 ancestor has been included.
func Build(entries []Entry) []Node {
	nodes := make([]Node, len(entries))
	for i, e := range entries {
		n := Node{Entry: e, OriginalIndex: i}
		want := e.Level
		for j := i - 1; j >= 0 && want > 0; j-- {
			if entries[j].Level < want {
				n.ParentChain = append(n.ParentChain, j)
				want = entries[j].Level
			}
		}
		nodes[i] = n
	}
	return nodes
}

// MaxDepth returns the deepest level in the outline plus one, i.e. the
// largest depth that still selects at least one entry directly.
// Returns 0 for an empty outline.
func MaxDepth(nodes []Node) int {
	if len(nodes) == 0 {
		return 0
	}
	max := 0
	for _, n := range nodes {
		if n.Level > max {
			max = n.Level
		}
	}
	return max + 1
}

// descendantIndex marks every node that has at least one descendant,
// at any depth. Built in one pass over the parent chains.
func descendantIndex(nodes []Node) []bool {
	hasChild := make([]bool, len(nodes))
	for _, n := range nodes {
		for _, a := range n.ParentChain {
			hasChild[a] = true
		}
	}
	return hasChild
}
