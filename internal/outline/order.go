package outline

import "sort"

// Order sorts selected nodes by start page, with the original list
// position as tie-break. An unresolved page (0) sorts before any real
// page. Because a parent always precedes its descendants in pre-order,
// the tie-break puts a parent before children that start on the same
// page, and keeps authored order for same-page siblings.
func Order(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		return out[i].OriginalIndex < out[j].OriginalIndex
	})
	return out
}
