// Package outline resolves a document's bookmark tree into page-ranged
// segments. The input is the flat pre-order entry list a document source
// produces; the output is an ordered list of segments, each spanning an
// inclusive 1-indexed page range.
package outline

// Entry is one raw outline node as produced by a document source.
type Entry struct {
	Title string
	Page  int // 1-indexed start page; 0 when the destination could not be resolved
	Level int // 0 = top level; pre-order depth in the outline tree
}

// Node is an Entry augmented with its list position and ancestry.
// Nodes are built once by Build and never mutated afterwards.
type Node struct {
	Entry

	// OriginalIndex is the entry's position in the pre-order list.
	// It is the stable identity used for lookups and tie-breaks.
	OriginalIndex int

	// ParentChain holds ancestor indices, nearest first, ending with a
	// level-0 ancestor. Empty for level-0 entries.
	ParentChain []int
}

// Segment is one selected outline node with its resolved page range,
// ready to become a standalone output unit.
type Segment struct {
	Title       string `json:"title"`
	ParentTitle string `json:"parent_title,omitempty"`
	Level       int    `json:"level"`
	StartPage   int    `json:"start_page"`
	EndPage     int    `json:"end_page"`
}

// Pages returns the number of pages the segment spans.
func (s Segment) Pages() int {
	return s.EndPage - s.StartPage + 1
}
