package outline

import "fmt"

// Plan runs the full resolution pipeline: build parent chains, select
// nodes at the requested depth (clamped to the outline's maximum),
// order them, and resolve each one's page range. ParentTitle is set to
// the nearest ancestor's title for segments below the shallowest
// selected level.
func Plan(entries []Entry, depth, totalPages int, complete bool) []Segment {
	nodes := Build(entries)
	if len(nodes) == 0 {
		return nil
	}
	if depth < 1 {
		depth = 1
	}
	if max := MaxDepth(nodes); depth > max {
		depth = max
	}

	ordered := Order(SelectAtDepth(nodes, depth))
	if len(ordered) == 0 {
		// Possible when no entry sits at level 0, e.g. an outline
		// derived from headings that start below the top level.
		return nil
	}

	minLevel := ordered[0].Level
	for _, n := range ordered[1:] {
		if n.Level < minLevel {
			minLevel = n.Level
		}
	}

	segs := make([]Segment, 0, len(ordered))
	for _, n := range ordered {
		start := n.Page
		if start < 1 {
			start = 1
		}
		seg := Segment{
			Title:     n.Title,
			Level:     n.Level,
			StartPage: start,
			EndPage:   ResolveEnd(n, nodes, totalPages, complete),
		}
		if n.Level > minLevel && len(n.ParentChain) > 0 {
			seg.ParentTitle = nodes[n.ParentChain[0]].Title
		}
		segs = append(segs, seg)
	}
	return segs
}

// FixedPlan produces uniform segments of pagesPerPart pages each, for
// documents that carry no outline at all.
func FixedPlan(totalPages, pagesPerPart int) []Segment {
	if totalPages < 1 {
		return nil
	}
	if pagesPerPart < 1 {
		pagesPerPart = totalPages
	}
	var segs []Segment
	for start := 1; start <= totalPages; start += pagesPerPart {
		end := start + pagesPerPart - 1
		if end > totalPages {
			end = totalPages
		}
		segs = append(segs, Segment{
			Title:     fmt.Sprintf("Pages %d-%d", start, end),
			StartPage: start,
			EndPage:   end,
		})
	}
	return segs
}
