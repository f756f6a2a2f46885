package outline

import "testing"

func titles(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Title
	}
	return out
}

func TestSelectAtDepth_DepthOne(t *testing.T) {
	nodes := Build(sampleEntries())
	selected := SelectAtDepth(nodes, 1)

	want := []string{"Ch1", "Ch2", "Ch3"}
	got := titles(selected)
	if len(got) != len(want) {
		t.Fatalf("selected %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("selected[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSelectAtDepth_DepthTwo(t *testing.T) {
	nodes := Build(sampleEntries())
	selected := SelectAtDepth(nodes, 2)

	// Sec1.1 and Sec1.2 sit at the target level. Ch2 and Ch3 have no
	// descendants, so they are included whole. Ch1 has descendants and
	// comes back once via the intermediate pass.
	counts := map[string]int{}
	for _, n := range selected {
		counts[n.Title]++
	}
	for _, title := range []string{"Sec1.1", "Sec1.2", "Ch2", "Ch3", "Ch1"} {
		if counts[title] != 1 {
			t.Errorf("%s selected %d times, want 1", title, counts[title])
		}
	}
	if counts["Sub1.1.1"] != 0 {
		t.Error("Sub1.1.1 selected, but entries below the target level are never primary")
	}
}

func TestSelectAtDepth_Invariant(t *testing.T) {
	nodes := Build(sampleEntries())
	for depth := 1; depth <= MaxDepth(nodes); depth++ {
		hasChild := descendantIndex(nodes)
		for _, n := range SelectAtDepth(nodes, depth) {
			primary := n.Level == depth-1 || (n.Level < depth-1 && !hasChild[n.OriginalIndex])
			intermediate := depth > 1 && n.Level < depth-1 && hasChild[n.OriginalIndex]
			if !primary && !intermediate {
				t.Errorf("depth %d: %s (level %d) selected unexpectedly", depth, n.Title, n.Level)
			}
		}
	}
}

func TestSelectAtDepth_IntermediatePerAncestorLevel(t *testing.T) {
	// With depth 3, both the chapter and the section above a leaf become
	// their own intermediate segments, one per ancestor level.
	entries := []Entry{
		{Title: "Part I", Page: 1, Level: 0},
		{Title: "Ch 1", Page: 2, Level: 1},
		{Title: "Sec 1.1", Page: 3, Level: 2},
	}
	selected := SelectAtDepth(Build(entries), 3)

	counts := map[string]int{}
	for _, n := range selected {
		counts[n.Title]++
	}
	for _, title := range []string{"Part I", "Ch 1", "Sec 1.1"} {
		if counts[title] != 1 {
			t.Errorf("%s selected %d times, want 1", title, counts[title])
		}
	}
}

func TestSelectAtDepth_DeduplicatesTitlePage(t *testing.T) {
	// Two branches producing intermediates with the same title and page
	// collapse to one segment.
	entries := []Entry{
		{Title: "Intro", Page: 1, Level: 0},
		{Title: "Detail", Page: 2, Level: 1},
		{Title: "Intro", Page: 1, Level: 0},
		{Title: "More", Page: 4, Level: 1},
	}
	selected := SelectAtDepth(Build(entries), 2)

	seen := 0
	for _, n := range selected {
		if n.Title == "Intro" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("Intro selected %d times, want 1", seen)
	}
}

func TestSelectAtDepth_Empty(t *testing.T) {
	if selected := SelectAtDepth(nil, 1); len(selected) != 0 {
		t.Errorf("expected no selection, got %d", len(selected))
	}
}
