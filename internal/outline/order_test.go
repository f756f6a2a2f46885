package outline

import "testing"

func TestOrder_ByPage(t *testing.T) {
	nodes := []Node{
		{Entry: Entry{Title: "B", Page: 20}, OriginalIndex: 1},
		{Entry: Entry{Title: "A", Page: 3}, OriginalIndex: 0},
		{Entry: Entry{Title: "C", Page: 40}, OriginalIndex: 2},
	}
	got := titles(Order(nodes))
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ordered[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrder_SamePageKeepsAuthoredOrder(t *testing.T) {
	// Two subsections starting on the same page keep their source order.
	nodes := []Node{
		{Entry: Entry{Title: "Second", Page: 169, Level: 1}, OriginalIndex: 7},
		{Entry: Entry{Title: "First", Page: 169, Level: 1}, OriginalIndex: 6},
	}
	got := titles(Order(nodes))
	if got[0] != "First" || got[1] != "Second" {
		t.Errorf("same-page order %v, want [First Second]", got)
	}
}

func TestOrder_ParentBeforeSamePageChild(t *testing.T) {
	// A parent always has a smaller original index than its descendants,
	// so it sorts first when both start on the same page.
	nodes := Build([]Entry{
		{Title: "Chapter", Page: 12, Level: 0},
		{Title: "Section", Page: 12, Level: 1},
	})
	got := titles(Order([]Node{nodes[1], nodes[0]}))
	if got[0] != "Chapter" || got[1] != "Section" {
		t.Errorf("order %v, want [Chapter Section]", got)
	}
}

func TestOrder_UnresolvedPageSortsFirst(t *testing.T) {
	nodes := []Node{
		{Entry: Entry{Title: "Real", Page: 1}, OriginalIndex: 0},
		{Entry: Entry{Title: "Unresolved", Page: 0}, OriginalIndex: 1},
	}
	got := titles(Order(nodes))
	if got[0] != "Unresolved" {
		t.Errorf("order %v, want Unresolved first", got)
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	nodes := []Node{
		{Entry: Entry{Title: "B", Page: 9}, OriginalIndex: 1},
		{Entry: Entry{Title: "A", Page: 2}, OriginalIndex: 0},
	}
	Order(nodes)
	if nodes[0].Title != "B" {
		t.Error("input slice was reordered")
	}
}
