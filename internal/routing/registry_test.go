package routing

import "testing"

func TestSidebarItemsFixedOrder(t *testing.T) {
	t.Parallel()
	items := SidebarItems()
	if len(items) != 5 {
		t.Fatalf("SidebarItems() returned %d items, want 5", len(items))
	}
	wantOrder := []string{
		PathDashboard, PathDocumentAnalysis, PathCaseSearch,
		PathLegalNews, PathProfile,
	}
	seen := map[string]bool{}
	for i, item := range items {
		if item.Href != wantOrder[i] {
			t.Fatalf("item %d href = %q, want %q", i, item.Href, wantOrder[i])
		}
		if seen[item.Href] {
			t.Fatalf("duplicate href %q", item.Href)
		}
		seen[item.Href] = true
		if item.Title == "" {
			t.Fatalf("item %d has empty title", i)
		}
	}
}

func TestSidebarItemsCopy(t *testing.T) {
	t.Parallel()
	items := SidebarItems()
	items[0].Title = "mutated"
	if SidebarItems()[0].Title == "mutated" {
		t.Fatal("mutation of returned slice leaked into the registry")
	}
}

func TestIsActiveExactMatch(t *testing.T) {
	t.Parallel()
	items := SidebarItems()
	active := 0
	for _, item := range items {
		if item.IsActive(PathCaseSearch) {
			active++
			if item.Href != PathCaseSearch {
				t.Fatalf("item %q active for path %q", item.Href, PathCaseSearch)
			}
		}
	}
	if active != 1 {
		t.Fatalf("%d items active for %q, want exactly 1", active, PathCaseSearch)
	}
	for _, item := range items {
		if item.IsActive("/case-search/extra") || item.IsActive("/") {
			t.Fatalf("item %q active for non-matching path", item.Href)
		}
	}
}
