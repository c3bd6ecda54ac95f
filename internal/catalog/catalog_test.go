package catalog

import "testing"

func TestStatusBadgeMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status DocumentStatus
		want   BadgeVariant
	}{
		{StatusAnalyzed, BadgeDefault},
		{StatusPending, BadgeSecondary},
		{StatusFailed, BadgeDestructive},
	}
	for _, tt := range tests {
		if got := tt.status.Badge(); got != tt.want {
			t.Fatalf("%v.Badge() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestImportanceBadgeMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		imp  Importance
		want BadgeVariant
	}{
		{ImportanceHigh, BadgeDestructive},
		{ImportanceMedium, BadgeSecondary},
		{ImportanceLow, BadgeOutline},
	}
	for _, tt := range tests {
		if got := tt.imp.Badge(); got != tt.want {
			t.Fatalf("%v.Badge() = %v, want %v", tt.imp, got, tt.want)
		}
	}
}

func TestCategoryNamesCoverAllCategories(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, c := range Categories() {
		name := c.String()
		if name == "" || seen[name] {
			t.Fatalf("category %d has empty or duplicate name %q", int(c), name)
		}
		seen[name] = true
	}
	if len(seen) != 5 {
		t.Fatalf("Categories() yielded %d names, want 5", len(seen))
	}
}

func TestRelevanceBadgeThresholds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		score int
		want  BadgeVariant
	}{
		{95, BadgeDefault},
		{90, BadgeDefault},
		{88, BadgeSecondary},
		{80, BadgeSecondary},
		{79, BadgeOutline},
		{0, BadgeOutline},
	}
	for _, tt := range tests {
		if got := RelevanceBadge(tt.score); got != tt.want {
			t.Fatalf("RelevanceBadge(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSeeds(t *testing.T) {
	t.Parallel()
	if n := len(SeedDocuments()); n != 3 {
		t.Fatalf("SeedDocuments() returned %d, want 3", n)
	}
	if n := len(SeedClauses()); n != 3 {
		t.Fatalf("SeedClauses() returned %d, want 3", n)
	}
	if n := len(SeedCases()); n != 3 {
		t.Fatalf("SeedCases() returned %d, want 3", n)
	}
	if n := len(SeedArticles()); n != 6 {
		t.Fatalf("SeedArticles() returned %d, want 6", n)
	}
	if n := len(SeedTicker()); n != 4 {
		t.Fatalf("SeedTicker() returned %d, want 4", n)
	}
}
