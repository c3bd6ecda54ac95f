package search

import (
	"context"
	"testing"
	"time"

	"github.com/yashdubey2004/AI-law/internal/catalog"
)

func TestMockSearcherReturnsCorpus(t *testing.T) {
	t.Parallel()
	s := NewMockSearcher(10 * time.Millisecond)
	got, err := s.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].Title != "Smith v. Johnson Construction Co." {
		t.Fatalf("first result = %q", got[0].Title)
	}
}

func TestMockSearcherHonoursCancellation(t *testing.T) {
	t.Parallel()
	s := NewMockSearcher(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Search(ctx, "x"); err == nil {
		t.Fatal("Search should fail on a cancelled context")
	}
}

func TestBleveSearcherFindsRelevantCases(t *testing.T) {
	t.Parallel()
	s, err := NewBleveSearcher(catalog.SeedCases(), 10)
	if err != nil {
		t.Fatalf("NewBleveSearcher: %v", err)
	}

	got, err := s.Search(context.Background(), "severance")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no results for a term present in the corpus")
	}
	if got[0].Title != "Smith v. Johnson Construction Co." {
		t.Fatalf("top result = %q", got[0].Title)
	}

	none, err := s.Search(context.Background(), "xylophone")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("got %d results for a term absent from the corpus", len(none))
	}
}
