// Package search provides the case-law search backends. The mock backend
// reproduces the upstream behaviour exactly: a fixed delay followed by the
// bundled results. The bleve backend is a drop-in substitution that answers
// from an in-memory full-text index over the same corpus.
package search

import (
	"context"
	"time"

	"github.com/yashdubey2004/AI-law/internal/catalog"
)

// Searcher answers a case-law query. The call suspends until results are
// ready or ctx is cancelled.
type Searcher interface {
	Search(ctx context.Context, query string) ([]catalog.Case, error)
}

// MockSearcher waits a fixed simulated latency and returns the corpus
// verbatim regardless of the query.
type MockSearcher struct {
	Latency time.Duration
	Results []catalog.Case
}

func NewMockSearcher(latency time.Duration) *MockSearcher {
	return &MockSearcher{Latency: latency, Results: catalog.SeedCases()}
}

func (m *MockSearcher) Search(ctx context.Context, query string) ([]catalog.Case, error) {
	if m.Latency > 0 {
		timer := time.NewTimer(m.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	out := make([]catalog.Case, len(m.Results))
	copy(out, m.Results)
	return out, nil
}
