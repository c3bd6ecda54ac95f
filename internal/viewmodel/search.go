package viewmodel

import (
	"context"
	"errors"
	"sync"

	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/search"
)

// ErrSearchPending is returned when Submit is called while an earlier
// submission is still in flight. The new submission is ignored.
var ErrSearchPending = errors.New("a search is already in progress")

// SearchState is the view-model's lifecycle state.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchPending
)

// SearchViewModel runs Idle -> Pending -> Idle(with result or error).
// A Submit while Pending is ignored rather than superseding the earlier
// one; the searcher decides how long Pending lasts.
type SearchViewModel struct {
	mu       sync.Mutex
	state    SearchState
	searcher search.Searcher

	query      string
	results    []catalog.Case
	lastErr    string
	hasResults bool
}

func NewSearchViewModel(s search.Searcher, initialQuery string) *SearchViewModel {
	return &SearchViewModel{
		searcher: s,
		query:    initialQuery,
		results:  catalog.SeedCases(),
	}
}

// Submit transitions to Pending, suspends on the searcher, and returns to
// Idle with either results or a user-facing error message. The query is
// preserved either way so the user can resubmit.
func (vm *SearchViewModel) Submit(ctx context.Context, query string) error {
	vm.mu.Lock()
	if vm.state == SearchPending {
		vm.mu.Unlock()
		return ErrSearchPending
	}
	vm.state = SearchPending
	vm.query = query
	vm.mu.Unlock()

	results, err := vm.searcher.Search(ctx, query)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state = SearchIdle
	if err != nil {
		vm.lastErr = "Search is unavailable right now. Please try again."
		return err
	}
	vm.lastErr = ""
	vm.results = results
	vm.hasResults = true
	return nil
}

func (vm *SearchViewModel) State() SearchState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

func (vm *SearchViewModel) Query() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.query
}

// Results returns the current result set in rank order.
func (vm *SearchViewModel) Results() []catalog.Case {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]catalog.Case, len(vm.results))
	copy(out, vm.results)
	return out
}

// LastError returns the user-facing message from the most recent failed
// submission, or "" after a success.
func (vm *SearchViewModel) LastError() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.lastErr
}
