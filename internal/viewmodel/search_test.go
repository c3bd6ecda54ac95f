package viewmodel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/search"
)

// gateSearcher blocks until released so tests can observe the Pending state.
type gateSearcher struct {
	release chan struct{}
	results []catalog.Case
	err     error
}

func (g *gateSearcher) Search(ctx context.Context, query string) ([]catalog.Case, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.results, g.err
}

func TestSubmitDeliversResults(t *testing.T) {
	t.Parallel()
	vm := NewSearchViewModel(search.NewMockSearcher(time.Millisecond), "employment contract termination")

	if err := vm.Submit(context.Background(), "notice requirements"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if vm.State() != SearchIdle {
		t.Fatal("state should return to Idle after delivery")
	}
	if len(vm.Results()) != 3 {
		t.Fatalf("results = %d, want 3", len(vm.Results()))
	}
	if vm.Query() != "notice requirements" {
		t.Fatalf("query = %q", vm.Query())
	}
	if vm.LastError() != "" {
		t.Fatalf("LastError = %q, want empty", vm.LastError())
	}
}

func TestSubmitWhilePendingIsIgnored(t *testing.T) {
	t.Parallel()
	gate := &gateSearcher{release: make(chan struct{}), results: catalog.SeedCases()}
	vm := NewSearchViewModel(gate, "")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = vm.Submit(context.Background(), "first")
	}()

	// Wait until the first submission reaches Pending.
	for vm.State() != SearchPending {
		time.Sleep(time.Millisecond)
	}

	if err := vm.Submit(context.Background(), "second"); !errors.Is(err, ErrSearchPending) {
		t.Fatalf("second Submit err = %v, want ErrSearchPending", err)
	}
	if vm.Query() != "first" {
		t.Fatalf("ignored submission overwrote the query: %q", vm.Query())
	}

	close(gate.release)
	wg.Wait()
	if vm.State() != SearchIdle {
		t.Fatal("state should be Idle after the first submission completes")
	}
}

func TestSubmitFailurePreservesInput(t *testing.T) {
	t.Parallel()
	gate := &gateSearcher{release: make(chan struct{}), err: errors.New("backend down")}
	close(gate.release)
	vm := NewSearchViewModel(gate, "")

	before := vm.Results()
	if err := vm.Submit(context.Background(), "severance"); err == nil {
		t.Fatal("Submit should surface the searcher error")
	}
	if vm.State() != SearchIdle {
		t.Fatal("state should return to Idle after a failure")
	}
	if vm.Query() != "severance" {
		t.Fatalf("query = %q, want input preserved for resubmission", vm.Query())
	}
	if vm.LastError() == "" {
		t.Fatal("LastError should carry a user-facing message")
	}
	if len(vm.Results()) != len(before) {
		t.Fatal("failed submission should not clobber prior results")
	}
}
