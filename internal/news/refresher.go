package news

import (
	"context"
	"log"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/yashdubey2004/AI-law/internal/catalog"
)

// Refresher pulls the configured sources on a cron schedule and prepends
// whatever it can extract. A source that fails is skipped; the feed always
// keeps serving what it has.
type Refresher struct {
	feed    *Feed
	fetcher *Fetcher
	sources []string
	cron    string
	logger  *log.Logger
}

func NewRefresher(feed *Feed, fetcher *Fetcher, sources []string, cron string) *Refresher {
	return &Refresher{
		feed:    feed,
		fetcher: fetcher,
		sources: sources,
		cron:    cron,
		logger:  log.New(log.Writer(), "[NEWS] ", log.LstdFlags),
	}
}

// Start runs the refresh loop until ctx is cancelled. With no sources
// configured it returns immediately.
func (r *Refresher) Start(ctx context.Context) {
	if len(r.sources) == 0 {
		return
	}
	go r.loop(ctx)
}

func (r *Refresher) loop(ctx context.Context) {
	r.RefreshNow(ctx)
	for {
		wait := r.untilNext(time.Now())
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			r.RefreshNow(ctx)
		}
	}
}

// RefreshNow fetches every source once and prepends the results.
func (r *Refresher) RefreshNow(ctx context.Context) {
	var fetched []catalog.Article
	for _, src := range r.sources {
		a, err := r.fetcher.Fetch(ctx, src)
		if err != nil {
			r.logger.Printf("refresh %s: %v", src, err)
			continue
		}
		fetched = append(fetched, a)
	}
	r.feed.Prepend(fetched)
	if len(fetched) > 0 {
		r.logger.Printf("refreshed %d article(s)", len(fetched))
	}
}

// untilNext computes the wait before the next scheduled refresh. An invalid
// expression falls back to daily.
func (r *Refresher) untilNext(now time.Time) time.Duration {
	expr, err := cronexpr.Parse(r.cron)
	if err != nil {
		r.logger.Printf("invalid refresh cron %q, falling back to daily", r.cron)
		return 24 * time.Hour
	}
	next := expr.Next(now)
	if next.IsZero() {
		return 24 * time.Hour
	}
	return next.Sub(now)
}
