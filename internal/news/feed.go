// Package news serves the legal-news feed. The bundled articles are the
// seed; when source URLs are configured a refresher pulls them on a cron
// schedule, extracts readable content, and prepends the results.
package news

import (
	"sync"

	"github.com/yashdubey2004/AI-law/internal/catalog"
)

// Feed is the in-memory article list, newest first.
type Feed struct {
	mu       sync.RWMutex
	articles []catalog.Article
	nextID   int
}

func NewFeed() *Feed {
	seed := catalog.SeedArticles()
	max := 0
	for _, a := range seed {
		if a.ID > max {
			max = a.ID
		}
	}
	return &Feed{articles: seed, nextID: max + 1}
}

// Articles returns the feed in display order.
func (f *Feed) Articles() []catalog.Article {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]catalog.Article, len(f.articles))
	copy(out, f.articles)
	return out
}

// Prepend inserts fetched articles at the top, assigning fresh ids.
func (f *Feed) Prepend(articles []catalog.Article) {
	if len(articles) == 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stamped := make([]catalog.Article, len(articles))
	for i, a := range articles {
		a.ID = f.nextID
		f.nextID++
		stamped[i] = a
	}
	f.articles = append(stamped, f.articles...)
}
