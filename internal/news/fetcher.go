package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/redis/go-redis/v9"

	"github.com/yashdubey2004/AI-law/internal/catalog"
)

// Fetcher retrieves a source page and extracts a readable article from it.
// With a redis client configured, extracted articles are cached by URL so
// repeated refreshes do not refetch unchanged sources.
type Fetcher struct {
	client   *http.Client
	rdb      *redis.Client
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewFetcher(timeout time.Duration, rdb *redis.Client, cacheTTL time.Duration) *Fetcher {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		rdb:      rdb,
		cacheTTL: cacheTTL,
		logger:   log.New(log.Writer(), "[NEWS] ", log.LstdFlags),
	}
}

// Fetch returns the extracted article for sourceURL, from cache if possible.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) (catalog.Article, error) {
	if cached, ok := f.fromCache(ctx, sourceURL); ok {
		return cached, nil
	}

	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return catalog.Article{}, fmt.Errorf("invalid source url %q: %w", sourceURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return catalog.Article{}, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return catalog.Article{}, fmt.Errorf("fetching %q: %w", sourceURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return catalog.Article{}, fmt.Errorf("fetching %q: status %d", sourceURL, resp.StatusCode)
	}

	extracted, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return catalog.Article{}, fmt.Errorf("extracting %q: %w", sourceURL, err)
	}

	article := catalog.Article{
		Title:    strings.TrimSpace(extracted.Title),
		Summary:  summarize(extracted),
		Category: classify(extracted.Title),
		Date:     time.Now().Format("2006-01-02"),
		ReadTime: readTime(extracted.TextContent),
		Source:   sourceName(extracted.SiteName, parsed),
	}
	if article.Title == "" {
		return catalog.Article{}, fmt.Errorf("extracting %q: no title", sourceURL)
	}

	f.toCache(ctx, sourceURL, article)
	return article, nil
}

func (f *Fetcher) fromCache(ctx context.Context, sourceURL string) (catalog.Article, bool) {
	if f.rdb == nil {
		return catalog.Article{}, false
	}
	raw, err := f.rdb.Get(ctx, cacheKey(sourceURL)).Bytes()
	if err != nil {
		return catalog.Article{}, false
	}
	var a catalog.Article
	if err := json.Unmarshal(raw, &a); err != nil {
		return catalog.Article{}, false
	}
	return a, true
}

func (f *Fetcher) toCache(ctx context.Context, sourceURL string, a catalog.Article) {
	if f.rdb == nil {
		return
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := f.rdb.Set(ctx, cacheKey(sourceURL), raw, f.cacheTTL).Err(); err != nil {
		f.logger.Printf("cache set %q: %v", sourceURL, err)
	}
}

func cacheKey(sourceURL string) string { return "news:article:" + sourceURL }

func summarize(a readability.Article) string {
	if s := strings.TrimSpace(a.Excerpt); s != "" {
		return s
	}
	text := strings.TrimSpace(a.TextContent)
	if len(text) > 240 {
		return text[:240] + "…"
	}
	return text
}

// readTime estimates reading time at ~200 words per minute.
func readTime(text string) string {
	words := len(strings.Fields(text))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func sourceName(siteName string, u *url.URL) string {
	if s := strings.TrimSpace(siteName); s != "" {
		return s
	}
	return u.Hostname()
}

// categoryKeywords maps title keywords to a category; unmatched titles fall
// back to contract law, the broadest bucket in the feed.
var categoryKeywords = []struct {
	keyword  string
	category catalog.NewsCategory
}{
	{"employment", catalog.CategoryEmployment},
	{"labor", catalog.CategoryEmployment},
	{"corporate", catalog.CategoryCorporate},
	{"governance", catalog.CategoryCorporate},
	{"patent", catalog.CategoryIP},
	{"copyright", catalog.CategoryIP},
	{"trademark", catalog.CategoryIP},
	{"environmental", catalog.CategoryEnvironmental},
	{"climate", catalog.CategoryEnvironmental},
}

func classify(title string) catalog.NewsCategory {
	lower := strings.ToLower(title)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	return catalog.CategoryContract
}
