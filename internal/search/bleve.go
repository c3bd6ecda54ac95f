package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve"

	"github.com/yashdubey2004/AI-law/internal/catalog"
)

// BleveSearcher serves queries from an in-memory full-text index built over
// the case corpus at construction time.
type BleveSearcher struct {
	index      bleve.Index
	byID       map[string]catalog.Case
	maxResults int
}

// caseDoc is the indexed projection of a case.
type caseDoc struct {
	Title     string `json:"title"`
	Court     string `json:"court"`
	Summary   string `json:"summary"`
	KeyPoints string `json:"key_points"`
	Citation  string `json:"citation"`
}

func NewBleveSearcher(cases []catalog.Case, maxResults int) (*BleveSearcher, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating case index: %w", err)
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	s := &BleveSearcher{index: index, byID: make(map[string]catalog.Case, len(cases)), maxResults: maxResults}
	for _, c := range cases {
		id := strconv.Itoa(c.ID)
		s.byID[id] = c
		doc := caseDoc{
			Title:     c.Title,
			Court:     c.Court,
			Summary:   c.Summary,
			KeyPoints: strings.Join(c.KeyPoints, " "),
			Citation:  c.Citation,
		}
		if err := index.Index(id, doc); err != nil {
			return nil, fmt.Errorf("indexing case %d: %w", c.ID, err)
		}
	}
	return s, nil
}

func (s *BleveSearcher) Search(ctx context.Context, query string) ([]catalog.Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := bleve.NewQueryStringQuery(query)
	req := bleve.NewSearchRequestOptions(q, s.maxResults, 0, false)
	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching cases: %w", err)
	}
	out := make([]catalog.Case, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if c, ok := s.byID[hit.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
