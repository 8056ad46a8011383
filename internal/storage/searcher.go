package storage

import (
	"context"
	"encoding/json"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/query"
)

// SearchResponse is the part of a backend search answer the gateways read.
type SearchResponse struct {
	Took     int64      `json:"took"`
	TimedOut bool       `json:"timed_out"`
	Hits     SearchHits `json:"hits"`
}

type SearchHits struct {
	Total TotalHits   `json:"total"`
	Hits  []SearchHit `json:"hits"`
}

type TotalHits struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation"`
}

// SearchHit carries the raw stored record so that each gateway decodes it into its own shape.
type SearchHit struct {
	Index     string              `json:"_index"`
	ID        string              `json:"_id"`
	Score     *float64            `json:"_score"`
	Source    json.RawMessage     `json:"_source"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}

// Searcher executes query documents against a named index.
// An empty index means the backend's default index.
type Searcher interface {
	Search(ctx context.Context, q query.Document, index string) (*SearchResponse, error)
	IndexExists(ctx context.Context, index string) (bool, error)
}
