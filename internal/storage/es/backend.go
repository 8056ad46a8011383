package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/query"
	"github.com/DjordjeVuckovic/gazette-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	backendName = "elasticsearch"

	knownIndexesSize = 64
	knownIndexesTTL  = 5 * time.Minute
)

var _ storage.Searcher = (*Backend)(nil)

// Backend runs search documents against an Elasticsearch cluster.
// Index existence is confirmed once per index and remembered for knownIndexesTTL.
type Backend struct {
	client       *elasticsearch.TypedClient
	defaultIndex string
	timeout      time.Duration
	knownIndexes *expirable.LRU[string, struct{}]
}

func NewBackend(config ClientConfig) (*Backend, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Backend{
		client:       client,
		defaultIndex: config.IndexName,
		timeout:      timeout,
		knownIndexes: expirable.NewLRU[string, struct{}](knownIndexesSize, nil, knownIndexesTTL),
	}, nil
}

func (b *Backend) DefaultIndex() string {
	return b.defaultIndex
}

// Search executes q against index, or the default index when index is empty.
// q is serialized as is and never modified.
func (b *Backend) Search(ctx context.Context, q query.Document, index string) (*storage.SearchResponse, error) {
	name := b.resolveIndex(index)

	ctx, cancel := b.newQueryCtx(ctx)
	defer cancel()

	if err := b.ensureIndex(ctx, name); err != nil {
		return nil, err
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search body: %w", err)
	}

	slog.Debug("Executing es search", "index", name, "body", string(body))

	res, err := b.client.Search().
		Index(name).
		Raw(bytes.NewReader(body)).
		Perform(ctx)
	if err != nil {
		slog.Error("Elasticsearch search failed", "index", name, "error", err)
		return nil, &apperr.BackendUnavailableError{Backend: backendName, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusMultipleChoices {
		reason := errorReason(res.Body)
		slog.Error("Elasticsearch rejected search", "index", name, "status", res.StatusCode, "reason", reason)
		return nil, &apperr.BackendError{Backend: backendName, Status: res.StatusCode, Reason: reason}
	}

	var parsed storage.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			slog.Error("Elasticsearch search response cut short", "index", name, "error", err)
			return nil, &apperr.BackendUnavailableError{Backend: backendName, Err: ctxErr}
		}
		return nil, &apperr.BackendError{
			Backend: backendName,
			Status:  res.StatusCode,
			Reason:  fmt.Sprintf("malformed search response: %v", err),
		}
	}

	slog.Debug("Es search completed",
		"index", name,
		"took_ms", parsed.Took,
		"total", parsed.Hits.Total.Value,
		"hits", len(parsed.Hits.Hits),
	)

	return &parsed, nil
}

// IndexExists asks the cluster whether index exists, bypassing the memo.
func (b *Backend) IndexExists(ctx context.Context, index string) (bool, error) {
	ctx, cancel := b.newQueryCtx(ctx)
	defer cancel()

	return b.indexExists(ctx, b.resolveIndex(index))
}

func (b *Backend) Ping(ctx context.Context) (bool, error) {
	ctx, cancel := b.newQueryCtx(ctx)
	defer cancel()

	return b.client.Ping().Do(ctx)
}

func (b *Backend) resolveIndex(index string) string {
	if index == "" {
		return b.defaultIndex
	}
	return index
}

func (b *Backend) ensureIndex(ctx context.Context, name string) error {
	if _, ok := b.knownIndexes.Get(name); ok {
		return nil
	}

	exists, err := b.indexExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		slog.Warn("Search index does not exist", "index", name)
		return &apperr.IndexNotFoundError{Index: name}
	}

	b.knownIndexes.Add(name, struct{}{})
	return nil
}

func (b *Backend) indexExists(ctx context.Context, name string) (bool, error) {
	res, err := b.client.Indices.Exists(name).Perform(ctx)
	if err != nil {
		return false, &apperr.BackendUnavailableError{Backend: backendName, Err: err}
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return false, nil
	case res.StatusCode >= http.StatusMultipleChoices:
		return false, &apperr.BackendError{Backend: backendName, Status: res.StatusCode, Reason: "index existence check failed"}
	default:
		return true, nil
	}
}

func (b *Backend) newQueryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < b.timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

type errorBody struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}

func errorReason(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error.Type == "" {
		return string(raw)
	}
	return body.Error.Type + ": " + body.Error.Reason
}
