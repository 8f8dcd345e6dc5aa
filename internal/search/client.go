// Package search wraps the search engine's bulk document API used by the
// reindex upload phase and live indexing.
package search

import (
	"context"
	"fmt"

	"github.com/folio-org/search-indexer/internal/adapter"
)

// Config holds the search engine endpoint
type Config struct {
	BaseURL string
}

// BulkAction is the operation applied to one document
type BulkAction string

const (
	BulkActionIndex  BulkAction = "index"
	BulkActionDelete BulkAction = "delete"
)

// BulkDocument is one document in a bulk request. The document id is the
// resource's natural id; the routing key is the tenant id.
type BulkDocument struct {
	ID      string                 `json:"id"`
	Index   string                 `json:"index"`
	Routing string                 `json:"routing"`
	Action  BulkAction             `json:"action"`
	Body    map[string]interface{} `json:"body,omitempty"`
}

// Client defines the search engine operations used by this core
//
//go:generate mockgen -source=client.go -destination=../mocks/search.go -package=mocks -mock_names=Client=MockSearchClient
type Client interface {
	// BulkIndex pushes a batch of index/delete actions in one request
	BulkIndex(ctx context.Context, docs []BulkDocument) error
}

type client struct {
	config Config
	http   adapter.HTTPClient
}

// NewClient creates a new search engine client
func NewClient(cfg Config, httpClient adapter.HTTPClient) Client {
	return &client{
		config: cfg,
		http:   httpClient,
	}
}

type bulkRequest struct {
	Documents []BulkDocument `json:"documents"`
}

// BulkIndex pushes a batch of index/delete actions in one request
func (c *client) BulkIndex(ctx context.Context, docs []BulkDocument) error {
	if len(docs) == 0 {
		return nil
	}

	u := fmt.Sprintf("%s/bulk", c.config.BaseURL)
	if _, err := c.http.PostJSON(ctx, u, nil, bulkRequest{Documents: docs}); err != nil {
		return fmt.Errorf("failed to bulk index %d documents: %w", len(docs), err)
	}

	return nil
}
