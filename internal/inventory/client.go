// Package inventory wraps the upstream inventory system's HTTP API used by
// the reindex merge phase.
package inventory

import (
	"context"
	"fmt"
	"net/url"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/auth"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// Config holds the inventory API endpoint
type Config struct {
	BaseURL string
}

// PublishRangeRequest asks inventory to re-export one id range's records onto
// the event stream. The range id comes back with the re-published records so
// completions can be correlated.
type PublishRangeRequest struct {
	RangeID    string                   `json:"id"`
	EntityType schema.ReindexEntityType `json:"recordType"`
	Tenant     string                   `json:"-"`
	LowerID    string                   `json:"from"`
	UpperID    string                   `json:"to"`
}

// Client defines the inventory operations used by the reindex orchestrator
//
//go:generate mockgen -source=client.go -destination=../mocks/inventory.go -package=mocks -mock_names=Client=MockInventoryClient
type Client interface {
	// Count returns the total record count for an entity type within a tenant
	Count(ctx context.Context, entityType schema.ReindexEntityType, tenant string) (int64, error)
	// PublishRecordsRange requests re-export of one id range onto the event stream
	PublishRecordsRange(ctx context.Context, req PublishRangeRequest) error
}

type client struct {
	config Config
	http   adapter.HTTPClient
	tokens auth.TokenProvider
}

// NewClient creates a new inventory API client
func NewClient(cfg Config, httpClient adapter.HTTPClient, tokens auth.TokenProvider) Client {
	return &client{
		config: cfg,
		http:   httpClient,
		tokens: tokens,
	}
}

func (c *client) headers(ctx context.Context, tenant string) (map[string]string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"X-Okapi-Tenant": tenant,
		"X-Okapi-Token":  token,
	}, nil
}

type countResponse struct {
	TotalRecords int64 `json:"totalRecords"`
}

// Count returns the total record count for an entity type within a tenant
func (c *client) Count(ctx context.Context, entityType schema.ReindexEntityType, tenant string) (int64, error) {
	headers, err := c.headers(ctx, tenant)
	if err != nil {
		return 0, err
	}

	u := fmt.Sprintf("%s/inventory-reindex-records/count?recordType=%s",
		c.config.BaseURL, url.QueryEscape(string(entityType)))

	var resp countResponse
	if err := c.http.GetJSON(ctx, u, headers, &resp); err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", entityType, err)
	}

	return resp.TotalRecords, nil
}

// PublishRecordsRange requests re-export of one id range onto the event stream
func (c *client) PublishRecordsRange(ctx context.Context, req PublishRangeRequest) error {
	headers, err := c.headers(ctx, req.Tenant)
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/inventory-reindex-records/publish", c.config.BaseURL)
	if _, err := c.http.PostJSON(ctx, u, headers, req); err != nil {
		return fmt.Errorf("failed to publish records range %s: %w", req.RangeID, err)
	}

	return nil
}
