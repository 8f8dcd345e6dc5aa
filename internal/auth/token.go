// Package auth maintains the system user token used for calls to the upstream
// inventory system. The token is process-scoped state with an explicit
// Initialize step and an explicit invalidation contract.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/logger"
)

// refreshMargin is how long before expiry a cached token is considered stale
const refreshMargin = 60 * time.Second

// Config holds the system user credentials and auth endpoint
type Config struct {
	BaseURL  string
	Tenant   string
	Username string
	Password string
}

// TokenProvider supplies a valid system user token, refreshing it when the
// cached one is near expiry
//
//go:generate mockgen -source=token.go -destination=../mocks/auth.go -package=mocks -mock_names=TokenProvider=MockTokenProvider
type TokenProvider interface {
	// Initialize performs the first login; must be called before the pipeline starts
	Initialize(ctx context.Context) error
	// Token returns a valid token, logging in again when the cached one is stale
	Token(ctx context.Context) (string, error)
	// Invalidate drops the cached token so the next call logs in again
	Invalidate()
}

type tokenProvider struct {
	config Config
	http   adapter.HTTPClient
	clock  adapter.Clock

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenProvider creates a token provider for the configured system user
func NewTokenProvider(cfg Config, httpClient adapter.HTTPClient, clock adapter.Clock) TokenProvider {
	return &tokenProvider{
		config: cfg,
		http:   httpClient,
		clock:  clock,
	}
}

// Initialize performs the first login
func (p *tokenProvider) Initialize(ctx context.Context) error {
	_, err := p.Token(ctx)
	return err
}

// Token returns a valid token, logging in again when the cached one is stale
func (p *tokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.clock.Now().Add(refreshMargin).Before(p.expiresAt) {
		return p.token, nil
	}

	token, expiresAt, err := p.login(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to login system user: %w", err)
	}

	p.token = token
	p.expiresAt = expiresAt
	logger.Debug("System user token refreshed",
		zap.String("tenant", p.config.Tenant),
		zap.Time("expires_at", expiresAt),
	)

	return p.token, nil
}

// Invalidate drops the cached token so the next call logs in again
func (p *tokenProvider) Invalidate() {
	p.mu.Lock()
	p.token = ""
	p.expiresAt = time.Time{}
	p.mu.Unlock()
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

func (p *tokenProvider) login(ctx context.Context) (string, time.Time, error) {
	url := fmt.Sprintf("%s/authn/login", p.config.BaseURL)
	body, err := p.http.PostJSON(ctx, url,
		map[string]string{"X-Okapi-Tenant": p.config.Tenant},
		map[string]string{"username": p.config.Username, "password": p.config.Password},
	)
	if err != nil {
		return "", time.Time{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	if resp.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("login response carried no token")
	}

	return resp.AccessToken, p.tokenExpiry(resp.AccessToken), nil
}

// tokenExpiry reads the exp claim without verifying the signature; the token
// was just issued by the trusted auth endpoint. Tokens without a readable exp
// claim default to a short lifetime.
func (p *tokenProvider) tokenExpiry(token string) time.Time {
	fallback := p.clock.Now().Add(5 * time.Minute)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}

	return exp.Time
}
