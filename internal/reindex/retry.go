package reindex

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/folio-org/search-indexer/internal/domain"
)

// withRetry runs one remote call under a bounded attempt budget with
// exponential backoff between attempts. Exhaustion wraps the last error in a
// typed IntegrationError; the caller decides what state to fail.
func withRetry(ctx context.Context, op string, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0 // bounded by the attempt budget, not wall clock

	tries := 0
	err := backoff.Retry(func() error {
		tries++
		return fn()
	}, backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx))
	if err != nil {
		return domain.NewIntegrationError(op, tries, err)
	}

	return nil
}
