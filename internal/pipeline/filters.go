package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/store"
)

// Filter is one admission predicate evaluated before preprocessing. Returning
// filtered marks the record consumed; an error aborts the record's processing
// so the broker can redeliver it. Malformed input must resolve to not-filtered
// rather than error, so a single bad record cannot poison the batch.
//
//go:generate mockgen -source=filters.go -destination=../mocks/filters.go -package=mocks -mock_names=Filter=MockFilter
type Filter interface {
	// Filtered reports whether the record is consumed by this filter
	Filtered(ctx context.Context, rec *domain.Record) (bool, error)
}

// FilterChain evaluates filters in order; the first filter that consumes a
// record short-circuits the rest
type FilterChain struct {
	filters []Filter
}

// NewFilterChain builds the ordered admission chain
func NewFilterChain(filters ...Filter) *FilterChain {
	return &FilterChain{filters: filters}
}

// Filtered reports whether any filter in the chain consumes the record
func (c *FilterChain) Filtered(ctx context.Context, rec *domain.Record) (bool, error) {
	for _, f := range c.filters {
		filtered, err := f.Filtered(ctx, rec)
		if err != nil {
			return false, err
		}
		if filtered {
			return true, nil
		}
	}
	return false, nil
}

// deleteAllFilter consumes DELETE_ALL records after executing the
// tenant-and-resource-type-scoped wide delete. It is the only filter with a
// side effect; the record itself never reaches preprocessing.
type deleteAllFilter struct {
	st store.Store
}

// NewDeleteAllFilter creates the DELETE_ALL wide-delete filter
func NewDeleteAllFilter(st store.Store) Filter {
	return &deleteAllFilter{st: st}
}

func (f *deleteAllFilter) Filtered(ctx context.Context, rec *domain.Record) (bool, error) {
	ev := rec.Event
	if ev == nil || ev.Type != domain.EventTypeDeleteAll {
		return false, nil
	}

	if err := f.st.DeleteAllByTenant(ctx, ev.ResourceName, ev.Tenant); err != nil {
		return false, err
	}

	logger.InfoCtx(ctx, "Executed wide delete",
		zap.String("resource", string(ev.ResourceName)),
		zap.String("tenant", ev.Tenant),
	)

	return true, nil
}

// staleAuthorityDeleteFilter consumes hard deletes for authorities: they are
// superseded by soft-delete handling and must not double-process. A missing or
// unknown sub-type falls through to preprocessing.
type staleAuthorityDeleteFilter struct{}

// NewStaleAuthorityDeleteFilter creates the stale hard-delete filter
func NewStaleAuthorityDeleteFilter() Filter {
	return &staleAuthorityDeleteFilter{}
}

func (f *staleAuthorityDeleteFilter) Filtered(_ context.Context, rec *domain.Record) (bool, error) {
	ev := rec.Event
	if ev == nil {
		return false, nil
	}
	filtered := ev.Type == domain.EventTypeDelete &&
		ev.DeleteSubType == domain.DeleteSubTypeHard &&
		ev.ResourceName == domain.ResourceTypeAuthority
	return filtered, nil
}
