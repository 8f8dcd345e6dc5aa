// Package extract derives normalized sub-resource rows (classifications,
// contributors, subjects, call numbers) from instance events and persists them
// in the staging store as idempotent batched upserts.
package extract

import (
	"context"
	"crypto/sha1" //nolint:gosec // content identity, not security
	"encoding/hex"
	"strings"

	"go.uber.org/zap"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// Extractor persists one sub-resource kind's rows for a batch of instance events
//
//go:generate mockgen -source=extractor.go -destination=../mocks/extract.go -package=mocks -mock_names=Extractor=MockExtractor
type Extractor interface {
	// Kind names the sub-resource kind handled by the extractor
	Kind() string
	// PersistChildren derives and persists rows for a batch of events.
	// shared marks rows owned by the consortium's central tenant.
	PersistChildren(ctx context.Context, shared bool, events []*domain.ChangeEvent) error
	// PersistChildrenOnSharing recomputes the shared flag of an instance's rows
	// without re-deriving entities
	PersistChildrenOnSharing(ctx context.Context, event *domain.ChangeEvent) error
}

// NewAll builds every registered extractor. The registry is static; variants
// are registered here at startup, not discovered at runtime.
func NewAll(st store.Store) []Extractor {
	return []Extractor{
		NewClassificationExtractor(st),
		NewContributorExtractor(st),
		NewSubjectExtractor(st),
		NewCallNumberExtractor(st),
	}
}

// rowOps are the kind-specific staging operations plugged into the template
type rowOps[T any] struct {
	kind       string
	childField string
	// build maps one raw child record to a row; nil result discards the record
	build func(raw map[string]interface{}, tenant, instanceID string, shared bool) *T
	// key returns the value-equality key used to deduplicate rows within a call
	key func(row *T) string
	// save persists the accumulated rows in one batched upsert
	save func(ctx context.Context, st store.Store, rows []*T) error
	// deleteByInstances removes rows owned by the given instances
	deleteByInstances func(ctx context.Context, st store.Store, tenant string, instanceIDs []string) error
	// updateShared recomputes the shared flag for one instance's rows
	updateShared func(ctx context.Context, st store.Store, tenant, instanceID string, shared bool) error
}

// extractor is the common template specialized per sub-resource kind
type extractor[T any] struct {
	st  store.Store
	ops rowOps[T]
}

func (e *extractor[T]) Kind() string {
	return e.ops.kind
}

// PersistChildren follows one shape for every kind: delete rows owned by
// updated or deleted instances first, then re-derive and upsert rows from the
// surviving events' new representations in one batched call.
func (e *extractor[T]) PersistChildren(ctx context.Context, shared bool, events []*domain.ChangeEvent) error {
	if len(events) == 0 {
		return nil
	}
	tenant := events[0].Tenant

	// Replaced or removed instances drop their previous rows in one batch.
	var deletedInstanceIDs []string
	for _, ev := range events {
		if ev.Type != domain.EventTypeCreate && ev.Type != domain.EventTypeReindex {
			deletedInstanceIDs = append(deletedInstanceIDs, ev.ID)
		}
	}
	if err := e.ops.deleteByInstances(ctx, e.st, tenant, deletedInstanceIDs); err != nil {
		return err
	}

	rows := make([]*T, 0)
	seen := make(map[string]struct{})
	for _, ev := range events {
		// Sharing transitions are handled by the sharing path; deletions were
		// handled above.
		if ev.SharedStatusChanged() || ev.IsDeletion() {
			continue
		}

		for _, raw := range domain.SliceField(ev.New, e.ops.childField) {
			rec, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			row := e.ops.build(rec, tenant, ev.ID, shared)
			if row == nil {
				continue
			}
			k := e.ops.key(row)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			rows = append(rows, row)
		}
	}

	if err := e.ops.save(ctx, e.st, rows); err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Persisted child resources",
		zap.String("kind", e.ops.kind),
		zap.String("tenant", tenant),
		zap.Int("rows", len(rows)),
		zap.Int("deleted_instances", len(deletedInstanceIDs)),
	)

	return nil
}

// PersistChildrenOnSharing recomputes the shared flag of an instance's rows
func (e *extractor[T]) PersistChildrenOnSharing(ctx context.Context, event *domain.ChangeEvent) error {
	shared := domain.BoolField(event.New, "shared")
	return e.ops.updateShared(ctx, e.st, event.Tenant, event.ID, shared)
}

// entityID is the content hash identity for entities lacking a natural id:
// a stable hash over the normalized field tuple in fixed order.
func entityID(parts ...string) string {
	h := sha1.New() //nolint:gosec // content identity, not security
	for i, part := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// truncate caps a normalized value at the given rune length; values overflow
// by truncation, never rejection
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// normalize trims surrounding whitespace from a raw field value
func normalize(s string) string {
	return strings.TrimSpace(s)
}

// discriminator normalizes a possibly-missing type discriminator to the
// sentinel value so it participates in the composite uniqueness constraint
func discriminator(raw map[string]interface{}, field string, maxLen int) string {
	v := normalize(domain.StringField(raw, field))
	if v == "" {
		return schema.NoTypeSentinel
	}
	return truncate(v, maxLen)
}
