package pipeline

import (
	"context"

	"gorm.io/datatypes"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// InstanceStager persists instance events into the staged instance table:
// deletions remove rows, everything else upserts the merged representation.
type InstanceStager struct {
	st            store.Store
	json          adapter.JSON
	clock         adapter.Clock
	centralTenant string
}

// NewInstanceStager creates a stager. centralTenant is the consortium's
// central tenant id; its instances are staged as shared.
func NewInstanceStager(st store.Store, jsonAdapter adapter.JSON, clock adapter.Clock, centralTenant string) *InstanceStager {
	return &InstanceStager{
		st:            st,
		json:          jsonAdapter,
		clock:         clock,
		centralTenant: centralTenant,
	}
}

// Stage applies one tenant's instance events in two batched calls: a delete
// for removed instances and an upsert for the rest. Re-applying the same
// events converges to the same staged state.
func (s *InstanceStager) Stage(ctx context.Context, tenant string, events []*domain.ChangeEvent) error {
	var deletedIDs []string
	var upserts []*schema.Instance
	now := s.clock.Now()

	for _, ev := range events {
		if ev.IsDeletion() {
			deletedIDs = append(deletedIDs, ev.ID)
			continue
		}

		doc, err := s.json.Marshal(ev.New)
		if err != nil {
			return err
		}
		upserts = append(upserts, &schema.Instance{
			ID:          ev.ID,
			TenantID:    tenant,
			Shared:      tenant == s.centralTenant || domain.BoolField(ev.New, "shared"),
			IsBoundWith: domain.BoolField(ev.New, "isBoundWith"),
			Document:    datatypes.JSON(doc),
			UpdatedAt:   now,
		})
	}

	if len(deletedIDs) > 0 {
		if err := s.st.DeleteInstances(ctx, tenant, deletedIDs); err != nil {
			return err
		}
	}
	if len(upserts) > 0 {
		if err := s.st.UpsertInstances(ctx, upserts); err != nil {
			return err
		}
	}

	return nil
}
