package extract

import (
	"context"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// NewClassificationExtractor derives classification rows from the
// "classifications" array of an instance's representation
func NewClassificationExtractor(st store.Store) Extractor {
	return &extractor[schema.Classification]{
		st: st,
		ops: rowOps[schema.Classification]{
			kind:       "classification",
			childField: "classifications",
			build: func(raw map[string]interface{}, tenant, instanceID string, shared bool) *schema.Classification {
				number := truncate(normalize(domain.StringField(raw, "classificationNumber")), 50)
				if number == "" {
					return nil
				}
				typeID := discriminator(raw, "classificationTypeId", 40)
				return &schema.Classification{
					TypeID:     typeID,
					Number:     number,
					TenantID:   tenant,
					InstanceID: instanceID,
					EntityID:   entityID(typeID, number),
					Shared:     shared,
				}
			},
			key: func(r *schema.Classification) string {
				return entityID(r.TypeID, r.Number, r.TenantID, r.InstanceID)
			},
			save: func(ctx context.Context, st store.Store, rows []*schema.Classification) error {
				return st.UpsertClassifications(ctx, rows)
			},
			deleteByInstances: func(ctx context.Context, st store.Store, tenant string, instanceIDs []string) error {
				return st.DeleteClassificationsByInstanceIDs(ctx, tenant, instanceIDs)
			},
			updateShared: func(ctx context.Context, st store.Store, tenant, instanceID string, shared bool) error {
				return st.UpdateClassificationsShared(ctx, tenant, instanceID, shared)
			},
		},
	}
}
