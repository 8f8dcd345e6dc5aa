package extract

import (
	"context"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// NewSubjectExtractor derives subject rows from the "subjects" array of an
// instance's representation
func NewSubjectExtractor(st store.Store) Extractor {
	return &extractor[schema.Subject]{
		st: st,
		ops: rowOps[schema.Subject]{
			kind:       "subject",
			childField: "subjects",
			build: func(raw map[string]interface{}, tenant, instanceID string, shared bool) *schema.Subject {
				value := truncate(normalize(domain.StringField(raw, "value")), 255)
				if value == "" {
					return nil
				}
				typeID := discriminator(raw, "typeId", 40)
				return &schema.Subject{
					TypeID:      typeID,
					Value:       value,
					TenantID:    tenant,
					InstanceID:  instanceID,
					EntityID:    entityID(typeID, value),
					AuthorityID: normalize(domain.StringField(raw, "authorityId")),
					SourceID:    truncate(normalize(domain.StringField(raw, "sourceId")), 40),
					Shared:      shared,
				}
			},
			key: func(r *schema.Subject) string {
				return entityID(r.TypeID, r.Value, r.TenantID, r.InstanceID)
			},
			save: func(ctx context.Context, st store.Store, rows []*schema.Subject) error {
				return st.UpsertSubjects(ctx, rows)
			},
			deleteByInstances: func(ctx context.Context, st store.Store, tenant string, instanceIDs []string) error {
				return st.DeleteSubjectsByInstanceIDs(ctx, tenant, instanceIDs)
			},
			updateShared: func(ctx context.Context, st store.Store, tenant, instanceID string, shared bool) error {
				return st.UpdateSubjectsShared(ctx, tenant, instanceID, shared)
			},
		},
	}
}
