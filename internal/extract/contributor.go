package extract

import (
	"context"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// NewContributorExtractor derives contributor rows from the "contributors"
// array of an instance's representation
func NewContributorExtractor(st store.Store) Extractor {
	return &extractor[schema.Contributor]{
		st: st,
		ops: rowOps[schema.Contributor]{
			kind:       "contributor",
			childField: "contributors",
			build: func(raw map[string]interface{}, tenant, instanceID string, shared bool) *schema.Contributor {
				name := truncate(normalize(domain.StringField(raw, "name")), 255)
				if name == "" {
					return nil
				}
				nameTypeID := discriminator(raw, "contributorNameTypeId", 40)
				return &schema.Contributor{
					NameTypeID:        nameTypeID,
					Name:              name,
					TenantID:          tenant,
					InstanceID:        instanceID,
					EntityID:          entityID(nameTypeID, name),
					AuthorityID:       normalize(domain.StringField(raw, "authorityId")),
					ContributorTypeID: truncate(normalize(domain.StringField(raw, "contributorTypeId")), 40),
					Shared:            shared,
				}
			},
			key: func(r *schema.Contributor) string {
				return entityID(r.NameTypeID, r.Name, r.TenantID, r.InstanceID)
			},
			save: func(ctx context.Context, st store.Store, rows []*schema.Contributor) error {
				return st.UpsertContributors(ctx, rows)
			},
			deleteByInstances: func(ctx context.Context, st store.Store, tenant string, instanceIDs []string) error {
				return st.DeleteContributorsByInstanceIDs(ctx, tenant, instanceIDs)
			},
			updateShared: func(ctx context.Context, st store.Store, tenant, instanceID string, shared bool) error {
				return st.UpdateContributorsShared(ctx, tenant, instanceID, shared)
			},
		},
	}
}
