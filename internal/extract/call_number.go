package extract

import (
	"context"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// NewCallNumberExtractor derives call number rows from the "callNumbers"
// array of an instance's representation (call number components collected
// from the instance's items)
func NewCallNumberExtractor(st store.Store) Extractor {
	return &extractor[schema.CallNumber]{
		st: st,
		ops: rowOps[schema.CallNumber]{
			kind:       "call-number",
			childField: "callNumbers",
			build: func(raw map[string]interface{}, tenant, instanceID string, shared bool) *schema.CallNumber {
				value := truncate(normalize(domain.StringField(raw, "callNumber")), schema.CallNumberMaxLen)
				if value == "" {
					return nil
				}
				typeID := discriminator(raw, "typeId", schema.CallNumberTypeMaxLen)
				prefix := truncate(normalize(domain.StringField(raw, "prefix")), schema.CallNumberPrefixMaxLen)
				suffix := truncate(normalize(domain.StringField(raw, "suffix")), schema.CallNumberSuffixMaxLen)
				return &schema.CallNumber{
					TypeID:     typeID,
					Value:      value,
					TenantID:   tenant,
					InstanceID: instanceID,
					EntityID:   entityID(typeID, value, prefix, suffix),
					Prefix:     prefix,
					Suffix:     suffix,
					ItemID:     normalize(domain.StringField(raw, "itemId")),
					Shared:     shared,
				}
			},
			key: func(r *schema.CallNumber) string {
				return entityID(r.TypeID, r.Value, r.TenantID, r.InstanceID)
			},
			save: func(ctx context.Context, st store.Store, rows []*schema.CallNumber) error {
				return st.UpsertCallNumbers(ctx, rows)
			},
			deleteByInstances: func(ctx context.Context, st store.Store, tenant string, instanceIDs []string) error {
				return st.DeleteCallNumbersByInstanceIDs(ctx, tenant, instanceIDs)
			},
			updateShared: func(ctx context.Context, st store.Store, tenant, instanceID string, shared bool) error {
				return st.UpdateCallNumbersShared(ctx, tenant, instanceID, shared)
			},
		},
	}
}
