package schema

import (
	"time"
)

// NoTypeSentinel replaces a missing type discriminator so it still
// participates in the composite uniqueness constraint (SQL NULL would not).
const NoTypeSentinel = "n"

// Classification represents the instance_classifications table - one row per
// (classification, owning instance) pair within a tenant. The natural
// composite key is (type_id, number, tenant_id, instance_id); re-processing
// the same event upserts the same row.
type Classification struct {
	// TypeID is the classification type discriminator (sentinel "n" when absent)
	TypeID string `gorm:"column:type_id;primaryKey;type:varchar(40)"`
	// Number is the normalized classification number (truncated to 50 chars)
	Number string `gorm:"column:number;primaryKey;type:varchar(50)"`
	// TenantID is the owning tenant
	TenantID string `gorm:"column:tenant_id;primaryKey;type:text"`
	// InstanceID is the owning instance id
	InstanceID string `gorm:"column:instance_id;primaryKey;type:text"`
	// EntityID is the content hash identity of the classification entity,
	// shared by all rows carrying the same (type_id, number)
	EntityID string `gorm:"column:entity_id;not null;index;type:text"`
	// Shared is true when the owning tenant is the consortium's central tenant
	Shared bool `gorm:"column:shared;not null;default:false"`
	// CreatedAt is the timestamp when this row was first staged
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Classification model
func (Classification) TableName() string {
	return "instance_classifications"
}
