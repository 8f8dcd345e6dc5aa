package schema

import (
	"time"
)

// Subject represents the instance_subjects table - one row per
// (subject, owning instance) pair within a tenant. The natural composite key
// is (type_id, value, tenant_id, instance_id).
type Subject struct {
	// TypeID is the subject type discriminator (sentinel "n" when absent)
	TypeID string `gorm:"column:type_id;primaryKey;type:varchar(40)"`
	// Value is the normalized subject heading (truncated to 255 chars)
	Value string `gorm:"column:value;primaryKey;type:varchar(255)"`
	// TenantID is the owning tenant
	TenantID string `gorm:"column:tenant_id;primaryKey;type:text"`
	// InstanceID is the owning instance id
	InstanceID string `gorm:"column:instance_id;primaryKey;type:text"`
	// EntityID is the content hash identity of the subject entity
	EntityID string `gorm:"column:entity_id;not null;index;type:text"`
	// AuthorityID links the subject to an authority record, if any
	AuthorityID string `gorm:"column:authority_id;type:text"`
	// SourceID identifies the subject source vocabulary; last write wins
	SourceID string `gorm:"column:source_id;type:varchar(40)"`
	// Shared is true when the owning tenant is the consortium's central tenant
	Shared bool `gorm:"column:shared;not null;default:false"`
	// CreatedAt is the timestamp when this row was first staged
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Subject model
func (Subject) TableName() string {
	return "instance_subjects"
}
