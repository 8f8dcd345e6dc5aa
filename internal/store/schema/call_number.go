package schema

import (
	"time"
)

// Maximum normalized field lengths for call number components. Overflowing
// values are truncated, not rejected.
const (
	CallNumberMaxLen       = 50
	CallNumberPrefixMaxLen = 20
	CallNumberSuffixMaxLen = 25
	CallNumberTypeMaxLen   = 40
)

// CallNumber represents the instance_call_numbers table - one row per
// (call number, owning instance) pair within a tenant. The natural composite
// key is (type_id, call_number, tenant_id, instance_id).
type CallNumber struct {
	// TypeID is the call number type discriminator (sentinel "n" when absent)
	TypeID string `gorm:"column:type_id;primaryKey;type:varchar(40)"`
	// Value is the normalized call number (truncated to 50 chars)
	Value string `gorm:"column:call_number;primaryKey;type:varchar(50)"`
	// TenantID is the owning tenant
	TenantID string `gorm:"column:tenant_id;primaryKey;type:text"`
	// InstanceID is the owning instance id
	InstanceID string `gorm:"column:instance_id;primaryKey;type:text"`
	// EntityID is the content hash identity of the call number entity
	EntityID string `gorm:"column:entity_id;not null;index;type:text"`
	// Prefix is the normalized call number prefix (truncated to 20 chars)
	Prefix string `gorm:"column:prefix;type:varchar(20)"`
	// Suffix is the normalized call number suffix (truncated to 25 chars)
	Suffix string `gorm:"column:suffix;type:varchar(25)"`
	// ItemID is the item the call number was observed on; last write wins
	ItemID string `gorm:"column:item_id;type:text"`
	// Shared is true when the owning tenant is the consortium's central tenant
	Shared bool `gorm:"column:shared;not null;default:false"`
	// CreatedAt is the timestamp when this row was first staged
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the CallNumber model
func (CallNumber) TableName() string {
	return "instance_call_numbers"
}
