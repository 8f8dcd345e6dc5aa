package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Instance represents the staged_instances table - the merged representation
// of an inventory instance, written by live ingestion and by the reindex merge
// phase, and walked sequentially by the upload phase.
type Instance struct {
	// ID is the instance's natural id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TenantID is the owning tenant
	TenantID string `gorm:"column:tenant_id;primaryKey;type:text"`
	// Shared is true when the owning tenant is the consortium's central tenant
	Shared bool `gorm:"column:shared;not null;default:false"`
	// IsBoundWith is true when the instance participates in a bound-with relationship
	IsBoundWith bool `gorm:"column:is_bound_with;not null;default:false"`
	// Document is the instance's current representation as received upstream
	Document datatypes.JSON `gorm:"column:document;type:jsonb"`
	// UpdatedAt is the timestamp of the last write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Instance model
func (Instance) TableName() string {
	return "staged_instances"
}
