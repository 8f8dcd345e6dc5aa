package schema

import (
	"time"
)

// Contributor represents the instance_contributors table - one row per
// (contributor, owning instance) pair within a tenant. The natural composite
// key is (name_type_id, name, tenant_id, instance_id).
type Contributor struct {
	// NameTypeID is the contributor name type discriminator (sentinel "n" when absent)
	NameTypeID string `gorm:"column:name_type_id;primaryKey;type:varchar(40)"`
	// Name is the normalized contributor name (truncated to 255 chars)
	Name string `gorm:"column:name;primaryKey;type:varchar(255)"`
	// TenantID is the owning tenant
	TenantID string `gorm:"column:tenant_id;primaryKey;type:text"`
	// InstanceID is the owning instance id
	InstanceID string `gorm:"column:instance_id;primaryKey;type:text"`
	// EntityID is the content hash identity of the contributor entity
	EntityID string `gorm:"column:entity_id;not null;index;type:text"`
	// AuthorityID links the contributor to an authority record, if any
	AuthorityID string `gorm:"column:authority_id;type:text"`
	// ContributorTypeID is the contribution type (author, editor, ...); last write wins
	ContributorTypeID string `gorm:"column:contributor_type_id;type:varchar(40)"`
	// Shared is true when the owning tenant is the consortium's central tenant
	Shared bool `gorm:"column:shared;not null;default:false"`
	// CreatedAt is the timestamp when this row was first staged
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Contributor model
func (Contributor) TableName() string {
	return "instance_contributors"
}
