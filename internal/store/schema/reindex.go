package schema

import (
	"time"
)

// ReindexEntityType identifies an entity type participating in reindexing
type ReindexEntityType string

const (
	ReindexEntityInstance       ReindexEntityType = "instance"
	ReindexEntityHoldings       ReindexEntityType = "holdings-record"
	ReindexEntityItem           ReindexEntityType = "item"
	ReindexEntitySubject        ReindexEntityType = "subject"
	ReindexEntityContributor    ReindexEntityType = "contributor"
	ReindexEntityClassification ReindexEntityType = "classification"
	ReindexEntityCallNumber     ReindexEntityType = "call-number"
)

// MergeEntityTypes lists the entity types re-exported from inventory during
// the merge phase
func MergeEntityTypes() []ReindexEntityType {
	return []ReindexEntityType{
		ReindexEntityInstance,
		ReindexEntityHoldings,
		ReindexEntityItem,
	}
}

// UploadEntityTypes lists the entity types pushed to the search engine during
// the upload phase
func UploadEntityTypes() []ReindexEntityType {
	return []ReindexEntityType{
		ReindexEntityInstance,
		ReindexEntitySubject,
		ReindexEntityContributor,
		ReindexEntityClassification,
		ReindexEntityCallNumber,
	}
}

// ReindexStatusValue is the phase/outcome discriminator of a reindex run
type ReindexStatusValue string

const (
	ReindexStatusIdle             ReindexStatusValue = "IDLE"
	ReindexStatusMergeInProgress  ReindexStatusValue = "MERGE_IN_PROGRESS"
	ReindexStatusMergeCompleted   ReindexStatusValue = "MERGE_COMPLETED"
	ReindexStatusUploadInProgress ReindexStatusValue = "UPLOAD_IN_PROGRESS"
	ReindexStatusUploadCompleted  ReindexStatusValue = "UPLOAD_COMPLETED"
	ReindexStatusFailed           ReindexStatusValue = "FAILED"
)

// Terminal reports whether the status allows a new reindex request
func (s ReindexStatusValue) Terminal() bool {
	switch s {
	case ReindexStatusIdle, ReindexStatusUploadCompleted, ReindexStatusFailed:
		return true
	}
	return false
}

// MergeRange represents the merge_ranges table - one bounded slice of an
// entity type's id space to be re-exported from inventory. Ranges for a given
// (entity_type, tenant_id) partition the id space contiguously without gaps.
type MergeRange struct {
	// ID is the range identifier passed to the inventory export endpoint
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// EntityType is the entity type the range belongs to
	EntityType ReindexEntityType `gorm:"column:entity_type;not null;index:idx_merge_ranges_entity_tenant,priority:1;type:text"`
	// TenantID is the tenant the range belongs to
	TenantID string `gorm:"column:tenant_id;not null;index:idx_merge_ranges_entity_tenant,priority:2;type:text"`
	// LowerID is the inclusive lower bound of the id slice
	LowerID string `gorm:"column:lower_id;not null;type:text"`
	// UpperID is the exclusive upper bound of the id slice
	UpperID string `gorm:"column:upper_id;not null;type:text"`
	// CreatedAt is the timestamp when the range was partitioned
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// FinishedAt is set once the range's export request succeeded; ranges with
	// a NULL finished_at are the resume set after a failure
	FinishedAt *time.Time `gorm:"column:finished_at"`
}

// TableName specifies the table name for the MergeRange model
func (MergeRange) TableName() string {
	return "merge_ranges"
}

// UploadRange represents the upload_ranges table - one offset/limit window
// over the merged staging store to be pushed to the search engine.
type UploadRange struct {
	// ID is the range identifier
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// EntityType is the entity type the window belongs to
	EntityType ReindexEntityType `gorm:"column:entity_type;not null;index:idx_upload_ranges_entity_tenant,priority:1;type:text"`
	// TenantID is the tenant the window belongs to
	TenantID string `gorm:"column:tenant_id;not null;index:idx_upload_ranges_entity_tenant,priority:2;type:text"`
	// Limit is the window size
	Limit int `gorm:"column:record_limit;not null"`
	// Offset is the window start within the staging store's ordering
	Offset int `gorm:"column:record_offset;not null"`
	// CreatedAt is the timestamp when the window was partitioned
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// FinishedAt is set once the window was uploaded successfully
	FinishedAt *time.Time `gorm:"column:finished_at"`
}

// TableName specifies the table name for the UploadRange model
func (UploadRange) TableName() string {
	return "upload_ranges"
}

// ReindexStatus represents the reindex_status table - one row per
// (entity_type, tenant_id), overwritten on the next reindex request and
// never deleted. Processed counters increase monotonically.
type ReindexStatus struct {
	// EntityType is the entity type the status row tracks
	EntityType ReindexEntityType `gorm:"column:entity_type;primaryKey;type:text" json:"entityType"`
	// TenantID is the tenant the status row tracks
	TenantID string `gorm:"column:tenant_id;primaryKey;type:text" json:"tenantId"`
	// Status is the phase/outcome discriminator
	Status ReindexStatusValue `gorm:"column:status;not null;type:text" json:"status"`
	// TotalMergeRanges is the number of merge ranges partitioned for this run
	TotalMergeRanges int `gorm:"column:total_merge_ranges;not null;default:0" json:"totalMergeRanges"`
	// ProcessedMergeRanges counts merge ranges completed so far
	ProcessedMergeRanges int `gorm:"column:processed_merge_ranges;not null;default:0" json:"processedMergeRanges"`
	// TotalUploadRanges is the number of upload windows partitioned for this run
	TotalUploadRanges int `gorm:"column:total_upload_ranges;not null;default:0" json:"totalUploadRanges"`
	// ProcessedUploadRanges counts upload windows completed so far
	ProcessedUploadRanges int `gorm:"column:processed_upload_ranges;not null;default:0" json:"processedUploadRanges"`
	// StartTimeMerge is the timestamp when the merge phase started
	StartTimeMerge *time.Time `gorm:"column:start_time_merge" json:"startTimeMerge,omitempty"`
	// EndTimeMerge is the timestamp when the merge phase completed
	EndTimeMerge *time.Time `gorm:"column:end_time_merge" json:"endTimeMerge,omitempty"`
	// StartTimeUpload is the timestamp when the upload phase started
	StartTimeUpload *time.Time `gorm:"column:start_time_upload" json:"startTimeUpload,omitempty"`
	// EndTimeUpload is the timestamp when the upload phase completed
	EndTimeUpload *time.Time `gorm:"column:end_time_upload" json:"endTimeUpload,omitempty"`
}

// TableName specifies the table name for the ReindexStatus model
func (ReindexStatus) TableName() string {
	return "reindex_status"
}
