package store

import (
	"context"
	"time"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// InstanceSubResource is a back-reference from a normalized sub-resource
// entity to one instance referencing it, used to build the aggregated
// "instances" array embedded in a search document.
type InstanceSubResource struct {
	InstanceID string `json:"instanceId"`
	TenantID   string `json:"tenantId"`
	Shared     bool   `json:"shared"`
}

// SubResourceDocument is the denormalized form of one sub-resource entity
// assembled for the upload phase: the entity's normalized fields plus every
// instance that references it.
type SubResourceDocument struct {
	EntityID  string                 `json:"id"`
	Fields    map[string]interface{} `json:"fields"`
	Instances []InstanceSubResource  `json:"instances"`
}

// Store defines the interface for staging store operations. All writes are
// idempotent batched upserts or deletes keyed by natural composite keys.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertInstances stages a batch of merged instance representations
	UpsertInstances(ctx context.Context, instances []*schema.Instance) error
	// DeleteInstances removes staged instances by id within a tenant
	DeleteInstances(ctx context.Context, tenant string, ids []string) error
	// CountInstances returns the number of staged instances for a tenant
	CountInstances(ctx context.Context, tenant string) (int64, error)
	// GetInstancesPage returns one offset/limit window of staged instances,
	// ordered by id for a stable upload walk
	GetInstancesPage(ctx context.Context, tenant string, limit, offset int) ([]*schema.Instance, error)
	// DeleteAllByTenant removes every staged row of the given resource type
	// for a tenant (the DELETE_ALL wide delete)
	DeleteAllByTenant(ctx context.Context, resource domain.ResourceType, tenant string) error

	// UpsertClassifications stages classification rows (upsert on the natural composite key)
	UpsertClassifications(ctx context.Context, rows []*schema.Classification) error
	// DeleteClassificationsByInstanceIDs removes classification rows owned by the given instances
	DeleteClassificationsByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error
	// UpdateClassificationsShared recomputes the shared flag for an instance's
	// classification rows without re-deriving entities
	UpdateClassificationsShared(ctx context.Context, tenant, instanceID string, shared bool) error

	// UpsertContributors stages contributor rows
	UpsertContributors(ctx context.Context, rows []*schema.Contributor) error
	// DeleteContributorsByInstanceIDs removes contributor rows owned by the given instances
	DeleteContributorsByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error
	// UpdateContributorsShared recomputes the shared flag for an instance's contributor rows
	UpdateContributorsShared(ctx context.Context, tenant, instanceID string, shared bool) error

	// UpsertSubjects stages subject rows
	UpsertSubjects(ctx context.Context, rows []*schema.Subject) error
	// DeleteSubjectsByInstanceIDs removes subject rows owned by the given instances
	DeleteSubjectsByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error
	// UpdateSubjectsShared recomputes the shared flag for an instance's subject rows
	UpdateSubjectsShared(ctx context.Context, tenant, instanceID string, shared bool) error

	// UpsertCallNumbers stages call number rows
	UpsertCallNumbers(ctx context.Context, rows []*schema.CallNumber) error
	// DeleteCallNumbersByInstanceIDs removes call number rows owned by the given instances
	DeleteCallNumbersByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error
	// UpdateCallNumbersShared recomputes the shared flag for an instance's call number rows
	UpdateCallNumbersShared(ctx context.Context, tenant, instanceID string, shared bool) error

	// CountSubResources returns the number of distinct sub-resource entities
	// of the given type staged for a tenant
	CountSubResources(ctx context.Context, entityType schema.ReindexEntityType, tenant string) (int64, error)
	// GetSubResourcesPage assembles one offset/limit window of denormalized
	// sub-resource documents, ordered by entity id
	GetSubResourcesPage(ctx context.Context, entityType schema.ReindexEntityType, tenant string, limit, offset int) ([]*SubResourceDocument, error)

	// CreateMergeRanges persists the merge phase partition for one entity type
	CreateMergeRanges(ctx context.Context, ranges []*schema.MergeRange) error
	// GetMergeRanges returns all merge ranges for an entity type and tenant
	GetMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) ([]*schema.MergeRange, error)
	// GetUnfinishedMergeRanges returns merge ranges with no finished_at, the
	// resume set after a failure
	GetUnfinishedMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) ([]*schema.MergeRange, error)
	// MarkMergeRangeFinished stamps finished_at on a completed merge range
	MarkMergeRangeFinished(ctx context.Context, rangeID string, at time.Time) error
	// DeleteMergeRanges drops the previous run's merge ranges for an entity type
	DeleteMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) error

	// CreateUploadRanges persists the upload phase partition for one entity type
	CreateUploadRanges(ctx context.Context, ranges []*schema.UploadRange) error
	// GetUnfinishedUploadRanges returns upload windows with no finished_at
	GetUnfinishedUploadRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) ([]*schema.UploadRange, error)
	// MarkUploadRangeFinished stamps finished_at on a completed upload window
	MarkUploadRangeFinished(ctx context.Context, rangeID string, at time.Time) error
	// DeleteUploadRanges drops the previous run's upload windows for an entity type
	DeleteUploadRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) error

	// UpsertReindexStatus creates or overwrites the status row for an entity type
	UpsertReindexStatus(ctx context.Context, status *schema.ReindexStatus) error
	// GetReindexStatus returns the status row for an entity type, nil when absent
	GetReindexStatus(ctx context.Context, entityType schema.ReindexEntityType, tenant string) (*schema.ReindexStatus, error)
	// GetReindexStatuses returns all status rows for a tenant
	GetReindexStatuses(ctx context.Context, tenant string) ([]*schema.ReindexStatus, error)
	// IncrementProcessedMergeRanges atomically increments the merge counter and
	// transitions the row to MERGE_COMPLETED when the last range finishes
	IncrementProcessedMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string, at time.Time) (*schema.ReindexStatus, error)
	// IncrementProcessedUploadRanges atomically increments the upload counter
	// and transitions the row to UPLOAD_COMPLETED when the last window finishes
	IncrementProcessedUploadRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string, at time.Time) (*schema.ReindexStatus, error)
	// SetReindexStatus updates only the status discriminator of a row
	SetReindexStatus(ctx context.Context, entityType schema.ReindexEntityType, tenant string, status schema.ReindexStatusValue) error
}
