// Package reindex drives the bulk reindex state machine: the merge phase
// re-exports inventory records range-by-range onto the event stream, and the
// upload phase pushes the populated staging store into the search engine in
// sequential windows. Progress is tracked in one status row per entity type
// and tenant.
package reindex

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/inventory"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/search"
	"github.com/folio-org/search-indexer/internal/store"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// Config holds the orchestrator's partitioning and retry parameters
type Config struct {
	// MergeRangeSize is the approximate number of records per merge range
	MergeRangeSize int
	// UploadBatchSize is the number of documents per upload window
	UploadBatchSize int
	// RetryAttempts is the total attempt budget per remote call
	RetryAttempts int
	// Workers bounds the number of ranges processed in parallel per phase
	Workers int
}

// Orchestrator defines the reindex operations exposed to operators
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/reindex.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// StartMerge partitions the entity type's id space and requests re-export
	// of every range; the phase runs asynchronously after the call returns
	StartMerge(ctx context.Context, tenant string, entityType schema.ReindexEntityType) error
	// StartUpload partitions the staging store into windows and pushes each to
	// the search engine; the phase runs asynchronously after the call returns
	StartUpload(ctx context.Context, tenant string, entityType schema.ReindexEntityType) error
	// Resume re-runs only the unfinished ranges of an interrupted phase
	Resume(ctx context.Context, tenant string, entityType schema.ReindexEntityType) error
	// Status returns all status rows for a tenant
	Status(ctx context.Context, tenant string) ([]*schema.ReindexStatus, error)
	// StatusFor returns one entity type's status row, nil when no reindex ran
	StatusFor(ctx context.Context, tenant string, entityType schema.ReindexEntityType) (*schema.ReindexStatus, error)
}

type orchestrator struct {
	st        store.Store
	inventory inventory.Client
	search    search.Client
	json      adapter.JSON
	clock     adapter.Clock
	config    Config
}

// NewOrchestrator creates the reindex orchestrator
func NewOrchestrator(
	cfg Config,
	st store.Store,
	inventoryClient inventory.Client,
	searchClient search.Client,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) Orchestrator {
	return &orchestrator{
		st:        st,
		inventory: inventoryClient,
		search:    searchClient,
		json:      jsonAdapter,
		clock:     clock,
		config:    cfg,
	}
}

func mergeable(entityType schema.ReindexEntityType) bool {
	for _, et := range schema.MergeEntityTypes() {
		if et == entityType {
			return true
		}
	}
	return false
}

func uploadable(entityType schema.ReindexEntityType) bool {
	for _, et := range schema.UploadEntityTypes() {
		if et == entityType {
			return true
		}
	}
	return false
}

// StartMerge partitions the entity type's id space and requests re-export of
// every range
func (o *orchestrator) StartMerge(ctx context.Context, tenant string, entityType schema.ReindexEntityType) error {
	if !mergeable(entityType) {
		return fmt.Errorf("%w: %s is not merged from inventory", domain.ErrUnknownResourceType, entityType)
	}

	status, err := o.st.GetReindexStatus(ctx, entityType, tenant)
	if err != nil {
		return err
	}
	if status != nil && !status.Status.Terminal() {
		return domain.ErrReindexInProgress
	}

	count, err := o.inventory.Count(ctx, entityType, tenant)
	if err != nil {
		return fmt.Errorf("failed to count %s records: %w", entityType, err)
	}

	now := o.clock.Now()
	idRanges := PartitionIDSpace(count, o.config.MergeRangeSize)
	ranges := make([]*schema.MergeRange, len(idRanges))
	for i, r := range idRanges {
		ranges[i] = &schema.MergeRange{
			ID:         uuid.NewString(),
			EntityType: entityType,
			TenantID:   tenant,
			LowerID:    r.Lower,
			UpperID:    r.Upper,
			CreatedAt:  now,
		}
	}

	if err := o.st.DeleteMergeRanges(ctx, entityType, tenant); err != nil {
		return err
	}
	if err := o.st.CreateMergeRanges(ctx, ranges); err != nil {
		return err
	}

	newStatus := &schema.ReindexStatus{
		EntityType:       entityType,
		TenantID:         tenant,
		Status:           schema.ReindexStatusMergeInProgress,
		TotalMergeRanges: len(ranges),
		StartTimeMerge:   &now,
	}
	if len(ranges) == 0 {
		newStatus.Status = schema.ReindexStatusMergeCompleted
		newStatus.EndTimeMerge = &now
	}
	if err := o.st.UpsertReindexStatus(ctx, newStatus); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Starting merge phase",
		zap.String("entity_type", string(entityType)),
		zap.String("tenant", tenant),
		zap.Int64("record_count", count),
		zap.Int("ranges", len(ranges)),
	)

	if len(ranges) > 0 {
		go o.runMergeRanges(context.WithoutCancel(ctx), tenant, entityType, ranges)
	}

	return nil
}

// runMergeRanges requests re-export of each range in parallel on a bounded
// pool. A range whose retry budget is exhausted stays unfinished and fails
// the whole entity type; completed ranges remain completed for resumption.
func (o *orchestrator) runMergeRanges(ctx context.Context, tenant string, entityType schema.ReindexEntityType, ranges []*schema.MergeRange) {
	var failed atomic.Bool

	pool := pond.NewPool(o.config.Workers, pond.WithContext(ctx))
	for _, r := range ranges {
		pool.Submit(func() {
			req := inventory.PublishRangeRequest{
				RangeID:    r.ID,
				EntityType: entityType,
				Tenant:     tenant,
				LowerID:    r.LowerID,
				UpperID:    r.UpperID,
			}
			err := withRetry(ctx, "publish records range", o.config.RetryAttempts, func() error {
				return o.inventory.PublishRecordsRange(ctx, req)
			})
			if err != nil {
				logger.ErrorCtx(ctx, err,
					zap.String("message", "Merge range failed"),
					zap.String("range_id", r.ID),
					zap.String("entity_type", string(entityType)),
					zap.String("tenant", tenant),
				)
				failed.Store(true)
				return
			}

			if err := o.st.MarkMergeRangeFinished(ctx, r.ID, o.clock.Now()); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to mark merge range finished"), zap.String("range_id", r.ID))
				failed.Store(true)
				return
			}
			if _, err := o.st.IncrementProcessedMergeRanges(ctx, entityType, tenant, o.clock.Now()); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to advance merge counter"), zap.String("range_id", r.ID))
				failed.Store(true)
			}
		})
	}
	pool.StopAndWait()

	if failed.Load() {
		if err := o.st.SetReindexStatus(ctx, entityType, tenant, schema.ReindexStatusFailed); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to mark reindex failed"), zap.String("entity_type", string(entityType)))
		}
		return
	}

	logger.InfoCtx(ctx, "Merge phase finished",
		zap.String("entity_type", string(entityType)),
		zap.String("tenant", tenant),
		zap.Int("ranges", len(ranges)),
	)
}

// StartUpload partitions the staging store into windows and pushes each to
// the search engine
func (o *orchestrator) StartUpload(ctx context.Context, tenant string, entityType schema.ReindexEntityType) error {
	if !uploadable(entityType) {
		return fmt.Errorf("%w: %s is not uploaded to the search engine", domain.ErrUnknownResourceType, entityType)
	}

	status, err := o.st.GetReindexStatus(ctx, entityType, tenant)
	if err != nil {
		return err
	}
	switch {
	case status == nil:
		if mergeable(entityType) {
			return fmt.Errorf("merge phase has not run for %s", entityType)
		}
		status = &schema.ReindexStatus{EntityType: entityType, TenantID: tenant}
	case status.Status != schema.ReindexStatusMergeCompleted && !status.Status.Terminal():
		return domain.ErrReindexInProgress
	}

	count, err := o.countStaged(ctx, tenant, entityType)
	if err != nil {
		return err
	}

	now := o.clock.Now()
	windows := PartitionWindows(count, o.config.UploadBatchSize)
	ranges := make([]*schema.UploadRange, len(windows))
	for i, w := range windows {
		ranges[i] = &schema.UploadRange{
			ID:         uuid.NewString(),
			EntityType: entityType,
			TenantID:   tenant,
			Limit:      w.Limit,
			Offset:     w.Offset,
			CreatedAt:  now,
		}
	}

	if err := o.st.DeleteUploadRanges(ctx, entityType, tenant); err != nil {
		return err
	}
	if err := o.st.CreateUploadRanges(ctx, ranges); err != nil {
		return err
	}

	status.Status = schema.ReindexStatusUploadInProgress
	status.TotalUploadRanges = len(ranges)
	status.ProcessedUploadRanges = 0
	status.StartTimeUpload = &now
	status.EndTimeUpload = nil
	if len(ranges) == 0 {
		status.Status = schema.ReindexStatusUploadCompleted
		status.EndTimeUpload = &now
	}
	if err := o.st.UpsertReindexStatus(ctx, status); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Starting upload phase",
		zap.String("entity_type", string(entityType)),
		zap.String("tenant", tenant),
		zap.Int64("record_count", count),
		zap.Int("windows", len(ranges)),
	)

	if len(ranges) > 0 {
		go o.runUploadRanges(context.WithoutCancel(ctx), tenant, entityType, ranges)
	}

	return nil
}

func (o *orchestrator) countStaged(ctx context.Context, tenant string, entityType schema.ReindexEntityType) (int64, error) {
	if entityType == schema.ReindexEntityInstance {
		return o.st.CountInstances(ctx, tenant)
	}
	return o.st.CountSubResources(ctx, entityType, tenant)
}

// runUploadRanges assembles and pushes each window in parallel on a bounded
// pool, with the same fail-and-resume semantics as the merge phase
func (o *orchestrator) runUploadRanges(ctx context.Context, tenant string, entityType schema.ReindexEntityType, ranges []*schema.UploadRange) {
	var failed atomic.Bool

	pool := pond.NewPool(o.config.Workers, pond.WithContext(ctx))
	for _, r := range ranges {
		pool.Submit(func() {
			docs, err := o.buildDocuments(ctx, tenant, entityType, r.Limit, r.Offset)
			if err != nil {
				logger.ErrorCtx(ctx, err,
					zap.String("message", "Failed to assemble upload window"),
					zap.String("range_id", r.ID),
					zap.String("entity_type", string(entityType)),
				)
				failed.Store(true)
				return
			}

			err = withRetry(ctx, "bulk index", o.config.RetryAttempts, func() error {
				return o.search.BulkIndex(ctx, docs)
			})
			if err != nil {
				logger.ErrorCtx(ctx, err,
					zap.String("message", "Upload window failed"),
					zap.String("range_id", r.ID),
					zap.String("entity_type", string(entityType)),
					zap.String("tenant", tenant),
				)
				failed.Store(true)
				return
			}

			if err := o.st.MarkUploadRangeFinished(ctx, r.ID, o.clock.Now()); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to mark upload range finished"), zap.String("range_id", r.ID))
				failed.Store(true)
				return
			}
			if _, err := o.st.IncrementProcessedUploadRanges(ctx, entityType, tenant, o.clock.Now()); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to advance upload counter"), zap.String("range_id", r.ID))
				failed.Store(true)
			}
		})
	}
	pool.StopAndWait()

	if failed.Load() {
		if err := o.st.SetReindexStatus(ctx, entityType, tenant, schema.ReindexStatusFailed); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to mark reindex failed"), zap.String("entity_type", string(entityType)))
		}
		return
	}

	logger.InfoCtx(ctx, "Upload phase finished",
		zap.String("entity_type", string(entityType)),
		zap.String("tenant", tenant),
		zap.Int("windows", len(ranges)),
	)
}

// buildDocuments assembles one window's search documents from the staging
// store. Document id is the resource's natural id; routing is the tenant.
func (o *orchestrator) buildDocuments(ctx context.Context, tenant string, entityType schema.ReindexEntityType, limit, offset int) ([]search.BulkDocument, error) {
	if entityType == schema.ReindexEntityInstance {
		instances, err := o.st.GetInstancesPage(ctx, tenant, limit, offset)
		if err != nil {
			return nil, err
		}

		docs := make([]search.BulkDocument, 0, len(instances))
		for _, inst := range instances {
			body := make(map[string]interface{})
			if len(inst.Document) > 0 {
				if err := o.json.Unmarshal(inst.Document, &body); err != nil {
					return nil, fmt.Errorf("failed to decode staged instance %s: %w", inst.ID, err)
				}
			}
			body["shared"] = inst.Shared
			body["isBoundWith"] = inst.IsBoundWith
			body["tenantId"] = inst.TenantID
			docs = append(docs, search.BulkDocument{
				ID:      inst.ID,
				Index:   string(entityType),
				Routing: tenant,
				Action:  search.BulkActionIndex,
				Body:    body,
			})
		}
		return docs, nil
	}

	subResources, err := o.st.GetSubResourcesPage(ctx, entityType, tenant, limit, offset)
	if err != nil {
		return nil, err
	}

	docs := make([]search.BulkDocument, 0, len(subResources))
	for _, sr := range subResources {
		body := make(map[string]interface{}, len(sr.Fields)+1)
		for k, v := range sr.Fields {
			body[k] = v
		}
		body["instances"] = sr.Instances
		docs = append(docs, search.BulkDocument{
			ID:      sr.EntityID,
			Index:   string(entityType),
			Routing: tenant,
			Action:  search.BulkActionIndex,
			Body:    body,
		})
	}
	return docs, nil
}

// Resume re-runs only the unfinished ranges of an interrupted phase,
// identified by a missing finished_at. Completed ranges stay completed.
func (o *orchestrator) Resume(ctx context.Context, tenant string, entityType schema.ReindexEntityType) error {
	status, err := o.st.GetReindexStatus(ctx, entityType, tenant)
	if err != nil {
		return err
	}
	if status == nil {
		return fmt.Errorf("no reindex to resume for %s", entityType)
	}

	mergeRanges, err := o.st.GetUnfinishedMergeRanges(ctx, entityType, tenant)
	if err != nil {
		return err
	}
	if len(mergeRanges) > 0 {
		if err := o.st.SetReindexStatus(ctx, entityType, tenant, schema.ReindexStatusMergeInProgress); err != nil {
			return err
		}
		logger.InfoCtx(ctx, "Resuming merge phase",
			zap.String("entity_type", string(entityType)),
			zap.String("tenant", tenant),
			zap.Int("unfinished_ranges", len(mergeRanges)),
		)
		go o.runMergeRanges(context.WithoutCancel(ctx), tenant, entityType, mergeRanges)
		return nil
	}

	uploadRanges, err := o.st.GetUnfinishedUploadRanges(ctx, entityType, tenant)
	if err != nil {
		return err
	}
	if len(uploadRanges) > 0 {
		if err := o.st.SetReindexStatus(ctx, entityType, tenant, schema.ReindexStatusUploadInProgress); err != nil {
			return err
		}
		logger.InfoCtx(ctx, "Resuming upload phase",
			zap.String("entity_type", string(entityType)),
			zap.String("tenant", tenant),
			zap.Int("unfinished_windows", len(uploadRanges)),
		)
		go o.runUploadRanges(context.WithoutCancel(ctx), tenant, entityType, uploadRanges)
		return nil
	}

	return domain.ErrRangeNotFound
}

// Status returns all status rows for a tenant
func (o *orchestrator) Status(ctx context.Context, tenant string) ([]*schema.ReindexStatus, error) {
	return o.st.GetReindexStatuses(ctx, tenant)
}

// StatusFor returns one entity type's status row
func (o *orchestrator) StatusFor(ctx context.Context, tenant string, entityType schema.ReindexEntityType) (*schema.ReindexStatus, error) {
	return o.st.GetReindexStatus(ctx, entityType, tenant)
}
