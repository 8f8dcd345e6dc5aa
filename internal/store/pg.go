package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the staging tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Instance{},
		&schema.Classification{},
		&schema.Contributor{},
		&schema.Subject{},
		&schema.CallNumber{},
		&schema.MergeRange{},
		&schema.UploadRange{},
		&schema.ReindexStatus{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// calculateSafeBatchSize computes the batch size for bulk inserts that keeps
// one statement under PostgreSQL's 65535 extended-protocol parameter limit.
// A total headroom covers ON CONFLICT parameters and GORM bookkeeping.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// wrapTenantError converts the schema-not-ready storage error pattern into a
// TenantNotInitializedError so callers can retry the whole batch later
func wrapTenantError(tenant string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsTenantNotInitialized(err) {
		return &domain.TenantNotInitializedError{Tenant: tenant, Err: err}
	}
	return err
}

// UpsertInstances stages a batch of merged instance representations
func (s *pgStore) UpsertInstances(ctx context.Context, instances []*schema.Instance) error {
	if len(instances) == 0 {
		return nil
	}

	tenant := instances[0].TenantID
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}, {Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"shared", "is_bound_with", "document", "updated_at"}),
	}).CreateInBatches(instances, calculateSafeBatchSize(len(instances), 6)).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to upsert instances: %w", err))
	}

	return nil
}

// DeleteInstances removes staged instances by id within a tenant
func (s *pgStore) DeleteInstances(ctx context.Context, tenant string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenant, ids).
		Delete(&schema.Instance{}).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to delete instances: %w", err))
	}

	return nil
}

// CountInstances returns the number of staged instances for a tenant
func (s *pgStore) CountInstances(ctx context.Context, tenant string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Instance{}).
		Where("tenant_id = ?", tenant).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count instances: %w", err)
	}

	return count, nil
}

// GetInstancesPage returns one offset/limit window of staged instances,
// ordered by id so consecutive windows never overlap
func (s *pgStore) GetInstancesPage(ctx context.Context, tenant string, limit, offset int) ([]*schema.Instance, error) {
	var instances []*schema.Instance
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenant).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&instances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get instances page: %w", err)
	}

	return instances, nil
}

// DeleteAllByTenant removes every staged row of the given resource type for a
// tenant. For instances the wide delete covers the child sub-resource tables
// as well, since their rows are derived from instance events.
func (s *pgStore) DeleteAllByTenant(ctx context.Context, resource domain.ResourceType, tenant string) error {
	switch resource {
	case domain.ResourceTypeInstance:
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, model := range []interface{}{
				&schema.Classification{},
				&schema.Contributor{},
				&schema.Subject{},
				&schema.CallNumber{},
				&schema.Instance{},
			} {
				if err := tx.Where("tenant_id = ?", tenant).Delete(model).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return wrapTenantError(tenant, fmt.Errorf("failed to delete all instances: %w", err))
		}
		return nil
	case domain.ResourceTypeInstanceContributor:
		return wrapTenantError(tenant, s.db.WithContext(ctx).Where("tenant_id = ?", tenant).Delete(&schema.Contributor{}).Error)
	case domain.ResourceTypeInstanceSubject:
		return wrapTenantError(tenant, s.db.WithContext(ctx).Where("tenant_id = ?", tenant).Delete(&schema.Subject{}).Error)
	default:
		// Nothing staged for the remaining resource types.
		return nil
	}
}

// UpsertClassifications stages classification rows keyed on the natural
// composite key; re-processing the same input converges to the same rows
func (s *pgStore) UpsertClassifications(ctx context.Context, rows []*schema.Classification) error {
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type_id"}, {Name: "number"}, {Name: "tenant_id"}, {Name: "instance_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"shared"}),
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), 7)).Error
	if err != nil {
		return wrapTenantError(rows[0].TenantID, fmt.Errorf("failed to upsert classifications: %w", err))
	}

	return nil
}

// DeleteClassificationsByInstanceIDs removes classification rows owned by the given instances
func (s *pgStore) DeleteClassificationsByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND instance_id IN ?", tenant, instanceIDs).
		Delete(&schema.Classification{}).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to delete classifications: %w", err))
	}

	return nil
}

// UpdateClassificationsShared recomputes the shared flag for an instance's rows
func (s *pgStore) UpdateClassificationsShared(ctx context.Context, tenant, instanceID string, shared bool) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Classification{}).
		Where("tenant_id = ? AND instance_id = ?", tenant, instanceID).
		Update("shared", shared).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to update classifications shared flag: %w", err))
	}

	return nil
}

// UpsertContributors stages contributor rows
func (s *pgStore) UpsertContributors(ctx context.Context, rows []*schema.Contributor) error {
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_type_id"}, {Name: "name"}, {Name: "tenant_id"}, {Name: "instance_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"authority_id", "contributor_type_id", "shared"}),
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), 9)).Error
	if err != nil {
		return wrapTenantError(rows[0].TenantID, fmt.Errorf("failed to upsert contributors: %w", err))
	}

	return nil
}

// DeleteContributorsByInstanceIDs removes contributor rows owned by the given instances
func (s *pgStore) DeleteContributorsByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND instance_id IN ?", tenant, instanceIDs).
		Delete(&schema.Contributor{}).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to delete contributors: %w", err))
	}

	return nil
}

// UpdateContributorsShared recomputes the shared flag for an instance's rows
func (s *pgStore) UpdateContributorsShared(ctx context.Context, tenant, instanceID string, shared bool) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Contributor{}).
		Where("tenant_id = ? AND instance_id = ?", tenant, instanceID).
		Update("shared", shared).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to update contributors shared flag: %w", err))
	}

	return nil
}

// UpsertSubjects stages subject rows
func (s *pgStore) UpsertSubjects(ctx context.Context, rows []*schema.Subject) error {
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type_id"}, {Name: "value"}, {Name: "tenant_id"}, {Name: "instance_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"authority_id", "source_id", "shared"}),
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), 9)).Error
	if err != nil {
		return wrapTenantError(rows[0].TenantID, fmt.Errorf("failed to upsert subjects: %w", err))
	}

	return nil
}

// DeleteSubjectsByInstanceIDs removes subject rows owned by the given instances
func (s *pgStore) DeleteSubjectsByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND instance_id IN ?", tenant, instanceIDs).
		Delete(&schema.Subject{}).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to delete subjects: %w", err))
	}

	return nil
}

// UpdateSubjectsShared recomputes the shared flag for an instance's rows
func (s *pgStore) UpdateSubjectsShared(ctx context.Context, tenant, instanceID string, shared bool) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Subject{}).
		Where("tenant_id = ? AND instance_id = ?", tenant, instanceID).
		Update("shared", shared).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to update subjects shared flag: %w", err))
	}

	return nil
}

// UpsertCallNumbers stages call number rows
func (s *pgStore) UpsertCallNumbers(ctx context.Context, rows []*schema.CallNumber) error {
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "type_id"}, {Name: "call_number"}, {Name: "tenant_id"}, {Name: "instance_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"prefix", "suffix", "item_id", "shared"}),
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), 10)).Error
	if err != nil {
		return wrapTenantError(rows[0].TenantID, fmt.Errorf("failed to upsert call numbers: %w", err))
	}

	return nil
}

// DeleteCallNumbersByInstanceIDs removes call number rows owned by the given instances
func (s *pgStore) DeleteCallNumbersByInstanceIDs(ctx context.Context, tenant string, instanceIDs []string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND instance_id IN ?", tenant, instanceIDs).
		Delete(&schema.CallNumber{}).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to delete call numbers: %w", err))
	}

	return nil
}

// UpdateCallNumbersShared recomputes the shared flag for an instance's rows
func (s *pgStore) UpdateCallNumbersShared(ctx context.Context, tenant, instanceID string, shared bool) error {
	err := s.db.WithContext(ctx).
		Model(&schema.CallNumber{}).
		Where("tenant_id = ? AND instance_id = ?", tenant, instanceID).
		Update("shared", shared).Error
	if err != nil {
		return wrapTenantError(tenant, fmt.Errorf("failed to update call numbers shared flag: %w", err))
	}

	return nil
}

// subResourceModel maps an upload entity type to its staging table model
func subResourceModel(entityType schema.ReindexEntityType) (interface{}, error) {
	switch entityType {
	case schema.ReindexEntityClassification:
		return &schema.Classification{}, nil
	case schema.ReindexEntityContributor:
		return &schema.Contributor{}, nil
	case schema.ReindexEntitySubject:
		return &schema.Subject{}, nil
	case schema.ReindexEntityCallNumber:
		return &schema.CallNumber{}, nil
	default:
		return nil, fmt.Errorf("no sub-resource table for entity type %q", entityType)
	}
}

// CountSubResources returns the number of distinct sub-resource entities of
// the given type staged for a tenant
func (s *pgStore) CountSubResources(ctx context.Context, entityType schema.ReindexEntityType, tenant string) (int64, error) {
	model, err := subResourceModel(entityType)
	if err != nil {
		return 0, err
	}

	var count int64
	err = s.db.WithContext(ctx).
		Model(model).
		Where("tenant_id = ?", tenant).
		Distinct("entity_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sub-resources: %w", err)
	}

	return count, nil
}

// GetSubResourcesPage assembles one offset/limit window of denormalized
// sub-resource documents. The window is cut over distinct entity ids so each
// document carries its complete instances array regardless of page bounds.
func (s *pgStore) GetSubResourcesPage(ctx context.Context, entityType schema.ReindexEntityType, tenant string, limit, offset int) ([]*SubResourceDocument, error) {
	model, err := subResourceModel(entityType)
	if err != nil {
		return nil, err
	}

	idPage := s.db.WithContext(ctx).
		Model(model).
		Where("tenant_id = ?", tenant).
		Distinct("entity_id").
		Order("entity_id").
		Limit(limit).
		Offset(offset)

	q := s.db.WithContext(ctx).
		Where("tenant_id = ? AND entity_id IN (?)", tenant, idPage).
		Order("entity_id")

	switch entityType {
	case schema.ReindexEntityClassification:
		var rows []*schema.Classification
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get classifications page: %w", err)
		}
		return groupRows(rows, func(r *schema.Classification) (string, map[string]interface{}, InstanceSubResource) {
			return r.EntityID,
				map[string]interface{}{"typeId": discriminatorOrEmpty(r.TypeID), "number": r.Number},
				InstanceSubResource{InstanceID: r.InstanceID, TenantID: r.TenantID, Shared: r.Shared}
		}), nil
	case schema.ReindexEntityContributor:
		var rows []*schema.Contributor
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get contributors page: %w", err)
		}
		return groupRows(rows, func(r *schema.Contributor) (string, map[string]interface{}, InstanceSubResource) {
			return r.EntityID,
				map[string]interface{}{
					"contributorNameTypeId": discriminatorOrEmpty(r.NameTypeID),
					"name":                  r.Name,
					"authorityId":           r.AuthorityID,
				},
				InstanceSubResource{InstanceID: r.InstanceID, TenantID: r.TenantID, Shared: r.Shared}
		}), nil
	case schema.ReindexEntitySubject:
		var rows []*schema.Subject
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get subjects page: %w", err)
		}
		return groupRows(rows, func(r *schema.Subject) (string, map[string]interface{}, InstanceSubResource) {
			return r.EntityID,
				map[string]interface{}{
					"typeId":      discriminatorOrEmpty(r.TypeID),
					"value":       r.Value,
					"authorityId": r.AuthorityID,
					"sourceId":    r.SourceID,
				},
				InstanceSubResource{InstanceID: r.InstanceID, TenantID: r.TenantID, Shared: r.Shared}
		}), nil
	case schema.ReindexEntityCallNumber:
		var rows []*schema.CallNumber
		if err := q.Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get call numbers page: %w", err)
		}
		return groupRows(rows, func(r *schema.CallNumber) (string, map[string]interface{}, InstanceSubResource) {
			return r.EntityID,
				map[string]interface{}{
					"typeId":     discriminatorOrEmpty(r.TypeID),
					"callNumber": r.Value,
					"prefix":     r.Prefix,
					"suffix":     r.Suffix,
				},
				InstanceSubResource{InstanceID: r.InstanceID, TenantID: r.TenantID, Shared: r.Shared}
		}), nil
	default:
		return nil, fmt.Errorf("no sub-resource table for entity type %q", entityType)
	}
}

// discriminatorOrEmpty maps the sentinel discriminator back to "" for documents
func discriminatorOrEmpty(typeID string) string {
	if typeID == schema.NoTypeSentinel {
		return ""
	}
	return typeID
}

// groupRows folds flat relationship rows into denormalized documents,
// preserving the entity-id ordering of the query
func groupRows[T any](rows []*T, extract func(*T) (string, map[string]interface{}, InstanceSubResource)) []*SubResourceDocument {
	docs := make([]*SubResourceDocument, 0, len(rows))
	byID := make(map[string]*SubResourceDocument, len(rows))

	for _, row := range rows {
		entityID, fields, ref := extract(row)
		doc, ok := byID[entityID]
		if !ok {
			doc = &SubResourceDocument{EntityID: entityID, Fields: fields}
			byID[entityID] = doc
			docs = append(docs, doc)
		}
		doc.Instances = append(doc.Instances, ref)
	}

	return docs
}

// CreateMergeRanges persists the merge phase partition for one entity type
func (s *pgStore) CreateMergeRanges(ctx context.Context, ranges []*schema.MergeRange) error {
	if len(ranges) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		CreateInBatches(ranges, calculateSafeBatchSize(len(ranges), 7)).Error
	if err != nil {
		return fmt.Errorf("failed to create merge ranges: %w", err)
	}

	return nil
}

// GetMergeRanges returns all merge ranges for an entity type and tenant
func (s *pgStore) GetMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) ([]*schema.MergeRange, error) {
	var ranges []*schema.MergeRange
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
		Order("lower_id").
		Find(&ranges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get merge ranges: %w", err)
	}

	return ranges, nil
}

// GetUnfinishedMergeRanges returns merge ranges with no finished_at
func (s *pgStore) GetUnfinishedMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) ([]*schema.MergeRange, error) {
	var ranges []*schema.MergeRange
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND tenant_id = ? AND finished_at IS NULL", entityType, tenant).
		Order("lower_id").
		Find(&ranges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unfinished merge ranges: %w", err)
	}

	return ranges, nil
}

// MarkMergeRangeFinished stamps finished_at on a completed merge range
func (s *pgStore) MarkMergeRangeFinished(ctx context.Context, rangeID string, at time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&schema.MergeRange{}).
		Where("id = ?", rangeID).
		Update("finished_at", at)
	if res.Error != nil {
		return fmt.Errorf("failed to mark merge range finished: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRangeNotFound
	}

	return nil
}

// DeleteMergeRanges drops the previous run's merge ranges for an entity type
func (s *pgStore) DeleteMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) error {
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
		Delete(&schema.MergeRange{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete merge ranges: %w", err)
	}

	return nil
}

// CreateUploadRanges persists the upload phase partition for one entity type
func (s *pgStore) CreateUploadRanges(ctx context.Context, ranges []*schema.UploadRange) error {
	if len(ranges) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		CreateInBatches(ranges, calculateSafeBatchSize(len(ranges), 7)).Error
	if err != nil {
		return fmt.Errorf("failed to create upload ranges: %w", err)
	}

	return nil
}

// GetUnfinishedUploadRanges returns upload windows with no finished_at
func (s *pgStore) GetUnfinishedUploadRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) ([]*schema.UploadRange, error) {
	var ranges []*schema.UploadRange
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND tenant_id = ? AND finished_at IS NULL", entityType, tenant).
		Order("record_offset").
		Find(&ranges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unfinished upload ranges: %w", err)
	}

	return ranges, nil
}

// MarkUploadRangeFinished stamps finished_at on a completed upload window
func (s *pgStore) MarkUploadRangeFinished(ctx context.Context, rangeID string, at time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&schema.UploadRange{}).
		Where("id = ?", rangeID).
		Update("finished_at", at)
	if res.Error != nil {
		return fmt.Errorf("failed to mark upload range finished: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRangeNotFound
	}

	return nil
}

// DeleteUploadRanges drops the previous run's upload windows for an entity type
func (s *pgStore) DeleteUploadRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string) error {
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
		Delete(&schema.UploadRange{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete upload ranges: %w", err)
	}

	return nil
}

// UpsertReindexStatus creates or overwrites the status row for an entity type
func (s *pgStore) UpsertReindexStatus(ctx context.Context, status *schema.ReindexStatus) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entity_type"}, {Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status",
			"total_merge_ranges", "processed_merge_ranges",
			"total_upload_ranges", "processed_upload_ranges",
			"start_time_merge", "end_time_merge",
			"start_time_upload", "end_time_upload",
		}),
	}).Create(status).Error
	if err != nil {
		return fmt.Errorf("failed to upsert reindex status: %w", err)
	}

	return nil
}

// GetReindexStatus returns the status row for an entity type, nil when absent
func (s *pgStore) GetReindexStatus(ctx context.Context, entityType schema.ReindexEntityType, tenant string) (*schema.ReindexStatus, error) {
	var status schema.ReindexStatus
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
		First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reindex status: %w", err)
	}

	return &status, nil
}

// GetReindexStatuses returns all status rows for a tenant
func (s *pgStore) GetReindexStatuses(ctx context.Context, tenant string) ([]*schema.ReindexStatus, error) {
	var statuses []*schema.ReindexStatus
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenant).
		Order("entity_type").
		Find(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reindex statuses: %w", err)
	}

	return statuses, nil
}

// IncrementProcessedMergeRanges atomically increments the merge counter and
// transitions the row to MERGE_COMPLETED when the last range finishes
func (s *pgStore) IncrementProcessedMergeRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string, at time.Time) (*schema.ReindexStatus, error) {
	var updated schema.ReindexStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
			First(&updated).Error; err != nil {
			return err
		}

		updated.ProcessedMergeRanges++
		if updated.ProcessedMergeRanges >= updated.TotalMergeRanges {
			updated.Status = schema.ReindexStatusMergeCompleted
			updated.EndTimeMerge = &at
		}

		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to increment processed merge ranges: %w", err)
	}

	return &updated, nil
}

// IncrementProcessedUploadRanges atomically increments the upload counter and
// transitions the row to UPLOAD_COMPLETED when the last window finishes
func (s *pgStore) IncrementProcessedUploadRanges(ctx context.Context, entityType schema.ReindexEntityType, tenant string, at time.Time) (*schema.ReindexStatus, error) {
	var updated schema.ReindexStatus
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
			First(&updated).Error; err != nil {
			return err
		}

		updated.ProcessedUploadRanges++
		if updated.ProcessedUploadRanges >= updated.TotalUploadRanges {
			updated.Status = schema.ReindexStatusUploadCompleted
			updated.EndTimeUpload = &at
		}

		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to increment processed upload ranges: %w", err)
	}

	return &updated, nil
}

// SetReindexStatus updates only the status discriminator of a row
func (s *pgStore) SetReindexStatus(ctx context.Context, entityType schema.ReindexEntityType, tenant string, status schema.ReindexStatusValue) error {
	err := s.db.WithContext(ctx).
		Model(&schema.ReindexStatus{}).
		Where("entity_type = ? AND tenant_id = ?", entityType, tenant).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to set reindex status: %w", err)
	}

	return nil
}
