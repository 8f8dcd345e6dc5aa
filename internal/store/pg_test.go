package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Initialize the staging tables
	if err := AutoMigrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// initPGTestDB returns a store over a per-test transaction so tests never see
// each other's rows
func initPGTestDB(t *testing.T) Store {
	if testDB == nil {
		t.Fatal("Test database not initialized")
	}

	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

func stagedInstance(id, tenant, title string) *schema.Instance {
	return &schema.Instance{
		ID:       id,
		TenantID: tenant,
		Document: datatypes.JSON(fmt.Sprintf(`{"title":%q}`, title)),
	}
}

func TestUpsertInstancesIdempotent(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertInstances(ctx, []*schema.Instance{
		stagedInstance("inst-1", "diku", "First Edition"),
	}))
	require.NoError(t, st.UpsertInstances(ctx, []*schema.Instance{
		{
			ID:          "inst-1",
			TenantID:    "diku",
			Shared:      true,
			IsBoundWith: true,
			Document:    datatypes.JSON(`{"title":"Second Edition"}`),
		},
	}))

	count, err := st.CountInstances(ctx, "diku")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	page, err := st.GetInstancesPage(ctx, "diku", 10, 0)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.True(t, page[0].Shared)
	assert.True(t, page[0].IsBoundWith)
	assert.JSONEq(t, `{"title":"Second Edition"}`, string(page[0].Document))
}

func TestInstancesScopedByTenant(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertInstances(ctx, []*schema.Instance{
		stagedInstance("inst-1", "diku", "A"),
		stagedInstance("inst-1", "other", "B"),
	}))

	require.NoError(t, st.DeleteInstances(ctx, "diku", []string{"inst-1"}))

	count, err := st.CountInstances(ctx, "diku")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = st.CountInstances(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetInstancesPageOrdering(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertInstances(ctx, []*schema.Instance{
		stagedInstance("inst-c", "diku", "C"),
		stagedInstance("inst-a", "diku", "A"),
		stagedInstance("inst-b", "diku", "B"),
	}))

	first, err := st.GetInstancesPage(ctx, "diku", 2, 0)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "inst-a", first[0].ID)
	assert.Equal(t, "inst-b", first[1].ID)

	second, err := st.GetInstancesPage(ctx, "diku", 2, 2)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "inst-c", second[0].ID)
}

func TestDeleteAllByTenantCoversChildTables(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertInstances(ctx, []*schema.Instance{
		stagedInstance("inst-1", "diku", "A"),
		stagedInstance("inst-1", "other", "B"),
	}))
	require.NoError(t, st.UpsertClassifications(ctx, []*schema.Classification{
		{TypeID: schema.NoTypeSentinel, Number: "QA76", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1"},
	}))
	require.NoError(t, st.UpsertSubjects(ctx, []*schema.Subject{
		{TypeID: schema.NoTypeSentinel, Value: "Computing", TenantID: "diku", InstanceID: "inst-1", EntityID: "e2"},
	}))

	require.NoError(t, st.DeleteAllByTenant(ctx, domain.ResourceTypeInstance, "diku"))

	count, err := st.CountInstances(ctx, "diku")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = st.CountSubResources(ctx, schema.ReindexEntityClassification, "diku")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = st.CountSubResources(ctx, schema.ReindexEntitySubject, "diku")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// other tenants are untouched
	count, err = st.CountInstances(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpsertClassificationsConvergesOnNaturalKey(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	row := &schema.Classification{
		TypeID: "lc", Number: "QA76", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1",
	}
	require.NoError(t, st.UpsertClassifications(ctx, []*schema.Classification{row}))
	require.NoError(t, st.UpsertClassifications(ctx, []*schema.Classification{
		{TypeID: "lc", Number: "QA76", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1", Shared: true},
	}))

	docs, err := st.GetSubResourcesPage(ctx, schema.ReindexEntityClassification, "diku", 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Instances, 1)
	assert.True(t, docs[0].Instances[0].Shared)
}

func TestCountSubResourcesCountsDistinctEntities(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	// one entity owned by two instances, one entity owned by one
	require.NoError(t, st.UpsertClassifications(ctx, []*schema.Classification{
		{TypeID: "lc", Number: "QA76", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1"},
		{TypeID: "lc", Number: "QA76", TenantID: "diku", InstanceID: "inst-2", EntityID: "e1"},
		{TypeID: "lc", Number: "QA77", TenantID: "diku", InstanceID: "inst-1", EntityID: "e2"},
	}))

	count, err := st.CountSubResources(ctx, schema.ReindexEntityClassification, "diku")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetSubResourcesPageGroupsByEntity(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertClassifications(ctx, []*schema.Classification{
		{TypeID: schema.NoTypeSentinel, Number: "QA76", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1"},
		{TypeID: schema.NoTypeSentinel, Number: "QA76", TenantID: "diku", InstanceID: "inst-2", EntityID: "e1", Shared: true},
		{TypeID: "lc", Number: "QA77", TenantID: "diku", InstanceID: "inst-1", EntityID: "e2"},
	}))

	docs, err := st.GetSubResourcesPage(ctx, schema.ReindexEntityClassification, "diku", 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "e1", docs[0].EntityID)
	// sentinel discriminator maps back to an empty typeId
	assert.Equal(t, "", docs[0].Fields["typeId"])
	assert.Equal(t, "QA76", docs[0].Fields["number"])
	require.Len(t, docs[0].Instances, 2)

	assert.Equal(t, "e2", docs[1].EntityID)
	assert.Equal(t, "lc", docs[1].Fields["typeId"])
	require.Len(t, docs[1].Instances, 1)
}

func TestGetSubResourcesPageWindowKeepsInstancesTogether(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertContributors(ctx, []*schema.Contributor{
		{NameTypeID: "personal", Name: "Knuth, Donald", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1"},
		{NameTypeID: "personal", Name: "Knuth, Donald", TenantID: "diku", InstanceID: "inst-2", EntityID: "e1"},
		{NameTypeID: "personal", Name: "Lamport, Leslie", TenantID: "diku", InstanceID: "inst-1", EntityID: "e2"},
	}))

	// the window is cut over entities, not rows
	first, err := st.GetSubResourcesPage(ctx, schema.ReindexEntityContributor, "diku", 1, 0)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "e1", first[0].EntityID)
	assert.Len(t, first[0].Instances, 2)

	second, err := st.GetSubResourcesPage(ctx, schema.ReindexEntityContributor, "diku", 1, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "e2", second[0].EntityID)
}

func TestUpdateSubjectsShared(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertSubjects(ctx, []*schema.Subject{
		{TypeID: schema.NoTypeSentinel, Value: "Computing", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1"},
		{TypeID: schema.NoTypeSentinel, Value: "History", TenantID: "diku", InstanceID: "inst-2", EntityID: "e2"},
	}))

	require.NoError(t, st.UpdateSubjectsShared(ctx, "diku", "inst-1", true))

	docs, err := st.GetSubResourcesPage(ctx, schema.ReindexEntitySubject, "diku", 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.True(t, docs[0].Instances[0].Shared)
	assert.False(t, docs[1].Instances[0].Shared)
}

func TestDeleteCallNumbersByInstanceIDs(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertCallNumbers(ctx, []*schema.CallNumber{
		{TypeID: "lc", Value: "QA76.9", TenantID: "diku", InstanceID: "inst-1", EntityID: "e1", ItemID: "item-1"},
		{TypeID: "lc", Value: "QA76.9", TenantID: "diku", InstanceID: "inst-2", EntityID: "e1", ItemID: "item-2"},
	}))

	require.NoError(t, st.DeleteCallNumbersByInstanceIDs(ctx, "diku", []string{"inst-1"}))

	docs, err := st.GetSubResourcesPage(ctx, schema.ReindexEntityCallNumber, "diku", 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Instances, 1)
	assert.Equal(t, "inst-2", docs[0].Instances[0].InstanceID)
}

func TestMergeRangeLifecycle(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	ranges := []*schema.MergeRange{
		{ID: uuid.NewString(), EntityType: schema.ReindexEntityInstance, TenantID: "diku",
			LowerID: "80000000-0000-0000-0000-000000000000", UpperID: "ffffffff-ffff-ffff-ffff-ffffffffffff"},
		{ID: uuid.NewString(), EntityType: schema.ReindexEntityInstance, TenantID: "diku",
			LowerID: "00000000-0000-0000-0000-000000000000", UpperID: "80000000-0000-0000-0000-000000000000"},
	}
	require.NoError(t, st.CreateMergeRanges(ctx, ranges))

	got, err := st.GetMergeRanges(ctx, schema.ReindexEntityInstance, "diku")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ordered by lower bound
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", got[0].LowerID)

	require.NoError(t, st.MarkMergeRangeFinished(ctx, got[0].ID, time.Now()))

	unfinished, err := st.GetUnfinishedMergeRanges(ctx, schema.ReindexEntityInstance, "diku")
	require.NoError(t, err)
	require.Len(t, unfinished, 1)
	assert.Equal(t, got[1].ID, unfinished[0].ID)

	require.NoError(t, st.DeleteMergeRanges(ctx, schema.ReindexEntityInstance, "diku"))
	got, err = st.GetMergeRanges(ctx, schema.ReindexEntityInstance, "diku")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarkMergeRangeFinishedUnknownID(t *testing.T) {
	st := initPGTestDB(t)

	err := st.MarkMergeRangeFinished(context.Background(), uuid.NewString(), time.Now())
	require.ErrorIs(t, err, domain.ErrRangeNotFound)
}

func TestUploadRangeLifecycle(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	ranges := []*schema.UploadRange{
		{ID: uuid.NewString(), EntityType: schema.ReindexEntitySubject, TenantID: "diku", Limit: 100, Offset: 100},
		{ID: uuid.NewString(), EntityType: schema.ReindexEntitySubject, TenantID: "diku", Limit: 100, Offset: 0},
	}
	require.NoError(t, st.CreateUploadRanges(ctx, ranges))

	unfinished, err := st.GetUnfinishedUploadRanges(ctx, schema.ReindexEntitySubject, "diku")
	require.NoError(t, err)
	require.Len(t, unfinished, 2)
	// ordered by offset
	assert.Equal(t, 0, unfinished[0].Offset)

	require.NoError(t, st.MarkUploadRangeFinished(ctx, unfinished[0].ID, time.Now()))

	unfinished, err = st.GetUnfinishedUploadRanges(ctx, schema.ReindexEntitySubject, "diku")
	require.NoError(t, err)
	require.Len(t, unfinished, 1)
	assert.Equal(t, 100, unfinished[0].Offset)

	require.NoError(t, st.DeleteUploadRanges(ctx, schema.ReindexEntitySubject, "diku"))
	unfinished, err = st.GetUnfinishedUploadRanges(ctx, schema.ReindexEntitySubject, "diku")
	require.NoError(t, err)
	assert.Empty(t, unfinished)
}

func TestReindexStatusRoundTrip(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	got, err := st.GetReindexStatus(ctx, schema.ReindexEntityInstance, "diku")
	require.NoError(t, err)
	assert.Nil(t, got)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.UpsertReindexStatus(ctx, &schema.ReindexStatus{
		EntityType:       schema.ReindexEntityInstance,
		TenantID:         "diku",
		Status:           schema.ReindexStatusMergeInProgress,
		TotalMergeRanges: 3,
		StartTimeMerge:   &now,
	}))

	got, err = st.GetReindexStatus(ctx, schema.ReindexEntityInstance, "diku")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.ReindexStatusMergeInProgress, got.Status)
	assert.Equal(t, 3, got.TotalMergeRanges)

	// upsert on the same key overwrites instead of duplicating
	require.NoError(t, st.UpsertReindexStatus(ctx, &schema.ReindexStatus{
		EntityType:       schema.ReindexEntityInstance,
		TenantID:         "diku",
		Status:           schema.ReindexStatusFailed,
		TotalMergeRanges: 3,
	}))

	statuses, err := st.GetReindexStatuses(ctx, "diku")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, schema.ReindexStatusFailed, statuses[0].Status)
}

func TestIncrementProcessedMergeRangesTransitions(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertReindexStatus(ctx, &schema.ReindexStatus{
		EntityType:       schema.ReindexEntityInstance,
		TenantID:         "diku",
		Status:           schema.ReindexStatusMergeInProgress,
		TotalMergeRanges: 2,
	}))

	updated, err := st.IncrementProcessedMergeRanges(ctx, schema.ReindexEntityInstance, "diku", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ProcessedMergeRanges)
	assert.Equal(t, schema.ReindexStatusMergeInProgress, updated.Status)
	assert.Nil(t, updated.EndTimeMerge)

	updated, err = st.IncrementProcessedMergeRanges(ctx, schema.ReindexEntityInstance, "diku", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ProcessedMergeRanges)
	assert.Equal(t, schema.ReindexStatusMergeCompleted, updated.Status)
	assert.NotNil(t, updated.EndTimeMerge)
}

func TestIncrementProcessedUploadRangesTransitions(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertReindexStatus(ctx, &schema.ReindexStatus{
		EntityType:        schema.ReindexEntitySubject,
		TenantID:          "diku",
		Status:            schema.ReindexStatusUploadInProgress,
		TotalUploadRanges: 1,
	}))

	updated, err := st.IncrementProcessedUploadRanges(ctx, schema.ReindexEntitySubject, "diku", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ProcessedUploadRanges)
	assert.Equal(t, schema.ReindexStatusUploadCompleted, updated.Status)
	assert.NotNil(t, updated.EndTimeUpload)
}

func TestSetReindexStatus(t *testing.T) {
	st := initPGTestDB(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertReindexStatus(ctx, &schema.ReindexStatus{
		EntityType: schema.ReindexEntityInstance,
		TenantID:   "diku",
		Status:     schema.ReindexStatusMergeInProgress,
	}))

	require.NoError(t, st.SetReindexStatus(ctx, schema.ReindexEntityInstance, "diku", schema.ReindexStatusFailed))

	got, err := st.GetReindexStatus(ctx, schema.ReindexEntityInstance, "diku")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, schema.ReindexStatusFailed, got.Status)
}
