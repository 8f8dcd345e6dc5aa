package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/adapter"
	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/mocks"
	"github.com/folio-org/search-indexer/internal/pipeline"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

func setupStager(t *testing.T, centralTenant string) (*pipeline.InstanceStager, *mocks.MockStore, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()

	return pipeline.NewInstanceStager(st, adapter.NewJSON(), clock, centralTenant), st, ctrl
}

func TestStage_UpsertsNonDeletions(t *testing.T) {
	stager, st, ctrl := setupStager(t, "consortium")
	defer ctrl.Finish()

	var staged []*schema.Instance
	st.EXPECT().
		UpsertInstances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instances []*schema.Instance) error {
			staged = instances
			return nil
		})

	events := []*domain.ChangeEvent{
		{
			ID: "inst-1", ResourceName: domain.ResourceTypeInstance,
			Tenant: "diku", Type: domain.EventTypeCreate,
			New: map[string]interface{}{"title": "A Book", "shared": true, "isBoundWith": true},
		},
		{
			ID: "inst-2", ResourceName: domain.ResourceTypeInstance,
			Tenant: "diku", Type: domain.EventTypeUpdate,
			New: map[string]interface{}{"title": "Another Book"},
		},
	}

	require.NoError(t, stager.Stage(context.Background(), "diku", events))
	require.Len(t, staged, 2)

	assert.Equal(t, "inst-1", staged[0].ID)
	assert.Equal(t, "diku", staged[0].TenantID)
	assert.True(t, staged[0].Shared)
	assert.True(t, staged[0].IsBoundWith)
	assert.JSONEq(t, `{"title":"A Book","shared":true,"isBoundWith":true}`, string(staged[0].Document))

	assert.False(t, staged[1].Shared)
	assert.False(t, staged[1].IsBoundWith)
}

func TestStage_CentralTenantAlwaysShared(t *testing.T) {
	stager, st, ctrl := setupStager(t, "consortium")
	defer ctrl.Finish()

	st.EXPECT().
		UpsertInstances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, instances []*schema.Instance) error {
			require.Len(t, instances, 1)
			assert.True(t, instances[0].Shared)
			return nil
		})

	events := []*domain.ChangeEvent{
		{
			ID: "inst-1", ResourceName: domain.ResourceTypeInstance,
			Tenant: "consortium", Type: domain.EventTypeCreate,
			New: map[string]interface{}{"title": "Central Book"},
		},
	}

	require.NoError(t, stager.Stage(context.Background(), "consortium", events))
}

func TestStage_DeletionsPartitionedFromUpserts(t *testing.T) {
	stager, st, ctrl := setupStager(t, "consortium")
	defer ctrl.Finish()

	gomock.InOrder(
		st.EXPECT().DeleteInstances(gomock.Any(), "diku", []string{"inst-del"}).Return(nil),
		st.EXPECT().
			UpsertInstances(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, instances []*schema.Instance) error {
				require.Len(t, instances, 1)
				assert.Equal(t, "inst-new", instances[0].ID)
				return nil
			}),
	)

	events := []*domain.ChangeEvent{
		{
			ID: "inst-del", ResourceName: domain.ResourceTypeInstance,
			Tenant: "diku", Type: domain.EventTypeDelete,
		},
		{
			ID: "inst-new", ResourceName: domain.ResourceTypeInstance,
			Tenant: "diku", Type: domain.EventTypeCreate,
			New: map[string]interface{}{"title": "A Book"},
		},
	}

	require.NoError(t, stager.Stage(context.Background(), "diku", events))
}

func TestStage_OnlyDeletionsSkipsUpsert(t *testing.T) {
	stager, st, ctrl := setupStager(t, "consortium")
	defer ctrl.Finish()

	st.EXPECT().DeleteInstances(gomock.Any(), "diku", []string{"inst-1", "inst-2"}).Return(nil)

	events := []*domain.ChangeEvent{
		{ID: "inst-1", Tenant: "diku", Type: domain.EventTypeDelete},
		{ID: "inst-2", Tenant: "diku", Type: domain.EventTypeDelete},
	}

	require.NoError(t, stager.Stage(context.Background(), "diku", events))
}

func TestStage_EmptyBatchTouchesNothing(t *testing.T) {
	stager, _, ctrl := setupStager(t, "consortium")
	defer ctrl.Finish()

	require.NoError(t, stager.Stage(context.Background(), "diku", nil))
}
