package extract_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/extract"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/mocks"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func instanceEvent(id string, eventType domain.EventType, newBody map[string]interface{}) *domain.ChangeEvent {
	return &domain.ChangeEvent{
		ID:           id,
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       "diku",
		Type:         eventType,
		New:          newBody,
	}
}

func TestClassificationExtractor_DerivesRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().DeleteClassificationsByInstanceIDs(gomock.Any(), "diku", gomock.Nil()).Return(nil)

	var saved []*schema.Classification
	st.EXPECT().
		UpsertClassifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*schema.Classification) error {
			saved = rows
			return nil
		})

	ex := extract.NewClassificationExtractor(st)
	event := instanceEvent("inst-1", domain.EventTypeCreate, map[string]interface{}{
		"classifications": []interface{}{
			map[string]interface{}{"classificationNumber": "QA76", "classificationTypeId": "lc"},
			map[string]interface{}{"classificationNumber": "QA77", "classificationTypeId": "lc"},
		},
	})

	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{event}))
	require.Len(t, saved, 2)

	assert.Equal(t, "QA76", saved[0].Number)
	assert.Equal(t, "lc", saved[0].TypeID)
	assert.Equal(t, "diku", saved[0].TenantID)
	assert.Equal(t, "inst-1", saved[0].InstanceID)
	assert.False(t, saved[0].Shared)

	// Distinct values within the same type yield distinct entity identities.
	assert.NotEqual(t, saved[0].EntityID, saved[1].EntityID)
}

func TestClassificationExtractor_MissingTypeGetsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().DeleteClassificationsByInstanceIDs(gomock.Any(), "diku", gomock.Nil()).Return(nil)

	var saved []*schema.Classification
	st.EXPECT().
		UpsertClassifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*schema.Classification) error {
			saved = rows
			return nil
		})

	ex := extract.NewClassificationExtractor(st)
	event := instanceEvent("inst-1", domain.EventTypeCreate, map[string]interface{}{
		"classifications": []interface{}{
			map[string]interface{}{"classificationNumber": "QA76"},
		},
	})

	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{event}))
	require.Len(t, saved, 1)
	assert.Equal(t, schema.NoTypeSentinel, saved[0].TypeID)
}

func TestClassificationExtractor_EntityIDIgnoresOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().DeleteClassificationsByInstanceIDs(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil).Times(2)

	var batches [][]*schema.Classification
	st.EXPECT().
		UpsertClassifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*schema.Classification) error {
			batches = append(batches, rows)
			return nil
		}).Times(2)

	ex := extract.NewClassificationExtractor(st)
	body := map[string]interface{}{
		"classifications": []interface{}{
			map[string]interface{}{"classificationNumber": "QA76", "classificationTypeId": "lc"},
		},
	}

	first := instanceEvent("inst-1", domain.EventTypeCreate, body)
	second := instanceEvent("inst-2", domain.EventTypeCreate, body)
	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{first}))
	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{second}))

	require.Len(t, batches, 2)
	// Same value from different instances resolves to the same entity.
	assert.Equal(t, batches[0][0].EntityID, batches[1][0].EntityID)
	assert.NotEqual(t, batches[0][0].InstanceID, batches[1][0].InstanceID)
}

func TestClassificationExtractor_DeduplicatesWithinCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().DeleteClassificationsByInstanceIDs(gomock.Any(), "diku", gomock.Nil()).Return(nil)

	var saved []*schema.Classification
	st.EXPECT().
		UpsertClassifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*schema.Classification) error {
			saved = rows
			return nil
		})

	ex := extract.NewClassificationExtractor(st)
	event := instanceEvent("inst-1", domain.EventTypeCreate, map[string]interface{}{
		"classifications": []interface{}{
			map[string]interface{}{"classificationNumber": "QA76", "classificationTypeId": "lc"},
			map[string]interface{}{"classificationNumber": " QA76 ", "classificationTypeId": "lc"},
		},
	})

	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{event}))
	assert.Len(t, saved, 1)
}

func TestClassificationExtractor_DeletionsDropRowsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	gomock.InOrder(
		st.EXPECT().
			DeleteClassificationsByInstanceIDs(gomock.Any(), "diku", []string{"inst-upd", "inst-del"}).
			Return(nil),
		st.EXPECT().
			UpsertClassifications(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []*schema.Classification) error {
				// The deleted instance contributes no rows; the updated one is
				// re-derived from its new representation.
				require.Len(t, rows, 1)
				assert.Equal(t, "inst-upd", rows[0].InstanceID)
				return nil
			}),
	)

	ex := extract.NewClassificationExtractor(st)
	events := []*domain.ChangeEvent{
		instanceEvent("inst-upd", domain.EventTypeUpdate, map[string]interface{}{
			"classifications": []interface{}{
				map[string]interface{}{"classificationNumber": "QA76"},
			},
		}),
		{
			ID:           "inst-del",
			ResourceName: domain.ResourceTypeInstance,
			Tenant:       "diku",
			Type:         domain.EventTypeDelete,
			Old: map[string]interface{}{
				"classifications": []interface{}{
					map[string]interface{}{"classificationNumber": "ZZ99"},
				},
			},
		},
	}

	require.NoError(t, ex.PersistChildren(context.Background(), false, events))
}

func TestClassificationExtractor_SkipsBlankValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().DeleteClassificationsByInstanceIDs(gomock.Any(), "diku", gomock.Nil()).Return(nil)
	st.EXPECT().
		UpsertClassifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*schema.Classification) error {
			assert.Empty(t, rows)
			return nil
		})

	ex := extract.NewClassificationExtractor(st)
	event := instanceEvent("inst-1", domain.EventTypeCreate, map[string]interface{}{
		"classifications": []interface{}{
			map[string]interface{}{"classificationNumber": "   "},
			map[string]interface{}{"classificationTypeId": "lc"},
			"not-an-object",
		},
	})

	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{event}))
}

func TestCallNumberExtractor_TruncatesOverflowingComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().DeleteCallNumbersByInstanceIDs(gomock.Any(), "diku", gomock.Nil()).Return(nil)

	var saved []*schema.CallNumber
	st.EXPECT().
		UpsertCallNumbers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*schema.CallNumber) error {
			saved = rows
			return nil
		})

	ex := extract.NewCallNumberExtractor(st)
	event := instanceEvent("inst-1", domain.EventTypeCreate, map[string]interface{}{
		"callNumbers": []interface{}{
			map[string]interface{}{
				"callNumber": strings.Repeat("c", 60),
				"prefix":     strings.Repeat("p", 30),
				"suffix":     strings.Repeat("s", 30),
				"typeId":     strings.Repeat("t", 50),
				"itemId":     "item-1",
			},
		},
	})

	require.NoError(t, ex.PersistChildren(context.Background(), false, []*domain.ChangeEvent{event}))
	require.Len(t, saved, 1)

	assert.Len(t, saved[0].Value, schema.CallNumberMaxLen)
	assert.Len(t, saved[0].Prefix, schema.CallNumberPrefixMaxLen)
	assert.Len(t, saved[0].Suffix, schema.CallNumberSuffixMaxLen)
	assert.Len(t, saved[0].TypeID, schema.CallNumberTypeMaxLen)
	assert.Equal(t, "item-1", saved[0].ItemID)
}

func TestExtractor_SharedStatusTransitionDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	st.EXPECT().UpdateSubjectsShared(gomock.Any(), "diku", "inst-1", true).Return(nil)

	ex := extract.NewSubjectExtractor(st)
	event := &domain.ChangeEvent{
		ID:           "inst-1",
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       "diku",
		Type:         domain.EventTypeUpdate,
		New:          map[string]interface{}{"shared": true},
		Old:          map[string]interface{}{"shared": false},
	}

	require.NoError(t, ex.PersistChildrenOnSharing(context.Background(), event))
}

func TestExtractor_EmptyBatchIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ex := extract.NewContributorExtractor(mocks.NewMockStore(ctrl))
	require.NoError(t, ex.PersistChildren(context.Background(), false, nil))
}

func TestNewAll_RegistersEveryKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractors := extract.NewAll(mocks.NewMockStore(ctrl))
	kinds := make([]string, len(extractors))
	for i, ex := range extractors {
		kinds[i] = ex.Kind()
	}

	assert.Equal(t, []string{"classification", "contributor", "subject", "call-number"}, kinds)
}
