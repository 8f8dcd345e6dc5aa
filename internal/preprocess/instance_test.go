package preprocess_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/extract"
	"github.com/folio-org/search-indexer/internal/mocks"
	"github.com/folio-org/search-indexer/internal/preprocess"
)

const centralTenant = "consortium"

func TestInstancePreprocessor_DrivesExtraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &domain.ChangeEvent{
		ID:           "inst-1",
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
		New: map[string]interface{}{
			"title": "A Book",
		},
	}

	ex := mocks.NewMockExtractor(ctrl)
	ex.EXPECT().
		PersistChildren(gomock.Any(), false, []*domain.ChangeEvent{event}).
		Return(nil)

	p := preprocess.NewInstancePreprocessor([]extract.Extractor{ex}, centralTenant)
	subs, err := p.PrepareEvents(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Same(t, event, subs[0])
}

func TestInstancePreprocessor_CentralTenantMarksShared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &domain.ChangeEvent{
		ID:           "inst-1",
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       centralTenant,
		Type:         domain.EventTypeCreate,
	}

	ex := mocks.NewMockExtractor(ctrl)
	ex.EXPECT().
		PersistChildren(gomock.Any(), true, []*domain.ChangeEvent{event}).
		Return(nil)

	p := preprocess.NewInstancePreprocessor([]extract.Extractor{ex}, centralTenant)
	_, err := p.PrepareEvents(context.Background(), event)

	require.NoError(t, err)
}

func TestInstancePreprocessor_SharingTransitionRecomputesFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &domain.ChangeEvent{
		ID:           "inst-1",
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       "diku",
		Type:         domain.EventTypeUpdate,
		New:          map[string]interface{}{"shared": true},
		Old:          map[string]interface{}{"shared": false},
	}

	ex := mocks.NewMockExtractor(ctrl)
	ex.EXPECT().PersistChildrenOnSharing(gomock.Any(), event).Return(nil)

	p := preprocess.NewInstancePreprocessor([]extract.Extractor{ex}, centralTenant)
	subs, err := p.PrepareEvents(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Same(t, event, subs[0])
}

func TestInstancePreprocessor_ShadowCopySkipsExtraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &domain.ChangeEvent{
		ID:           "inst-1",
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       "member1",
		Type:         domain.EventTypeCreate,
		New: map[string]interface{}{
			"source": "CONSORTIUM-MARC",
		},
	}

	// No extractor expectations: shadow copies never extract.
	ex := mocks.NewMockExtractor(ctrl)

	p := preprocess.NewInstancePreprocessor([]extract.Extractor{ex}, centralTenant)
	subs, err := p.PrepareEvents(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Same(t, event, subs[0])
}

func TestInstancePreprocessor_ExtractionFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := &domain.ChangeEvent{
		ID:           "inst-1",
		ResourceName: domain.ResourceTypeInstance,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
	}

	ex := mocks.NewMockExtractor(ctrl)
	ex.EXPECT().
		PersistChildren(gomock.Any(), false, gomock.Any()).
		Return(errors.New("staging unavailable"))

	p := preprocess.NewInstancePreprocessor([]extract.Extractor{ex}, centralTenant)
	subs, err := p.PrepareEvents(context.Background(), event)

	assert.Error(t, err)
	assert.Nil(t, subs)
}
