package preprocess_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/metadata"
	"github.com/folio-org/search-indexer/internal/preprocess"
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

func newTestProvider(t *testing.T) metadata.Provider {
	provider := metadata.NewFileProvider("")
	require.NoError(t, provider.Initialize(context.Background()))
	return provider
}

func subEventIDs(subs []*domain.ChangeEvent) []string {
	ids := make([]string, len(subs))
	for i, sub := range subs {
		ids[i] = sub.ID
	}
	return ids
}

func TestAuthorityPreprocessor_CreateFansOutHeadings(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
		New: map[string]interface{}{
			"personalName":    "Smith, John",
			"sftPersonalName": []interface{}{"Smith, J.", "Smith, Johnny"},
			"topicalTerm":     "History",
			"naturalId":       "n123456",
			"source":          "MARC",
		},
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 4)

	assert.ElementsMatch(t, []string{
		"personalName0_auth-1",
		"personalName1_auth-1",
		"personalName2_auth-1",
		"topicalTerm0_auth-1",
	}, subEventIDs(subs))

	for _, sub := range subs {
		assert.Equal(t, domain.EventTypeCreate, sub.Type)
		assert.Equal(t, "diku", sub.Tenant)
		assert.Equal(t, domain.ResourceTypeAuthority, sub.ResourceName)
		// Common fields ride along in every sub-document.
		assert.Equal(t, "n123456", sub.New["naturalId"])
		assert.Equal(t, "MARC", sub.New["source"])
	}
}

func TestAuthorityPreprocessor_SubEventCarriesSingleHeadingValue(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
		New: map[string]interface{}{
			"sftPersonalName": []interface{}{"Smith, J.", "Smith, Johnny"},
		},
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, "Smith, J.", subs[0].New["sftPersonalName"])
	assert.Equal(t, "Smith, Johnny", subs[1].New["sftPersonalName"])
}

func TestAuthorityPreprocessor_DeleteEnumeratesOldBodyless(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeDelete,
		Old: map[string]interface{}{
			"corporateName": "Acme Corp",
			"genreTerm":     []interface{}{"Fiction", "Drama"},
		},
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 3)

	assert.ElementsMatch(t, []string{
		"corporateName0_auth-1",
		"genreTerm0_auth-1",
		"genreTerm1_auth-1",
	}, subEventIDs(subs))

	for _, sub := range subs {
		assert.Equal(t, domain.EventTypeDelete, sub.Type)
		assert.Nil(t, sub.New)
	}
}

func TestAuthorityPreprocessor_UpdateReplacesSurvivingHeadings(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	// The first personal name survives the update (same ordinal, same id), the
	// topical term disappears, a corporate name appears.
	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeUpdate,
		New: map[string]interface{}{
			"personalName":  "Smith, John",
			"corporateName": "Acme Corp",
		},
		Old: map[string]interface{}{
			"personalName": "Smyth, John",
			"topicalTerm":  "History",
		},
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 3)

	byID := make(map[string]*domain.ChangeEvent, len(subs))
	for _, sub := range subs {
		byID[sub.ID] = sub
	}

	// Surviving id appears once, as a create.
	require.Contains(t, byID, "personalName0_auth-1")
	assert.Equal(t, domain.EventTypeCreate, byID["personalName0_auth-1"].Type)
	assert.Equal(t, "Smith, John", byID["personalName0_auth-1"].New["personalName"])

	require.Contains(t, byID, "corporateName0_auth-1")
	assert.Equal(t, domain.EventTypeCreate, byID["corporateName0_auth-1"].Type)

	// The vanished heading is retired.
	require.Contains(t, byID, "topicalTerm0_auth-1")
	assert.Equal(t, domain.EventTypeDelete, byID["topicalTerm0_auth-1"].Type)
	assert.Nil(t, byID["topicalTerm0_auth-1"].New)
}

func TestAuthorityPreprocessor_UpdateChangedValueSameOrdinalYieldsNoDelete(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	// The heading's value changes but its ordinal does not, so old and new
	// enumerate to the same sub-event id. The create overwrites the indexed
	// document in place; retiring the old value separately would delete the
	// replacement.
	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeUpdate,
		New: map[string]interface{}{
			"topicalTerm": "Historiography",
		},
		Old: map[string]interface{}{
			"topicalTerm": "History",
		},
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	assert.Equal(t, "topicalTerm0_auth-1", subs[0].ID)
	assert.Equal(t, domain.EventTypeCreate, subs[0].Type)
	assert.Equal(t, "Historiography", subs[0].New["topicalTerm"])
}

func TestAuthorityPreprocessor_EmptyFanOutYieldsPlaceholder(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
		New: map[string]interface{}{
			"naturalId": "n123456",
		},
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	assert.Equal(t, "other0_auth-1", subs[0].ID)
	assert.Equal(t, domain.EventTypeDelete, subs[0].Type)
	assert.Nil(t, subs[0].New)
}

func TestAuthorityPreprocessor_NilBodyYieldsPlaceholder(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeDelete,
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "other0_auth-1", subs[0].ID)
	assert.Equal(t, domain.EventTypeDelete, subs[0].Type)
}

func TestAuthorityPreprocessor_UnhandledTypePassesThrough(t *testing.T) {
	p := preprocess.NewAuthorityPreprocessor(newTestProvider(t))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeDeleteAll,
	}

	subs, err := p.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Same(t, event, subs[0])
}

func TestRegistry_UnregisteredResourcePassesThrough(t *testing.T) {
	registry := preprocess.NewRegistry(preprocess.NewAuthorityPreprocessor(newTestProvider(t)))

	event := &domain.ChangeEvent{
		ID:           "item-1",
		ResourceName: domain.ResourceTypeItem,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
	}

	subs, err := registry.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Same(t, event, subs[0])
}

func TestRegistry_DispatchesByResource(t *testing.T) {
	registry := preprocess.NewRegistry(preprocess.NewAuthorityPreprocessor(newTestProvider(t)))

	event := &domain.ChangeEvent{
		ID:           "auth-1",
		ResourceName: domain.ResourceTypeAuthority,
		Tenant:       "diku",
		Type:         domain.EventTypeCreate,
		New: map[string]interface{}{
			"personalName": "Smith, John",
		},
	}

	subs, err := registry.PrepareEvents(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "personalName0_auth-1", subs[0].ID)
}
