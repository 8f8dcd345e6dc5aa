package metadata_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/metadata"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: false})
	os.Exit(m.Run())
}

func TestBuiltInAuthorityDescription(t *testing.T) {
	provider := metadata.NewFileProvider("")
	require.NoError(t, provider.Initialize(context.Background()))

	groups, err := provider.FieldGroups(domain.ResourceTypeAuthority)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"corporateName", "genreTerm", "geographicName", "meetingName",
		"personalName", "topicalTerm", "uniformTitle",
	}, groups.DistinctiveTypes)

	// base, sft and saft variants share one distinctive type, in file order
	assert.Equal(t,
		[]string{"personalName", "sftPersonalName", "saftPersonalName"},
		groups.ByDistinctiveType["personalName"])

	assert.Equal(t, []string{
		"identifiers", "metadata", "naturalId", "source", "sourceFileId", "subjectHeadings",
	}, groups.CommonFields)
}

func TestFieldGroupsBeforeInitialize(t *testing.T) {
	provider := metadata.NewFileProvider("")

	_, err := provider.FieldGroups(domain.ResourceTypeAuthority)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestFieldGroupsUnknownResource(t *testing.T) {
	provider := metadata.NewFileProvider("")
	require.NoError(t, provider.Initialize(context.Background()))

	_, err := provider.FieldGroups(domain.ResourceTypeInstance)
	require.ErrorIs(t, err, domain.ErrUnknownResourceType)
}

func TestFileBackedDescriptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{
			"resource": "authority",
			"fields": [
				{"name": "personalName", "distinctiveType": "personalName"},
				{"name": "customHeading", "distinctiveType": "custom"},
				{"name": "naturalId"}
			]
		}
	]`), 0600))

	provider := metadata.NewFileProvider(path)
	require.NoError(t, provider.Initialize(context.Background()))

	groups, err := provider.FieldGroups(domain.ResourceTypeAuthority)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom", "personalName"}, groups.DistinctiveTypes)
	assert.Equal(t, []string{"customHeading"}, groups.ByDistinctiveType["custom"])
	assert.Equal(t, []string{"naturalId"}, groups.CommonFields)
}

func TestInitializeMissingFile(t *testing.T) {
	provider := metadata.NewFileProvider(filepath.Join(t.TempDir(), "missing.json"))

	err := provider.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resource description file")
}

func TestInitializeMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0600))

	provider := metadata.NewFileProvider(path)
	err := provider.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse resource description JSON")
}

func TestReloadReplacesDescriptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"resource": "authority", "fields": [{"name": "personalName", "distinctiveType": "personalName"}]}
	]`), 0600))

	provider := metadata.NewFileProvider(path)
	require.NoError(t, provider.Initialize(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte(`[
		{"resource": "authority", "fields": [{"name": "topicalTerm", "distinctiveType": "topicalTerm"}]}
	]`), 0600))
	require.NoError(t, provider.Reload(context.Background()))

	groups, err := provider.FieldGroups(domain.ResourceTypeAuthority)
	require.NoError(t, err)
	assert.Equal(t, []string{"topicalTerm"}, groups.DistinctiveTypes)
}
