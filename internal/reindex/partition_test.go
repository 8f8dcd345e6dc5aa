package reindex_test

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-org/search-indexer/internal/logger"
	"github.com/folio-org/search-indexer/internal/reindex"
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

func TestPartitionIDSpace_RangeCount(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		rangeSize int
		expected  int
	}{
		{"exact multiple", 1000, 100, 10},
		{"rounds up", 1001, 100, 11},
		{"single range", 50, 100, 1},
		{"one record", 1, 1000, 1},
		{"zero count", 0, 100, 0},
		{"negative count", -1, 100, 0},
		{"zero range size", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, reindex.PartitionIDSpace(tt.count, tt.rangeSize), tt.expected)
		})
	}
}

func TestPartitionIDSpace_CoversWholeSpace(t *testing.T) {
	ranges := reindex.PartitionIDSpace(1000, 100)
	require.Len(t, ranges, 10)

	assert.Equal(t, "00000000-0000-0000-0000-000000000000", ranges[0].Lower)
	assert.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", ranges[len(ranges)-1].Upper)

	// Ranges are contiguous: each upper bound is the next range's lower bound.
	for i := 0; i < len(ranges)-1; i++ {
		assert.Equal(t, ranges[i].Upper, ranges[i+1].Lower)
	}

	// Bounds are valid uuids in strictly increasing order.
	for _, r := range ranges {
		lower, err := uuid.Parse(r.Lower)
		require.NoError(t, err)
		upper, err := uuid.Parse(r.Upper)
		require.NoError(t, err)
		assert.Equal(t, -1, compareUUIDs(lower, upper))
	}
}

func TestPartitionIDSpace_SingleRangeSpansEverything(t *testing.T) {
	ranges := reindex.PartitionIDSpace(5, 100)
	require.Len(t, ranges, 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", ranges[0].Lower)
	assert.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", ranges[0].Upper)
}

func compareUUIDs(a, b uuid.UUID) int {
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func TestPartitionWindows_SequentialCoverage(t *testing.T) {
	windows := reindex.PartitionWindows(250, 100)
	require.Len(t, windows, 3)

	assert.Equal(t, reindex.Window{Limit: 100, Offset: 0}, windows[0])
	assert.Equal(t, reindex.Window{Limit: 100, Offset: 100}, windows[1])
	assert.Equal(t, reindex.Window{Limit: 50, Offset: 200}, windows[2])
}

func TestPartitionWindows_ExactMultiple(t *testing.T) {
	windows := reindex.PartitionWindows(200, 100)
	require.Len(t, windows, 2)
	assert.Equal(t, reindex.Window{Limit: 100, Offset: 100}, windows[1])
}

func TestPartitionWindows_Empty(t *testing.T) {
	assert.Empty(t, reindex.PartitionWindows(0, 100))
	assert.Empty(t, reindex.PartitionWindows(100, 0))
}
