package reindex

import (
	"math/big"

	"github.com/google/uuid"
)

// IDRange is one contiguous slice of the uuid id space, lower bound inclusive,
// upper bound exclusive except for the final range which ends at the maximum
// uuid inclusively.
type IDRange struct {
	Lower string
	Upper string
}

// Window is one offset/limit slice of the staging store's ordered walk
type Window struct {
	Limit  int
	Offset int
}

// idSpaceSize is 2^128, the number of possible uuids
var idSpaceSize = new(big.Int).Lsh(big.NewInt(1), 128)

// maxUUID is the inclusive upper bound of the final range
var maxUUID = new(big.Int).Sub(idSpaceSize, big.NewInt(1))

// PartitionIDSpace splits the uuid id space into ceil(count/rangeSize)
// contiguous, non-overlapping ranges whose union covers the whole space.
// Records are assumed uniformly distributed over the space, so equal slices
// yield roughly equal record counts. A non-positive count yields no ranges.
func PartitionIDSpace(count int64, rangeSize int) []IDRange {
	if count <= 0 || rangeSize <= 0 {
		return nil
	}

	n := count / int64(rangeSize)
	if count%int64(rangeSize) != 0 {
		n++
	}

	ranges := make([]IDRange, 0, n)
	for i := int64(0); i < n; i++ {
		lower := boundAt(i, n)
		var upper *big.Int
		if i == n-1 {
			upper = maxUUID
		} else {
			upper = boundAt(i+1, n)
		}
		ranges = append(ranges, IDRange{Lower: formatUUID(lower), Upper: formatUUID(upper)})
	}

	return ranges
}

// boundAt computes i*2^128/n, the i-th cut point of an even n-way split
func boundAt(i, n int64) *big.Int {
	b := new(big.Int).Mul(idSpaceSize, big.NewInt(i))
	return b.Div(b, big.NewInt(n))
}

// formatUUID renders a 128-bit integer as a canonical uuid string
func formatUUID(v *big.Int) string {
	var raw [16]byte
	v.FillBytes(raw[:])
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		// unreachable: the input is always exactly 16 bytes
		panic(err)
	}
	return id.String()
}

// PartitionWindows splits count records into sequential offset/limit windows
// of at most windowSize records each
func PartitionWindows(count int64, windowSize int) []Window {
	if count <= 0 || windowSize <= 0 {
		return nil
	}

	windows := make([]Window, 0, count/int64(windowSize)+1)
	for offset := int64(0); offset < count; offset += int64(windowSize) {
		limit := int64(windowSize)
		if offset+limit > count {
			limit = count - offset
		}
		windows = append(windows, Window{Limit: int(limit), Offset: int(offset)})
	}

	return windows
}
