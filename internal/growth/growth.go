// Package growth implements the amortized buffer growth discipline shared
// by the hash table (internal/htable) and prefix tree (internal/ptree): capacities grow by
// a golden-ratio (~1.618) factor rather than doubling, and a request that
// would exceed the platform's index range reports an overflow instead of
// silently wrapping.
package growth

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/tawesoft/corpus/v2/operator/checked/integer"
)

// ErrOverflow is returned when a requested capacity would exceed the
// maximum representable index.
var ErrOverflow = errors.New("corpus: capacity overflow")

// MaxIndex is the largest capacity any growable buffer in this module
// will request, matching the int32 index range the reference
// implementation assumes.
const MaxIndex = int(^uint32(0) >> 1)

// Next returns a capacity at least as large as need, growing from cur by
// a factor of 1.6 (close to the golden ratio) rather than doubling. If cur is
// already large enough, cur is returned unchanged. Returns ErrOverflow if
// the required capacity would exceed MaxIndex.
func Next[N constraints.Integer](cur, need N) (N, error) {
	if cur >= need {
		return cur, nil
	}
	if int64(need) > int64(MaxIndex) {
		return 0, ErrOverflow
	}

	n := cur
	if n < 1 {
		n = 1
	}

	for n < need {
		// n = n * 1.6, computed as 2n - 2n/5 with an overflow check on 2n
		grown, ok := integer.Mul(0, N(MaxIndex), n, 2)
		if !ok {
			return 0, ErrOverflow
		}
		grown = grown - (grown / 5) // ~1.6x instead of 2x
		if grown <= n {
			grown = n + 1
		}
		n = grown
	}

	if int64(n) > int64(MaxIndex) {
		return 0, ErrOverflow
	}
	return n, nil
}
