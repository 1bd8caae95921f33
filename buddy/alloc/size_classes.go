package alloc

import (
	"math/bits"

	"github.com/joshuapare/buddykit/internal/format"
)

// OrderOf returns k such that 2^k == n. It reports false when n is not a
// positive power of two; it is meant for block capacities, never for raw
// request sizes.
func OrderOf(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros(uint(n)), true
}

// FittingOrder returns the smallest order k in [minOrder, maxOrder] whose
// payload (2^k - HeaderSize) holds requested bytes. It reports false for
// requests below 1 byte or above the payload of a maxOrder block; this is
// the single place oversized requests are rejected.
func FittingOrder(requested, minOrder, maxOrder int) (int, bool) {
	if requested < 1 || requested > (1<<maxOrder)-format.HeaderSize {
		return 0, false
	}
	need := requested + format.HeaderSize
	k := bits.Len(uint(need - 1)) // ceil(log2(need))
	if k < minOrder {
		k = minOrder
	}
	return k, true
}

// PayloadOf returns the payload capacity of a block of the given order.
func PayloadOf(order int) int {
	return (1 << order) - format.HeaderSize
}
