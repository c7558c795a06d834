// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import "math/bits"

// Bits enumerates the set bits of a mask from lowest to highest. For every
// set bit it calls fn with the bits already enumerated, the value of the
// current bit and its zero-based index. Fibonacci consolidation uses this to
// visit only the occupied degree slots.
func Bits(mask uint64, fn func(acc, bit uint64, index int)) {
	var acc uint64
	for mask != 0 {
		bit := mask & (^mask + 1) // lowest set bit
		fn(acc, bit, bits.TrailingZeros64(bit))
		acc |= bit
		mask ^= bit
	}
}
