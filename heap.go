// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

// Package heaps implements mergeable priority queues keyed by an externally
// supplied, mutable key. Three interchangeable variants share one minimal
// contract (insert, find-min, delete-min, emptiness): Skew is the baseline
// self-adjusting merge tree, Pairing adds decrease-key and delete-by-node,
// and Fibonacci adds O(1) amortized insert/decrease-key plus a destructive
// Union. Heaps are single-writer structures: callers must not mutate one
// concurrently from multiple goroutines.
package heaps

import (
	"cmp"
	"sync/atomic"
)

// Update computes a node's new key from its current key and the input passed
// to Insert or DecreaseKey. The result must remain totally ordered by < and
// the callback must not touch the heap that invokes it. A nil Update means
// plain assignment of the input.
type Update[K cmp.Ordered] func(current, input K) K

// assign is the default update, replacing the key with the input.
func assign[K cmp.Ordered](_, input K) K {
	return input
}

// resolve substitutes the default assignment for a nil callback.
func resolve[K cmp.Ordered](fn Update[K]) Update[K] {
	if fn == nil {
		return assign[K]
	}
	return fn
}

// -----------------------------------------------------------------------------

// nodeID stamps every inserted node with a process-wide identity, so that
// removed-node bookkeeping survives a Union of two heaps.
var nodeID atomic.Uint32

func nextID() uint32 {
	return nodeID.Add(1)
}
