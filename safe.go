// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import "github.com/kelindar/intmap"

// removed tracks nodes already deleted through the safe entry points, keyed
// by node identity rather than by reference, so the table never keeps a
// deleted node alive and a reused record (fresh identity) is never blocked
// by a stale flag. The table is allocated lazily, callers that never use the
// safe variants pay nothing.
type removed struct {
	set *intmap.Map
}

func (r *removed) has(id uint32) bool {
	if r.set == nil {
		return false
	}

	_, ok := r.set.Load(id)
	return ok
}

func (r *removed) flag(id uint32) {
	if r.set == nil {
		r.set = intmap.New(64, 0.95)
	}
	r.set.Store(id, 1)
}

func (r *removed) merge(other removed) {
	switch {
	case other.set == nil:
		return
	case r.set == nil:
		r.set = other.set
	default:
		other.set.Range(func(id, v uint32) bool {
			r.set.Store(id, v)
			return true
		})
	}
}

// -----------------------------------------------------------------------------

// DecreaseKeySafe behaves like DecreaseKey, except that a node already
// removed through DeleteSafe is left untouched.
func (h *Pairing[K, V]) DecreaseKeySafe(n *PairingNode[K, V], input K) {
	if h.removed.has(n.id) {
		return
	}
	h.DecreaseKey(n, input)
}

// DeleteSafe behaves like Delete, except that repeated deletion of the same
// node is a no-op instead of corrupting the heap. It guards against stale
// handles to nodes removed through this entry point, not against nodes of a
// foreign heap.
func (h *Pairing[K, V]) DeleteSafe(n *PairingNode[K, V]) {
	if h.removed.has(n.id) {
		return
	}

	h.Delete(n)
	h.removed.flag(n.id)
}

// DecreaseKeySafe behaves like DecreaseKey, except that a node already
// removed through DeleteSafe is left untouched.
func (h *Fibonacci[K, V]) DecreaseKeySafe(n *FibNode[K, V], input K) {
	if h.removed.has(n.id) {
		return
	}
	h.DecreaseKey(n, input)
}

// DeleteSafe behaves like Delete, except that repeated deletion of the same
// node is a no-op instead of corrupting the heap. It guards against stale
// handles to nodes removed through this entry point, not against nodes of a
// foreign heap.
func (h *Fibonacci[K, V]) DeleteSafe(n *FibNode[K, V]) {
	if h.removed.has(n.id) {
		return
	}

	h.Delete(n)
	h.removed.flag(n.id)
}
