// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import "cmp"

// PairingNode represents a single element of a pairing heap. Children of a
// node form a doubly linked list headed at the designated child; the prev
// link of the designated child points back at the parent, so detaching any
// node is O(1) without a separate parent pointer.
type PairingNode[K cmp.Ordered, V any] struct {
	Key   K // The key, mutated only by the owning heap
	Value V // The payload attached at insert
	child *PairingNode[K, V]
	prev  *PairingNode[K, V] // previous sibling, or parent when first child
	next  *PairingNode[K, V]
	id    uint32
}

// Pairing implements a pairing heap: a multiway tree melded by making the
// larger of two roots the first child of the smaller. Decrease-key detaches
// the node and melds it back to the root; delete combines the orphaned
// children with the two-pass pairing rule.
type Pairing[K cmp.Ordered, V any] struct {
	update  Update[K]
	root    *PairingNode[K, V]
	count   int
	removed removed
}

// NewPairing creates an empty pairing heap. A nil update callback assigns
// the input directly to the key.
func NewPairing[K cmp.Ordered, V any](update Update[K]) *Pairing[K, V] {
	return &Pairing[K, V]{update: resolve(update)}
}

// Insert adds a value with the given key input and returns its node.
func (h *Pairing[K, V]) Insert(value V, key K) *PairingNode[K, V] {
	n := &PairingNode[K, V]{Value: value}
	h.InsertNode(key, n)
	return n
}

// InsertNode inserts a caller-supplied node record, which must not currently
// belong to any heap. A record detached by Delete or DeleteMin may be reused
// here; it is stamped with a fresh identity on every insert.
func (h *Pairing[K, V]) InsertNode(key K, n *PairingNode[K, V]) {
	n.child, n.prev, n.next = nil, nil, nil
	n.Key = h.update(n.Key, key)
	n.id = nextID()
	if h.root == nil {
		h.root = n
	} else {
		h.root = pairMeld(h.root, n)
	}
	h.count++
}

// Min returns the minimum-keyed node, without removing it.
func (h *Pairing[K, V]) Min() (*PairingNode[K, V], bool) {
	return h.root, h.root != nil
}

// DecreaseKey applies the update callback to the node's key and restores
// heap order. The node must belong to this heap and the new key must not
// exceed the old one.
func (h *Pairing[K, V]) DecreaseKey(n *PairingNode[K, V], input K) {
	n.Key = h.update(n.Key, input)
	if n == h.root {
		return
	}

	n.detach()
	h.root = pairMeld(h.root, n)
}

// Delete removes the node from the heap. The node must belong to this heap;
// afterwards it is detached and may be reused by the caller.
func (h *Pairing[K, V]) Delete(n *PairingNode[K, V]) {
	sub := mergePairs(n.child)
	n.child = nil
	if n == h.root {
		h.root = sub
	} else {
		n.detach()
		if sub != nil {
			h.root = pairMeld(h.root, sub)
		}
	}
	h.count--
}

// DeleteMin removes and returns the minimum-keyed node.
func (h *Pairing[K, V]) DeleteMin() (*PairingNode[K, V], bool) {
	n := h.root
	if n == nil {
		return nil, false
	}

	h.Delete(n)
	return n, true
}

// IsEmpty returns whether the heap holds no nodes.
func (h *Pairing[K, V]) IsEmpty() bool {
	return h.root == nil
}

// Len returns the number of resident nodes.
func (h *Pairing[K, V]) Len() int {
	return h.count
}

// Neighbors returns the siblings to the left and right of the node, or nil
// where there is none. The left neighbor of a designated child is nil, since
// its prev link leads to the parent.
func (n *PairingNode[K, V]) Neighbors() (left, right *PairingNode[K, V]) {
	if n.prev != nil && n.prev.child != n {
		left = n.prev
	}
	return left, n.next
}

// detach unlinks the node from its parent's child list, fixing up the
// designated-child head pointer when needed.
func (n *PairingNode[K, V]) detach() {
	if n.prev != nil {
		if n.prev.child == n {
			n.prev.child = n.next
		} else {
			n.prev.next = n.next
		}
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
}

// pairMeld melds two trees: the larger-keyed root becomes the designated
// child of the smaller. Both arguments must be detached roots.
func pairMeld[K cmp.Ordered, V any](a, b *PairingNode[K, V]) *PairingNode[K, V] {
	if b.Key < a.Key {
		a, b = b, a
	}

	b.prev = a
	b.next = a.child
	if a.child != nil {
		a.child.prev = b
	}
	a.child = b
	return a
}

// mergePairs combines an orphaned child list into a single tree: a first
// pass melds adjacent siblings into pairs left to right, a second pass melds
// the pairs back right to left. A single left-to-right fold instead of the
// two passes loses the amortized bound.
func mergePairs[K cmp.Ordered, V any](first *PairingNode[K, V]) *PairingNode[K, V] {
	if first == nil {
		return nil
	}

	pairs := make([]*PairingNode[K, V], 0, 8)
	for a := first; a != nil; {
		b := a.next
		var ahead *PairingNode[K, V]
		a.prev, a.next = nil, nil
		if b != nil {
			ahead = b.next
			b.prev, b.next = nil, nil
			a = pairMeld(a, b)
		}
		pairs = append(pairs, a)
		a = ahead
	}

	out := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		out = pairMeld(pairs[i], out)
	}
	return out
}
