// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import "cmp"

// SkewNode represents a single element of a skew heap.
type SkewNode[K cmp.Ordered, V any] struct {
	Key   K // The key, mutated only by the owning heap
	Value V // The payload attached at insert
	left  *SkewNode[K, V]
	right *SkewNode[K, V]
}

// Skew implements a skew heap: a self-adjusting binary merge tree with no
// parent, rank or size bookkeeping. Every merge step unconditionally swaps
// the children of the winning root, which keeps the tree balanced in the
// amortized sense. It exposes only the minimal contract and has no
// decrease-key or delete-by-node.
type Skew[K cmp.Ordered, V any] struct {
	update Update[K]
	root   *SkewNode[K, V]
	count  int
}

// NewSkew creates an empty skew heap. A nil update callback assigns the
// input directly to the key.
func NewSkew[K cmp.Ordered, V any](update Update[K]) *Skew[K, V] {
	return &Skew[K, V]{update: resolve(update)}
}

// Insert adds a value with the given key input and returns its node.
func (h *Skew[K, V]) Insert(value V, key K) *SkewNode[K, V] {
	n := &SkewNode[K, V]{Value: value}
	n.Key = h.update(n.Key, key)
	h.root = skewMerge(h.root, n)
	h.count++
	return n
}

// Min returns the minimum-keyed node, without removing it.
func (h *Skew[K, V]) Min() (*SkewNode[K, V], bool) {
	return h.root, h.root != nil
}

// DeleteMin removes and returns the minimum-keyed node. The returned node is
// detached and may be discarded or reused by the caller.
func (h *Skew[K, V]) DeleteMin() (*SkewNode[K, V], bool) {
	n := h.root
	if n == nil {
		return nil, false
	}

	h.root = skewMerge(n.left, n.right)
	n.left, n.right = nil, nil
	h.count--
	return n, true
}

// Clear drops every node from the heap.
func (h *Skew[K, V]) Clear() {
	h.root = nil
	h.count = 0
}

// IsEmpty returns whether the heap holds no nodes.
func (h *Skew[K, V]) IsEmpty() bool {
	return h.root == nil
}

// Len returns the number of resident nodes.
func (h *Skew[K, V]) Len() int {
	return h.count
}

// skewMerge merges two subtrees. The smaller-keyed root wins, its children
// are swapped and the merge continues into the swapped subtree.
func skewMerge[K cmp.Ordered, V any](a, b *SkewNode[K, V]) *SkewNode[K, V] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	if b.Key < a.Key {
		a, b = b, a
	}
	a.left, a.right = skewMerge(a.right, b), a.left
	return a
}
