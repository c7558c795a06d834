// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import "cmp"

// FibNode represents a single element of a Fibonacci heap. Siblings form a
// circular doubly linked ring; parentless nodes ring together as the root
// list. A node is marked once it has lost a child since it last became a
// non-root, which is what drives the cascading cut.
type FibNode[K cmp.Ordered, V any] struct {
	Key    K // The key, mutated only by the owning heap
	Value  V // The payload attached at insert
	parent *FibNode[K, V]
	child  *FibNode[K, V]
	prev   *FibNode[K, V]
	next   *FibNode[K, V]
	id     uint32
	degree int
	marked bool
}

// Fibonacci implements a Fibonacci heap: a ring of heap-ordered multiway
// trees with lazy consolidation. Insert and DecreaseKey are O(1) amortized,
// DeleteMin is O(log n) amortized, and Union splices two heaps in O(1).
type Fibonacci[K cmp.Ordered, V any] struct {
	update  Update[K]
	root    *FibNode[K, V]
	count   int
	removed removed

	// Consolidation scratch, reused across DeleteMin calls. Slots are keyed
	// by root degree and their occupancy is a bitmask: a degree-d tree holds
	// at least Fib(d+2) nodes, so degree 63 is out of reach in practice.
	slots []*FibNode[K, V]
	walk  []*FibNode[K, V]
}

// NewFibonacci creates an empty Fibonacci heap. A nil update callback
// assigns the input directly to the key.
func NewFibonacci[K cmp.Ordered, V any](update Update[K]) *Fibonacci[K, V] {
	return &Fibonacci[K, V]{update: resolve(update)}
}

// Insert adds a value with the given key input and returns its node.
func (h *Fibonacci[K, V]) Insert(value V, key K) *FibNode[K, V] {
	n := &FibNode[K, V]{Value: value}
	h.InsertNode(key, n)
	return n
}

// InsertNode inserts a caller-supplied node record, which must not currently
// belong to any heap. A record detached by Delete or DeleteMin may be reused
// here; it is stamped with a fresh identity on every insert.
func (h *Fibonacci[K, V]) InsertNode(key K, n *FibNode[K, V]) {
	n.parent, n.child = nil, nil
	n.degree, n.marked = 0, false
	n.Key = h.update(n.Key, key)
	n.id = nextID()
	if h.root == nil {
		n.prev, n.next = n, n
		h.root = n
	} else {
		ringInsert(h.root, n)
		if n.Key < h.root.Key {
			h.root = n
		}
	}
	h.count++
}

// Min returns the minimum-keyed node, without removing it.
func (h *Fibonacci[K, V]) Min() (*FibNode[K, V], bool) {
	return h.root, h.root != nil
}

// DecreaseKey applies the update callback to the node's key and restores
// heap order with a cascading cut. The node must belong to this heap and the
// new key must not exceed the old one.
func (h *Fibonacci[K, V]) DecreaseKey(n *FibNode[K, V], input K) {
	n.Key = h.update(n.Key, input)
	if p := n.parent; p != nil && n.Key < p.Key {
		h.cut(n)
		h.cascade(p)
	}
	if n.Key < h.root.Key {
		h.root = n
	}
}

// Delete removes the node from the heap. The node must belong to this heap;
// afterwards it is detached and may be reused by the caller.
func (h *Fibonacci[K, V]) Delete(n *FibNode[K, V]) {
	if p := n.parent; p != nil {
		h.cut(n)
		h.cascade(p)
	}

	// The node now sits on the root list; evict it through DeleteMin as if
	// its key had dropped below every other.
	h.root = n
	h.DeleteMin()
}

// DeleteMin removes and returns the minimum-keyed node, promoting its
// children to the root list and consolidating same-degree roots.
func (h *Fibonacci[K, V]) DeleteMin() (*FibNode[K, V], bool) {
	z := h.root
	if z == nil {
		return nil, false
	}

	// Promote the children of the departing root into the root list
	if c := z.child; c != nil {
		for x := c; ; {
			x.parent = nil
			x = x.next
			if x == c {
				break
			}
		}

		last, after := c.prev, z.next
		z.next = c
		c.prev = z
		last.next = after
		after.prev = last
		z.child = nil
	}

	sole := z.next == z
	start := z.next
	ringRemove(z)
	z.degree, z.marked = 0, false
	h.count--

	if sole {
		h.root = nil
	} else {
		h.consolidate(start)
	}
	return z, true
}

// Union merges other into h and returns the result in O(1) by splicing the
// two root rings. The operation is destructive: both arguments are consumed
// and only the returned heap may be used afterwards. The two heaps must have
// been created with the same update callback; this is a caller contract,
// since Go functions cannot be compared.
func Union[K cmp.Ordered, V any](h, other *Fibonacci[K, V]) *Fibonacci[K, V] {
	switch {
	case h == nil:
		return other
	case other == nil:
		return h
	case other.root == nil:
		h.removed.merge(other.removed)
		return h
	case h.root == nil:
		other.removed.merge(h.removed)
		return other
	}

	n1, n2 := h.root, other.root
	n1.next.prev = n2.prev
	n2.prev.next = n1.next
	n1.next = n2
	n2.prev = n1
	if n2.Key < n1.Key {
		h.root = n2
	}

	h.count += other.count
	h.removed.merge(other.removed)
	return h
}

// IsEmpty returns whether the heap holds no nodes.
func (h *Fibonacci[K, V]) IsEmpty() bool {
	return h.root == nil
}

// Len returns the number of resident nodes.
func (h *Fibonacci[K, V]) Len() int {
	return h.count
}

// Neighbors returns the nodes to the left and right of n in its sibling
// ring, or nils when the node is the only member of its ring.
func (n *FibNode[K, V]) Neighbors() (left, right *FibNode[K, V]) {
	if n.next == n {
		return nil, nil
	}
	return n.prev, n.next
}

// -----------------------------------------------------------------------------

// cut detaches the node from its parent and promotes it, unmarked, to the
// root list.
func (h *Fibonacci[K, V]) cut(n *FibNode[K, V]) {
	p := n.parent
	if p.child == n {
		if n.next != n {
			p.child = n.next
		} else {
			p.child = nil
		}
	}

	ringRemove(n)
	p.degree--
	n.parent = nil
	n.marked = false
	ringInsert(h.root, n)
}

// cascade walks up the parent chain after a cut. A parent that has not yet
// lost a child is marked and the walk stops; one that already has is cut as
// well and the walk continues from its own parent. The chain can be as long
// as the tree height, hence a loop rather than recursion.
func (h *Fibonacci[K, V]) cascade(n *FibNode[K, V]) {
	for n.parent != nil {
		if !n.marked {
			n.marked = true
			return
		}

		p := n.parent
		h.cut(n)
		n = p
	}
}

// consolidate links same-degree roots until all remaining root degrees are
// distinct, then scans only the occupied degree slots for the new minimum.
func (h *Fibonacci[K, V]) consolidate(start *FibNode[K, V]) {
	// Snapshot the root ring, linking below rewires it as we go
	roots := append(h.walk[:0], start)
	for x := start.next; x != start; x = x.next {
		roots = append(roots, x)
	}

	var occupied uint64
	for _, x := range roots {
		d := x.degree
		for occupied&(1<<uint(d)) != 0 {
			y := h.slots[d]
			if y.Key < x.Key {
				x, y = y, x
			}
			h.link(y, x)
			occupied &^= 1 << uint(d)
			d = x.degree
		}

		for len(h.slots) <= d {
			h.slots = append(h.slots, nil)
		}
		h.slots[d] = x
		occupied |= 1 << uint(d)
	}

	// Pick the new minimum among the occupied slots
	var min *FibNode[K, V]
	Bits(occupied, func(_, _ uint64, i int) {
		if n := h.slots[i]; min == nil || n.Key < min.Key {
			min = n
		}
	})
	h.root = min

	// Drop scratch references so detached nodes stay collectable
	clear(h.slots)
	clear(roots)
	h.walk = roots[:0]
}

// link makes y a child of x during consolidation. Both must be roots and y
// must not be smaller than x.
func (h *Fibonacci[K, V]) link(y, x *FibNode[K, V]) {
	ringRemove(y)
	y.parent = x
	y.marked = false
	if x.child == nil {
		x.child = y
	} else {
		ringInsert(x.child, y)
	}
	x.degree++
}

// ringInsert splices n into the ring right after at.
func ringInsert[K cmp.Ordered, V any](at, n *FibNode[K, V]) {
	n.prev, n.next = at, at.next
	at.next.prev = n
	at.next = n
}

// ringRemove unlinks n from its ring, leaving it as a ring of one.
func ringRemove[K cmp.Ordered, V any](n *FibNode[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = n, n
}
