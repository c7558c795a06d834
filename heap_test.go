// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountConservation(t *testing.T) {
	s := NewSkew[uint32, string](nil)
	p := NewPairing[uint32, string](nil)
	f := NewFibonacci[uint32, string](nil)

	for j := 0; j < 100; j++ {
		k := rand(j)
		s.Insert("s", k)
		p.Insert("p", k)
		f.Insert("f", k)
		assert.Equal(t, j+1, s.Len())
		assert.Equal(t, j+1, p.Len())
		assert.Equal(t, j+1, f.Len())
	}

	for j := 99; j >= 0; j-- {
		_, ok1 := s.DeleteMin()
		_, ok2 := p.DeleteMin()
		_, ok3 := f.DeleteMin()
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.True(t, ok3)
		assert.Equal(t, j, s.Len())
		assert.Equal(t, j, p.Len())
		assert.Equal(t, j, f.Len())
	}

	assert.True(t, s.IsEmpty())
	assert.True(t, p.IsEmpty())
	assert.True(t, f.IsEmpty())
}

func TestEmptyQueries(t *testing.T) {
	s := NewSkew[int, int](nil)
	p := NewPairing[int, int](nil)
	f := NewFibonacci[int, int](nil)

	if n, ok := s.Min(); assert.False(t, ok) {
		assert.Nil(t, n)
	}
	if n, ok := p.DeleteMin(); assert.False(t, ok) {
		assert.Nil(t, n)
	}
	if n, ok := f.DeleteMin(); assert.False(t, ok) {
		assert.Nil(t, n)
	}
}

// very fast semi-random function
func rand(i int) uint32 {
	i = i + 10000
	i = i ^ (i << 16)
	i = (i >> 5) ^ i
	return uint32(i & 0xFFFF)
}

func BenchmarkSkew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := NewSkew[uint32, int](nil)
		for j := 0; j < 128; j++ {
			h.Insert(j, rand(j))
		}
		for j := 0; j < 128*10; j++ {
			h.Insert(j, rand(j))
			h.DeleteMin()
		}
	}
}

func BenchmarkPairing(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := NewPairing[uint32, int](nil)
		for j := 0; j < 128; j++ {
			h.Insert(j, rand(j))
		}
		for j := 0; j < 128*10; j++ {
			h.Insert(j, rand(j))
			h.DeleteMin()
		}
	}
}

func BenchmarkFibonacci(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := NewFibonacci[uint32, int](nil)
		for j := 0; j < 128; j++ {
			h.Insert(j, rand(j))
		}
		for j := 0; j < 128*10; j++ {
			h.Insert(j, rand(j))
			h.DeleteMin()
		}
	}
}

func BenchmarkGoHeap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pq := make(pqueue, 0)
		for j := 0; j < 128; j++ {
			heap.Push(&pq, rand(j))
		}
		for j := 0; j < 128*10; j++ {
			heap.Push(&pq, rand(j))
			heap.Pop(&pq)
		}
	}
}

// -----------------------------------------------------------------------------

type pqueue []uint32

func (pq pqueue) Len() int { return len(pq) }
func (pq pqueue) Less(i, j int) bool {
	return pq[i] < pq[j]
}
func (pq pqueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *pqueue) Push(x interface{}) {
	*pq = append(*pq, x.(uint32))
}

func (pq *pqueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
