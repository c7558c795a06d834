// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package heaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	var accs, bits []uint64
	var indices []int
	Bits(0b101001, func(acc, bit uint64, index int) {
		accs = append(accs, acc)
		bits = append(bits, bit)
		indices = append(indices, index)
	})

	assert.Equal(t, []uint64{0, 1, 0b1001}, accs)
	assert.Equal(t, []uint64{1, 8, 32}, bits)
	assert.Equal(t, []int{0, 3, 5}, indices)
}

func TestBitsEmpty(t *testing.T) {
	calls := 0
	Bits(0, func(acc, bit uint64, index int) {
		calls++
	})
	assert.Equal(t, 0, calls)
}

func TestBitsHigh(t *testing.T) {
	Bits(1<<63, func(acc, bit uint64, index int) {
		assert.Equal(t, uint64(0), acc)
		assert.Equal(t, uint64(1)<<63, bit)
		assert.Equal(t, 63, index)
	})
}
