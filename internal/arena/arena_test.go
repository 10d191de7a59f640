/*
 * bbchess - bitboard chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlloc_AdvancesLen(t *testing.T) {
	a := New(4)
	assert.Equal(t, 0, a.Len())
	a.Alloc()
	assert.Equal(t, 1, a.Len())
	a.Alloc()
	assert.Equal(t, 2, a.Len())
}

func TestAlloc_ReturnsZeroedSlot(t *testing.T) {
	a := New(4)
	p := a.Alloc()
	assert.False(t, p.WhiteToMove)
	assert.Equal(t, 0, p.NumChildren)
}

func TestMarkRelease_DiscardsIntermediateAllocations(t *testing.T) {
	a := New(8)
	a.Alloc()
	mark := a.Mark()
	a.Alloc()
	a.Alloc()
	assert.Equal(t, 3, a.Len())
	a.Release(mark)
	assert.Equal(t, 1, a.Len())
}

func TestFree_ReleasesSingleMostRecentSlot(t *testing.T) {
	a := New(8)
	a.Alloc()
	a.Alloc()
	a.Free()
	assert.Equal(t, 1, a.Len())
}

func TestFree_OnEmptyPoolPanics(t *testing.T) {
	a := New(4)
	assert.Panics(t, func() { a.Free() })
}

func TestAlloc_OverflowPanicsWithErrExhausted(t *testing.T) {
	a := New(2)
	a.Alloc()
	a.Alloc()
	assert.PanicsWithValue(t, &ErrExhausted{Size: 2}, func() { a.Alloc() })
}

func TestRelease_OutOfRangeMarkPanics(t *testing.T) {
	a := New(4)
	a.Alloc()
	assert.Panics(t, func() { a.Release(5) })
}

func TestCap_ReportsSlabSize(t *testing.T) {
	a := New(128)
	assert.Equal(t, 128, a.Cap())
}
