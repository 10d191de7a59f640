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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/bbchess/internal/zobrist"
)

func TestProbe_MissOnEmptyTable(t *testing.T) {
	table := New(1)
	result := table.Probe(zobrist.Key(12345), 4, -1000, 1000)
	assert.False(t, result.Hit)
	assert.False(t, result.Cutoff)
}

func TestStoreThenProbe_ExactBoundCutsOff(t *testing.T) {
	table := New(1)
	key := zobrist.Key(42)
	table.Store(key, zobrist.Key(7), 150, 5, 0, -200, 200)

	result := table.Probe(key, 5, -200, 200)
	assert.True(t, result.Hit)
	assert.True(t, result.Cutoff)
	assert.Equal(t, 150, result.Score)
	assert.True(t, result.HasBestChild)
	assert.Equal(t, zobrist.Key(7), result.BestChildKey)
}

func TestStoreThenProbe_ShallowerStoredDepthNeverCutsOff(t *testing.T) {
	table := New(1)
	key := zobrist.Key(99)
	table.Store(key, zobrist.Key(1), 10, 2, 0, -1000, 1000)

	result := table.Probe(key, 8, -1000, 1000)
	assert.True(t, result.Hit)
	assert.False(t, result.Cutoff)
	assert.True(t, result.HasBestChild, "a shallow hit still surfaces its best child for move ordering")
	assert.Equal(t, -1000, result.Alpha, "a shallow hit must not narrow the caller's window")
	assert.Equal(t, 1000, result.Beta, "a shallow hit must not narrow the caller's window")
}

func TestStore_BoundClassification(t *testing.T) {
	table := New(1)

	upperKey := zobrist.Key(1)
	table.Store(upperKey, 0, -50, 4, 0, 0, 100)
	assert.Equal(t, BoundUpper, table.entries[table.index(upperKey)].Bound)

	lowerKey := zobrist.Key(2)
	table.Store(lowerKey, 0, 150, 4, 0, 0, 100)
	assert.Equal(t, BoundLower, table.entries[table.index(lowerKey)].Bound)

	exactKey := zobrist.Key(3)
	table.Store(exactKey, 0, 50, 4, 0, 0, 100)
	assert.Equal(t, BoundExact, table.entries[table.index(exactKey)].Bound)
}

func TestClear_EmptiesEveryEntry(t *testing.T) {
	table := New(1)
	table.Store(zobrist.Key(1), 0, 50, 4, 0, 0, 100)
	table.Clear()

	result := table.Probe(zobrist.Key(1), 4, -1000, 1000)
	assert.False(t, result.Hit)
}

func TestNew_SizesToPowerOfTwo(t *testing.T) {
	table := New(1)
	n := len(table.entries)
	assert.Equal(t, n&(n-1), 0, "table size must be a power of two")
	assert.Equal(t, uint64(n-1), table.mask)
}
