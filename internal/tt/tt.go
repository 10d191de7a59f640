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

// Package tt implements the direct-mapped transposition table spec.md
// §4.6 describes: a power-of-two array of entries indexed by the low bits
// of the Zobrist key, always-replace on store.
package tt

import "github.com/frankkopp/bbchess/internal/zobrist"

// Bound classifies how a stored score relates to the search window that
// produced it.
type Bound int8

const (
	// BoundNone marks an empty slot.
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot.
type Entry struct {
	Key           zobrist.Key
	BestChildKey  zobrist.Key
	Score         int
	Depth         int
	HalfMoveCount uint16
	Bound         Bound
}

// Table is a direct-mapped transposition table. The zero value is not
// usable; build one with New.
type Table struct {
	entries []Entry
	mask    uint64
}

// New builds a table whose entry count is the smallest power of two that
// fills at least sizeMb megabytes (at about 40 bytes an entry; sizeMb
// below 1 is treated as 1), the way the teacher's own TT sizing works off a
// megabyte budget rather than a raw entry count.
func New(sizeMb int) *Table {
	if sizeMb < 1 {
		sizeMb = 1
	}
	const entrySize = 40 // approximate Entry size in bytes
	want := (sizeMb * 1024 * 1024) / entrySize
	n := 1
	for n < want {
		n <<= 1
	}
	if n == 0 {
		n = 1
	}
	return &Table{entries: make([]Entry, n), mask: uint64(n - 1)}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Clear resets every slot to empty, used between searches that must not
// see stale entries from an unrelated position tree (e.g. test isolation).
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// ProbeResult is what Probe reports back to the search.
type ProbeResult struct {
	Hit          bool
	Score        int
	Alpha, Beta  int
	Cutoff       bool
	BestChildKey zobrist.Key
	HasBestChild bool
}

// Probe implements spec.md §4.6's probe contract: a miss leaves alpha/beta
// untouched; a hit at sufficient depth tightens the window or resolves an
// exact score, possibly signalling an immediate cutoff. The stored best
// child key is surfaced on any hit, even a shallow one, for move ordering.
func (t *Table) Probe(key zobrist.Key, depth, alpha, beta int) ProbeResult {
	e := &t.entries[t.index(key)]
	if e.Bound == BoundNone || e.Key != key {
		return ProbeResult{}
	}

	result := ProbeResult{Hit: true, BestChildKey: e.BestChildKey, HasBestChild: true, Alpha: alpha, Beta: beta}

	if e.Depth < depth {
		return result
	}

	switch e.Bound {
	case BoundExact:
		result.Score = e.Score
		result.Alpha, result.Beta = alpha, beta
		result.Cutoff = true
		return result
	case BoundLower:
		if e.Score > alpha {
			alpha = e.Score
		}
	case BoundUpper:
		if e.Score < beta {
			beta = e.Score
		}
	}
	result.Alpha, result.Beta = alpha, beta
	result.Cutoff = alpha >= beta
	if result.Cutoff {
		result.Score = e.Score
	}
	return result
}

// Store records a fully-searched node, always overwriting whatever
// occupied the slot (the always-replace policy spec.md explicitly permits).
func (t *Table) Store(key, bestChildKey zobrist.Key, score, depth int, halfMoveCount uint16, alphaOrig, beta int) {
	var bound Bound
	switch {
	case score <= alphaOrig:
		bound = BoundUpper
	case score >= beta:
		bound = BoundLower
	default:
		bound = BoundExact
	}
	t.entries[t.index(key)] = Entry{
		Key:           key,
		BestChildKey:  bestChildKey,
		Score:         score,
		Depth:         depth,
		HalfMoveCount: halfMoveCount,
		Bound:         bound,
	}
}
