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

// Package repetition tracks the positions reached on the path from the
// search root in a linear-probed open-addressing set keyed by Zobrist key,
// per spec.md §4.6. Entering a node inserts its key; leaving it removes
// the same key. A key seen twice before (three occurrences counting the
// current one) is a draw by threefold repetition; this implementation
// follows spec.md's "first repetition is a draw" simplification, flagging
// a draw as soon as a key is seen for the second time.
package repetition

import "github.com/frankkopp/bbchess/internal/zobrist"

type slotState int8

const (
	slotEmpty slotState = iota
	slotOccupied
)

type slot struct {
	key   zobrist.Key
	count int
	state slotState
}

// Set is an open-addressing table of positions on the current search path.
type Set struct {
	slots []slot
	mask  uint64
	size  int
}

// New builds a Set sized to the next power of two >= capacity, generous
// enough to hold every ply on the path from root to the search's maximum
// depth without excessive clustering.
func New(capacity int) *Set {
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &Set{slots: make([]slot, n), mask: uint64(n - 1)}
}

func (s *Set) find(key zobrist.Key) int {
	idx := uint64(key) & s.mask
	for {
		sl := &s.slots[idx]
		if sl.state == slotEmpty || sl.key == key {
			return int(idx)
		}
		idx = (idx + 1) & s.mask
	}
}

// Insert records one more occurrence of key, called on entering a node.
func (s *Set) Insert(key zobrist.Key) {
	idx := s.find(key)
	sl := &s.slots[idx]
	if sl.state == slotEmpty {
		sl.state = slotOccupied
		sl.key = key
		s.size++
	}
	sl.count++
}

// Remove undoes one occurrence of key, called on leaving a node. Once a
// key's count reaches zero its slot is freed by backward-shift deletion,
// which moves later members of the same probe run into the hole so that
// linear probing still reaches every remaining key.
func (s *Set) Remove(key zobrist.Key) {
	idx := s.find(key)
	sl := &s.slots[idx]
	if sl.state == slotEmpty {
		return
	}
	sl.count--
	if sl.count > 0 {
		return
	}
	hole := uint64(idx)
	for j := (hole + 1) & s.mask; s.slots[j].state != slotEmpty; j = (j + 1) & s.mask {
		home := uint64(s.slots[j].key) & s.mask
		if (j-home)&s.mask >= (j-hole)&s.mask {
			s.slots[hole] = s.slots[j]
			hole = j
		}
	}
	s.slots[hole] = slot{}
	s.size--
}

// IsRepetition reports whether key has already been seen on the path from
// root, i.e. whether entering it again would be the position's second
// occurrence - spec.md's "first repetition is a draw" rule. Call this
// after Insert so the position just entered is itself accounted for.
func (s *Set) IsRepetition(key zobrist.Key) bool {
	idx := s.find(key)
	sl := &s.slots[idx]
	return sl.state == slotOccupied && sl.key == key && sl.count >= 2
}

// Clear empties the set, for reuse across independent searches.
func (s *Set) Clear() {
	for i := range s.slots {
		s.slots[i] = slot{}
	}
	s.size = 0
}
