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

package attacks

import . "github.com/frankkopp/bbchess/internal/bbtypes"

// Magic holds the precomputed magic bitboard data for one square and one
// sliding piece type (rook or bishop), per spec.md §3 "Magic lookup
// tables".
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index computes the perfect-hash index into m.Attacks for a given
// occupancy, per spec.md §4.1 step 4.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	return uint(occ >> m.Shift)
}

// slidingAttack walks each of the four given ray directions from sq,
// stopping at (and including) the first blocker bit set in occupied. This
// is the direct, unoptimized definition used both to build the magic
// tables and as ground truth in tests.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is a xorshift64* pseudo-random generator used only at start-up to
// search for magic numbers. Grounded on the teacher's internal/types/magic.go,
// itself adapted from Stockfish; dedicated to the public domain by
// Sebastiano Vigna (2014).
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a value with roughly 1/8th of its bits set on average,
// which converges to a working magic multiplier much faster than a
// uniformly random 64-bit value.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

// initMagics computes magic numbers and fills the attack table for every
// square, for one sliding piece (rook or bishop), per spec.md §4.1. It
// follows the "fancy magic bitboards" approach: draw sparse random
// candidate multipliers and accept the first one whose index function maps
// every occupancy subset of the square's relevant-blocker mask without
// collision.
func initMagics(table []Bitboard, magics *[SqLength]Magic, directions [4]Direction) {
	// Seeds chosen per rank to keep the search for each square's magic
	// fast; lifted from the teacher (itself lifted from Stockfish).
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	size := 0

	offset := 0
	for sq := SqA8; sq <= SqH1; sq++ {
		edges := ((Rank1Mask | Rank8Mask) &^ RowBb(sq.RowOf())) | ((FileAMask | FileHMask) &^ FileBb(sq.FileOf()))

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Attacks = table[offset:]

		// Carry-Rippler enumeration of every subset of the blocker mask.
		var b Bitboard
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}
		offset += size

		rng := newPrnG(seeds[sq.RowOf()])
		for i := 0; i < size; {
			// Draw sparse candidates until one looks promising: the top
			// byte of magic*mask should have few bits set.
			for {
				m.Number = Bitboard(rng.sparseRand())
				if ((m.Number * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}
