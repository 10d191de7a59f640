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

// Package attacks precomputes every attack table the move generator and
// evaluator need: leaper tables for pawns/knights/kings, magic-bitboard
// tables for sliding rook/bishop/queen attacks, and castling geometry.
// Everything here is process-lifetime immutable state, built once by Init
// (spec.md §4.1 and §5).
package attacks

import . "github.com/frankkopp/bbchess/internal/bbtypes"

var (
	rookTable    []Bitboard
	bishopTable  []Bitboard
	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic

	initialized = false
)

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// Init computes every attack table. It is idempotent and safe to call from
// multiple init() functions across packages; only the first call does
// work.
func Init() {
	if initialized {
		return
	}
	initLeapers()
	initCastling()

	// Table sizes follow the standard "fancy magic" rook/bishop totals:
	// sum over squares of 2^relevant_bits.
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(rookTable, &rookMagics, rookDirections)
	initMagics(bishopTable, &bishopMagics, bishopDirections)

	initialized = true
}

// RookAttacks returns the rook attack bitboard from sq given the current
// board occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop attack bitboard from sq given the
// current board occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// QueenAttacks is the union of the rook and bishop attack sets from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// RookBlockerMask returns the relevant-blocker mask for a rook on sq (the
// squares whose occupancy can affect the rook's attack set, edges excluded).
func RookBlockerMask(sq Square) Bitboard {
	return rookMagics[sq].Mask
}

// BishopBlockerMask returns the relevant-blocker mask for a bishop on sq.
func BishopBlockerMask(sq Square) Bitboard {
	return bishopMagics[sq].Mask
}
