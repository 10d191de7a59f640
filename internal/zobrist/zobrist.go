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

// Package zobrist holds the randomized 64-bit constants used to hash a
// position (spec.md §3 "Zobrist keys" and §4.6). The constants are seeded
// deterministically so that, per spec.md §5, a fixed seed yields a fully
// deterministic search across runs.
package zobrist

import (
	"math/rand"

	. "github.com/frankkopp/bbchess/internal/bbtypes"
)

// Key is a Zobrist hash. It needs the full 64 bits for distribution.
type Key uint64

const seed = 1070372

var (
	pieceSquare  [ColorLength][PtLength][SqLength]Key
	blackToMove  Key
	enPassantKey [SqLength]Key
	castlingKey  [ColorLength][WingLength]Key

	initialized = false
)

// WingLength mirrors attacks.WingLength without importing that package
// (zobrist sits below attacks in the dependency order); castling rights
// only ever need two wings per color.
const WingLength = 2

// Init fills every Zobrist constant from a seeded PRNG. Idempotent.
func Init() {
	if initialized {
		return
	}
	r := rand.New(rand.NewSource(seed))
	next := func() Key { return Key(r.Uint64()) }

	for c := Black; c <= White; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			for sq := SqA8; sq <= SqH1; sq++ {
				pieceSquare[c][pt][sq] = next()
			}
		}
	}
	blackToMove = next()
	for sq := SqA8; sq <= SqH1; sq++ {
		enPassantKey[sq] = next()
	}
	for c := Black; c <= White; c++ {
		for w := 0; w < WingLength; w++ {
			castlingKey[c][w] = next()
		}
	}
	initialized = true
}

// PieceSquare returns the key for a piece of type pt and color c sitting on
// sq.
func PieceSquare(c Color, pt PieceType, sq Square) Key {
	return pieceSquare[c][pt][sq]
}

// BlackToMove is XORed in whenever it is Black's turn to move.
func BlackToMove() Key {
	return blackToMove
}

// EnPassant returns the key for an en-passant target square. There is no
// separate "no en passant" key: callers simply don't XOR anything when
// there is no en-passant target, which is equivalent to a dedicated
// all-zero sentinel key and avoids the double sentinel (index 0 and index
// 64) spec.md's table describes ambiguously.
func EnPassant(sq Square) Key {
	return enPassantKey[sq]
}

// Castling returns the key for one castling-rights bit. w is 0 for
// kingside, 1 for queenside, matching attacks.Wing.
func Castling(c Color, w int) Key {
	return castlingKey[c][w]
}
