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

// Wing distinguishes kingside/queenside castling, indexing the 2-wide
// castle geometry tables (spec.md §3 "Magic lookup tables").
type Wing int

const (
	KingsideWing Wing = iota
	QueensideWing
	WingLength
)

var (
	// mustBeEmptyAndSafe is the mask of squares that must be unattacked for
	// the castle to be legal, including the king's own origin square so
	// that "cannot castle out of check" falls out of the same test (spec.md
	// §4.1). Emptiness is tested separately against mustBeEmpty.
	mustBeEmptyAndSafe [ColorLength][WingLength]Bitboard

	// mustBeEmpty carries the queenside b-file square, which must be empty
	// but need not be unattacked.
	mustBeEmpty [ColorLength][WingLength]Bitboard

	kingTarget [ColorLength][WingLength]Square
	rookXor    [ColorLength][WingLength]Bitboard
	castleRight [ColorLength][WingLength]CastlingRights
)

func initCastling() {
	castleRight[White][KingsideWing] = CastleWhiteKingside
	castleRight[White][QueensideWing] = CastleWhiteQueenside
	castleRight[Black][KingsideWing] = CastleBlackKingside
	castleRight[Black][QueensideWing] = CastleBlackQueenside

	// White: king e1, rooks a1/h1. mustBeEmpty excludes the king's own
	// origin square - the king still sits there when this is tested, so
	// including it would make the occupancy check always fail. The
	// origin square still participates in mustBeEmptyAndSafe, which is
	// only ever intersected with the *attacked*-squares bitboard.
	mustBeEmptyAndSafe[White][KingsideWing] = SquareBb(SqE1) | SquareBb(SqF1) | SquareBb(SqG1)
	mustBeEmpty[White][KingsideWing] = SquareBb(SqF1) | SquareBb(SqG1)
	kingTarget[White][KingsideWing] = SqG1
	rookXor[White][KingsideWing] = SquareBb(SqH1) | SquareBb(SqF1)

	mustBeEmptyAndSafe[White][QueensideWing] = SquareBb(SqE1) | SquareBb(SqD1) | SquareBb(SqC1)
	mustBeEmpty[White][QueensideWing] = SquareBb(SqD1) | SquareBb(SqC1) | SquareBb(SqB1)
	kingTarget[White][QueensideWing] = SqC1
	rookXor[White][QueensideWing] = SquareBb(SqA1) | SquareBb(SqD1)

	// Black: king e8, rooks a8/h8. Same king-origin exclusion as White.
	mustBeEmptyAndSafe[Black][KingsideWing] = SquareBb(SqE8) | SquareBb(SqF8) | SquareBb(SqG8)
	mustBeEmpty[Black][KingsideWing] = SquareBb(SqF8) | SquareBb(SqG8)
	kingTarget[Black][KingsideWing] = SqG8
	rookXor[Black][KingsideWing] = SquareBb(SqH8) | SquareBb(SqF8)

	mustBeEmptyAndSafe[Black][QueensideWing] = SquareBb(SqE8) | SquareBb(SqD8) | SquareBb(SqC8)
	mustBeEmpty[Black][QueensideWing] = SquareBb(SqD8) | SquareBb(SqC8) | SquareBb(SqB8)
	kingTarget[Black][QueensideWing] = SqC8
	rookXor[Black][QueensideWing] = SquareBb(SqA8) | SquareBb(SqD8)
}

// CastleMustBeEmptyAndSafe returns the squares (including the king's
// origin) that must be unattacked by the opponent for the given color/wing
// castle to be legal. The occupancy test uses CastleMustBeEmpty instead.
func CastleMustBeEmptyAndSafe(c Color, w Wing) Bitboard {
	return mustBeEmptyAndSafe[c][w]
}

// CastleMustBeEmpty returns the squares that must be unoccupied: the
// squares between king and rook, excluding the king's own origin square
// (which still sits there when this is tested) and including, on the
// queenside, the extra b-file square that must be empty without needing
// to be unattacked.
func CastleMustBeEmpty(c Color, w Wing) Bitboard {
	return mustBeEmpty[c][w]
}

// CastleKingTarget returns the king's destination square.
func CastleKingTarget(c Color, w Wing) Square {
	return kingTarget[c][w]
}

// CastleRookXor returns the mask to XOR into the rook bitboard: clears the
// rook's home square and sets its post-castle square in one operation.
func CastleRookXor(c Color, w Wing) Bitboard {
	return rookXor[c][w]
}

// CastleRight returns the castling-rights bit for a color/wing pair.
func CastleRight(c Color, w Wing) CastlingRights {
	return castleRight[c][w]
}
