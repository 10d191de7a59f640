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

var (
	pawnAttacksTbl [ColorLength][SqLength]Bitboard
	knightAttacks  [SqLength]Bitboard
	kingAttacks    [SqLength]Bitboard
)

var kingDeltas = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// knightOffsets are (file delta, row delta) pairs for the eight L-shaped
// knight jumps, checked directly against file/row arithmetic rather than
// composed from single-step Directions, since a knight jump isn't a ray
// step and Square.To only validates single-square steps.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func initLeapers() {
	for sq := SqA8; sq <= SqH1; sq++ {
		f := int(sq.FileOf())
		row := int(sq.RowOf())

		for _, d := range kingDeltas {
			if to := sq.To(d); to != SqNone {
				kingAttacks[sq] = kingAttacks[sq].Set(to)
			}
		}

		for _, off := range knightOffsets {
			nf, nr := f+off[0], row+off[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			to := SquareOf(File(nf), Rank(nr))
			knightAttacks[sq] = knightAttacks[sq].Set(to)
		}

		for _, c := range [ColorLength]Color{White, Black} {
			forward := c.PawnDirection()
			if to := sq.To(forward + East); to != SqNone {
				pawnAttacksTbl[c][sq] = pawnAttacksTbl[c][sq].Set(to)
			}
			if to := sq.To(forward + West); to != SqNone {
				pawnAttacksTbl[c][sq] = pawnAttacksTbl[c][sq].Set(to)
			}
		}
	}
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacksTbl[c][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}
