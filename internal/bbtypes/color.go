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

package bbtypes

// Color is a side in {0,1}. Index 1 denotes white, following spec.md's
// "two-sided table" convention.
type Color int8

const (
	Black Color = 0
	White Color = 1
)

// ColorLength is the number of colors.
const ColorLength = 2

// Opp returns the opposing color.
func (c Color) Opp() Color {
	return 1 - c
}

// String renders the color as "w"/"b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PawnDirection returns the direction a pawn of this color advances.
func (c Color) PawnDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PromotionRow returns the row (see Square.RowOf) a pawn of this color
// promotes on.
func (c Color) PromotionRow() Rank {
	if c == White {
		return Rank8Row
	}
	return Rank1Row
}

// StartPawnRow returns the row a pawn of this color starts on.
func (c Color) StartPawnRow() Rank {
	if c == White {
		return Rank2Row
	}
	return Rank7Row
}
