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

// Direction is a square-index delta for one of the eight ray directions.
// North moves toward rank 8, which sits at the low end of the square
// numbering (see square.go), so North is a negative delta here - the
// reverse of the conventional a1=0 board.
type Direction int8

const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// Orientation enumerates the eight ray directions for table indexing.
type Orientation int

const (
	OrientN Orientation = iota
	OrientE
	OrientS
	OrientW
	OrientNE
	OrientSE
	OrientSW
	OrientNW
	OrientLength
)

// To returns the square one step in the given direction, or SqNone if that
// step would leave the board or wrap around a file edge.
func (sq Square) To(d Direction) Square {
	to := Square(int8(sq) + int8(d))
	if !to.IsValid() {
		return SqNone
	}
	// reject wraparound: a step that changes file by more than one means
	// it crossed the board edge (e.g. h-file stepping East).
	fileDelta := int(to.FileOf()) - int(sq.FileOf())
	switch d {
	case East, Northeast, Southeast:
		if fileDelta != 1 {
			return SqNone
		}
	case West, Northwest, Southwest:
		if fileDelta != -1 {
			return SqNone
		}
	default:
		if fileDelta != 0 {
			return SqNone
		}
	}
	return to
}
