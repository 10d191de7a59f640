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

// Package bbtypes holds the small primitive types shared by every other
// package in the engine: bitboards, squares, colors, pieces and moves.
// None of these types allocate; they are cheap value types passed by copy
// the way the teacher's pkg/types does.
package bbtypes

import "fmt"

// Square indexes a board square 0-63.
//
// Square 0 is a8, square 7 is h8, square 56 is a1 and square 63 is h1: file
// increases left to right within a row (file = index % 8) and rank
// decreases as the index increases (row = index / 8, rank = 8 - row). This
// is the numbering spec.md fixes for FEN and perft compatibility; it is the
// opposite orientation from the conventional a1=0 numbering used by most
// chess programming literature (and by the teacher's own pkg/types), so
// every direction and shift in this engine is expressed in terms of it.
type Square int8

// SqNone is the sentinel for "no square".
const SqNone Square = 64

// SqLength is the number of valid squares.
const SqLength = 64

const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
)

// File is a board file, 0 (a) to 7 (h).
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a human rank number, 0 (rank 8) to 7 (rank 1) in row order, i.e.
// RowOf returns the row index (not the printed rank digit). Use
// RankNumber for the printed digit.
type Rank int8

const (
	Rank8Row Rank = iota
	Rank7Row
	Rank6Row
	Rank5Row
	Rank4Row
	Rank3Row
	Rank2Row
	Rank1Row
)

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(int8(sq) % 8)
}

// RowOf returns the row of the square, 0 at the top (rank 8) to 7 at the
// bottom (rank 1).
func (sq Square) RowOf() Rank {
	return Rank(int8(sq) / 8)
}

// RankNumber returns the printed rank digit, 8 down to 1.
func (sq Square) RankNumber() int {
	return 8 - int(sq.RowOf())
}

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool {
	return sq >= SqA8 && sq < SqNone
}

// SquareOf builds a square from a file and a row (0 = rank8 row).
func SquareOf(f File, row Rank) Square {
	return Square(int8(row)*8 + int8(f))
}

// String renders algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(sq.FileOf()), sq.RankNumber())
}

// ParseSquare parses algebraic notation such as "e4" into a Square.
// Returns SqNone for anything that isn't exactly a file letter followed by
// a rank digit.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	file := File(f - 'a')
	row := Rank(8 - (r - '0'))
	return SquareOf(file, row)
}
