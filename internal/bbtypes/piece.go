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

import "fmt"

// PieceType is a kind of piece, color-independent.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// pieceLetters is indexed by PieceType and holds the uppercase FEN letter.
var pieceLetters = [PtLength]byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the uppercase FEN letter for the piece type.
func (pt PieceType) Letter() byte {
	return pieceLetters[pt]
}

// Piece packs a color and a piece type, plus the "no piece" sentinel.
type Piece int8

const PieceNone Piece = -1

// MakePiece builds a Piece from a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(c)<<3 | int8(pt))
}

// TypeOf returns the piece type.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return NoPieceType
	}
	return PieceType(p & 0b0111)
}

// ColorOf returns the piece's color.
func (p Piece) ColorOf() Color {
	return Color((p >> 3) & 1)
}

// String renders the piece as a FEN letter, uppercase for white.
func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	l := p.TypeOf().Letter()
	if p.ColorOf() == Black {
		l = l - 'A' + 'a'
	}
	return string(l)
}

// PieceFromLetter parses a single FEN piece letter into a Piece.
func PieceFromLetter(l byte) (Piece, error) {
	color := White
	if l >= 'a' && l <= 'z' {
		color = Black
		l = l - 'a' + 'A'
	}
	for pt := Pawn; pt < PtLength; pt++ {
		if pieceLetters[pt] == l {
			return MakePiece(color, pt), nil
		}
	}
	return PieceNone, fmt.Errorf("bbtypes: unknown piece letter %q", l)
}

// PieceValue holds the centipawn values from spec.md §4.7. The king's value
// is a sentinel large enough to dwarf any material swing, so a king capture
// (which should never be generated) would never be mistaken for a normal
// evaluation swing.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 110000
)

// Value returns the centipawn value of the piece type. NoPieceType is 0.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return PawnValue
	case Knight:
		return KnightValue
	case Bishop:
		return BishopValue
	case Rook:
		return RookValue
	case Queen:
		return QueenValue
	case King:
		return KingValue
	default:
		return 0
	}
}
