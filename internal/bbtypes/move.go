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

// MoveKind tags the kind of move that produced a successor position. This
// is the "single tagged-variant type" design notes (§9 of spec.md) calls
// for, in place of the original's overlapping enum revisions.
type MoveKind int8

const (
	Normal MoveKind = iota
	DoublePush
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight
	CastleKingside
	CastleQueenside
	EnPassantCapture
)

// Move records the move that produced a child position. It is metadata
// attached alongside a generated Position for move ordering, logging, and
// external callers that want to describe "what move was this" (e.g. a UCI
// front end translating a child position back to algebraic notation) - the
// engine core itself never needs to "apply" a Move since move generation
// produces the successor position directly (see internal/movegen).
type Move struct {
	From      Square
	To        Square
	Kind      MoveKind
	Promotion PieceType // valid only for Kind in {PromoteQueen,...,PromoteKnight}
}

// IsPromotion reports whether the move is one of the four promotion kinds.
func (m Move) IsPromotion() bool {
	switch m.Kind {
	case PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight:
		return true
	}
	return false
}

// String renders the move in long algebraic notation, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// PromotionPieceTypes lists the four ranks that a pawn may promote to, in
// the order spec.md §4.3 fans promotions out.
var PromotionPieceTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// PromotionKind maps a promotion piece type to its MoveKind.
func PromotionKind(pt PieceType) MoveKind {
	switch pt {
	case Queen:
		return PromoteQueen
	case Rook:
		return PromoteRook
	case Bishop:
		return PromoteBishop
	case Knight:
		return PromoteKnight
	}
	panic(fmt.Sprintf("bbtypes: %v is not a promotion piece type", pt))
}
