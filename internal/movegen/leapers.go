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

package movegen

import (
	"github.com/frankkopp/bbchess/internal/arena"
	"github.com/frankkopp/bbchess/internal/attacks"
	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/position"
)

// genLeaperMoves generates every quiet move and capture for knights (the
// only non-king, non-pawn leaper; king moves have their own generator
// since they also need the attacked-squares filter spec.md §4.3 mandates).
func genLeaperMoves(parent *position.Position, ar *arena.Arena, side Color, pt PieceType) {
	own := parent.Pieces[side].All
	for bb := parent.Pieces[side].BitboardFor(pt); bb != 0; {
		from := bb.PopLsb()
		dests := attacks.KnightAttacks(from) &^ own
		for d := dests; d != 0; {
			to := d.PopLsb()
			genSingleStepMove(parent, ar, side, pt, from, to)
		}
	}
}

// genKingMoves generates king moves, filtered by the opponent's attacked
// squares with the king itself removed from the blocker occupancy (spec.md
// §4.3's "attacked-square computation").
func genKingMoves(parent *position.Position, ar *arena.Arena, side Color) {
	from := parent.KingSquare(side)
	if from == SqNone {
		return
	}
	own := parent.Pieces[side].All
	opponentAttacks := attackedSquares(parent, side.Opp(), from)
	dests := attacks.KingAttacks(from) &^ own &^ opponentAttacks
	for d := dests; d != 0; {
		to := d.PopLsb()
		genSingleStepMove(parent, ar, side, King, from, to)
	}
}

// genSingleStepMove builds the child for a knight, king or slider move from one
// square to another, capturing whatever (if anything) the opponent has on
// the destination, and revoking the relevant castling rights when a king
// or a rook's home square is involved.
func genSingleStepMove(parent *position.Position, ar *arena.Arena, side Color, pt PieceType, from, to Square) {
	child := startChild(parent, ar)
	if child.Pieces[side.Opp()].All.Has(to) {
		child.CaptureAt(side.Opp(), to)
		revokeCastlingOnCapture(child, to)
	}
	child.MovePiece(side, pt, from, to)
	revokeCastlingOnMove(child, side, pt, from)
	finishAndEmit(parent, ar, side, child)
}

// revokeCastlingOnMove clears castling rights affected by a king move or a
// rook leaving its home square - called for the moving piece's own rights;
// genSingleStepMove (knight, king and slider captures) and the pawn capture
// paths (genPawnCapture, genPromotions) call revokeCastlingOnCapture
// separately for the captured side.
func revokeCastlingOnMove(child *position.Position, side Color, pt PieceType, from Square) {
	if pt == King {
		child.RevokeCastlingRight(Kingside(side) | Queenside(side))
		return
	}
	if pt != Rook {
		return
	}
	switch from {
	case SqA1:
		child.RevokeCastlingRight(CastleWhiteQueenside)
	case SqH1:
		child.RevokeCastlingRight(CastleWhiteKingside)
	case SqA8:
		child.RevokeCastlingRight(CastleBlackQueenside)
	case SqH8:
		child.RevokeCastlingRight(CastleBlackKingside)
	}
}

// revokeCastlingOnCapture clears the captured side's castling rights when
// a rook is captured on its home square, regardless of which piece made
// the capture.
func revokeCastlingOnCapture(child *position.Position, to Square) {
	switch to {
	case SqA1:
		child.RevokeCastlingRight(CastleWhiteQueenside)
	case SqH1:
		child.RevokeCastlingRight(CastleWhiteKingside)
	case SqA8:
		child.RevokeCastlingRight(CastleBlackQueenside)
	case SqH8:
		child.RevokeCastlingRight(CastleBlackKingside)
	}
}
