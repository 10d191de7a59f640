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

// genPawnMoves generates pushes, double pushes, captures, en passant and
// promotions for every pawn of the side to move, per spec.md §4.3's pawn
// pipeline.
func genPawnMoves(parent *position.Position, ar *arena.Arena, side Color) {
	forward := side.PawnDirection()
	startRow := side.StartPawnRow()
	promoteRow := side.PromotionRow()
	opponent := parent.Pieces[side.Opp()].All

	for bb := parent.Pieces[side].Pawns; bb != 0; {
		from := bb.PopLsb()

		// Captures, including en passant.
		for c := attacks.PawnAttacks(side, from); c != 0; {
			to := c.PopLsb()
			if opponent.Has(to) {
				genPawnCapture(parent, ar, side, from, to, promoteRow)
			} else if parent.EnPassantBitboard.Has(to) {
				genEnPassant(parent, ar, side, from, to)
			}
		}

		// Single push and double push.
		oneAhead := from.To(forward)
		if oneAhead == SqNone || parent.AllPieces.Has(oneAhead) {
			continue
		}
		genPawnQuiet(parent, ar, side, from, oneAhead, promoteRow)

		if from.RowOf() == startRow {
			twoAhead := oneAhead.To(forward)
			if twoAhead != SqNone && !parent.AllPieces.Has(twoAhead) {
				child := startChild(parent, ar)
				child.MovePiece(side, Pawn, from, twoAhead)
				finish(child)
				child.SetEnPassant(oneAhead)
				emit(parent, ar, side, child)
			}
		}
	}
}

// genPawnQuiet generates a non-capturing pawn push to to, fanning out into
// four promotions if to is on the promotion row.
func genPawnQuiet(parent *position.Position, ar *arena.Arena, side Color, from, to Square, promoteRow Rank) {
	if to.RowOf() == promoteRow {
		genPromotions(parent, ar, side, from, to, false)
		return
	}
	child := startChild(parent, ar)
	child.MovePiece(side, Pawn, from, to)
	finishAndEmit(parent, ar, side, child)
}

// genPawnCapture generates a capturing pawn move to to, fanning out into
// four promotions if to is on the promotion row.
func genPawnCapture(parent *position.Position, ar *arena.Arena, side Color, from, to Square, promoteRow Rank) {
	if to.RowOf() == promoteRow {
		genPromotions(parent, ar, side, from, to, true)
		return
	}
	child := startChild(parent, ar)
	child.CaptureAt(side.Opp(), to)
	revokeCastlingOnCapture(child, to)
	child.MovePiece(side, Pawn, from, to)
	finishAndEmit(parent, ar, side, child)
}

// genPromotions fans a pawn reaching its eighth rank into its four
// possible promotions, updating piece_value_diff by the difference between
// the new piece's value and a pawn's, per spec.md §4.3.
func genPromotions(parent *position.Position, ar *arena.Arena, side Color, from, to Square, capture bool) {
	for _, pt := range PromotionPieceTypes {
		child := startChild(parent, ar)
		if capture {
			child.CaptureAt(side.Opp(), to)
			revokeCastlingOnCapture(child, to)
		}
		child.RemovePiece(side, Pawn, from)
		child.PlacePiece(side, pt, to)
		finishAndEmit(parent, ar, side, child)
	}
}

// genEnPassant generates the en-passant capture: the pawn moves to the
// target square behind which the opponent's pawn double-pushed, and that
// opponent pawn - sitting one rank behind the target, not on it - is
// removed.
func genEnPassant(parent *position.Position, ar *arena.Arena, side Color, from, to Square) {
	capturedSq := to.To(side.Opp().PawnDirection())
	if capturedSq == SqNone {
		return
	}
	child := startChild(parent, ar)
	child.RemovePiece(side.Opp(), Pawn, capturedSq)
	child.MovePiece(side, Pawn, from, to)
	finishAndEmit(parent, ar, side, child)
}
