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

// Package evaluator scores a position from the side-to-move's perspective,
// combining the incrementally-maintained material difference with a small
// positional bonus for opening-phase piece activity (spec.md §4.7).
//
// Checkmate and stalemate values are not computed here: per spec.md, that
// is the search's responsibility, since only the search knows whether a
// position has zero legal successors.
package evaluator

import (
	"github.com/frankkopp/bbchess/internal/attacks"
	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/config"
	"github.com/frankkopp/bbchess/internal/movegen"
	"github.com/frankkopp/bbchess/internal/position"
)

// CentralSquares are spec.md's four opening-phase central squares.
var CentralSquares = Bitboard(0).
	Set(SqD4).Set(SqE4).Set(SqD5).Set(SqE5)

// innerRing is precomputed once: ranks 2,3,6,7 on files b-g, unioned with
// files b and g across ranks 2-7. spec.md's own prose for this mask
// ("c2..c7 on b- and g- files") reads as a typo for "ranks 2-7"; this is
// the resolution adopted (see design notes).
var innerRing Bitboard

func init() {
	for _, row := range [4]Rank{Rank7Row, Rank6Row, Rank3Row, Rank2Row} {
		for f := FileB; f <= FileG; f++ {
			innerRing = innerRing.Set(SquareOf(f, row))
		}
	}
	for _, row := range [6]Rank{Rank7Row, Rank6Row, Rank5Row, Rank4Row, Rank3Row, Rank2Row} {
		innerRing = innerRing.Set(SquareOf(FileB, row))
		innerRing = innerRing.Set(SquareOf(FileG, row))
	}
}

// Evaluate returns the position's score from the side-to-move's
// perspective: piece_value_diff signed by side to move, plus a positional
// bonus.
func Evaluate(p *position.Position) int {
	score := int(p.PieceValueDiff)
	if !p.WhiteToMove {
		score = -score
	}
	return score + positionalBonus(p)
}

func positionalBonus(p *position.Position) int {
	side := p.SideToMove()
	settings := config.Settings.Eval

	if int(p.HalfMoveCount) >= settings.OpeningPlyThreshold {
		attacked := movegen.AttackedSquares(p, side)
		return settings.AttackBonusFactor * attacked.PopCount()
	}

	bonus := 0
	for pt := Pawn; pt < PtLength; pt++ {
		for bb := p.Pieces[side].BitboardFor(pt); bb != 0; {
			sq := bb.PopLsb()
			attacked := pieceAttacksForBonus(p, side, pt, sq)
			centralHits := (attacked & CentralSquares).PopCount()
			if centralHits > 0 {
				bonus += centralHits * settings.CentralSquareBonus
				if pt == Pawn || pt == Knight {
					bonus += centralHits * settings.AttackBonusFactor
				}
			}
			bonus += (attacked & innerRing).PopCount() * settings.InnerRingBonus
		}
	}
	return bonus
}

// pieceAttacksForBonus computes one piece's attack set for the opening
// positional bonus. Pawns use their capture set (pawn_attacks), matching
// how spec.md scores a pawn's influence on the center even though it
// cannot move straight into an occupied central square.
func pieceAttacksForBonus(p *position.Position, side Color, pt PieceType, sq Square) Bitboard {
	switch pt {
	case Pawn:
		return attacks.PawnAttacks(side, sq)
	case Knight:
		return attacks.KnightAttacks(sq)
	case Bishop:
		return attacks.BishopAttacks(sq, p.AllPieces)
	case Rook:
		return attacks.RookAttacks(sq, p.AllPieces)
	case Queen:
		return attacks.QueenAttacks(sq, p.AllPieces)
	case King:
		return attacks.KingAttacks(sq)
	}
	return BbZero
}
