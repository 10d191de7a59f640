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
	"github.com/frankkopp/bbchess/internal/attacks"
	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/position"
)

// attackedSquares unions every square the given side attacks, per spec.md
// §4.3's "attacked-square computation". exclude is removed from the
// occupancy used for slider blocker lookups before computing attacks; pass
// SqNone to use the position's occupancy unmodified. Generating the
// mover's own king moves needs exclude set to that king's square, so an
// opponent slider attacking through the square the king is about to vacate
// still counts as attacking the squares beyond it.
func attackedSquares(p *position.Position, by Color, exclude Square) Bitboard {
	occ := p.AllPieces
	if exclude != SqNone {
		occ = occ.Clear(exclude)
	}

	ps := &p.Pieces[by]
	var result Bitboard

	diag := ps.Bishops | ps.Queens
	for bb := diag; bb != 0; {
		sq := bb.PopLsb()
		result |= attacks.BishopAttacks(sq, occ)
	}

	straight := ps.Rooks | ps.Queens
	for bb := straight; bb != 0; {
		sq := bb.PopLsb()
		result |= attacks.RookAttacks(sq, occ)
	}

	for bb := ps.Knights; bb != 0; {
		sq := bb.PopLsb()
		result |= attacks.KnightAttacks(sq)
	}

	for bb := ps.Pawns; bb != 0; {
		sq := bb.PopLsb()
		result |= attacks.PawnAttacks(by, sq)
	}

	if ps.Kings != BbZero {
		result |= attacks.KingAttacks(ps.Kings.Lsb())
	}

	return result
}

// AttackedSquares returns every square the given side attacks in position
// p, for callers outside movegen (the evaluator's positional bonus uses
// this to count central and inner-ring squares under attack).
func AttackedSquares(p *position.Position, by Color) Bitboard {
	return attackedSquares(p, by, SqNone)
}

// IsKingAttacked reports whether c's king is attacked by the opponent in
// position p. This is the predicate spec.md's search uses to classify a
// no-successor position as checkmate versus stalemate, and that movegen
// uses to reject any candidate child leaving its own king in check.
func IsKingAttacked(p *position.Position, c Color) bool {
	kingSq := p.KingSquare(c)
	if kingSq == SqNone {
		return false
	}
	return attackedSquares(p, c.Opp(), SqNone).Has(kingSq)
}
