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

// genSliderMoves generates every quiet move and capture for bishops,
// rooks or queens, using the magic-bitboard lookup for the piece kind
// (queen unions both tables, per spec.md §4.3).
func genSliderMoves(parent *position.Position, ar *arena.Arena, side Color, pt PieceType) {
	own := parent.Pieces[side].All
	occ := parent.AllPieces
	for bb := parent.Pieces[side].BitboardFor(pt); bb != 0; {
		from := bb.PopLsb()
		dests := sliderAttacks(pt, from, occ) &^ own
		for d := dests; d != 0; {
			to := d.PopLsb()
			genSingleStepMove(parent, ar, side, pt, from, to)
		}
	}
}

func sliderAttacks(pt PieceType, from Square, occ Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return attacks.BishopAttacks(from, occ)
	case Rook:
		return attacks.RookAttacks(from, occ)
	case Queen:
		return attacks.QueenAttacks(from, occ)
	}
	return BbZero
}
