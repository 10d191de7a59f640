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
	"github.com/frankkopp/bbchess/internal/zobrist"
)

// genCastlingMoves emits a child for every wing the side to move still
// holds the right to castle on and for which the squares between king and
// rook are empty, and every square the king passes through (including its
// origin) is unattacked - spec.md §4.3's castling rule.
func genCastlingMoves(parent *position.Position, ar *arena.Arena, side Color) {
	opponentAttacks := attackedSquares(parent, side.Opp(), SqNone)

	for _, wing := range [2]attacks.Wing{attacks.KingsideWing, attacks.QueensideWing} {
		if !parent.CastlingRights.Has(attacks.CastleRight(side, wing)) {
			continue
		}
		if parent.AllPieces&attacks.CastleMustBeEmpty(side, wing) != BbZero {
			continue
		}
		if opponentAttacks&attacks.CastleMustBeEmptyAndSafe(side, wing) != BbZero {
			continue
		}

		child := startChild(parent, ar)
		kingFrom := parent.KingSquare(side)
		kingTo := attacks.CastleKingTarget(side, wing)
		child.MovePiece(side, King, kingFrom, kingTo)
		applyRookXor(child, side, attacks.CastleRookXor(side, wing))
		child.RevokeCastlingRight(Kingside(side) | Queenside(side))
		finishAndEmit(parent, ar, side, child)
	}
}

// applyRookXor toggles the rook bitboard between its home and post-castle
// squares in one step, matching spec.md's "XORs ... the rook's
// rook_xor[side][wing]" description, and keeps the Zobrist key and All in
// step by XORing the same mask into every layer the rook touches.
func applyRookXor(child *position.Position, side Color, mask Bitboard) {
	ps := &child.Pieces[side]
	ps.Rooks ^= mask
	ps.All ^= mask
	child.AllPieces ^= mask

	for bb := mask; bb != 0; {
		sq := bb.PopLsb()
		child.ZobristKey ^= zobrist.PieceSquare(side, Rook, sq)
	}
}
