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

package position

import (
	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/zobrist"
)

// The methods in this file are the "incremental update" primitives spec.md
// §4.4 describes: internal/movegen composes them to turn a cloned parent
// into a finished child without ever recomputing a position from scratch.
// Every method keeps Pieces/AllPieces, PieceValueDiff and ZobristKey in
// lockstep so a freshly-built child always satisfies VerifyBitboards,
// VerifyMaterial and VerifyZobrist.

// PlacePiece adds a piece of type pt and color c on sq. sq must be empty.
func (p *Position) PlacePiece(c Color, pt PieceType, sq Square) {
	ps := &p.Pieces[c]
	ps.setBitboardFor(pt, ps.BitboardFor(pt).Set(sq))
	ps.All = ps.All.Set(sq)
	p.AllPieces = p.AllPieces.Set(sq)

	if c == White {
		p.PieceValueDiff += int32(pt.Value())
	} else {
		p.PieceValueDiff -= int32(pt.Value())
	}
	p.ZobristKey ^= zobrist.PieceSquare(c, pt, sq)
}

// RemovePiece removes a piece of type pt and color c from sq. sq must hold
// exactly that piece.
func (p *Position) RemovePiece(c Color, pt PieceType, sq Square) {
	ps := &p.Pieces[c]
	ps.setBitboardFor(pt, ps.BitboardFor(pt).Clear(sq))
	ps.All = ps.All.Clear(sq)
	p.AllPieces = p.AllPieces.Clear(sq)

	if c == White {
		p.PieceValueDiff -= int32(pt.Value())
	} else {
		p.PieceValueDiff += int32(pt.Value())
	}
	p.ZobristKey ^= zobrist.PieceSquare(c, pt, sq)
}

// MovePiece relocates a piece from one empty-destination square to another,
// without touching PieceValueDiff (no material changes hands).
func (p *Position) MovePiece(c Color, pt PieceType, from, to Square) {
	ps := &p.Pieces[c]
	b := ps.BitboardFor(pt)
	b = b.Clear(from).Set(to)
	ps.setBitboardFor(pt, b)
	ps.All = ps.All.Clear(from).Set(to)
	p.AllPieces = p.AllPieces.Clear(from).Set(to)

	p.ZobristKey ^= zobrist.PieceSquare(c, pt, from)
	p.ZobristKey ^= zobrist.PieceSquare(c, pt, to)
}

// CaptureAt removes whatever piece of color victim occupies sq (used right
// before the capturing piece is placed there). It panics if sq is empty,
// since movegen only calls this once it has established there is a capture.
func (p *Position) CaptureAt(victim Color, sq Square) PieceType {
	ps := &p.Pieces[victim]
	for pt := Pawn; pt < PtLength; pt++ {
		if ps.BitboardFor(pt).Has(sq) {
			p.RemovePiece(victim, pt, sq)
			return pt
		}
	}
	panic("position: CaptureAt found no piece on " + sq.String())
}

// SetEnPassant records a new en-passant target square, updating the key.
// Callers must first clear any previous target with ClearEnPassant.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassantBitboard = SquareBb(sq)
	p.ZobristKey ^= zobrist.EnPassant(sq)
}

// ClearEnPassant removes any current en-passant target, updating the key.
// A no-op when there is no target.
func (p *Position) ClearEnPassant() {
	if p.EnPassantBitboard == BbZero {
		return
	}
	p.ZobristKey ^= zobrist.EnPassant(p.EnPassantBitboard.Lsb())
	p.EnPassantBitboard = BbZero
}

// RevokeCastlingRight clears one or more castling-rights bits, XORing out
// the keys for whichever of them were still set. A no-op for bits already
// clear, so movegen can unconditionally call this whenever a king or rook
// moves or is captured without checking first.
func (p *Position) RevokeCastlingRight(bits CastlingRights) {
	toClear := p.CastlingRights & bits
	if toClear == CastleNone {
		return
	}
	if toClear.Has(CastleWhiteKingside) {
		p.ZobristKey ^= zobrist.Castling(White, 0)
	}
	if toClear.Has(CastleWhiteQueenside) {
		p.ZobristKey ^= zobrist.Castling(White, 1)
	}
	if toClear.Has(CastleBlackKingside) {
		p.ZobristKey ^= zobrist.Castling(Black, 0)
	}
	if toClear.Has(CastleBlackQueenside) {
		p.ZobristKey ^= zobrist.Castling(Black, 1)
	}
	p.CastlingRights &^= bits
}

// FlipSideToMove toggles whose turn it is and XORs the black-to-move key.
func (p *Position) FlipSideToMove() {
	p.WhiteToMove = !p.WhiteToMove
	p.ZobristKey ^= zobrist.BlackToMove()
}

// FinishMove is the bookkeeping every generated move needs regardless of
// kind: clear any stale en-passant target the parent didn't consume, flip
// the side to move and advance the ply counter. Movegen calls SetEnPassant
// itself for a fresh double push, after calling this.
func (p *Position) FinishMove() {
	p.ClearEnPassant()
	p.FlipSideToMove()
	p.HalfMoveCount++
}
