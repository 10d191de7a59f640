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

// Package position represents a chess position as a bitboard set per side
// plus the small amount of extra state (side to move, castling rights,
// en-passant target, half-move count, incrementally-maintained material
// delta and Zobrist key) spec.md §3 calls for, along with the FEN codec
// (spec.md §4.2).
//
// A Position's children are not generated here: spec.md's move generator
// (internal/movegen) allocates them from an arena and fills Children, since
// computing successors needs the attack tables movegen owns and position
// must stay free of that dependency to avoid an import cycle.
package position

import (
	"fmt"

	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/zobrist"
)

func init() {
	zobrist.Init()
}

// MaxChildren bounds the per-node child array. The true maximum legal move
// count in any reachable chess position is far below this; spec.md asks
// for "a bounded size (>= 100)".
const MaxChildren = 256

// PieceSet is the six piece bitboards for one side, plus their union.
type PieceSet struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings Bitboard
	All                                           Bitboard
}

// BitboardFor returns the bitboard for one piece type.
func (ps *PieceSet) BitboardFor(pt PieceType) Bitboard {
	switch pt {
	case Pawn:
		return ps.Pawns
	case Knight:
		return ps.Knights
	case Bishop:
		return ps.Bishops
	case Rook:
		return ps.Rooks
	case Queen:
		return ps.Queens
	case King:
		return ps.Kings
	}
	return BbZero
}

func (ps *PieceSet) setBitboardFor(pt PieceType, b Bitboard) {
	switch pt {
	case Pawn:
		ps.Pawns = b
	case Knight:
		ps.Knights = b
	case Bishop:
		ps.Bishops = b
	case Rook:
		ps.Rooks = b
	case Queen:
		ps.Queens = b
	case King:
		ps.Kings = b
	}
}

// recomputeAll rebuilds All from the six piece bitboards. Used after FEN
// parsing and in from-scratch consistency checks; incremental play keeps
// All up to date move by move instead of calling this.
func (ps *PieceSet) recomputeAll() {
	ps.All = ps.Pawns | ps.Knights | ps.Bishops | ps.Rooks | ps.Queens | ps.Kings
}

// Position is one node of the search tree: a legal (or, during
// construction, about-to-be-validated) chess position.
type Position struct {
	Pieces [ColorLength]PieceSet
	// AllPieces is the union of Pieces[White].All and Pieces[Black].All.
	AllPieces Bitboard

	WhiteToMove bool

	// EnPassantBitboard is 0 or a single bit on the square behind a just
	// double-pushed pawn.
	EnPassantBitboard Bitboard

	CastlingRights CastlingRights

	// HalfMoveCount is plies since the start of the game: derived from the
	// FEN's full-move number and side to move, then incremented on every
	// generated move. The evaluator's opening-phase test reads it.
	HalfMoveCount uint16

	// FiftyMoveClock and FullMoveNumber exist only for a faithful FEN
	// round-trip (the supplemented feature in SPEC_FULL.md); the search
	// itself never reads them.
	FiftyMoveClock int
	FullMoveNumber int

	// PieceValueDiff is white material minus black material, in centipawns,
	// maintained incrementally on every generated move.
	PieceValueDiff int32

	// ZobristKey is the incrementally-maintained hash.
	ZobristKey zobrist.Key

	// Children holds pointers into the arena; see internal/movegen.
	Children    [MaxChildren]*Position
	NumChildren int
}

// SideToMove returns White or Black from the WhiteToMove flag.
func (p *Position) SideToMove() Color {
	if p.WhiteToMove {
		return White
	}
	return Black
}

// KingSquare returns the square of the given color's king, or SqNone if
// (illegally) absent.
func (p *Position) KingSquare(c Color) Square {
	return p.Pieces[c].Kings.Lsb()
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece {
	b := SquareBb(sq)
	for _, c := range [ColorLength]Color{White, Black} {
		ps := &p.Pieces[c]
		if ps.All&b == 0 {
			continue
		}
		for pt := Pawn; pt < PtLength; pt++ {
			if ps.BitboardFor(pt)&b != 0 {
				return MakePiece(c, pt)
			}
		}
	}
	return PieceNone
}

// Clone returns a deep copy of p suitable for handing to the arena as a new
// child before applying a move's delta on top of it.
func (p *Position) Clone() Position {
	child := *p
	child.NumChildren = 0
	child.Children = [MaxChildren]*Position{}
	return child
}

// rebuildDerived recomputes All/PieceValueDiff/ZobristKey entirely from the
// piece bitboards and flags - used once after FEN parsing. The Verify*
// methods below check the incremental fields against the same sums.
func (p *Position) rebuildDerived() {
	p.Pieces[White].recomputeAll()
	p.Pieces[Black].recomputeAll()
	p.AllPieces = p.Pieces[White].All | p.Pieces[Black].All

	var diff int32
	for pt := Pawn; pt < PtLength; pt++ {
		diff += int32(p.Pieces[White].BitboardFor(pt).PopCount() * pt.Value())
		diff -= int32(p.Pieces[Black].BitboardFor(pt).PopCount() * pt.Value())
	}
	p.PieceValueDiff = diff

	p.ZobristKey = p.computeZobristFromScratch()
}

// computeZobristFromScratch rebuilds the Zobrist key by enumerating every
// piece, the side to move, the en-passant target and the castling rights -
// the reference implementation spec.md §8's round-trip law checks the
// incrementally-maintained key against.
func (p *Position) computeZobristFromScratch() zobrist.Key {
	var key zobrist.Key
	for _, c := range [ColorLength]Color{White, Black} {
		for pt := Pawn; pt < PtLength; pt++ {
			bb := p.Pieces[c].BitboardFor(pt)
			for bb != 0 {
				sq := bb.PopLsb()
				key ^= zobrist.PieceSquare(c, pt, sq)
			}
		}
	}
	if !p.WhiteToMove {
		key ^= zobrist.BlackToMove()
	}
	if p.EnPassantBitboard != 0 {
		key ^= zobrist.EnPassant(p.EnPassantBitboard.Lsb())
	}
	if p.CastlingRights.Has(CastleWhiteKingside) {
		key ^= zobrist.Castling(White, 0)
	}
	if p.CastlingRights.Has(CastleWhiteQueenside) {
		key ^= zobrist.Castling(White, 1)
	}
	if p.CastlingRights.Has(CastleBlackKingside) {
		key ^= zobrist.Castling(Black, 0)
	}
	if p.CastlingRights.Has(CastleBlackQueenside) {
		key ^= zobrist.Castling(Black, 1)
	}
	return key
}

// VerifyZobrist reports whether the incrementally-maintained key matches a
// from-scratch recomputation - property 3 of spec.md §8.
func (p *Position) VerifyZobrist() bool {
	return p.ZobristKey == p.computeZobristFromScratch()
}

// VerifyMaterial reports whether PieceValueDiff matches a from-scratch
// recomputation - property 2 of spec.md §8.
func (p *Position) VerifyMaterial() bool {
	var diff int32
	for pt := Pawn; pt < PtLength; pt++ {
		diff += int32(p.Pieces[White].BitboardFor(pt).PopCount() * pt.Value())
		diff -= int32(p.Pieces[Black].BitboardFor(pt).PopCount() * pt.Value())
	}
	return diff == p.PieceValueDiff
}

// VerifyBitboards reports whether both sides' piece bitboards are pairwise
// disjoint, union to each side's All, and the two sides' All bitboards are
// disjoint and union to AllPieces - property 1 of spec.md §8.
func (p *Position) VerifyBitboards() bool {
	for _, c := range [ColorLength]Color{White, Black} {
		ps := &p.Pieces[c]
		all := [6]Bitboard{ps.Pawns, ps.Knights, ps.Bishops, ps.Rooks, ps.Queens, ps.Kings}
		var union Bitboard
		for i, b := range all {
			for j, b2 := range all {
				if i != j && b&b2 != 0 {
					return false
				}
			}
			union |= b
		}
		if union != ps.All {
			return false
		}
	}
	if p.Pieces[White].All&p.Pieces[Black].All != 0 {
		return false
	}
	return p.Pieces[White].All|p.Pieces[Black].All == p.AllPieces
}

// StringBoard renders the position as an 8x8 ascii board, grounded on the
// original C source's print_bitboard helper and the teacher's
// Bitboard.StringBoard, useful for logging and debugging test failures.
func (p *Position) StringBoard() string {
	s := ""
	for row := Rank8Row; row <= Rank1Row; row++ {
		s += fmt.Sprintf("%d ", 8-int(row))
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, row)
			s += p.PieceAt(sq).String() + " "
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}
