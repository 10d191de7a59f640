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

// Package movegen expands a position by one ply: for every piece belonging
// to the side to move it computes pseudo-legal destinations from the
// attack tables, builds a child position for each, and discards any child
// that leaves the mover's own king in check (spec.md §4.3).
//
// Every child is allocated from an arena.Arena; Generate is the only
// exported entry point callers need, mirroring the "children(position)"
// contract spec.md's external interfaces describe.
package movegen

import (
	"github.com/frankkopp/bbchess/internal/arena"
	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/attacks"
	"github.com/frankkopp/bbchess/internal/position"
)

func init() {
	attacks.Init()
}

// Generate fills parent.Children[0:NumChildren] with every legal successor
// of parent, allocating each child from ar. It returns the arena mark from
// just before generation started, which the caller must pass to ar.Release
// once it is done with this node's children (LIFO release, spec.md §4.5).
func Generate(parent *position.Position, ar *arena.Arena) int {
	mark := ar.Mark()
	parent.NumChildren = 0

	side := parent.SideToMove()
	genPawnMoves(parent, ar, side)
	genLeaperMoves(parent, ar, side, Knight)
	genSliderMoves(parent, ar, side, Bishop)
	genSliderMoves(parent, ar, side, Rook)
	genSliderMoves(parent, ar, side, Queen)
	genKingMoves(parent, ar, side)
	genCastlingMoves(parent, ar, side)

	return mark
}

// finishAndEmit flips the child to the opponent's turn, clears any stale
// en-passant target inherited from the parent, rejects the child if that
// leaves the mover's own king in check, and otherwise appends it to
// parent's child array. Used by every move kind except a fresh double
// push, which needs to record its own en-passant target in between finish
// and the legality check; those callers use finish and emit directly.
func finishAndEmit(parent *position.Position, ar *arena.Arena, side Color, child *position.Position) {
	child.FinishMove()
	emit(parent, ar, side, child)
}

// finish flips the child to the opponent's turn and clears any stale
// en-passant target, without yet checking legality or appending it.
func finish(child *position.Position) {
	child.FinishMove()
}

// emit rejects child if it leaves side's king in check, otherwise appends
// it to parent's child array. child must already have been finished.
func emit(parent *position.Position, ar *arena.Arena, side Color, child *position.Position) {
	if IsKingAttacked(child, side) {
		ar.Free()
		return
	}
	parent.Children[parent.NumChildren] = child
	parent.NumChildren++
}

// startChild allocates and copies the parent into a fresh arena slot, the
// common first step of every move kind's generation path.
func startChild(parent *position.Position, ar *arena.Arena) *position.Position {
	child := ar.Alloc()
	*child = parent.Clone()
	return child
}
