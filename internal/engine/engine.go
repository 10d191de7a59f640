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

// Package engine is the façade spec.md §6's external interfaces describe:
// FEN in/out, move generation, the best-move search, the repetition API a
// UI uses to signal end-of-game, and direct evaluation. Nothing in this
// package contains chess logic of its own; it wires together
// internal/position, internal/movegen, internal/search, internal/tt,
// internal/repetition, internal/evaluator and internal/arena, which is the
// seam the out-of-scope UI layers (terminal, SDL, UCI, ...) would sit
// behind.
package engine

import (
	"errors"

	"github.com/frankkopp/bbchess/internal/arena"
	"github.com/frankkopp/bbchess/internal/config"
	"github.com/frankkopp/bbchess/internal/evaluator"
	"github.com/frankkopp/bbchess/internal/movegen"
	"github.com/frankkopp/bbchess/internal/position"
	"github.com/frankkopp/bbchess/internal/repetition"
	"github.com/frankkopp/bbchess/internal/search"
	"github.com/frankkopp/bbchess/internal/tt"
)

// ErrIllegalMove is returned by Play when the requested destination FEN
// does not match any of the current position's legal successors.
var ErrIllegalMove = errors.New("engine: move not found among legal successors")

// Engine owns the long-lived resources a game session needs: the arena
// every search and child-expansion call draws from, the transposition
// table (which, per spec.md §4.6, is allowed to persist and be reused
// across moves), and the repetition set tracking the path of the actual
// game played so far.
type Engine struct {
	arena *arena.Arena
	tt    *tt.Table
	rep   *repetition.Set
	srch  *search.Search
}

// New builds an Engine with a fixed-size arena, reading
// internal/config.Settings for TT sizing. config.Setup must have been
// called already; otherwise Settings is still zero-valued and the TT gets
// internal/tt's 1 MB minimum.
func New() *Engine {
	const arenaSize = 1 << 16
	ar := arena.New(arenaSize)
	table := tt.New(config.Settings.TT.SizeMb)
	rep := repetition.New(1 << 12)
	return &Engine{
		arena: ar,
		tt:    table,
		rep:   rep,
		srch:  search.New(ar, table, rep),
	}
}

// ParseFen builds a Position from Forsyth-Edwards Notation.
func ParseFen(fen string) (*position.Position, error) {
	return position.ParseFen(fen)
}

// FormatFen renders a position back to Forsyth-Edwards Notation.
func FormatFen(p *position.Position) string {
	return p.FormatFen()
}

// Children expands p by one ply and returns its legal successors, drawn
// from the engine's arena. The slice is only valid until the next call
// that reuses the arena (another Children or FindBestMove call); callers
// that need to keep a child around should copy it by value.
func (e *Engine) Children(p *position.Position) []*position.Position {
	movegen.Generate(p, e.arena)
	return p.Children[:p.NumChildren]
}

// FindBestMove searches root and returns the chosen successor and its
// score from the side-to-move's perspective.
func (e *Engine) FindBestMove(root *position.Position, maxDepth int, maxTimeMs int64) (position.Position, int, error) {
	return e.srch.FindBestMove(root, maxDepth, maxTimeMs)
}

// Play validates that target is one of p's legal successors (matched by
// Zobrist key) and, if so, returns it; otherwise ErrIllegalMove. This is
// the caller-requested-move path spec.md §6's error table describes.
func (e *Engine) Play(p *position.Position, target *position.Position) (position.Position, error) {
	for _, child := range e.Children(p) {
		if child.ZobristKey == target.ZobristKey {
			return *child, nil
		}
	}
	return position.Position{}, ErrIllegalMove
}

// InsertPastMove records p as having been reached on the path of the
// actual game played, for future threefold-repetition detection.
func (e *Engine) InsertPastMove(p *position.Position) {
	e.rep.Insert(p.ZobristKey)
}

// ClearPastMove undoes InsertPastMove, e.g. when a UI takes a move back.
func (e *Engine) ClearPastMove(p *position.Position) {
	e.rep.Remove(p.ZobristKey)
}

// IsThreefoldRepetition reports whether p has now been reached often
// enough on the game's path to be a draw by repetition.
func (e *Engine) IsThreefoldRepetition(p *position.Position) bool {
	return e.rep.IsRepetition(p.ZobristKey)
}

// Evaluate scores p from its side-to-move's perspective without running a
// search.
func Evaluate(p *position.Position) int {
	return evaluator.Evaluate(p)
}
