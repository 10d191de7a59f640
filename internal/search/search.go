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

// Package search implements the engine's only move-choosing algorithm:
// iterative-deepening alpha-beta negamax with aspiration windows and
// transposition-table-assisted move ordering (spec.md §4.8). The core is
// deliberately single-threaded (spec.md §5): the arena, transposition
// table and repetition set are owned exclusively by whichever goroutine
// is inside FindBestMove, guarded by a semaphore so a second concurrent
// call is rejected rather than silently corrupting that state.
package search

import (
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/bbchess/internal/arena"
	"github.com/frankkopp/bbchess/internal/config"
	"github.com/frankkopp/bbchess/internal/logging"
	"github.com/frankkopp/bbchess/internal/movegen"
	"github.com/frankkopp/bbchess/internal/position"
	"github.com/frankkopp/bbchess/internal/repetition"
	"github.com/frankkopp/bbchess/internal/tt"
)

var log = logging.GetLog("search")

// CheckmateValue is the magnitude of a forced-mate score, large enough
// that no plausible sum of positional and material scores could reach it.
const CheckmateValue = 100000

// Inf is the alpha-beta search's working infinity: larger than any real
// evaluation (including a checkmate score) but safely negatable without
// overflowing an int on a 32-bit platform.
const Inf = CheckmateValue + 1000

// ErrSearchBusy is returned when FindBestMove is called while another call
// is already in flight. The core is single-threaded by design; this is a
// reentrancy guard, not a thread pool.
var ErrSearchBusy = errors.New("search: already in progress")

// ErrNoLegalMoves is returned when the root position has no successors at
// all (checkmate or stalemate at the root).
var ErrNoLegalMoves = errors.New("search: root position has no legal moves")

// Search bundles the mutable state one FindBestMove call owns: the arena
// children are drawn from, the transposition table, and the repetition set
// tracking the path from the real game's root. All three persist across
// calls so that TT entries and repetition history survive between moves.
type Search struct {
	Arena *arena.Arena
	TT    *tt.Table
	Rep   *repetition.Set

	sem *semaphore.Weighted

	deadline time.Time
	nodes    int64
}

// New builds a Search over the given arena, transposition table and
// repetition set.
func New(ar *arena.Arena, table *tt.Table, rep *repetition.Set) *Search {
	return &Search{Arena: ar, TT: table, Rep: rep, sem: semaphore.NewWeighted(1)}
}

// FindBestMove searches root to at most maxDepth plies, bounded by
// maxTimeMs wall-clock milliseconds, and returns a copy of the chosen
// successor position along with its score from the side-to-move's
// perspective - the (Position, score) pair spec.md §6 specifies.
func (s *Search) FindBestMove(root *position.Position, maxDepth int, maxTimeMs int64) (position.Position, int, error) {
	if !s.sem.TryAcquire(1) {
		return position.Position{}, 0, ErrSearchBusy
	}
	defer s.sem.Release(1)

	s.deadline = time.Now().Add(time.Duration(maxTimeMs) * time.Millisecond)
	s.nodes = 0

	rootMark := s.Arena.Mark()
	defer s.Arena.Release(rootMark)

	movegen.Generate(root, s.Arena)
	if root.NumChildren == 0 {
		return position.Position{}, 0, ErrNoLegalMoves
	}

	settings := config.Settings.Search
	if maxDepth <= 0 || maxDepth > settings.MaxDepth {
		maxDepth = settings.MaxDepth
	}

	bestScoreSoFar := 0
	bestIdx := -1

	for depth := 1; depth <= maxDepth; depth++ {
		sortRootChildren(root)

		var v int
		var aborted bool
		var idx int

		if depth < settings.SmallDepthThreshold {
			v, idx, aborted = s.negamaxRoot(root, depth, -Inf, Inf)
		} else {
			v, idx, aborted = s.aspirationSearch(root, depth, bestScoreSoFar, settings.AspirationWindow)
		}

		if aborted {
			log.Debugf("depth %d aborted on time, keeping depth %d best", depth, depth-1)
			break
		}

		bestScoreSoFar = v
		bestIdx = idx
		log.Debugf("depth %d best=%d nodes=%d", depth, v, s.nodes)

		if abs(v) > CheckmateValue-1000 {
			break
		}
	}

	if bestIdx < 0 {
		return s.failsafe(root)
	}

	chosen := *root.Children[bestIdx]
	return chosen, bestScoreSoFar, nil
}

// aspirationSearch implements the narrow-window retry loop from spec.md
// §4.8's pseudocode: start near the previous iteration's score, widen the
// failed bound by the configured AspirationWidenStep, accept any score
// within MateScoreMargin of a mate, and fall back to a full window once
// the bounds blow past +-12000.
func (s *Search) aspirationSearch(root *position.Position, depth, bestScoreSoFar, window int) (int, int, bool) {
	alpha := bestScoreSoFar - window
	beta := bestScoreSoFar + window
	step := config.Settings.Search.AspirationWidenStep
	margin := config.Settings.Search.MateScoreMargin

	for {
		v, idx, aborted := s.negamaxRoot(root, depth, alpha, beta)
		if aborted {
			return v, idx, true
		}
		if abs(v) > CheckmateValue-margin {
			return v, idx, false
		}
		if v <= alpha {
			alpha -= step
		} else if v >= beta {
			beta += step
		} else {
			return v, idx, false
		}
		if beta-alpha > 24000 {
			alpha, beta = -Inf, Inf
		}
	}
}

// failsafe runs an unbounded depth-1 full-window search to guarantee a
// move is returned even if the deadline expired before any iteration
// completed - spec.md §4.8's failsafe clause.
func (s *Search) failsafe(root *position.Position) (position.Position, int, error) {
	log.Warning("no iteration completed in time, running failsafe depth-1 search")
	s.deadline = time.Now().Add(time.Hour)
	v, idx, _ := s.negamaxRoot(root, 1, -Inf, Inf)
	if idx < 0 {
		idx = 0
	}
	return *root.Children[idx], v, nil
}

func (s *Search) timeUp() bool {
	return time.Now().After(s.deadline)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
