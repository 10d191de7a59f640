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

package search

import (
	"github.com/frankkopp/bbchess/internal/evaluator"
	"github.com/frankkopp/bbchess/internal/movegen"
	"github.com/frankkopp/bbchess/internal/position"
	"github.com/frankkopp/bbchess/internal/zobrist"
)

// negamaxRoot is negamax's root-level variant: it works over root's
// already-expanded children (generated once by FindBestMove) rather than
// expanding node itself, and tracks which child produced the best score
// instead of a best-child Zobrist key, since the caller needs an index
// into root.Children to report the chosen move. It does not probe or
// store the transposition table for the root node and does not consult
// the repetition set for root itself, matching spec.md §4.8's pseudocode,
// which only ever calls plain negamax on children.
func (s *Search) negamaxRoot(root *position.Position, depth, alpha, beta int) (score int, bestIdx int, aborted bool) {
	if s.timeUp() {
		return 0, -1, true
	}

	bestIdx = -1
	best := -Inf
	a := alpha

	for i := 0; i < root.NumChildren; i++ {
		child := root.Children[i]
		s.Rep.Insert(child.ZobristKey)
		v, aborted := s.negamax(child, depth-1, -beta, -a, 1)
		s.Rep.Remove(child.ZobristKey)
		if aborted {
			return 0, -1, true
		}
		v = -v
		if v > best {
			best = v
			bestIdx = i
		}
		if v > a {
			a = v
		}
		if a >= beta {
			break
		}
	}
	return best, bestIdx, false
}

// negamax is the recursive alpha-beta negamax search over a node already
// expanded into node.Children, per spec.md §4.8. It returns the node's
// score from node's own side-to-move perspective, and whether the search
// was aborted on the wall-clock deadline - an aborted result must never be
// used to update a caller's best move, since the value is incomplete.
func (s *Search) negamax(node *position.Position, depth, alpha, beta, ply int) (int, bool) {
	s.nodes++
	if s.timeUp() {
		return 0, true
	}

	if depth == 0 {
		return evaluator.Evaluate(node), false
	}

	if s.Rep.IsRepetition(node.ZobristKey) {
		return 0, false
	}

	origAlpha := alpha

	probe := s.TT.Probe(node.ZobristKey, depth, alpha, beta)
	if probe.Hit {
		if probe.Cutoff {
			return probe.Score, false
		}
		alpha, beta = probe.Alpha, probe.Beta
	}

	mark := s.Arena.Mark()
	movegen.Generate(node, s.Arena)

	if node.NumChildren == 0 {
		s.Arena.Release(mark)
		if movegen.IsKingAttacked(node, node.SideToMove()) {
			return -(CheckmateValue - ply), false
		}
		return 0, false
	}

	sortChildren(node)
	if probe.HasBestChild {
		swapBestChildToFront(node, probe.BestChildKey)
	}

	best := -Inf
	var bestChildKey zobrist.Key

	for i := 0; i < node.NumChildren; i++ {
		child := node.Children[i]
		s.Rep.Insert(child.ZobristKey)
		v, aborted := s.negamax(child, depth-1, -beta, -alpha, ply+1)
		s.Rep.Remove(child.ZobristKey)
		if aborted {
			s.Arena.Release(mark)
			return 0, true
		}
		v = -v
		if v > best {
			best = v
			bestChildKey = child.ZobristKey
		}
		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break
		}
	}

	s.TT.Store(node.ZobristKey, bestChildKey, best, depth, node.HalfMoveCount, origAlpha, beta)
	s.Arena.Release(mark)
	return best, false
}
