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
	"sort"

	"github.com/frankkopp/bbchess/internal/evaluator"
	"github.com/frankkopp/bbchess/internal/position"
	"github.com/frankkopp/bbchess/internal/zobrist"
)

// sortRootChildren orders root's children by their own static evaluation,
// descending from the root's perspective, before each iterative-deepening
// pass - spec.md §4.8's "sort children by their stored evaluation,
// descending". A child's evaluation is taken from the child's own
// side-to-move perspective, so it is negated to read as "how good this
// successor is for the side choosing it at the root".
func sortRootChildren(node *position.Position) {
	sortChildren(node)
}

// sortChildren orders node's already-generated children descending by
// -evaluate(child), used both at the root and, for decent move ordering,
// at every interior node before the TT best-child hint (if any) is swapped
// to the front.
func sortChildren(node *position.Position) {
	children := node.Children[:node.NumChildren]
	sort.Slice(children, func(i, j int) bool {
		return -evaluator.Evaluate(children[i]) > -evaluator.Evaluate(children[j])
	})
}

// swapBestChildToFront moves the child whose Zobrist key matches key to
// index 0, implementing spec.md §4.6's "the stored best-child key is
// surfaced to the caller for move ordering" / §4.8's "swap that child to
// index 0". A miss (the TT hint no longer corresponds to any generated
// child, e.g. a collision) is silently ignored.
func swapBestChildToFront(node *position.Position, key zobrist.Key) {
	for i := 0; i < node.NumChildren; i++ {
		if node.Children[i].ZobristKey == key {
			node.Children[0], node.Children[i] = node.Children[i], node.Children[0]
			return
		}
	}
}
