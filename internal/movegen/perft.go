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
	"github.com/frankkopp/bbchess/internal/position"
)

// Perft counts the number of leaf positions reachable from p after depth
// plies of fully legal moves - the node-count debugging tool spec.md §8's
// testable-properties section checks the move generator against (the
// starting position, a middlegame position and an endgame position at
// fixed depths, each with a known node count).
func Perft(p *position.Position, depth int, ar *arena.Arena) uint64 {
	if depth == 0 {
		return 1
	}
	mark := ar.Mark()
	Generate(p, ar)
	var nodes uint64
	for i := 0; i < p.NumChildren; i++ {
		nodes += Perft(p.Children[i], depth-1, ar)
	}
	ar.Release(mark)
	return nodes
}
