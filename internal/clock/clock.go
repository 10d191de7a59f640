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

// Package clock implements the per-move time budget policy spec.md §4.8
// describes: given how many plies have been played and how much of the
// game clock remains, decide how many milliseconds the next search
// iteration may spend. The search core only ever consumes the resulting
// budget; it has no notion of a wall clock beyond it.
package clock

// BudgetMs returns the time budget, in milliseconds, for a move made at
// ply (1-based, i.e. the first move of the game is ply 1) with
// remainingMs left on the side-to-move's clock.
func BudgetMs(ply int, remainingMs int64) int64 {
	switch {
	case ply <= 2:
		return remainingMs / 60
	case ply <= 9:
		return remainingMs / 60
	case ply <= 49:
		return remainingMs / 30
	default:
		return remainingMs / 20
	}
}
