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

package config

// SearchConfig tunes the iterative-deepening negamax search (spec.md §4.8).
type SearchConfig struct {
	// MaxDepth bounds iterative deepening regardless of the time budget.
	MaxDepth int

	// AspirationWindow is the initial +/- window around the previous
	// iteration's score once depth reaches SmallDepthThreshold.
	AspirationWindow int

	// AspirationWidenStep is added/subtracted from a failed bound on
	// re-search (5*AspirationWindow in spec.md's pseudocode).
	AspirationWidenStep int

	// SmallDepthThreshold is the depth below which the search always uses
	// a full (-inf, +inf) window instead of aspiration.
	SmallDepthThreshold int

	// MateScoreMargin: once |value| is within this margin of
	// search.CheckmateValue, the aspiration loop accepts the result instead of
	// widening further.
	MateScoreMargin int
}
