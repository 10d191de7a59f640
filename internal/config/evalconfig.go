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

// EvalConfig tunes the evaluator (spec.md §4.7).
type EvalConfig struct {
	// OpeningPlyThreshold: below this half-move count the evaluator uses
	// the detailed central/inner-ring positional bonus; at or beyond it
	// collapses to 2*popcount(attacks).
	OpeningPlyThreshold int

	// CentralSquareBonus is awarded per attacked central square (d4/e4/d5/e5).
	CentralSquareBonus int

	// InnerRingBonus is awarded per attacked inner-ring square.
	InnerRingBonus int

	// AttackBonusFactor scales the popcount(attacks) term beyond the
	// opening phase.
	AttackBonusFactor int
}
