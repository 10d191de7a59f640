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

package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetMs_TierBoundaries(t *testing.T) {
	cases := []struct {
		ply      int
		remaining int64
		want     int64
	}{
		{1, 60000, 1000},
		{2, 60000, 1000},
		{9, 30000, 500},
		{10, 30000, 1000},
		{49, 60000, 2000},
		{50, 60000, 3000},
		{200, 200000, 10000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BudgetMs(c.ply, c.remaining), "ply %d remaining %d", c.ply, c.remaining)
	}
}

func TestBudgetMs_NeverExceedsRemaining(t *testing.T) {
	for ply := 1; ply <= 60; ply++ {
		budget := BudgetMs(ply, 1000)
		assert.LessOrEqual(t, budget, int64(1000))
	}
}
