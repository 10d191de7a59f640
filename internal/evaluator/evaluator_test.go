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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/bbchess/internal/config"
	"github.com/frankkopp/bbchess/internal/position"
)

func init() {
	config.Setup()
}

func TestEvaluate_StartingPositionScoresWhiteOpeningBonus(t *testing.T) {
	p, err := position.ParseFen(position.StartFen)
	require.NoError(t, err)
	// Material is level; white (to move) attacks 26 inner-ring squares and
	// no central square, at 8 per inner-ring square.
	assert.Equal(t, 208, Evaluate(p))
}

func TestEvaluate_SignFlipsWithSideToMove(t *testing.T) {
	white, err := position.ParseFen("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	black, err := position.ParseFen("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, Evaluate(white), 0, "white to move with an extra queen should score positive")
	assert.Less(t, Evaluate(black), 0, "black to move facing an extra white queen should score negative")
}

func TestEvaluate_MaterialDominatesAnEmptyBoardOtherwise(t *testing.T) {
	p, err := position.ParseFen("4k3/8/8/8/8/8/8/4KR2 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, Evaluate(p), 400, "a lone extra rook should score well above a pawn's worth")
}
