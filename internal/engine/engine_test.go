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

package engine

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

func TestParseFormatFen_RoundTrip(t *testing.T) {
	p, err := ParseFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", FormatFen(p))
}

func TestChildren_StartingPositionHasTwentyLegalMoves(t *testing.T) {
	e := New()
	root, err := ParseFen(position.StartFen)
	require.NoError(t, err)
	assert.Len(t, e.Children(root), 20)
}

func TestPlay_LegalTargetSucceeds(t *testing.T) {
	e := New()
	root, err := ParseFen(position.StartFen)
	require.NoError(t, err)
	children := e.Children(root)
	require.NotEmpty(t, children)

	result, err := e.Play(root, children[0])
	require.NoError(t, err)
	assert.Equal(t, children[0].ZobristKey, result.ZobristKey)
}

func TestPlay_IllegalTargetFails(t *testing.T) {
	e := New()
	root, err := ParseFen(position.StartFen)
	require.NoError(t, err)

	bogus, err := ParseFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	_, err = e.Play(root, bogus)
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestInsertAndClearPastMove_RoundTrip(t *testing.T) {
	e := New()
	root, err := ParseFen(position.StartFen)
	require.NoError(t, err)

	e.InsertPastMove(root)
	e.InsertPastMove(root)
	assert.True(t, e.IsThreefoldRepetition(root))

	e.ClearPastMove(root)
	e.ClearPastMove(root)
	assert.False(t, e.IsThreefoldRepetition(root))
}

func TestEvaluate_StartingPositionScoresWhiteOpeningBonus(t *testing.T) {
	root, err := ParseFen(position.StartFen)
	require.NoError(t, err)
	// Level material plus white's opening-phase bonus (26 inner-ring squares at 8).
	assert.Equal(t, 208, Evaluate(root))
}
