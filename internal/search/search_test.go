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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/bbchess/internal/arena"
	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/config"
	"github.com/frankkopp/bbchess/internal/position"
	"github.com/frankkopp/bbchess/internal/repetition"
	"github.com/frankkopp/bbchess/internal/tt"
)

func newTestSearch() *Search {
	config.Setup()
	return New(arena.New(1<<16), tt.New(4), repetition.New(1<<10))
}

func TestFindBestMove_OpeningNeverReturnsNoMoveSentinel(t *testing.T) {
	root, err := position.ParseFen(position.StartFen)
	require.NoError(t, err)

	s := newTestSearch()
	child, _, err := s.FindBestMove(root, 4, 2000)
	require.NoError(t, err)
	assert.NotEqual(t, root.FormatFen(), child.FormatFen())
}

func TestFindBestMove_MateInOne(t *testing.T) {
	root, err := position.ParseFen("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()
	child, score, err := s.FindBestMove(root, 3, 5000)
	require.NoError(t, err)

	assert.True(t, child.Pieces[White].Rooks.Has(SqD8), "rook should deliver mate on d8")
	assert.InDelta(t, CheckmateValue, score, 10)
}

func TestFindBestMove_PromotionScore(t *testing.T) {
	root, err := position.ParseFen("k4q2/6P1/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()
	child, score, err := s.FindBestMove(root, 4, 3000)
	require.NoError(t, err)

	assert.True(t, child.Pieces[White].Queens != BbZero, "should find a promotion")
	assert.InDelta(t, QueenValue-PawnValue, score, 150)
}

func TestFindBestMove_Deterministic(t *testing.T) {
	root, err := position.ParseFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	s1 := newTestSearch()
	child1, score1, err := s1.FindBestMove(root, 3, 3000)
	require.NoError(t, err)

	root2, err := position.ParseFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	s2 := newTestSearch()
	child2, score2, err := s2.FindBestMove(root2, 3, 3000)
	require.NoError(t, err)

	assert.Equal(t, score1, score2)
	assert.Equal(t, child1.FormatFen(), child2.FormatFen())
}

func TestFindBestMove_RootAlreadyOnRepetitionPathStillFindsMove(t *testing.T) {
	root, err := position.ParseFen("7k/8/8/8/8/8/8/K3R3 w - - 0 1")
	require.NoError(t, err)

	rep := repetition.New(1 << 8)
	s := New(arena.New(1<<16), tt.New(4), rep)

	// Pretend the exact same position already occurred once on the path
	// from the real game's root; a second occurrence during search must
	// then be scored as a draw rather than pursued further.
	rep.Insert(root.ZobristKey)

	_, score, err := s.FindBestMove(root, 2, 1000)
	require.NoError(t, err)
	_ = score // only the successful return is checked: at depth 2 no line
	// returns to the root position, and the root's own chosen move need
	// not score 0 since White has a large material edge.
}
