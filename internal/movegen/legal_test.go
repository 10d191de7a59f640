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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/bbchess/internal/bbtypes"
	"github.com/frankkopp/bbchess/internal/arena"
	"github.com/frankkopp/bbchess/internal/position"
)

func TestGenerate_EnPassantChild(t *testing.T) {
	root, err := position.ParseFen("1k6/8/2p5/3Pp3/8/8/8/2K5 w - e6 0 1")
	require.NoError(t, err)

	ar := arena.New(1 << 10)
	Generate(root, ar)

	var epChildren int
	for i := 0; i < root.NumChildren; i++ {
		c := root.Children[i]
		if c.Pieces[White].Pawns.Has(SqE6) && !c.Pieces[Black].Pawns.Has(SqE5) {
			epChildren++
		}
	}
	assert.Equal(t, 1, epChildren, "exactly one child should show the en-passant capture")
}

func TestGenerate_CastlingThroughCheckRejected(t *testing.T) {
	// White rooks on a1/h1, black king on a8, black rook on f8 bearing down
	// the f-file onto f1.
	root, err := position.ParseFen("k4r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	ar := arena.New(1 << 10)
	Generate(root, ar)

	for i := 0; i < root.NumChildren; i++ {
		c := root.Children[i]
		// Kingside castling would place the king on g1 and the rook on f1;
		// since f1 is attacked, that child must never be generated.
		assert.False(t, c.Pieces[White].Kings.Has(SqG1) && c.Pieces[White].Rooks.Has(SqF1),
			"kingside castle should be rejected while f1 is attacked")
	}
}

func TestGenerate_CastlingAvailableWhenSafe(t *testing.T) {
	root, err := position.ParseFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	ar := arena.New(1 << 10)
	Generate(root, ar)

	found := false
	for i := 0; i < root.NumChildren; i++ {
		c := root.Children[i]
		if c.Pieces[White].Kings.Has(SqG1) && c.Pieces[White].Rooks.Has(SqF1) {
			found = true
		}
	}
	assert.True(t, found, "kingside castle should be available with nothing in the way")
}

func TestGenerate_NoMoveLeavesOwnKingInCheck(t *testing.T) {
	root, err := position.ParseFen(position.StartFen)
	require.NoError(t, err)

	ar := arena.New(1 << 12)
	Generate(root, ar)

	for i := 0; i < root.NumChildren; i++ {
		assert.False(t, IsKingAttacked(root.Children[i], White))
	}
}

func TestIsKingAttacked(t *testing.T) {
	p, err := position.ParseFen("6k1/5ppp/8/8/8/8/5PPP/3R2K1 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, IsKingAttacked(p, Black))
}
