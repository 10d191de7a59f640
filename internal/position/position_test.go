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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/bbchess/internal/bbtypes"
)

func TestPosition_PieceAt(t *testing.T) {
	p, err := ParseFen(StartFen)
	require.NoError(t, err)

	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqA1))
	assert.Equal(t, MakePiece(Black, King), p.PieceAt(SqE8))
	assert.Equal(t, PieceNone, p.PieceAt(SqE4))
}

func TestPosition_KingSquare(t *testing.T) {
	p, err := ParseFen(StartFen)
	require.NoError(t, err)

	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestPosition_StringBoard(t *testing.T) {
	p, err := ParseFen(StartFen)
	require.NoError(t, err)

	s := p.StringBoard()
	assert.Contains(t, s, "r n b q k b n r")
	assert.Contains(t, s, "R N B Q K B N R")
}

func TestPosition_Clone_IsIndependent(t *testing.T) {
	p, err := ParseFen(StartFen)
	require.NoError(t, err)

	clone := p.Clone()
	clone.PlacePiece(White, Queen, SqE4)

	assert.False(t, p.Pieces[White].Queens.Has(SqE4))
	assert.True(t, clone.Pieces[White].Queens.Has(SqE4))
}
