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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/bbchess/internal/bbtypes"
)

func TestParseFen_StartingPosition(t *testing.T) {
	p, err := ParseFen(StartFen)
	require.NoError(t, err)

	assert.Equal(t, SquareBb(SqA1)|SquareBb(SqH1), p.Pieces[White].Rooks)
	assert.Equal(t, SquareBb(SqA8)|SquareBb(SqH8), p.Pieces[Black].Rooks)
	assert.Equal(t, Rank2Mask(), p.Pieces[White].Pawns)
	assert.True(t, p.WhiteToMove)
	assert.Equal(t, CastleAll, p.CastlingRights)
	assert.Equal(t, BbZero, p.EnPassantBitboard)
	assert.Equal(t, 0, p.FiftyMoveClock)
	assert.Equal(t, 1, p.FullMoveNumber)
	assert.True(t, p.VerifyBitboards())
	assert.True(t, p.VerifyMaterial())
	assert.True(t, p.VerifyZobrist())
}

func Rank2Mask() Bitboard {
	var b Bitboard
	for f := FileA; f <= FileH; f++ {
		b = b.Set(SquareOf(f, Rank2Row))
	}
	return b
}

func TestFen_RoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 3 27",
	}
	for _, fen := range fens {
		p, err := ParseFen(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.FormatFen(), "round trip of %q", fen)
	}
}

func TestParseFen_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",
	}
	for _, fen := range cases {
		_, err := ParseFen(fen)
		assert.Error(t, err, fen)
		assert.True(t, errors.Is(err, ErrInvalidFen), fen)
	}
}

func TestParseFen_EnPassantTarget(t *testing.T) {
	p, err := ParseFen("1k6/8/2p5/3Pp3/8/8/8/2K5 w - e6 0 1")
	require.NoError(t, err)
	assert.Equal(t, SquareBb(SqE6), p.EnPassantBitboard)
}

func TestParseFen_DerivesHalfMoveCount(t *testing.T) {
	cases := []struct {
		fen  string
		want uint16
	}{
		{StartFen, 0},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", 1},
		{"4k3/8/8/8/8/8/8/4K2R w K - 3 27", 52},
		{"4k3/8/8/8/8/8/8/4K2R b K - 3 27", 53},
	}
	for _, c := range cases {
		p, err := ParseFen(c.fen)
		require.NoError(t, err, c.fen)
		assert.Equal(t, c.want, p.HalfMoveCount, c.fen)
	}
}
