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

package bbtypes

// CastlingRights is a 4-bit set of the four castling availabilities,
// matching the K/Q/k/q FEN field.
type CastlingRights uint8

const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleNone CastlingRights = 0
	CastleAll  CastlingRights = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Kingside/Queenside returns the bit relevant for a color/wing pair.
func Kingside(c Color) CastlingRights {
	if c == White {
		return CastleWhiteKingside
	}
	return CastleBlackKingside
}

func Queenside(c Color) CastlingRights {
	if c == White {
		return CastleWhiteQueenside
	}
	return CastleBlackQueenside
}

// Has reports whether all bits of other are set in r.
func (r CastlingRights) Has(other CastlingRights) bool {
	return r&other == other
}

// String renders the rights the way FEN does, "-" when none remain.
func (r CastlingRights) String() string {
	if r == CastleNone {
		return "-"
	}
	s := ""
	if r.Has(CastleWhiteKingside) {
		s += "K"
	}
	if r.Has(CastleWhiteQueenside) {
		s += "Q"
	}
	if r.Has(CastleBlackKingside) {
		s += "k"
	}
	if r.Has(CastleBlackQueenside) {
		s += "q"
	}
	return s
}
