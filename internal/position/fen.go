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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/bbchess/internal/bbtypes"
)

// ErrInvalidFen is the sentinel wrapped by every FEN parse failure, the way
// spec.md §4.2 asks for a single error value callers can check with
// errors.Is rather than string-matching a message.
var ErrInvalidFen = errors.New("position: invalid FEN")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFen builds a Position from Forsyth-Edwards Notation, grounded on the
// field-by-field loop in the original board.c's fen_to_board. Unlike that
// function, this one keeps the half-move clock and full-move number instead
// of discarding them, so FormatFen can round-trip a FEN exactly.
func ParseFen(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d (%q)", ErrInvalidFen, len(fields), fen)
	}

	p := &Position{}
	if err := parseBoard(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.WhiteToMove = true
	case "b":
		p.WhiteToMove = false
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrInvalidFen, fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.CastlingRights = rights

	if fields[3] != "-" {
		sq := ParseSquare(fields[3])
		if sq == SqNone {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFen, fields[3])
		}
		p.EnPassantBitboard = SquareBb(sq)
	}

	p.FiftyMoveClock = 0
	p.FullMoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad half-move clock %q", ErrInvalidFen, fields[4])
		}
		p.FiftyMoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad full-move number %q", ErrInvalidFen, fields[5])
		}
		p.FullMoveNumber = n
	}

	// HalfMoveCount is derived from the full-move number and side to move
	// per spec.md §4.2: 2*(full-1) + (0 if white to move else 1).
	halfMoves := 2*(p.FullMoveNumber-1) + 0
	if !p.WhiteToMove {
		halfMoves++
	}
	p.HalfMoveCount = uint16(halfMoves)

	p.rebuildDerived()
	if p.Pieces[White].Kings.PopCount() != 1 || p.Pieces[Black].Kings.PopCount() != 1 {
		return nil, fmt.Errorf("%w: must have exactly one king per side (%q)", ErrInvalidFen, fen)
	}
	return p, nil
}

func parseBoard(p *Position, field string) error {
	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d (%q)", ErrInvalidFen, len(rows), field)
	}
	for rowIdx, row := range rows {
		file := 0
		for _, ch := range row {
			if file > 8 {
				return fmt.Errorf("%w: rank %q overflows the board", ErrInvalidFen, row)
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, err := PieceFromLetter(byte(ch))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidFen, err)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %q overflows the board", ErrInvalidFen, row)
			}
			sq := SquareOf(File(file), Rank(rowIdx))
			ps := &p.Pieces[piece.ColorOf()]
			ps.setBitboardFor(piece.TypeOf(), ps.BitboardFor(piece.TypeOf()).Set(sq))
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q does not cover 8 files", ErrInvalidFen, row)
		}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return CastleNone, nil
	}
	var rights CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= CastleWhiteKingside
		case 'Q':
			rights |= CastleWhiteQueenside
		case 'k':
			rights |= CastleBlackKingside
		case 'q':
			rights |= CastleBlackQueenside
		default:
			return CastleNone, fmt.Errorf("%w: bad castling field %q", ErrInvalidFen, field)
		}
	}
	return rights, nil
}

// FormatFen renders the position back to Forsyth-Edwards Notation.
func (p *Position) FormatFen() string {
	var b strings.Builder
	for row := Rank8Row; row <= Rank1Row; row++ {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.PieceAt(SquareOf(f, row))
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if row != Rank1Row {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.SideToMove().String())

	b.WriteByte(' ')
	b.WriteString(p.CastlingRights.String())

	b.WriteByte(' ')
	if p.EnPassantBitboard == BbZero {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EnPassantBitboard.Lsb().String())
	}

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FiftyMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullMoveNumber))

	return b.String()
}
