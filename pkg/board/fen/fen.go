// Package fen reads and writes positions in standard FEN notation, and
// parses/formats moves in the "<file><rank><sep><file><rank>[promo]" form.
// It is a FEN-I/O collaborator kept outside the core: the core never imports
// it directly, only the *board.Position values it produces.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/owlchess/kernel/pkg/board"
)

// Initial is the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Position. Grounded on
// original_source/FENParser.cpp::fenToPosition, field for field.
func Decode(s string) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d: %q", len(fields), s)
	}

	var squares [8][8]board.Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d: %q", len(ranks), s)
	}
	for y, rank := range ranks {
		x := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				n := int(c - '0')
				for i := 0; i < n; i++ {
					if x >= 8 {
						return nil, fmt.Errorf("fen: rank %d overflows: %q", y, rank)
					}
					squares[y][x] = board.Empty
					x++
				}
			default:
				p := board.Piece(c)
				if p.Type() == board.NoType {
					return nil, fmt.Errorf("fen: invalid piece %q in %q", c, rank)
				}
				if x >= 8 {
					return nil, fmt.Errorf("fen: rank %d overflows: %q", y, rank)
				}
				squares[y][x] = p
				x++
			}
		}
		if x != 8 {
			return nil, fmt.Errorf("fen: rank %d has %d squares, want 8: %q", y, x, rank)
		}
	}

	var side board.Player
	switch fields[1] {
	case "w":
		side = board.White
	case "b":
		side = board.Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move: %q", fields[1])
	}

	var castling board.Castling
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castling |= board.WhiteShort
			case 'Q':
				castling |= board.WhiteLong
			case 'k':
				castling |= board.BlackShort
			case 'q':
				castling |= board.BlackLong
			default:
				return nil, fmt.Errorf("fen: invalid castling rights: %q", fields[2])
			}
		}
	}

	epActive := false
	epX, epY := 0, 0
	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, fmt.Errorf("fen: invalid en passant square: %q", fields[3])
		}
		file, rank := fields[3][0], fields[3][1]
		if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
			return nil, fmt.Errorf("fen: invalid en passant square: %q", fields[3])
		}
		epX = int(file - 'a')
		epY = 7 - int(rank-'1')
		epActive = true
	}

	plyCount, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid halfmove clock: %q", fields[4])
	}
	moveNumber, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid fullmove number: %q", fields[5])
	}

	return board.NewPosition(squares, side, castling, epActive, epX, epY, plyCount, moveNumber), nil
}

// Encode formats a Position as a FEN string, the inverse of Decode.
func Encode(p *board.Position) string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		empty := 0
		for x := 0; x < 8; x++ {
			piece := p.At(x, y)
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling().String())
	sb.WriteByte(' ')
	if p.IsEnPassant() {
		x, y := p.EnPassantSquare()
		sb.WriteByte(byte('a' + x))
		sb.WriteByte(byte('8' - y))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.PlyCount()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.MoveNumber()))
	return sb.String()
}
