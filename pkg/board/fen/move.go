package fen

import (
	"fmt"

	"github.com/owlchess/kernel/pkg/board"
)

// ParseMoveString parses a move in "<file><rank><sep><file><rank>[promo]"
// form (e.g. "e2-e4", "e7-e8Q", "e4xd5") against pos, filling in the
// contextual flags (capture, en passant, castling) the bare coordinates
// don't carry. Grounded on original_source/FENParser.cpp::stringToMove.
func ParseMoveString(pos *board.Position, s string) (board.Move, error) {
	if len(s) != 5 && len(s) != 6 {
		return board.Move{}, fmt.Errorf("fen: invalid move string: %q", s)
	}
	startX, startY, err := parseSquare(s[0], s[1])
	if err != nil {
		return board.Move{}, fmt.Errorf("fen: invalid move string %q: %v", s, err)
	}
	sep := s[2]
	if sep != '-' && sep != 'x' {
		return board.Move{}, fmt.Errorf("fen: invalid move separator in %q", s)
	}
	targetX, targetY, err := parseSquare(s[3], s[4])
	if err != nil {
		return board.Move{}, fmt.Errorf("fen: invalid move string %q: %v", s, err)
	}

	m := board.Move{StartX: startX, StartY: startY, TargetX: targetX, TargetY: targetY}

	if len(s) == 6 {
		promo := board.Piece(s[5])
		if promo.Type() == board.NoType {
			return board.Move{}, fmt.Errorf("fen: invalid promotion in %q", s)
		}
		m.Promotion = promo
	}

	piece := pos.At(startX, startY)
	target := pos.At(targetX, targetY)
	m.Capture = !target.IsEmpty()

	if piece.Type() == board.King && startX == 4 {
		switch targetX {
		case 6:
			m.CastlingShort = true
		case 2:
			m.CastlingLong = true
		}
	}

	if piece.Type() == board.Pawn && target.IsEmpty() && startX != targetX &&
		pos.IsEnPassant() {
		epX, epY := pos.EnPassantSquare()
		if epX == targetX && epY == targetY {
			m.Capture = true
			m.EnPassantCapture = true
		}
	}

	return m, nil
}

// FormatMoveString is the inverse of ParseMoveString.
func FormatMoveString(m board.Move) string {
	return m.String()
}

func parseSquare(file, rank byte) (int, int, error) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, 0, fmt.Errorf("invalid square '%c%c'", file, rank)
	}
	return int(file - 'a'), 7 - int(rank-'1'), nil
}
