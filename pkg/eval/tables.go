package eval

import "github.com/owlchess/kernel/pkg/board"

// Piece-square tables, one float per square, laid out exactly as the board
// is addressed: index = y*8+x, y=0 is rank 8. Each table is
// written from White's point of view; Black reads the same table with y
// mirrored (pstValue below), equivalent to MIRROR_PIECE_SQUARE_TABLE in
// original_source/ChessEvaluation.hpp.
var pawnTable = [64]Score{
	0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
	0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50,
	0.10, 0.10, 0.20, 0.30, 0.30, 0.20, 0.10, 0.10,
	0.05, 0.05, 0.10, 0.25, 0.25, 0.10, 0.05, 0.05,
	0.00, 0.00, 0.00, 0.20, 0.20, 0.00, 0.00, 0.00,
	0.05, -0.05, -0.10, 0.00, 0.00, -0.10, -0.05, 0.05,
	0.05, 0.10, 0.10, -0.20, -0.20, 0.10, 0.10, 0.05,
	0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
}

var knightTable = [64]Score{
	-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50,
	-0.00, -0.20, 0.00, 0.00, 0.00, 0.00, -0.20, -0.40,
	-0.00, 0.00, 0.10, 0.15, 0.15, 0.10, 0.00, -0.30,
	-0.00, 0.05, 0.15, 0.20, 0.20, 0.15, 0.05, -0.30,
	-0.00, 0.00, 0.15, 0.20, 0.20, 0.15, 0.00, -0.30,
	-0.00, 0.05, 0.10, 0.15, 0.15, 0.10, 0.05, -0.30,
	-0.40, -0.20, 0.00, 0.05, 0.05, 0.00, -0.20, -0.40,
	-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50,
}

var bishopTable = [64]Score{
	-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20,
	-0.10, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.10,
	-0.10, 0.00, 0.05, 0.10, 0.10, 0.05, 0.00, -0.10,
	-0.10, 0.05, 0.05, 0.10, 0.10, 0.05, 0.05, -0.10,
	-0.10, 0.00, 0.10, 0.10, 0.10, 0.10, 0.00, -0.10,
	-0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, -0.10,
	-0.10, 0.05, 0.00, 0.00, 0.00, 0.00, 0.05, -0.10,
	-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20,
}

var rookTable = [64]Score{
	0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
	0.05, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	-0.05, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.05,
	0.00, 0.00, 0.00, 0.05, 0.05, 0.00, 0.00, 0.00,
}

var queenTable = [64]Score{
	-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20,
	-0.10, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, -0.10,
	-0.10, 0.00, 0.05, 0.05, 0.05, 0.05, 0.00, -0.10,
	-0.05, 0.00, 0.05, 0.05, 0.05, 0.05, 0.00, -0.05,
	0.00, 0.00, 0.05, 0.05, 0.05, 0.05, 0.00, -0.05,
	-0.10, 0.05, 0.05, 0.05, 0.05, 0.05, 0.00, -0.10,
	-0.10, 0.00, 0.05, 0.00, 0.00, 0.00, 0.00, -0.10,
	-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20,
}

var kingMidTable = [64]Score{
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	-0.20, -0.30, -0.30, -0.40, -0.40, -0.30, -0.30, -0.20,
	-0.10, -0.20, -0.20, -0.20, -0.20, -0.20, -0.20, -0.10,
	0.20, 0.20, 0.00, 0.00, 0.00, 0.00, 0.20, 0.20,
	0.20, 0.30, 0.10, 0.00, 0.00, 0.10, 0.30, 0.20,
}

var kingEndTable = [64]Score{
	-0.50, -0.40, -0.30, -0.20, -0.20, -0.30, -0.40, -0.50,
	-0.30, -0.20, -0.10, 0.00, 0.00, -0.10, -0.20, -0.30,
	-0.30, -0.10, 0.20, 0.30, 0.30, 0.20, -0.10, -0.30,
	-0.30, -0.10, 0.30, 0.40, 0.40, 0.30, -0.10, -0.30,
	-0.30, -0.10, 0.30, 0.40, 0.40, 0.30, -0.10, -0.30,
	-0.30, -0.10, 0.20, 0.30, 0.30, 0.20, -0.10, -0.30,
	-0.30, -0.30, 0.00, 0.00, 0.00, 0.00, -0.30, -0.30,
	-0.50, -0.30, -0.30, -0.30, -0.30, -0.30, -0.30, -0.50,
}

// pstValue reads table for a square as seen by color: White reads it
// directly, Black reads the row-mirrored square.
func pstValue(table *[64]Score, color board.Player, x, y int) Score {
	if color == board.Black {
		y = 7 - y
	}
	return table[y*8+x]
}

func pieceSquareTable(t board.PieceType) *[64]Score {
	switch t {
	case board.Pawn:
		return &pawnTable
	case board.Knight:
		return &knightTable
	case board.Bishop:
		return &bishopTable
	case board.Rook:
		return &rookTable
	case board.Queen:
		return &queenTable
	default:
		return nil
	}
}

func kingTable(phase board.GamePhase) *[64]Score {
	if phase == board.End {
		return &kingEndTable
	}
	return &kingMidTable
}
