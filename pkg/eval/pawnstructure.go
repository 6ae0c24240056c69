package eval

import "github.com/owlchess/kernel/pkg/board"

// Pawn-structure classification, grounded on
// original_source/ChessEvaluation.cpp's isDoublePawn/isConnectedPawn/
// isBackwardsPawn/isPassedPawn/isChainPawn family. A pawn can carry more
// than one classification at once; isolated is the negation of
// double||connected||chain, matching the original exactly.

func inBounds(x, y int) bool {
	return x >= 0 && x < 8 && y >= 0 && y < 8
}

// isPieceEqualOnOffset reports whether the square at (x+dx, y+dy) holds the
// same piece as (x,y).
func isPieceEqualOnOffset(pos *board.Position, x, y, dx, dy int) bool {
	tx, ty := x+dx, y+dy
	if !inBounds(tx, ty) {
		return false
	}
	return pos.At(x, y) == pos.At(tx, ty)
}

// isPieceEnemyPawnOnOffset reports whether (x,y) holds a pawn of the side to
// move and (x+dx, y+dy) holds a pawn of the opposing side. Grounded on
// isPieceEnemyPawnOnOffset, with the reference's start/target color
// assignment corrected: the original computes the target color via
// "start_color + 1 % PLAYER_COUNT", an operator-precedence slip that reduces
// to start_color+1 instead of the clearly-intended (start_color+1)%2, which
// would read past the 2-entry color table when the side to move is Black.
func isPieceEnemyPawnOnOffset(pos *board.Position, x, y, dx, dy int) bool {
	tx, ty := x+dx, y+dy
	if !inBounds(tx, ty) {
		return false
	}
	side := pos.SideToMove()
	startPawn := board.PieceFor(side, board.Pawn)
	targetPawn := board.PieceFor(side.Opponent(), board.Pawn)
	return pos.At(x, y) == startPawn && pos.At(tx, ty) == targetPawn
}

// isDoublePawn reports whether another pawn of the same color shares x.
func isDoublePawn(pos *board.Position, x, y int) bool {
	return isPieceEqualOnOffset(pos, x, y, 0, 1) || isPieceEqualOnOffset(pos, x, y, 0, -1)
}

// isConnectedPawn reports whether a pawn of the same color sits beside it.
func isConnectedPawn(pos *board.Position, x, y int) bool {
	return isPieceEqualOnOffset(pos, x, y, 1, 0) || isPieceEqualOnOffset(pos, x, y, -1, 0)
}

// isChainPawn reports whether a pawn of the same color defends or is
// defended diagonally.
func isChainPawn(pos *board.Position, x, y int) bool {
	return isPieceEqualOnOffset(pos, x, y, 1, 1) || isPieceEqualOnOffset(pos, x, y, 1, -1) ||
		isPieceEqualOnOffset(pos, x, y, -1, 1) || isPieceEqualOnOffset(pos, x, y, -1, -1)
}

// isBackwardsPawn reports whether an enemy pawn already covers the squares
// this pawn would need to safely advance through. Only meaningful when
// isConnectedPawn is false, per the original's call site. dir is the side
// to move's forward direction, exactly as in the original (not the
// examined pawn's own color).
func isBackwardsPawn(pos *board.Position, x, y int) bool {
	dir := pos.SideToMove().Forward()
	return isPieceEnemyPawnOnOffset(pos, x, y, 0, dir) ||
		isPieceEnemyPawnOnOffset(pos, x, y, 1, 2*dir) ||
		isPieceEnemyPawnOnOffset(pos, x, y, -1, 2*dir)
}

// isPassedPawn reports whether no enemy pawn (relative to the color of the
// pawn on (x,y)) occupies the file at any other rank.
func isPassedPawn(pos *board.Position, x, y int) bool {
	enemyPawn := board.PieceFor(pos.At(x, y).Color().Opponent(), board.Pawn)
	for ry := 0; ry < 8; ry++ {
		if ry == y {
			continue
		}
		if pos.At(x, ry) == enemyPawn {
			return false
		}
	}
	return true
}
