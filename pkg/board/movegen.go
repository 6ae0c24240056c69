package board

// This file implements legal-move generation and attack detection as a
// collaborator kept deliberately separate from eval/search: the core never
// depends on how legality is decided, only on the LegalMoves and
// CountMobility contract below.

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Forward returns the pawn advance direction for the side: White moves
// toward y=0 (rank 8), Black toward y=7 (rank 1).
func (p Player) Forward() int {
	if p == White {
		return -1
	}
	return 1
}

// LegalMoves returns every legal move for side in the current position:
// pseudo-legal generation filtered to moves that do not leave side's own
// king in check.
func (p *Position) LegalMoves(side Player) MoveList {
	candidates := p.pseudoLegalMoves(side)
	legal := make(MoveList, 0, len(candidates))
	for _, m := range candidates {
		p.applyRaw(m)
		safe := !p.InCheck(side)
		p.UnmakeLast()
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// CountMobility returns the pseudo-legal move count of the piece on (x,y),
// used only by the evaluator's mobility feature.
func (p *Position) CountMobility(x, y int) int {
	piece := p.board[y][x]
	if piece.IsEmpty() {
		return 0
	}
	return len(p.pseudoLegalMovesFrom(x, y, piece))
}

func (p *Position) pseudoLegalMoves(side Player) MoveList {
	var moves MoveList
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := p.board[y][x]
			if piece.IsEmpty() || piece.Color() != side {
				continue
			}
			moves = append(moves, p.pseudoLegalMovesFrom(x, y, piece)...)
		}
	}
	moves = append(moves, p.castlingMoves(side)...)
	return moves
}

func (p *Position) pseudoLegalMovesFrom(x, y int, piece Piece) MoveList {
	switch piece.Type() {
	case Pawn:
		return p.pawnMoves(x, y, piece.Color())
	case Knight:
		return p.leaperMoves(x, y, piece.Color(), knightDeltas[:])
	case King:
		return p.leaperMoves(x, y, piece.Color(), kingDeltas[:])
	case Bishop:
		return p.sliderMoves(x, y, piece.Color(), bishopDirs[:])
	case Rook:
		return p.sliderMoves(x, y, piece.Color(), rookDirs[:])
	case Queen:
		moves := p.sliderMoves(x, y, piece.Color(), bishopDirs[:])
		return append(moves, p.sliderMoves(x, y, piece.Color(), rookDirs[:])...)
	default:
		return nil
	}
}

func (p *Position) leaperMoves(x, y int, side Player, deltas [][2]int) MoveList {
	var moves MoveList
	for _, d := range deltas {
		tx, ty := x+d[0], y+d[1]
		if !inBounds(tx, ty) {
			continue
		}
		target := p.board[ty][tx]
		if target.IsEmpty() {
			moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty})
		} else if target.Color() != side {
			moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty, Capture: true})
		}
	}
	return moves
}

func (p *Position) sliderMoves(x, y int, side Player, dirs [][2]int) MoveList {
	var moves MoveList
	for _, d := range dirs {
		tx, ty := x+d[0], y+d[1]
		for inBounds(tx, ty) {
			target := p.board[ty][tx]
			if target.IsEmpty() {
				moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty})
			} else {
				if target.Color() != side {
					moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty, Capture: true})
				}
				break
			}
			tx, ty = tx+d[0], ty+d[1]
		}
	}
	return moves
}

var promotionChoices = [4]PieceType{Queen, Rook, Bishop, Knight}

func (p *Position) pawnMoves(x, y int, side Player) MoveList {
	var moves MoveList
	fwd := side.Forward()
	startRank := 6
	if side == Black {
		startRank = 1
	}
	promoteRank := 0
	if side == Black {
		promoteRank = 7
	}

	addPush := func(tx, ty int) {
		if ty == promoteRank {
			for _, pt := range promotionChoices {
				moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty, Promotion: PieceFor(side, pt)})
			}
			return
		}
		moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty})
	}

	if inBounds(x, y+fwd) && p.board[y+fwd][x].IsEmpty() {
		addPush(x, y+fwd)
		if y == startRank && p.board[y+2*fwd][x].IsEmpty() {
			moves = append(moves, Move{StartX: x, StartY: y, TargetX: x, TargetY: y + 2*fwd})
		}
	}

	for _, dx := range [2]int{-1, 1} {
		tx, ty := x+dx, y+fwd
		if !inBounds(tx, ty) {
			continue
		}
		target := p.board[ty][tx]
		if !target.IsEmpty() && target.Color() != side {
			if ty == promoteRank {
				for _, pt := range promotionChoices {
					moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty, Capture: true, Promotion: PieceFor(side, pt)})
				}
			} else {
				moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty, Capture: true})
			}
		} else if target.IsEmpty() && p.epActive && p.epX == tx && p.epY == ty {
			moves = append(moves, Move{StartX: x, StartY: y, TargetX: tx, TargetY: ty, Capture: true, EnPassantCapture: true})
		}
	}

	return moves
}

func (p *Position) castlingMoves(side Player) MoveList {
	var moves MoveList
	y := 7
	shortRight, longRight := WhiteShort, WhiteLong
	if side == Black {
		y = 0
		shortRight, longRight = BlackShort, BlackLong
	}
	if !p.castling.Allows(shortRight) && !p.castling.Allows(longRight) {
		return nil
	}
	if p.InCheck(side) {
		return nil
	}
	opp := side.Opponent()

	if p.castling.Allows(shortRight) &&
		p.board[y][5].IsEmpty() && p.board[y][6].IsEmpty() &&
		!p.IsSquareAttacked(5, y, opp) && !p.IsSquareAttacked(6, y, opp) {
		moves = append(moves, Move{StartX: 4, StartY: y, TargetX: 6, TargetY: y, CastlingShort: true})
	}
	if p.castling.Allows(longRight) &&
		p.board[y][1].IsEmpty() && p.board[y][2].IsEmpty() && p.board[y][3].IsEmpty() &&
		!p.IsSquareAttacked(3, y, opp) && !p.IsSquareAttacked(2, y, opp) {
		moves = append(moves, Move{StartX: 4, StartY: y, TargetX: 2, TargetY: y, CastlingLong: true})
	}
	return moves
}

// IsSquareAttacked reports whether (x,y) is attacked by any piece of color by.
func (p *Position) IsSquareAttacked(x, y int, by Player) bool {
	fwd := by.Forward()
	for _, dx := range [2]int{-1, 1} {
		px, py := x+dx, y-fwd
		if inBounds(px, py) && p.board[py][px] == PieceFor(by, Pawn) {
			return true
		}
	}
	for _, d := range knightDeltas {
		px, py := x+d[0], y+d[1]
		if inBounds(px, py) && p.board[py][px] == PieceFor(by, Knight) {
			return true
		}
	}
	for _, d := range kingDeltas {
		px, py := x+d[0], y+d[1]
		if inBounds(px, py) && p.board[py][px] == PieceFor(by, King) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if p.rayAttacked(x, y, d, by, PieceFor(by, Bishop), PieceFor(by, Queen)) {
			return true
		}
	}
	for _, d := range rookDirs {
		if p.rayAttacked(x, y, d, by, PieceFor(by, Rook), PieceFor(by, Queen)) {
			return true
		}
	}
	return false
}

func (p *Position) rayAttacked(x, y int, d [2]int, by Player, slider, queen Piece) bool {
	tx, ty := x+d[0], y+d[1]
	for inBounds(tx, ty) {
		piece := p.board[ty][tx]
		if !piece.IsEmpty() {
			return piece == slider || piece == queen
		}
		tx, ty = tx+d[0], ty+d[1]
	}
	return false
}
