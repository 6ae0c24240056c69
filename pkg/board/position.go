package board

// Position is the opaque board value the search-and-evaluation core
// consumes: an 8x8 board of pieces, side to move, castling rights,
// en-passant target, ply/move counters, game state and game phase.
// y=0 is rank 8, x=0 is file a.
type Position struct {
	board      [8][8]Piece
	side       Player
	castling   Castling
	epActive   bool
	epX, epY   int
	plyCount   int // halfmove clock, since the last pawn move or capture
	moveNumber int // fullmove number
	state      GameState
	phase      GamePhase

	undo []undoRecord
}

type undoRecord struct {
	move Move

	captured       Piece
	capturedX      int
	capturedY      int
	hadCaptured    bool
	castlingRook   bool
	rookFromX      int
	rookFromY      int
	rookToX        int
	rookToY        int
	prevCastling   Castling
	prevEPActive   bool
	prevEPX, prevEPY int
	prevPlyCount   int
	prevMoveNumber int
	prevState      GameState
	prevPhase      GamePhase
}

// NewPosition builds a position from an 8x8 board of piece letters plus the
// rest of the FEN-level state. It is the construction seam used by
// pkg/board/fen; core code never builds a Position by hand.
func NewPosition(squares [8][8]Piece, side Player, castling Castling, epActive bool, epX, epY, plyCount, moveNumber int) *Position {
	p := &Position{
		board:      squares,
		side:       side,
		castling:   castling,
		epActive:   epActive,
		epX:        epX,
		epY:        epY,
		plyCount:   plyCount,
		moveNumber: moveNumber,
		phase:      Opening,
	}
	p.state = p.computeState()
	return p
}

// At returns the piece at board[y][x].
func (p *Position) At(x, y int) Piece {
	return p.board[y][x]
}

func (p *Position) SideToMove() Player { return p.side }
func (p *Position) GameState() GameState { return p.state }
func (p *Position) GamePhase() GamePhase { return p.phase }
func (p *Position) Castling() Castling   { return p.castling }
func (p *Position) PlyCount() int        { return p.plyCount }
func (p *Position) MoveNumber() int      { return p.moveNumber }

func (p *Position) IsEnPassant() bool { return p.epActive }

// EnPassantSquare returns the en-passant target square, valid only when
// IsEnPassant is true.
func (p *Position) EnPassantSquare() (int, int) { return p.epX, p.epY }

// EnterNextGamePhase advances the game phase one step (Opening->Mid->End).
// It never retreats; called only by the evaluator.
func (p *Position) EnterNextGamePhase() {
	switch p.phase {
	case Opening:
		p.phase = Mid
	case Mid:
		p.phase = End
	}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < 8 && y >= 0 && y < 8
}

// kingSquare returns the square of the given side's king.
func (p *Position) kingSquare(side Player) (int, int) {
	king := PieceFor(side, King)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p.board[y][x] == king {
				return x, y
			}
		}
	}
	return -1, -1
}

// InCheck reports whether side's king is currently attacked.
func (p *Position) InCheck(side Player) bool {
	kx, ky := p.kingSquare(side)
	if kx < 0 {
		return false
	}
	return p.IsSquareAttacked(kx, ky, side.Opponent())
}

// computeState recomputes Active/WhiteWins/BlackWins/Draw for the side to
// move, based on whether it has any legal move.
func (p *Position) computeState() GameState {
	if len(p.LegalMoves(p.side)) > 0 {
		return Active
	}
	if p.InCheck(p.side) {
		if p.side == White {
			return BlackWins
		}
		return WhiteWins
	}
	return Draw
}

// Make applies m in place, pushing enough state onto an undo stack to
// restore the position bit-for-bit on UnmakeLast.
func (p *Position) Make(m Move) {
	p.applyRaw(m)
	p.state = p.computeState()
}

// applyRaw performs the board/rights/counter mutation of Make without
// recomputing GameState. LegalMoves uses it to probe king safety without
// triggering computeState's own call back into LegalMoves.
func (p *Position) applyRaw(m Move) {
	rec := undoRecord{
		move:           m,
		prevCastling:   p.castling,
		prevEPActive:   p.epActive,
		prevEPX:        p.epX,
		prevEPY:        p.epY,
		prevPlyCount:   p.plyCount,
		prevMoveNumber: p.moveNumber,
		prevState:      p.state,
		prevPhase:      p.phase,
	}

	piece := p.board[m.StartY][m.StartX]
	pt := piece.Type()
	mover := piece.Color()

	isPawnMove := pt == Pawn
	isCapture := m.Capture

	if m.EnPassantCapture {
		capY := m.StartY
		rec.hadCaptured = true
		rec.captured = p.board[capY][m.TargetX]
		rec.capturedX, rec.capturedY = m.TargetX, capY
		p.board[capY][m.TargetX] = Empty
	} else if p.board[m.TargetY][m.TargetX] != Empty {
		rec.hadCaptured = true
		rec.captured = p.board[m.TargetY][m.TargetX]
		rec.capturedX, rec.capturedY = m.TargetX, m.TargetY
	}

	target := piece
	if !m.Promotion.IsEmpty() {
		target = m.Promotion
	}
	p.board[m.TargetY][m.TargetX] = target
	p.board[m.StartY][m.StartX] = Empty

	if m.CastlingShort || m.CastlingLong {
		y := m.StartY
		rec.castlingRook = true
		if m.CastlingShort {
			rec.rookFromX, rec.rookFromY = 7, y
			rec.rookToX, rec.rookToY = 5, y
		} else {
			rec.rookFromX, rec.rookFromY = 0, y
			rec.rookToX, rec.rookToY = 3, y
		}
		p.board[rec.rookToY][rec.rookToX] = p.board[rec.rookFromY][rec.rookFromX]
		p.board[rec.rookFromY][rec.rookFromX] = Empty
	}

	p.updateCastlingRights(m, piece, mover)

	p.epActive = false
	if pt == Pawn && abs(m.TargetY-m.StartY) == 2 {
		p.epActive = true
		p.epX = m.StartX
		p.epY = (m.StartY + m.TargetY) / 2
	}

	if isPawnMove || isCapture {
		p.plyCount = 0
	} else {
		p.plyCount++
	}
	if mover == Black {
		p.moveNumber++
	}

	p.side = p.side.Opponent()
	p.undo = append(p.undo, rec)
}

// updateCastlingRights clears rights invalidated by a king/rook move, or by
// a rook being captured on its home square.
func (p *Position) updateCastlingRights(m Move, piece Piece, mover Player) {
	switch {
	case piece.Type() == King && mover == White:
		p.castling &^= WhiteShort | WhiteLong
	case piece.Type() == King && mover == Black:
		p.castling &^= BlackShort | BlackLong
	}
	clearRookRight := func(x, y int) {
		switch {
		case x == 7 && y == 7:
			p.castling &^= WhiteShort
		case x == 0 && y == 7:
			p.castling &^= WhiteLong
		case x == 7 && y == 0:
			p.castling &^= BlackShort
		case x == 0 && y == 0:
			p.castling &^= BlackLong
		}
	}
	if piece.Type() == Rook {
		clearRookRight(m.StartX, m.StartY)
	}
	clearRookRight(m.TargetX, m.TargetY)
}

// UnmakeLast restores the position to the state it held before the most
// recent Make call.
func (p *Position) UnmakeLast() {
	n := len(p.undo)
	if n == 0 {
		return
	}
	rec := p.undo[n-1]
	p.undo = p.undo[:n-1]
	m := rec.move

	p.side = p.side.Opponent()

	piece := p.board[m.TargetY][m.TargetX]
	if !m.Promotion.IsEmpty() {
		piece = PieceFor(p.side, Pawn)
	}
	p.board[m.StartY][m.StartX] = piece
	p.board[m.TargetY][m.TargetX] = Empty

	if rec.castlingRook {
		p.board[rec.rookFromY][rec.rookFromX] = p.board[rec.rookToY][rec.rookToX]
		p.board[rec.rookToY][rec.rookToX] = Empty
	}

	if rec.hadCaptured {
		p.board[rec.capturedY][rec.capturedX] = rec.captured
	}

	p.castling = rec.prevCastling
	p.epActive = rec.prevEPActive
	p.epX, p.epY = rec.prevEPX, rec.prevEPY
	p.plyCount = rec.prevPlyCount
	p.moveNumber = rec.prevMoveNumber
	p.state = rec.prevState
	p.phase = rec.prevPhase
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
