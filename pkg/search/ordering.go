package search

import (
	"sort"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/eval"
)

// captureRank orders attacker piece types from most valuable (King) to
// least (Pawn), matching the block order of
// original_source/ChessEngine.hpp's Captures enum (kx*, qx*, rx*, bx*, nx*,
// px*).
var captureRank = map[board.PieceType]int{
	board.King:   0,
	board.Queen:  1,
	board.Rook:   2,
	board.Bishop: 3,
	board.Knight: 4,
	board.Pawn:   5,
}

// victimRank orders victims P,N,B,R,Q, matching each block's xP,xN,xB,xR,xQ
// suffix order.
var victimRank = map[board.PieceType]int{
	board.Pawn:   0,
	board.Knight: 1,
	board.Bishop: 2,
	board.Rook:   3,
	board.Queen:  4,
}

// captureValue returns a capture's MVV-LVA ordering value: higher sorts
// first. It reproduces the ordinal of ChessEngine::Captures exactly, so the
// least valuable attacker taking the most valuable victim ranks highest.
func captureValue(attacker, victim board.PieceType) int {
	vr, ok := victimRank[victim]
	if !ok {
		return 0 // unmatched victim, original falls back to Captures::kxP
	}
	return captureRank[attacker]*5 + vr
}

// previewValue plays m on pos, scores the result from side's perspective
// using material alone (no feature flags), and undoes it. It is the
// quiet-move ordering fallback of ChessEngine.cpp::sortMoves, which
// compares a one-ply-deeper static evaluation when neither move is a
// capture or killer.
func previewValue(pos *board.Position, m board.Move, side board.Player) eval.Score {
	pos.Make(m)
	v := eval.Evaluate(pos, board.White, 0)
	pos.UnmakeLast()
	if side == board.Black {
		v = v.Negate()
	}
	return v
}

// sortMoves orders moves for search: captures first (by MVV-LVA), then
// killer moves recorded for depth (if killers is non-nil), then quiet moves
// by one-ply preview value. Grounded on ChessEngine.cpp::sortMoves's
// comparator.
func sortMoves(pos *board.Position, moves board.MoveList, side board.Player, depth int, killers *KillerTable) {
	sort.SliceStable(moves, func(i, j int) bool {
		left, right := moves[i], moves[j]

		if left.Capture != right.Capture {
			return left.Capture
		}
		if left.Capture {
			la := pos.At(left.StartX, left.StartY).Type()
			lv := pos.At(left.TargetX, left.TargetY).Type()
			if left.EnPassantCapture {
				lv = board.Pawn
			}
			ra := pos.At(right.StartX, right.StartY).Type()
			rv := pos.At(right.TargetX, right.TargetY).Type()
			if right.EnPassantCapture {
				rv = board.Pawn
			}
			return captureValue(la, lv) > captureValue(ra, rv)
		}

		if killers != nil {
			kl, kr := killers.Has(depth, left), killers.Has(depth, right)
			if kl != kr {
				return kl
			}
		}

		return previewValue(pos, left, side) > previewValue(pos, right, side)
	})
}
