package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/eval"
)

// Minimax implements classical fixed-depth minimax search: White maximizes
// the position's evaluation, Black minimizes it. Grounded on
// original_source/ChessEngine.cpp::minMax.
//
//	function minimax(node, depth, side) is
//	    if depth = 0 or node has no legal move then
//	        return evaluate(node)
//	    if side = White then
//	        value := -inf
//	        for each child of node do
//	            value := max(value, minimax(child, depth-1, Black))
//	        return value
//	    else
//	        value := +inf
//	        for each child of node do
//	            value := min(value, minimax(child, depth-1, White))
//	        return value
//
// Unlike AlphaBeta, Minimax never reorders moves: the original's minMax
// takes no sort parameter at all, so a Sort feature request has no effect
// unless AlphaBeta is also requested.
type Minimax struct {
	Repetition *RepetitionTracker
}

// Search returns the best move for side and its evaluation, looking depth
// plies ahead. The zero move is returned when no legal move exists. ctx is
// checked cooperatively between sibling moves via contextx.IsCancelled;
// there is no time budget or iterative deepening behind it (both are out of
// scope here), so a cancelled ctx simply stops descending further and
// returns the best value found among the moves already searched.
func (s Minimax) Search(ctx context.Context, pos *board.Position, side board.Player, depth int) (eval.Score, board.Move) {
	if depth == 0 || contextx.IsCancelled(ctx) {
		return eval.Evaluate(pos, board.White, eval.Standard), board.Move{}
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return eval.Evaluate(pos, board.White, eval.Standard), board.Move{}
	}

	value := worstFor(side)
	var best board.Move

	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			break
		}
		pos.Make(m)
		if s.Repetition != nil && s.Repetition.IsLocked(pos) {
			pos.UnmakeLast()
			continue
		}
		childValue, _ := s.Search(ctx, pos, side.Opponent(), depth-1)
		pos.UnmakeLast()

		if improves(side, childValue, value) {
			value = childValue
			best = m
		} else if childValue == value && best.IsZero() {
			best = m
		}
	}

	return value, best
}

// worstFor is the bound any real move must beat: -inf for White's maximizing
// search, +inf for Black's minimizing search.
func worstFor(side board.Player) eval.Score {
	if side == board.White {
		return eval.NegInf
	}
	return eval.Inf
}

// improves reports whether challenger is a better outcome for side than
// incumbent.
func improves(side board.Player, challenger, incumbent eval.Score) bool {
	if side == board.White {
		return challenger > incumbent
	}
	return challenger < incumbent
}
