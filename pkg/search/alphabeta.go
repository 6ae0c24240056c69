package search

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/eval"
)

// AlphaBeta implements alpha-beta pruning over the same White-maximizes /
// Black-minimizes convention as Minimax, with fail-hard inclusive bounds.
// Grounded on
// original_source/ChessEngine.cpp::alphaBeta, with one deliberate
// correctness fix: the original threads its running best-value through the
// recursive alpha/beta parameters but then tests the ORIGINAL, unnarrowed
// bound for the cutoff ("alpha >= beta" using the alpha passed into the
// call, not the value just improved to), which only ever fires on an
// already-empty window. This rewrites the cutoff to compare against the
// narrowed bound, which is what textbook alpha-beta pruning requires.
//
//	function alphabeta(node, depth, side, alpha, beta) is
//	    if depth = 0 or node has no legal move then
//	        return evaluate(node)
//	    if side = White then
//	        value := -inf
//	        for each child of node do
//	            value := max(value, alphabeta(child, depth-1, Black, alpha, beta))
//	            alpha := max(alpha, value)
//	            if alpha >= beta then break
//	        return value
//	    else
//	        value := +inf
//	        for each child of node do
//	            value := min(value, alphabeta(child, depth-1, White, alpha, beta))
//	            beta := min(beta, value)
//	            if alpha >= beta then break
//	        return value
type AlphaBeta struct {
	Repetition *RepetitionTracker
	Sort       bool
	UseKiller  bool
	Killers    *KillerTable
}

// Search returns the best move for side and its evaluation, looking depth
// plies ahead from the full [-inf, +inf] window. ctx is checked cooperatively
// between sibling moves via contextx.IsCancelled; a cancelled ctx stops
// descending further and returns the best value found among the moves
// already searched, there being no time budget or iterative deepening to
// resume from (both are out of scope here).
func (s AlphaBeta) Search(ctx context.Context, pos *board.Position, side board.Player, depth int) (eval.Score, board.Move) {
	value, best, local := s.search(ctx, pos, side, depth, eval.NegInf, eval.Inf)
	if s.UseKiller && s.Killers != nil {
		s.Killers.Merge(local)
	}
	return value, best
}

// search is the recursive worker. Each call constructs its own killer table,
// records any cutoff it produces into it, and merges every child's table
// into it before returning — the construct/merge-on-return shape of
// ChessEngine.cpp::alphaBeta's result.killers[d].merge(new_result.killers[d]).
// Sort ordering still consults the externally shared s.Killers, since that is
// the accumulated knowledge from prior top-level searches, not this call's
// own still-empty table.
func (s AlphaBeta) search(ctx context.Context, pos *board.Position, side board.Player, depth int, alpha, beta eval.Score) (eval.Score, board.Move, *KillerTable) {
	local := NewKillerTable()

	if depth == 0 || contextx.IsCancelled(ctx) {
		return eval.Evaluate(pos, board.White, eval.Standard), board.Move{}, local
	}

	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return eval.Evaluate(pos, board.White, eval.Standard), board.Move{}, local
	}

	if s.Sort {
		var killers *KillerTable
		if s.UseKiller {
			killers = s.Killers
		}
		sortMoves(pos, moves, side, depth, killers)
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
		childValue, _, childKillers := s.search(ctx, pos, side.Opponent(), depth-1, alpha, beta)
		pos.UnmakeLast()

		if s.UseKiller {
			local.Merge(childKillers)
		}

		if improves(side, childValue, value) {
			value = childValue
			best = m
		} else if childValue == value && best.IsZero() {
			best = m
		}

		if side == board.White {
			if value > alpha {
				alpha = value
			}
		} else {
			if value < beta {
				beta = value
			}
		}
		if alpha >= beta {
			if s.UseKiller {
				local.Record(depth, m)
			}
			break
		}
	}

	return value, best, local
}
