// Package search implements fixed-depth move search: classical minimax and
// alpha-beta, MVV-LVA move ordering, a per-depth killer-move table, and
// threefold-repetition tracking. Grounded on
// original_source/ChessEngine.cpp/.hpp's ChessEngine class.
package search

import (
	"context"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/eval"
)

// Feature selects which search extensions SearchMove applies on top of
// plain minimax. Grounded on
// original_source/ChessEngine.hpp's FT_* bitflags, preserving their bit
// positions: the nested-search slot is reserved but unimplemented (the
// nested search variant is out of scope), and FT_HISTORY/FT_PVS are dropped
// entirely — the original itself marks them "nicht implementiert" (not
// implemented) and never reads them.
type Feature uint8

const (
	AlphaBetaFeature Feature = 1 << iota
	Sort
	nested // reserved: nested/nestedAlphaBeta variants are not implemented
	Killer
)

func (f Feature) has(bit Feature) bool { return f&bit != 0 }

// Result is the outcome of one SearchMove call.
type Result struct {
	Best  board.Move
	Value eval.Score
}

// SearchMove finds the best move for pos's side to move within depth plies,
// applying the requested features, and records both pos and the position
// reached by the chosen move in repetition so later threefold-repetition
// checks see both. Grounded on ChessEngine.cpp::searchMove.
func SearchMove(ctx context.Context, pos *board.Position, depth int, features Feature, repetition *RepetitionTracker) Result {
	repetition.AddPosition(pos)

	side := pos.SideToMove()

	var value eval.Score
	var best board.Move
	if features.has(AlphaBetaFeature) {
		ab := AlphaBeta{
			Repetition: repetition,
			Sort:       features.has(Sort),
			UseKiller:  features.has(Killer),
			Killers:    NewKillerTable(),
		}
		value, best = ab.Search(ctx, pos, side, depth)
	} else {
		mm := Minimax{Repetition: repetition}
		value, best = mm.Search(ctx, pos, side, depth)
	}

	if !best.IsZero() {
		pos.Make(best)
		repetition.AddPosition(pos)
		pos.UnmakeLast()
	}

	return Result{Best: best, Value: value}
}
