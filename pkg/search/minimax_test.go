package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/board/fen"
	"github.com/owlchess/kernel/pkg/eval"
	"github.com/owlchess/kernel/pkg/search"
)

func TestMinimaxFindsMateInOne(t *testing.T) {
	// Black king fully boxed in by its own pawn shield; Ra1-a8 delivers an
	// unstoppable back-rank mate.
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)

	mm := search.Minimax{}
	value, best := mm.Search(context.Background(), pos, board.White, 2)

	pos.Make(best)
	assert.Equal(t, board.WhiteWins, pos.GameState())
	assert.Equal(t, eval.Inf, value)
}

func TestMinimaxBlackMinimizes(t *testing.T) {
	// Black to move, down a whole rook with no tactics available: any legal
	// king move is equally (bad) for Black, so the search must still return
	// one rather than claiming no legal move exists.
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	require.NoError(t, err)

	mm := search.Minimax{}
	value, best := mm.Search(context.Background(), pos, board.Black, 2)

	assert.False(t, best.IsZero())
	// Evaluate is always computed from White's perspective (see eval.Evaluate's
	// doc comment), so White being up a rook must score positive here
	// regardless of whose move it is.
	assert.Greater(t, float32(value), float32(0))
}

func TestMinimaxReturnsZeroMoveWhenNoLegalMove(t *testing.T) {
	pos, err := fen.Decode("7k/8/6Q1/6K1/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	mm := search.Minimax{}
	value, best := mm.Search(context.Background(), pos, board.Black, 3)

	assert.True(t, best.IsZero())
	assert.Equal(t, eval.Zero, value)
}
