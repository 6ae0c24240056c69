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

func TestAlphaBetaAgreesWithMinimax(t *testing.T) {
	pos, err := fen.Decode("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	require.NoError(t, err)

	mmPos, err := fen.Decode(fen.Encode(pos))
	require.NoError(t, err)

	mm := search.Minimax{}
	mmValue, _ := mm.Search(context.Background(), mmPos, board.White, 3)

	ab := search.AlphaBeta{}
	abValue, _ := ab.Search(context.Background(), pos, board.White, 3)

	// Alpha-beta over the same tree must return the same value as plain
	// minimax; only the set of nodes visited differs.
	assert.Equal(t, mmValue, abValue)
}

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)

	ab := search.AlphaBeta{Sort: true}
	value, best := ab.Search(context.Background(), pos, board.White, 2)

	pos.Make(best)
	assert.Equal(t, board.WhiteWins, pos.GameState())
	assert.Equal(t, eval.Inf, value)
}

func TestAlphaBetaWithKillerTableMatchesWithoutIt(t *testing.T) {
	start := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"

	plain, err := fen.Decode(start)
	require.NoError(t, err)
	plainValue, _ := search.AlphaBeta{Sort: true}.Search(context.Background(), plain, board.White, 3)

	withKillers, err := fen.Decode(start)
	require.NoError(t, err)
	killerValue, _ := search.AlphaBeta{Sort: true, UseKiller: true, Killers: search.NewKillerTable()}.Search(context.Background(), withKillers, board.White, 3)

	// Move ordering (including the killer heuristic) affects which nodes get
	// pruned, never the final minimax value of the tree.
	assert.Equal(t, plainValue, killerValue)
}

func TestAlphaBetaWithRepetitionTrackerAtDepthZero(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	zt := board.NewZobristTable(1)
	repetition := search.NewRepetitionTracker(zt)
	repetition.AddPosition(pos)

	ab := search.AlphaBeta{Repetition: repetition}
	// Depth 0 never consults the repetition tracker; this just exercises
	// that a configured tracker doesn't break a shallow search.
	_, best := ab.Search(context.Background(), pos, board.White, 0)
	assert.True(t, best.IsZero())
}
