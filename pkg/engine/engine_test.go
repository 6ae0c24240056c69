package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlchess/kernel/pkg/board/fen"
	"github.com/owlchess/kernel/pkg/engine"
	"github.com/owlchess/kernel/pkg/search"
)

func newTestEngine(ctx context.Context) *engine.Engine {
	return engine.New(ctx, "TestEngine", "owlchess",
		engine.WithOptions(engine.Options{Depth: 2, Features: search.AlphaBetaFeature | search.Sort}),
	)
}

func TestResetAndPosition(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)

	assert.Equal(t, fen.Initial, e.Position())

	other := "rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1"
	require.NoError(t, e.Reset(ctx, other))
	assert.Equal(t, other, e.Position())

	assert.Error(t, e.Reset(ctx, "not a fen"))
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)

	assert.Error(t, e.Move(ctx, "e2-e5"))
	require.NoError(t, e.Move(ctx, "e2-e4"))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", e.Position())
}

func TestThinkPlaysAndReturnsAMove(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)

	best, _, err := e.Think(ctx)
	require.NoError(t, err)
	assert.False(t, best.IsZero())
	assert.NotEqual(t, fen.Initial, e.Position())
}

func TestThinkRejectsWhenGameIsOver(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)

	require.NoError(t, e.Reset(ctx, "7k/8/6Q1/6K1/8/8/8/8 b - - 0 1"))

	_, _, err := e.Think(ctx)
	assert.Error(t, err)
}

func TestSetDepthAffectsOptions(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(ctx)

	e.SetDepth(6)
	assert.Equal(t, 6, e.Options().Depth)
}
