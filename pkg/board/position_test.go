package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/board/fen"
)

func TestMakeUnmakeRestoresFEN(t *testing.T) {
	tests := []struct {
		start string
		move  string
	}{
		{fen.Initial, "e2-e4"},
		{fen.Initial, "g1-f3"},
		{"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e5xd6"},
		{"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1-g1"},
	}

	for _, tt := range tests {
		pos, err := fen.Decode(tt.start)
		require.NoError(t, err, tt.start)

		m, err := fen.ParseMoveString(pos, tt.move)
		require.NoError(t, err, tt.move)

		pos.Make(m)
		pos.UnmakeLast()

		assert.Equal(t, tt.start, fen.Encode(pos), "move %v against %v", tt.move, tt.start)
	}
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m, err := fen.ParseMoveString(pos, "e1-e2")
	require.NoError(t, err)
	pos.Make(m)

	assert.False(t, pos.Castling().Allows(board.WhiteShort))
	assert.False(t, pos.Castling().Allows(board.WhiteLong))
	assert.True(t, pos.Castling().Allows(board.BlackShort))
	assert.True(t, pos.Castling().Allows(board.BlackLong))
}

func TestCheckmateIsTerminal(t *testing.T) {
	// Fool's mate.
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	for _, mv := range []string{"f2-f3", "e7-e5", "g2-g4", "d8-h4"} {
		m, err := fen.ParseMoveString(pos, mv)
		require.NoError(t, err)
		pos.Make(m)
	}

	assert.Equal(t, board.BlackWins, pos.GameState())
	assert.Empty(t, pos.LegalMoves(pos.SideToMove()))
}

func TestStalemateIsDraw(t *testing.T) {
	pos, err := fen.Decode("7k/8/6Q1/6K1/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, board.Draw, pos.GameState())
}
