package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/board/fen"
)

func TestLegalMovesCountFromInitialPosition(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Len(t, pos.LegalMoves(board.White), 20)
}

func TestLegalMovesExcludeMovesThatLeaveKingInCheck(t *testing.T) {
	// White rook on e2 pinned to its king on the e-file by a black rook; it may
	// move up and down the file (including capturing the pinner) but not
	// sideways, which would expose the king.
	pos, err := fen.Decode("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	var sawFileMove bool
	for _, m := range pos.LegalMoves(board.White) {
		if m.StartX == 4 && m.StartY == 6 {
			assert.Equal(t, 4, m.TargetX, "rook must stay on the e-file: %v", m)
			sawFileMove = true
		}
	}
	assert.True(t, sawFileMove, "expected at least one legal rook move along the pin file")
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := fen.Decode("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)

	found := false
	for _, m := range pos.LegalMoves(board.White) {
		if m.EnPassantCapture {
			found = true
			assert.Equal(t, 3, m.TargetX)
			assert.Equal(t, 2, m.TargetY)
		}
	}
	assert.True(t, found, "expected an en passant capture to be available")
}

func TestCastlingRequiresEmptyAndSafeSquares(t *testing.T) {
	pos, err := fen.Decode("r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	for _, m := range pos.LegalMoves(board.White) {
		assert.False(t, m.CastlingShort, "king would pass through an attacked square: %v", m)
	}
}

func TestCountMobility(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, 2, pos.CountMobility(1, 7)) // White knight b1
	assert.Equal(t, 0, pos.CountMobility(0, 7)) // White rook a1, boxed in
}
