package eval

import "github.com/owlchess/kernel/pkg/board"

// NominalValue is the base material value of a piece type in pawns:
// {P:1, N:3, B:3, R:5, Q:9, K:0}.
var NominalValue = [board.NumPieceTypes + 1]Score{
	board.NoType: 0,
	board.Pawn:   1.00,
	board.Knight: 3.00,
	board.Bishop: 3.00,
	board.Rook:   5.00,
	board.Queen:  9.00,
	board.King:   0.00,
}

// startPieceCount is the per-type piece count at the start of a game, used
// only to derive the phase-transition thresholds below.
var startPieceCount = [board.NumPieceTypes + 1]int{
	board.Pawn:   8,
	board.Knight: 2,
	board.Bishop: 2,
	board.Rook:   2,
	board.Queen:  1,
	board.King:   1,
}

// startMaterialSum is the combined material of both sides at the start of a
// game: 2 * (8*1 + 2*3 + 2*3 + 2*5 + 1*9 + 1*0) = 78.
var startMaterialSum = func() Score {
	var total Score
	for t := board.Pawn; t <= board.King; t++ {
		total += NominalValue[t] * Score(startPieceCount[t])
	}
	return 2 * total
}()

const (
	materialRatioMidGame = 0.85
	materialRatioEndGame = 0.50
)

// MaxMaterialSumMidGame and MaxMaterialSumEndGame are the phase-transition
// thresholds: 0.85*78=66.3 and 0.50*78=39.0.
var (
	MaxMaterialSumMidGame = startMaterialSum * materialRatioMidGame
	MaxMaterialSumEndGame = startMaterialSum * materialRatioEndGame
)

// phaseAddition is the phase-dependent material bonus per piece type added
// when MaterialDynamicGamePhase is enabled.
var phaseAddition = map[board.GamePhase][board.NumPieceTypes + 1]Score{
	board.Opening: {board.Pawn: 0.00, board.Knight: 0.25, board.Bishop: 0.25, board.Rook: 0.00, board.Queen: 0.00, board.King: 0.00},
	board.Mid:     {board.Pawn: 0.00, board.Knight: 0.50, board.Bishop: 0.50, board.Rook: 0.50, board.Queen: 0.50, board.King: 0.00},
	board.End:     {board.Pawn: 0.00, board.Knight: 0.50, board.Bishop: 0.50, board.Rook: 0.75, board.Queen: 0.75, board.King: 0.00},
}

// DynamicPawnTable is indexed by pawn count, clamped to 7.
var DynamicPawnTable = [8]Score{0.05, 0.03, 0.01, 0.00, -0.01, -0.02, -0.03, -0.05}

// BishopPairBonus is the flat bonus for holding at least two bishops.
const BishopPairBonus Score = 0.50

// minBishopCountForPairBonus is the threshold for BishopPairBonus.
const minBishopCountForPairBonus = 2

// mobilityWeight is the per-type mobility weight; the original source
// applies the same 0.10 factor to every piece type.
const mobilityWeight Score = 0.10

// Pawn-structure bonuses and penalties.
const (
	PawnStructureDoublePenalty    Score = -0.200
	PawnStructureIsolatedPenalty  Score = -0.100
	PawnStructureBackwardsPenalty Score = -0.125
	PawnStructureConnectedBonus   Score = 0.100
	PawnStructureChainBonus       Score = 0.100
	PawnStructurePassedBonus      Score = 0.200
)
