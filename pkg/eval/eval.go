// Package eval implements the static position evaluator: a single-pass
// accumulation of material, piece-square, mobility, pawn-structure and
// bishop-pair terms, oriented to a fixed evaluating player.
package eval

import (
	"github.com/seekerror/stdlib/pkg/util/mathx"

	"github.com/owlchess/kernel/pkg/board"
)

// Evaluate scores pos from enginePlayer's perspective: positive favors
// enginePlayer. The search layer always passes board.White as enginePlayer — the
// search layer's own min/max convention, not this function, orients the
// result to whichever side is actually on move.
//
// Evaluate also advances pos's game phase in place when the combined
// material has dropped through a threshold; this is the only place a phase
// transition is triggered.
func Evaluate(pos *board.Position, enginePlayer board.Player, flags FeatureFlags) Score {
	switch pos.GameState() {
	case board.WhiteWins:
		if enginePlayer == board.White {
			return Inf
		}
		return NegInf
	case board.BlackWins:
		if enginePlayer == board.Black {
			return Inf
		}
		return NegInf
	case board.Draw:
		return Zero
	}

	var score [2]Score
	var extraPawnScore [2]Score
	var squareTableScore [2]Score
	var pieceCount [2][board.NumPieceTypes + 1]int
	var mobility [2][board.NumPieceTypes + 1]int
	var kingX, kingY [2]int

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			piece := pos.At(x, y)
			if piece.IsEmpty() {
				continue
			}
			t := piece.Type()
			c := piece.Color().Index()

			pieceCount[c][t]++

			if flags.Has(PawnStructure) && t == board.Pawn {
				isDouble := isDoublePawn(pos, x, y)
				isConnected := isConnectedPawn(pos, x, y)
				isChain := isChainPawn(pos, x, y)
				isPassed := isPassedPawn(pos, x, y)
				isIsolated := !isDouble && !isConnected && !isChain
				isBackwards := false
				if !isConnected {
					isBackwards = isBackwardsPawn(pos, x, y)
				}

				if isDouble {
					extraPawnScore[c] += PawnStructureDoublePenalty
				}
				if isConnected {
					extraPawnScore[c] += PawnStructureConnectedBonus
				}
				if isChain {
					extraPawnScore[c] += PawnStructureChainBonus
				}
				if isPassed {
					extraPawnScore[c] += PawnStructurePassedBonus
				}
				if isIsolated {
					extraPawnScore[c] += PawnStructureIsolatedPenalty
				}
				if isBackwards {
					extraPawnScore[c] += PawnStructureBackwardsPenalty
				}
			}

			score[c] += NominalValue[t]

			if flags.Has(PieceMobility) {
				mobility[c][t] += pos.CountMobility(x, y)
			}

			if flags.Has(PieceSquareTable) {
				if t == board.King {
					kingX[c], kingY[c] = x, y
				} else if table := pieceSquareTable(t); table != nil {
					squareTableScore[c] += pstValue(table, piece.Color(), x, y)
				}
			}
		}
	}

	phase := pos.GamePhase()
	material := score[0] + score[1]
	if phase == board.Opening && material <= MaxMaterialSumMidGame {
		pos.EnterNextGamePhase()
		phase = pos.GamePhase()
	}
	if phase == board.Mid && material <= MaxMaterialSumEndGame {
		pos.EnterNextGamePhase()
		phase = pos.GamePhase()
	}

	if flags.Has(DynamicPawns) {
		for c := 0; c < 2; c++ {
			count := pieceCount[c][board.Pawn]
			idx := mathx.Min(count, len(DynamicPawnTable)-1)
			extraPawnScore[c] += Score(count) * DynamicPawnTable[idx]
		}
	}

	if flags.Has(MaterialDynamicGamePhase) {
		addition := phaseAddition[phase]
		for c := 0; c < 2; c++ {
			for t := board.Pawn; t <= board.King; t++ {
				score[c] += Score(pieceCount[c][t]) * addition[t]
			}
		}
	}

	if flags.Has(PieceSquareTable) && phase != board.Opening {
		table := kingTable(phase)
		for c := 0; c < 2; c++ {
			player := board.White
			if c == 1 {
				player = board.Black
			}
			squareTableScore[c] += Score(pieceCount[c][board.King]) * pstValue(table, player, kingX[c], kingY[c])
		}
	}

	if flags.Has(BishopPair) {
		for c := 0; c < 2; c++ {
			if pieceCount[c][board.Bishop] >= minBishopCountForPairBonus {
				score[c] += BishopPairBonus
			}
		}
	}

	if flags.Has(PieceMobility) {
		for c := 0; c < 2; c++ {
			for t := board.Pawn; t <= board.King; t++ {
				score[c] += mobilityWeight * Score(mobility[c][t])
			}
		}
	}

	for c := 0; c < 2; c++ {
		score[c] += extraPawnScore[c] + squareTableScore[c]
	}

	if enginePlayer == board.White {
		return score[0] - score[1]
	}
	return score[1] - score[0]
}
