package search

import "github.com/owlchess/kernel/pkg/board"

// KillerTable tracks, per search depth, the moves that have produced a
// cutoff — good candidates to try early in sibling branches at the same
// depth. Grounded on ChessEngine.cpp's per-node result.killers[depth] set,
// merged into the parent on return.
type KillerTable struct {
	moves map[int]map[board.Move]struct{}
}

// NewKillerTable returns an empty table.
func NewKillerTable() *KillerTable {
	return &KillerTable{moves: make(map[int]map[board.Move]struct{})}
}

// Has reports whether m previously produced a cutoff at depth.
func (k *KillerTable) Has(depth int, m board.Move) bool {
	_, ok := k.moves[depth][m]
	return ok
}

// Record marks m as having produced a cutoff at depth.
func (k *KillerTable) Record(depth int, m board.Move) {
	if k.moves[depth] == nil {
		k.moves[depth] = make(map[board.Move]struct{})
	}
	k.moves[depth][m] = struct{}{}
}

// Merge folds every depth's entries from other into k, the Go shape of
// ChessEngine.cpp's "result.killers[d].merge(new_result.killers[d])".
func (k *KillerTable) Merge(other *KillerTable) {
	if other == nil {
		return
	}
	for depth, set := range other.moves {
		for m := range set {
			k.Record(depth, m)
		}
	}
}
