package search

import "github.com/owlchess/kernel/pkg/board"

// RepetitionTracker counts visits to each position fingerprint and flags
// one that has recurred three times, so the search can refuse to walk back
// into it. Grounded on how
// original_source/ChessEngine.cpp's m_repitionMap is driven from
// searchMove/minMax; no RepitionMap source was retrieved, so the table
// itself — a Fingerprint->count map over board.ZobristTable — is authored
// fresh from that usage.
type RepetitionTracker struct {
	table *board.ZobristTable
	count map[board.Fingerprint]int
}

// NewRepetitionTracker returns an empty tracker keyed by table.
func NewRepetitionTracker(table *board.ZobristTable) *RepetitionTracker {
	return &RepetitionTracker{table: table, count: make(map[board.Fingerprint]int)}
}

// AddPosition records one more visit to pos's current fingerprint.
func (r *RepetitionTracker) AddPosition(pos *board.Position) {
	r.count[r.table.Fingerprint(pos)]++
}

// IsLocked reports whether pos has already been visited three times.
func (r *RepetitionTracker) IsLocked(pos *board.Position) bool {
	return r.count[r.table.Fingerprint(pos)] >= 3
}
