package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/owlchess/kernel/pkg/board"
	"github.com/owlchess/kernel/pkg/search"
)

func TestKillerTableRecordsPerDepth(t *testing.T) {
	k := search.NewKillerTable()
	m := board.Move{StartX: 4, StartY: 6, TargetX: 4, TargetY: 4}

	assert.False(t, k.Has(3, m))
	k.Record(3, m)
	assert.True(t, k.Has(3, m))
	assert.False(t, k.Has(2, m), "recording at one depth must not leak into another")
}

func TestKillerTableMerge(t *testing.T) {
	a := search.NewKillerTable()
	b := search.NewKillerTable()

	m := board.Move{StartX: 1, StartY: 7, TargetX: 2, TargetY: 5}
	b.Record(1, m)

	a.Merge(b)
	assert.True(t, a.Has(1, m))

	a.Merge(nil) // must not panic
}
