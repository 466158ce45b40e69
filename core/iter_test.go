package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3michele/hgraph/core"
)

func TestIterEdges_Restartable(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {2, 3}, {3}})

	first := slices.Collect(h.IterEdges())
	second := slices.Collect(h.IterEdges())
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)

	ids := make([]core.EdgeID, 0, len(first))
	for _, e := range first {
		ids = append(ids, e.ID())
	}
	assert.True(t, slices.IsSorted(ids))
}

func TestIterEdges_EarlyBreak(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {2, 3}, {3}})
	n := 0
	for range h.IterEdges() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestIterEdges_PanicsOnMutation(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {2, 3}})
	assert.PanicsWithValue(t, core.ErrModifiedDuringIteration, func() {
		for range h.IterEdges() {
			h.AddNode(99)
		}
	})
}

func TestIterEdges_Empty(t *testing.T) {
	for range core.New().IterEdges() {
		t.Fatal("no edges expected")
	}
}
