// SPDX-License-Identifier: MIT
// Package core_test verifies Hypergraph mutation contracts: node and edge
// lifecycle, weight coercion, weak vs. strong removal, Clear and Clone.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/core"
)

func TestNew_Defaults(t *testing.T) {
	h := core.New()
	assert.False(t, h.Weighted())
	assert.Equal(t, 0, h.NumNodes())
	assert.Equal(t, 0, h.NumEdges())
	assert.Equal(t, "Hypergraph with 0 nodes and 0 edges", h.String())

	w := core.New(core.WithWeighted(), core.WithCapacity(-1, 8), core.WithLogger(nil))
	assert.True(t, w.Weighted())
	require.NoError(t, w.Validate())
}

func TestAddNode(t *testing.T) {
	h := core.New()
	assert.True(t, h.AddNode(1))
	assert.False(t, h.AddNode(1), "second insert is a no-op")
	assert.True(t, h.HasNode(1))
	assert.False(t, h.HasNode(2))

	assert.False(t, h.AddNodes([]core.Node{2, 1, 3}), "1 already present")
	assert.Equal(t, []core.Node{1, 2, 3}, h.Nodes(), "every element applied")
	assert.True(t, h.AddNodes(nil))
}

func TestAddEdge_InsertAndUpdate(t *testing.T) {
	h := core.New(core.WithWeighted())
	e := []core.Node{1, 2, 3}

	assert.True(t, h.AddEdgeWeighted(e, 1.5))
	assert.True(t, h.HasEdge(e))
	assert.Equal(t, 3, h.NumNodes(), "missing nodes are created")

	// re-adding updates the weight in place
	assert.False(t, h.AddEdgeWeighted(e, 4.0))
	assert.Equal(t, 1, h.NumEdges())
	w, ok := h.Weight(e)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)

	// AddEdge resets to 0
	assert.False(t, h.AddEdge(e))
	w, _ = h.Weight(e)
	assert.Equal(t, 0.0, w)
	require.NoError(t, h.Validate())
}

func TestAddEdge_CopiesInput(t *testing.T) {
	h := core.New()
	e := []core.Node{1, 2}
	h.AddEdge(e)
	e[0] = 9

	assert.True(t, h.HasEdge([]core.Node{1, 2}))
	assert.False(t, h.HasNode(9))
}

func TestAddEdge_OrderSensitive(t *testing.T) {
	h := core.New()
	assert.True(t, h.AddEdge([]core.Node{1, 2}))
	assert.True(t, h.AddEdge([]core.Node{2, 1}), "permutation is a distinct hyperedge")
	assert.True(t, h.AddEdge([]core.Node{1, 1, 2}), "repetitions are kept")
	assert.Equal(t, 3, h.NumEdges())
	require.NoError(t, h.Validate())
}

func TestAddEdge_UnweightedCoercesToZero(t *testing.T) {
	h := core.New()
	h.AddEdgeWeighted([]core.Node{1, 2}, 7.5)
	w, ok := h.Weight([]core.Node{1, 2})
	require.True(t, ok)
	assert.Equal(t, 0.0, w)

	prev, err := h.SetWeight([]core.Node{1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, prev)
	w, _ = h.Weight([]core.Node{1, 2})
	assert.Equal(t, 0.0, w)
	require.NoError(t, h.Validate())
}

func TestAddEdgesWeighted_ExcessEdgesGetZero(t *testing.T) {
	h := core.New(core.WithWeighted())
	all := h.AddEdgesWeighted([][]core.Node{{1, 2}, {2, 3}, {3, 4}}, []float64{5, 6})
	assert.True(t, all)

	w, _ := h.Weight([]core.Node{1, 2})
	assert.Equal(t, 5.0, w)
	w, _ = h.Weight([]core.Node{2, 3})
	assert.Equal(t, 6.0, w)
	w, _ = h.Weight([]core.Node{3, 4})
	assert.Equal(t, 0.0, w)
}

func TestFromWeighted_LaterDuplicateWeightWins(t *testing.T) {
	h := core.FromWeighted(
		[][]core.Node{{1, 2}, {2, 3}, {1, 2}},
		[]float64{1, 2, 3},
	)
	assert.True(t, h.Weighted())
	assert.Equal(t, 2, h.NumEdges())
	w, _ := h.Weight([]core.Node{1, 2})
	assert.Equal(t, 3.0, w)
	require.NoError(t, h.Validate())
}

func TestFrom_Unweighted(t *testing.T) {
	h := core.From([][]core.Node{{1, 3, 7}, {2, 4, 3}, {1, 3, 7}})
	assert.False(t, h.Weighted())
	assert.Equal(t, 2, h.NumEdges())
	assert.Equal(t, []core.Node{1, 2, 3, 4, 7}, h.Nodes())
}

func TestRemoveEdge(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {2, 3}})
	assert.True(t, h.RemoveEdge([]core.Node{1, 2}))
	assert.False(t, h.HasEdge([]core.Node{1, 2}))
	assert.False(t, h.RemoveEdge([]core.Node{1, 2}))
	assert.True(t, h.HasNode(1), "nodes survive edge removal")

	isolated, err := h.IsIsolated(1)
	require.NoError(t, err)
	assert.True(t, isolated)

	assert.False(t, h.RemoveEdges([][]core.Node{{2, 3}, {9, 9}}))
	assert.Equal(t, 0, h.NumEdges(), "every element applied")
	require.NoError(t, h.Validate())
}

func TestSetWeight(t *testing.T) {
	h := core.New(core.WithWeighted())
	h.AddEdgeWeighted([]core.Node{1, 2}, 2)

	prev, err := h.SetWeight([]core.Node{1, 2}, 8)
	require.NoError(t, err)
	assert.Equal(t, 2.0, prev)
	w, _ := h.Weight([]core.Node{1, 2})
	assert.Equal(t, 8.0, w)

	_, err = h.SetWeight([]core.Node{2, 1}, 1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestRemoveNode_Weak(t *testing.T) {
	h := core.New(core.WithWeighted())
	h.AddEdgeWeighted([]core.Node{1, 2, 3}, 1.5)
	h.AddEdgeWeighted([]core.Node{3, 4}, 2.5)

	assert.True(t, h.RemoveNode(3))
	assert.False(t, h.HasNode(3))
	assert.False(t, h.RemoveNode(3))

	assert.True(t, h.HasEdge([]core.Node{1, 2}))
	assert.True(t, h.HasEdge([]core.Node{4}))
	w, _ := h.Weight([]core.Node{1, 2})
	assert.Equal(t, 1.5, w, "weight carried to the shortened edge")
	w, _ = h.Weight([]core.Node{4})
	assert.Equal(t, 2.5, w)
	require.NoError(t, h.Validate())
}

func TestRemoveNode_WeakStripsEveryOccurrence(t *testing.T) {
	h := core.New()
	h.AddEdge([]core.Node{1, 2, 1, 3})
	h.RemoveNode(1)

	assert.Equal(t, [][]core.Node{{2, 3}}, h.Edges())
	require.NoError(t, h.Validate())
}

func TestRemoveNode_WeakMergesIntoExisting(t *testing.T) {
	h := core.New(core.WithWeighted())
	h.AddEdgeWeighted([]core.Node{1, 2}, 10)
	h.AddEdgeWeighted([]core.Node{1, 2, 3}, 20)

	h.RemoveNode(3)
	assert.Equal(t, 1, h.NumEdges(), "[1 2 3] collapses onto [1 2]")
	w, _ := h.Weight([]core.Node{1, 2})
	assert.Equal(t, 20.0, w, "rebuilt weight wins")
	require.NoError(t, h.Validate())
}

func TestRemoveNode_WeakLeavesEmptyEdge(t *testing.T) {
	h := core.New()
	h.AddEdge([]core.Node{5, 5})
	h.AddNode(6)

	h.RemoveNode(5)
	assert.True(t, h.HasEdge([]core.Node{}))
	assert.Equal(t, 1, h.NumEdges())
	assert.Equal(t, []core.Node{6}, h.Nodes())
	require.NoError(t, h.Validate())
}

func TestStrongRemoveNode(t *testing.T) {
	h := core.From([][]core.Node{{1, 2, 3}, {3, 4}, {4, 5}})

	assert.True(t, h.StrongRemoveNode(3))
	assert.False(t, h.StrongRemoveNode(3))
	assert.Equal(t, [][]core.Node{{4, 5}}, h.Edges())
	assert.Equal(t, []core.Node{1, 2, 4, 5}, h.Nodes())

	assert.False(t, h.StrongRemoveNodes([]core.Node{1, 42}))
	assert.False(t, h.HasNode(1), "every element applied")
	assert.True(t, h.RemoveNodes([]core.Node{2}))
	require.NoError(t, h.Validate())
}

func TestClear_KeepsFlag(t *testing.T) {
	h := core.FromWeighted([][]core.Node{{1, 2}}, []float64{3})
	h.Clear()
	assert.Equal(t, 0, h.NumNodes())
	assert.Equal(t, 0, h.NumEdges())
	assert.True(t, h.Weighted())

	h.AddEdgeWeighted([]core.Node{1}, 2)
	w, _ := h.Weight([]core.Node{1})
	assert.Equal(t, 2.0, w)
}

func TestClone_Independent(t *testing.T) {
	h := core.FromWeighted([][]core.Node{{1, 2}, {2, 3}}, []float64{1, 2})
	h.AddNode(10)
	c := h.Clone()

	assert.Equal(t, h.Nodes(), c.Nodes())
	assert.Equal(t, h.Edges(), c.Edges())
	assert.Equal(t, h.Weights(), c.Weights())
	assert.True(t, c.Weighted())

	c.RemoveNode(2)
	c.SetWeight([]core.Node{1}, 99)
	assert.True(t, h.HasEdge([]core.Node{1, 2}))
	w, _ := h.Weight([]core.Node{1, 2})
	assert.Equal(t, 1.0, w)
	require.NoError(t, h.Validate())
	require.NoError(t, c.Validate())
}

func TestStats(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {2, 3}, {4, 4}})
	h.AddNode(7)

	st := h.Stats()
	assert.Equal(t, core.Stats{
		NodeCount:     5,
		EdgeCount:     3,
		IsolatedCount: 2, // 4 only has a self edge; 7 has none
		MaxSize:       2,
		UniformSize:   2,
		Uniform:       true,
	}, st)
	assert.Equal(t, "Hypergraph with 5 nodes and 3 edges", h.String())
}
