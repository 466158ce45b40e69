package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/dfs"
)

// buildChain creates a chain of n nodes linked by pairwise hyperedges: 0-1-2-…-n-1.
func buildChain(n int) *core.Hypergraph {
	h := core.New()
	for i := 0; i < n-1; i++ {
		h.AddEdge([]core.Node{core.Node(i), core.Node(i + 1)})
	}

	return h
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_BadOptions(t *testing.T) {
	h := buildChain(3)
	_, err := dfs.DFS(h, 0, dfs.WithMaxDepth(-3))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	_, err = dfs.DFS(h, 0, dfs.WithOrder(1), dfs.WithSize(2))
	assert.ErrorIs(t, err, core.ErrInvalidFilterCombination)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), 42)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Visited.Len())
	assert.Empty(t, res.Order)
}

func TestDFS_SingleNode(t *testing.T) {
	h := core.New()
	h.AddNode(5)

	res, err := dfs.DFS(h, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{5}, res.Order)
	assert.Equal(t, []core.Node{5}, res.PostOrder)
	assert.Equal(t, 0, res.Depth[5])
}

func TestDFS_PreAndPostOrder(t *testing.T) {
	// 1 touches {2,3} through one triple; 2 continues to 4
	h := core.From([][]core.Node{{1, 2, 3}, {2, 4}})

	res, err := dfs.DFS(h, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{1, 2, 3, 4}, res.Order)
	assert.Equal(t, []core.Node{3, 4, 2, 1}, res.PostOrder)
	assert.Equal(t, map[core.Node]core.Node{2: 1, 3: 2, 4: 2}, res.Parent)
}

// TestDFS_FirstSeenDepthWins shows depth follows discovery, not distance.
func TestDFS_FirstSeenDepthWins(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {2, 3}, {1, 3}})

	res, err := dfs.DFS(h, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth[3], "reached through 2 first")
}

func TestDFS_MaxDepth(t *testing.T) {
	h := buildChain(6)

	res, err := dfs.DFS(h, 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2}, res.Visited.Nodes())

	res, err = dfs.DFS(h, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0}, res.Visited.Nodes())
}

func TestDFS_SizeFilter(t *testing.T) {
	h := core.From([][]core.Node{{1, 2, 3}, {2, 5}, {5, 1}, {3, 4}})

	res, err := dfs.DFS(h, 1, dfs.WithSize(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{1, 2, 5}, res.Visited.Nodes())

	res, err = dfs.DFS(h, 1, dfs.WithOrder(2))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{1, 2, 3}, res.Visited.Nodes())
}

func TestDFS_FullTraversal(t *testing.T) {
	h := core.From([][]core.Node{{1, 2}, {3, 4}})
	h.AddNode(9)

	res, err := dfs.DFS(h, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []core.Node{1, 2, 3, 4, 9}, res.Order)
	assert.Equal(t, 0, res.Depth[3])
	_, hasParent := res.Parent[3]
	assert.False(t, hasParent, "component roots have no parent")
}

func TestDFS_Hooks(t *testing.T) {
	h := buildChain(4)
	var visits []core.Node
	var exits []core.Node
	_, err := dfs.DFS(h, 0,
		dfs.WithOnVisit(func(n core.Node, _ int) error {
			visits = append(visits, n)
			return nil
		}),
		dfs.WithOnExit(func(n core.Node) error {
			exits = append(exits, n)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2, 3}, visits)
	assert.Equal(t, []core.Node{3, 2, 1, 0}, exits)

	boom := errors.New("boom")
	_, err = dfs.DFS(h, 0, dfs.WithOnExit(func(n core.Node) error {
		if n == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(3), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
