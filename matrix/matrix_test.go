package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/3michele/hgraph/builder"
	"github.com/3michele/hgraph/components"
	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/matrix"
)

func sample() *core.Hypergraph {
	h := core.New(core.WithWeighted())
	h.AddEdgeWeighted([]core.Node{1, 2, 3}, 2)
	h.AddEdgeWeighted([]core.Node{2, 3}, 0.5)
	h.AddEdgeWeighted([]core.Node{4, 4}, 1)
	h.AddNode(5)

	return h
}

func TestIncidence(t *testing.T) {
	im, err := matrix.NewIncidenceMatrix(sample())
	require.NoError(t, err)
	assert.Equal(t, 5, im.NodeCount())
	assert.Equal(t, 3, im.EdgeCount())
	assert.Equal(t, [][]core.Node{{1, 2, 3}, {2, 3}, {4, 4}}, im.Edges)

	want := mat.NewDense(5, 3, []float64{
		1, 0, 0,
		1, 1, 0,
		1, 1, 0,
		0, 0, 2,
		0, 0, 0,
	})
	assert.True(t, mat.Equal(want, im.Mat))

	row, err := im.NodeIncidence(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, row)

	_, err = im.NodeIncidence(42)
	assert.ErrorIs(t, err, matrix.ErrUnknownNode)

	nodes, err := im.EdgeNodes(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{2, 3}, nodes)
	_, err = im.EdgeNodes(3)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIncidence_Options(t *testing.T) {
	im, err := matrix.NewIncidenceMatrix(sample(), matrix.WithWeightedEntries(), matrix.WithFilter(core.BySize(3)))
	require.NoError(t, err)
	require.Equal(t, 1, im.EdgeCount())
	row, err := im.NodeIncidence(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, row)

	im, err = matrix.NewIncidenceMatrix(sample(), matrix.WithFilter(core.BySize(7)))
	require.NoError(t, err)
	assert.Nil(t, im.Mat)
	row, err = im.NodeIncidence(1)
	require.NoError(t, err)
	assert.Empty(t, row)

	_, err = matrix.NewIncidenceMatrix(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.NewIncidenceMatrix(sample(), matrix.WithFilter(core.ByOrder(-1)))
	assert.ErrorIs(t, err, core.ErrNegativeArity)
}

func TestAdjacency(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(sample())
	require.NoError(t, err)

	w, err := am.Weight(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
	w, err = am.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	w, err = am.Weight(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)

	_, err = am.Weight(1, 99)
	assert.ErrorIs(t, err, matrix.ErrUnknownNode)

	lap := am.Laplacian()
	assert.Equal(t, 4.5, lap.At(1, 1))
	assert.Equal(t, -2.5, lap.At(1, 2))

	// unweighted hypergraphs count shared hyperedges
	am, err = matrix.NewAdjacencyMatrix(core.From([][]core.Node{{1, 2, 3}, {2, 3}}))
	require.NoError(t, err)
	w, err = am.Weight(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	am, err = matrix.NewAdjacencyMatrix(core.New())
	require.NoError(t, err)
	assert.Nil(t, am.Laplacian())
	zeros, err := am.ZeroEigenvalues()
	require.NoError(t, err)
	assert.Equal(t, 0, zeros)
}

// TestZeroEigenvalues_MatchComponents checks the spectral component count
// against the traversal-based one.
func TestZeroEigenvalues_MatchComponents(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		h, err := builder.Build(nil, []builder.Option{builder.WithSeed(seed)},
			builder.RandomUniform(15, 6, 3))
		require.NoError(t, err)

		am, err := matrix.NewAdjacencyMatrix(h)
		require.NoError(t, err)
		zeros, err := am.ZeroEigenvalues()
		require.NoError(t, err)

		n, err := components.Count(h)
		require.NoError(t, err)
		assert.Equal(t, n, zeros, "seed=%d", seed)
	}
}
