// SPDX-License-Identifier: MIT
// Package matrix - 2-section adjacency and Laplacian.
//
// Contract:
//   - Rows and columns follow h.Nodes() (ascending).
//   - Entry (i, j), i != j, sums the weight of every kept hyperedge holding
//     both nodes; unweighted hypergraphs count hyperedges instead.
//   - The diagonal is zero; repeated nodes inside a hyperedge add nothing.
//
// Complexity: O(V² + E·s²) time, O(V²) space.

package matrix

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/3michele/hgraph/core"
)

// zeroTol bounds eigenvalues treated as zero.
const zeroTol = 1e-9

// AdjacencyMatrix is the symmetric 2-section adjacency of a hypergraph.
type AdjacencyMatrix struct {
	// Mat is nil for a hypergraph without nodes.
	Mat       *mat.SymDense
	NodeIndex map[core.Node]int
	Nodes     []core.Node
}

// NewAdjacencyMatrix builds the 2-section adjacency of h.
//
// Errors: ErrGraphNil, core filter errors.
func NewAdjacencyMatrix(h *core.Hypergraph, opts ...Option) (*AdjacencyMatrix, error) {
	if h == nil {
		return nil, errors.Wrap(ErrGraphNil, "NewAdjacencyMatrix")
	}
	_, f, err := resolve(opts)
	if err != nil {
		return nil, errors.Wrap(err, "NewAdjacencyMatrix")
	}

	nodes := h.Nodes()
	am := &AdjacencyMatrix{NodeIndex: indexOf(nodes), Nodes: nodes}
	if len(nodes) == 0 {
		return am, nil
	}
	am.Mat = mat.NewSymDense(len(nodes), nil)

	for e := range h.IterEdges() {
		if !f.Match(e.Size()) {
			continue
		}
		w := 1.0
		if h.Weighted() {
			w = e.Weight()
		}
		rows := distinctRows(e.Nodes(), am.NodeIndex)
		for a := 0; a < len(rows); a++ {
			for b := a + 1; b < len(rows); b++ {
				i, j := rows[a], rows[b]
				am.Mat.SetSym(i, j, am.Mat.At(i, j)+w)
			}
		}
	}

	return am, nil
}

// Weight returns the entry for the pair (u, v).
//
// Errors: ErrUnknownNode.
func (am *AdjacencyMatrix) Weight(u, v core.Node) (float64, error) {
	i, ok := am.NodeIndex[u]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNode, "Weight: %d", u)
	}
	j, ok := am.NodeIndex[v]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNode, "Weight: %d", v)
	}

	return am.Mat.At(i, j), nil
}

// Laplacian returns D - A, where D holds the row sums of A. It is nil for
// an empty adjacency.
func (am *AdjacencyMatrix) Laplacian() *mat.SymDense {
	if am.Mat == nil {
		return nil
	}
	n := len(am.Nodes)
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		deg := 0.0
		for j := 0; j < n; j++ {
			if i != j {
				a := am.Mat.At(i, j)
				deg += a
				if j > i {
					lap.SetSym(i, j, -a)
				}
			}
		}
		lap.SetSym(i, i, deg)
	}

	return lap
}

// ZeroEigenvalues counts the Laplacian eigenvalues within zeroTol of zero.
// With non-negative weights it equals the number of connected components of
// the filtered hypergraph; zero-weight hyperedges count as absent.
//
// Errors: eigendecomposition failure.
func (am *AdjacencyMatrix) ZeroEigenvalues() (int, error) {
	lap := am.Laplacian()
	if lap == nil {
		return 0, nil
	}
	var es mat.EigenSym
	if ok := es.Factorize(lap, false); !ok {
		return 0, errors.New("matrix: Laplacian eigendecomposition failed")
	}
	count := 0
	for _, v := range es.Values(nil) {
		if math.Abs(v) < zeroTol {
			count++
		}
	}

	return count, nil
}

// distinctRows maps nodes to rows, dropping repeats.
func distinctRows(nodes []core.Node, idx map[core.Node]int) []int {
	rows := make([]int, 0, len(nodes))
	seen := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		r := idx[n]
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		rows = append(rows, r)
	}

	return rows
}
