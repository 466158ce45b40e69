// SPDX-License-Identifier: MIT
// Package matrix - dense incidence builder.
//
// Contract:
//   - Rows follow h.Nodes() (ascending); columns follow node sequences in
//     lexicographic order, so equal hypergraphs give equal matrices.
//   - Entry (i, j) is the multiplicity of node i in hyperedge j, times the
//     weight under WithWeightedEntries.
//   - The empty hyperedge becomes an all-zero column.
//
// Complexity: O(V + E·s) time, O(V·E) space.

package matrix

import (
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/3michele/hgraph/core"
)

// IncidenceMatrix is a node-by-hyperedge incidence view.
type IncidenceMatrix struct {
	// Mat has one row per node and one column per kept hyperedge. It is nil
	// when either dimension is zero, since gonum forbids empty matrices.
	Mat *mat.Dense
	// NodeIndex maps a node to its row.
	NodeIndex map[core.Node]int
	// Nodes lists the node of each row.
	Nodes []core.Node
	// Edges lists the node sequence of each column.
	Edges [][]core.Node
}

// NewIncidenceMatrix builds the incidence view of h.
//
// Errors: ErrGraphNil, core filter errors.
func NewIncidenceMatrix(h *core.Hypergraph, opts ...Option) (*IncidenceMatrix, error) {
	if h == nil {
		return nil, errors.Wrap(ErrGraphNil, "NewIncidenceMatrix")
	}
	o, f, err := resolve(opts)
	if err != nil {
		return nil, errors.Wrap(err, "NewIncidenceMatrix")
	}

	nodes := h.Nodes()
	im := &IncidenceMatrix{NodeIndex: indexOf(nodes), Nodes: nodes}

	type column struct {
		nodes  []core.Node
		weight float64
	}
	var cols []column
	for e := range h.IterEdges() {
		if f.Match(e.Size()) {
			cols = append(cols, column{nodes: e.Nodes(), weight: e.Weight()})
		}
	}
	slices.SortFunc(cols, func(a, b column) int { return slices.Compare(a.nodes, b.nodes) })

	im.Edges = make([][]core.Node, len(cols))
	for j, c := range cols {
		im.Edges[j] = c.nodes
	}
	if len(nodes) == 0 || len(cols) == 0 {
		return im, nil
	}

	im.Mat = mat.NewDense(len(nodes), len(cols), nil)
	for j, c := range cols {
		mark := 1.0
		if o.weighted {
			mark = c.weight
		}
		for _, n := range c.nodes {
			i := im.NodeIndex[n]
			im.Mat.Set(i, j, im.Mat.At(i, j)+mark)
		}
	}

	return im, nil
}

// NodeCount returns the number of rows.
func (im *IncidenceMatrix) NodeCount() int { return len(im.Nodes) }

// EdgeCount returns the number of columns.
func (im *IncidenceMatrix) EdgeCount() int { return len(im.Edges) }

// NodeIncidence returns a copy of n's row.
//
// Errors: ErrUnknownNode.
func (im *IncidenceMatrix) NodeIncidence(n core.Node) ([]float64, error) {
	i, ok := im.NodeIndex[n]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNode, "NodeIncidence: %d", n)
	}
	out := make([]float64, len(im.Edges))
	if im.Mat != nil {
		mat.Row(out, i, im.Mat)
	}

	return out, nil
}

// EdgeNodes returns a copy of the node sequence of column j.
//
// Errors: ErrDimensionMismatch.
func (im *IncidenceMatrix) EdgeNodes(j int) ([]core.Node, error) {
	if j < 0 || j >= len(im.Edges) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "EdgeNodes: column %d out of range [0,%d)", j, len(im.Edges))
	}

	return slices.Clone(im.Edges[j]), nil
}

func indexOf(nodes []core.Node) map[core.Node]int {
	idx := make(map[core.Node]int, len(nodes))
	for i, n := range nodes {
		idx[n] = i
	}

	return idx
}
