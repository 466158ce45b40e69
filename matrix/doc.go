// Package matrix offers matrix views of a core.Hypergraph backed by gonum.
//
// The matrix package provides:
//
//   - IncidenceMatrix: node-by-hyperedge incidence, rows ordered by node and
//     columns by node sequence. An entry counts how often the node occurs in
//     the hyperedge, so [7 7] contributes 2.
//   - AdjacencyMatrix: the symmetric 2-section adjacency, where entry (i, j)
//     sums the weights (or counts, for unweighted hypergraphs) of hyperedges
//     holding both nodes.
//   - Laplacian and ZeroEigenvalues for spectral checks: the number of zero
//     Laplacian eigenvalues equals the number of connected components.
//
// Matrices are best for small hypergraphs where O(V²) and O(V·E) memory are
// acceptable. Both builders honor the core arity filters.
package matrix
