// Package converters exports a core.Hypergraph to gonum/graph
// representations so that gonum's algorithms (paths, topo, community,
// network) can run on hypergraph data.
//
//   - TwoSection: the clique expansion, an undirected weighted graph with an
//     edge between every pair of distinct nodes that share a hyperedge.
//   - Incidence: the bipartite incidence graph, one vertex per node and one
//     per hyperedge, linked by membership.
//
// Node identifiers are kept: core.Node n becomes gonum node ID int64(n).
// Both exporters accept core arity filters and only translate matching
// hyperedges; every node is exported either way.
package converters
