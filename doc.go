// Package hgraph is an in-memory hypergraph store with traversal, component
// analysis and export tooling.
//
// What is hgraph?
//
//	A hyperedge joins any number of nodes, so a single edge can model a
//	group chat, a co-authored paper or a chemical reaction. hgraph keeps a
//	dual index (node to incident hyperedges, hyperedge id to record) that
//	answers both directions in constant time and stays consistent across
//	every mutation:
//		• Store: add/remove nodes and hyperedges, weak and strong node removal
//		• Queries: neighbors, incident edges, weights, arity statistics
//		• Filters: restrict any query to an order or size, exactly or "up to"
//		• Traversals: BFS, DFS
//		• Components: connected components, largest, connectivity
//		• Views: sub-hypergraphs by node subset or by arity
//		• Export: gonum 2-section and incidence graphs, matrices, text dumps
//
// Layout:
//
//	core/        Node, Hyperedge, NodeSet, fingerprint and the Hypergraph store
//	bfs/         breadth-first traversal with depth bound and hooks
//	dfs/         depth-first traversal, pre/post order, forests
//	components/  connected components over BFS
//	converters/  gonum graph exports (2-section, bipartite incidence)
//	matrix/      incidence and adjacency matrices, Laplacian spectrum
//	builder/     deterministic hypergraph generators
//	format/      deterministic human-readable dump
//	cmd/hgraph/  CLI over YAML documents
//
// Quick example: {1 2 3} is one hyperedge of size 3 (order 2) and {3 4} a
// pairwise one.
//
//	h := core.From([][]core.Node{{1, 2, 3}, {3, 4}})
//	res, _ := bfs.BFS(h, 1)
//	fmt.Println(res.Order) // [1 2 3 4]
package hgraph
