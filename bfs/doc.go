// Package bfs provides breadth-first search over a core.Hypergraph.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//     Two nodes are one hop apart when some hyperedge holds both.
//   - Returns a Result containing:
//   - Visited: ordered set of every reached node
//   - Order: visit sequence
//   - Depth: map from node → hop distance from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is first seen)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Restricts the hyperedges crossed by arity via WithOrder, WithSize
//     or WithFilter(core.BySize(k), core.UpTo()).
//   - Honors a MaxDepth bound: nodes at depth MaxDepth are reached but
//     not expanded.
//
// Marking
//
//	A node is marked visited when it is enqueued, never when it is dequeued,
//	so no node enters the queue twice.
//
// Determinism
//
//	core.Hypergraph.Neighbors returns nodes ascending and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Missing start
//
//	A start node that is not in the hypergraph yields an empty Result and a
//	nil error.
//
// Complexity (V = nodes, E = hyperedges)
//
//   - Time:   O(V · deg · s) neighbor expansion, s the largest edge size
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(h, 1, bfs.WithMaxDepth(2), bfs.WithSize(2))
//	if err != nil {
//		// ErrGraphNil, ErrOptionViolation, core filter errors or hook errors
//	}
//	fmt.Println(res.Visited, res.Order)
package bfs
