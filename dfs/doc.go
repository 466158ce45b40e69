// Package dfs implements depth-first traversal on a core.Hypergraph.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking. Two nodes are adjacent when a hyperedge holds both.
//     Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Arity filtering of the hyperedges crossed
//   - Forest traversal over every component
//
// Visitation:
//
//	The visited check precedes recursion, so a node is never expanded twice.
//	Depth is the depth of first discovery, which depends on exploration
//	order; use bfs for hop distances. Neighbors arrive ascending, which
//	makes the traversal deterministic.
//
// Complexity:
//
//   - Time:   O(V · deg · s) for neighbor expansion, plus hooks.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Recursion depth is bounded by the longest discovery path, at most V.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook; error aborts traversal.
//   - WithOnExit(fn)            post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)       nodes at depth limit are not expanded (>=0).
//   - WithOrder(k), WithSize(k) only cross hyperedges of that arity.
//   - WithFilter(opts...)       raw core filter options, e.g. core.UpTo().
//   - WithFullTraversal()       restart from every unvisited node.
//
// Errors:
//
//   - ErrGraphNil               if h is nil.
//   - ErrOptionViolation        negative MaxDepth.
//   - core filter errors        conflicting or negative arity filters.
//   - context.Canceled          if ctx is done.
//   - hook errors               propagated from OnVisit or OnExit.
package dfs
