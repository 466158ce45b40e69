// SPDX-License-Identifier: MIT

// Package core provides an in-memory hypergraph store: nodes, hyperedges
// joining any number of nodes, and optional per-edge weights.
//
// Storage is a pair of indexes kept in lockstep by the Hypergraph methods:
//
//	incidence: Node   → set of EdgeID   (every node has an entry, maybe empty)
//	edges:     EdgeID → *Hyperedge      (the key is Fingerprint(record nodes))
//
// A hyperedge is identified by its node sequence as given. Order and
// repetitions are kept, so [1 2] and [2 1] are two different hyperedges.
// Adding a sequence that is already stored only updates its weight.
//
// Weighted vs. unweighted:
//
//	h := core.New()                   // every stored weight is 0
//	w := core.New(core.WithWeighted()) // weights kept as given
//
// Removing a node comes in two flavors:
//
//   - RemoveNode (weak) rebuilds every touching hyperedge without the node.
//     A rebuilt sequence equal to an existing one merges into it and the
//     rebuilt weight wins.
//   - StrongRemoveNode deletes every touching hyperedge.
//
// Arity filters:
//
// Queries that accept FilterOption values narrow the hyperedges they look at
// by ByOrder(k) (order = size-1) or BySize(k), optionally relaxed with UpTo()
// to "at most". Giving both an order and a size fails with
// ErrInvalidFilterCombination before any work is done.
//
// Absence:
//
// A node that is not stored is not a failure of the hypergraph. Node-keyed
// queries (Neighbors, IncidentEdges, IsIsolated) report it by returning an
// empty result together with an error wrapping ErrNodeNotFound; test it with
// errors.Is and treat it as "no such node", not as a broken store. Degree
// and Weight report absence through their bool result, the removals return
// false without touching h, and Subhypergraph keeps a requested node that h
// lacks as an isolated node.
//
// Determinism:
//
// Nodes, Neighbors and IsolatedNodes are ascending. Edges, weights, sizes,
// IncidentEdges and IterEdges follow EdgeID ascending. NodeSet iterates in
// ascending order.
//
// Concurrency:
//
// A Hypergraph is not safe for concurrent use. Slices returned by queries are
// copies; IterEdges yields live records and panics if the hypergraph changes
// under it.
//
// Traversal, components and exports live in the bfs, dfs, components and
// converters packages.
package core
