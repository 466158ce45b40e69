// File: methods_nodes.go
// Role: Node lifecycle: AddNode(s), weak RemoveNode(s), StrongRemoveNode(s).
// Notes:
//   - Batch variants apply every element and return the AND of the results.
//   - Weak removal rebuilds each touching hyperedge without the node; the
//     rebuilt sequence may coincide with an existing hyperedge, in which case
//     the two merge and the rebuilt weight is kept.

package core

import (
	"maps"
	"slices"

	"go.uber.org/zap"
)

// AddNode inserts n as an isolated node. It reports whether n was new.
// Complexity: O(1).
func (h *Hypergraph) AddNode(n Node) bool {
	if _, ok := h.incidence[n]; ok {
		return false
	}
	h.incidence[n] = make(map[EdgeID]struct{})
	h.touch()

	return true
}

// AddNodes adds every node and reports whether all of them were new.
func (h *Hypergraph) AddNodes(nodes []Node) bool {
	all := true
	for _, n := range nodes {
		all = h.AddNode(n) && all
	}

	return all
}

// RemoveNode performs a weak removal of n: every hyperedge containing n is
// replaced by the same sequence with all occurrences of n stripped, keeping
// its weight. It reports whether n existed.
//
// A hyperedge made only of n turns into the empty hyperedge.
//
// Complexity: O(deg(n) · s) where s is the largest touching edge size.
func (h *Hypergraph) RemoveNode(n Node) bool {
	ids, ok := h.incidence[n]
	if !ok {
		return false
	}
	delete(h.incidence, n)
	h.touch()

	// ascending ids so merges resolve the same way on every run
	for _, id := range slices.Sorted(maps.Keys(ids)) {
		e, ok := h.edges[id]
		if !ok {
			continue
		}
		h.removeRecord(id, e)
		shortened := slices.DeleteFunc(slices.Clone(e.nodes), func(v Node) bool { return v == n })
		merged := !h.AddEdgeWeighted(shortened, e.weight)
		h.logger.Debug("hyperedge rebuilt after node removal",
			zap.Int64("node", int64(n)),
			zap.Uint64("old_edge", uint64(id)),
			zap.Uint64("new_edge", uint64(Fingerprint(shortened))),
			zap.Bool("merged", merged))
	}

	return true
}

// StrongRemoveNode removes n and deletes every hyperedge that contains it.
// It reports whether n existed.
func (h *Hypergraph) StrongRemoveNode(n Node) bool {
	ids, ok := h.incidence[n]
	if !ok {
		return false
	}
	delete(h.incidence, n)
	h.touch()

	removed := 0
	for id := range ids {
		if e, ok := h.edges[id]; ok {
			h.removeRecord(id, e)
			removed++
		}
	}
	h.logger.Debug("node strongly removed",
		zap.Int64("node", int64(n)),
		zap.Int("edges_removed", removed))

	return true
}

// RemoveNodes weakly removes every node and reports whether all existed.
func (h *Hypergraph) RemoveNodes(nodes []Node) bool {
	all := true
	for _, n := range nodes {
		all = h.RemoveNode(n) && all
	}

	return all
}

// StrongRemoveNodes strongly removes every node and reports whether all existed.
func (h *Hypergraph) StrongRemoveNodes(nodes []Node) bool {
	all := true
	for _, n := range nodes {
		all = h.StrongRemoveNode(n) && all
	}

	return all
}

// Nodes returns every node in ascending order.
func (h *Hypergraph) Nodes() []Node {
	out := make([]Node, 0, len(h.incidence))
	for n := range h.incidence {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}
