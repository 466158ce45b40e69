// SPDX-License-Identifier: MIT

package core

import "iter"

// IterEdges yields the live hyperedge records ordered by EdgeID.
//
// The sequence is restartable: every range over it walks the current state.
// Records are owned by the hypergraph and must not be retained past the
// next mutation. Mutating the hypergraph while ranging panics with
// ErrModifiedDuringIteration.
//
//	for e := range h.IterEdges() {
//		fmt.Println(e.Nodes(), e.Weight())
//	}
func (h *Hypergraph) IterEdges() iter.Seq[*Hyperedge] {
	return func(yield func(*Hyperedge) bool) {
		start := h.version
		for _, id := range h.sortedEdgeIDs() {
			if !yield(h.edges[id]) {
				return
			}
			if h.version != start {
				panic(ErrModifiedDuringIteration)
			}
		}
	}
}
