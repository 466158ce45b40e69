// File: methods_adjacent.go
// Role: Adjacency queries over the incidence index: Neighbors, IncidentEdges,
//       IsIsolated, IsolatedNodes.
// Determinism:
//   - Neighbors and IsolatedNodes are ascending; IncidentEdges follows EdgeID.

package core

import (
	"slices"

	"github.com/pkg/errors"
)

// Neighbors returns every node other than n that shares a matching hyperedge
// with n, ascending. Without a filter every incident hyperedge counts.
//
// Errors: filter errors from ResolveFilter, ErrNodeNotFound if n is absent.
//
// Complexity: O(deg(n) · s) plus sorting the result.
func (h *Hypergraph) Neighbors(n Node, opts ...FilterOption) ([]Node, error) {
	f, err := ResolveFilter(opts...)
	if err != nil {
		return nil, err
	}
	ids, ok := h.incidence[n]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "neighbors of %d", n)
	}

	seen := make(map[Node]struct{})
	for id := range ids {
		e := h.edges[id]
		if !f.Match(e.Size()) {
			continue
		}
		for _, v := range e.nodes {
			if v != n {
				seen[v] = struct{}{}
			}
		}
	}
	out := make([]Node, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)

	return out, nil
}

// IncidentEdges returns copies of the matching hyperedges that contain n,
// ordered by EdgeID.
//
// Errors: filter errors from ResolveFilter, ErrNodeNotFound if n is absent.
func (h *Hypergraph) IncidentEdges(n Node, opts ...FilterOption) ([][]Node, error) {
	f, err := ResolveFilter(opts...)
	if err != nil {
		return nil, err
	}
	if _, ok := h.incidence[n]; !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "incident edges of %d", n)
	}

	out := make([][]Node, 0, len(h.incidence[n]))
	for _, id := range h.sortedIncidence(n) {
		if e := h.edges[id]; f.Match(e.Size()) {
			out = append(out, e.Nodes())
		}
	}

	return out, nil
}

// Degree returns the number of hyperedges containing n, or false if n is absent.
func (h *Hypergraph) Degree(n Node) (int, bool) {
	ids, ok := h.incidence[n]
	return len(ids), ok
}

// IsIsolated reports whether no matching hyperedge links n to another node.
// A hyperedge made only of n, such as [n] or [n n], does not break isolation.
//
// Errors: filter errors from ResolveFilter, ErrNodeNotFound if n is absent.
//
// Complexity: O(deg(n) · s); only n's own incidence set is scanned.
func (h *Hypergraph) IsIsolated(n Node, opts ...FilterOption) (bool, error) {
	f, err := ResolveFilter(opts...)
	if err != nil {
		return false, err
	}
	if _, ok := h.incidence[n]; !ok {
		return false, errors.Wrapf(ErrNodeNotFound, "isolation of %d", n)
	}

	return h.isolated(n, f), nil
}

// IsolatedNodes returns every isolated node under the filter, ascending.
//
// Complexity: O(V · deg · s), one IsIsolated check per node.
func (h *Hypergraph) IsolatedNodes(opts ...FilterOption) ([]Node, error) {
	f, err := ResolveFilter(opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Node, 0)
	for _, n := range h.Nodes() {
		if h.isolated(n, f) {
			out = append(out, n)
		}
	}

	return out, nil
}

func (h *Hypergraph) isolated(n Node, f Filter) bool {
	for id := range h.incidence[n] {
		e := h.edges[id]
		if f.Match(e.Size()) && e.containsOther(n) {
			return false
		}
	}

	return true
}
