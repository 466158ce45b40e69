// Package components finds connected components of a core.Hypergraph by
// repeated breadth-first search.
//
// Two nodes are connected when a chain of hyperedges links them. Every query
// accepts core arity filters, in which case only matching hyperedges link
// nodes; nodes touched by no matching hyperedge form singleton components.
//
// Determinism: BFS seeds are taken in ascending node order, so components
// are listed by their smallest member.
//
// Complexity: O(V · deg · s) for a full decomposition.
package components

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/bfs"
	"github.com/3michele/hgraph/core"
)

// ErrGraphNil is returned when a nil hypergraph is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Connected returns every connected component, ordered by smallest member.
// An empty hypergraph yields an empty list.
func Connected(h *core.Hypergraph, opts ...core.FilterOption) ([]*core.NodeSet, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	if _, err := core.ResolveFilter(opts...); err != nil {
		return nil, err
	}

	seen := core.NewNodeSet()
	comps := make([]*core.NodeSet, 0)
	for _, n := range h.Nodes() {
		if seen.Has(n) {
			continue
		}
		res, err := bfs.BFS(h, n, bfs.WithFilter(opts...))
		if err != nil {
			return nil, errors.Wrapf(err, "components: bfs from %d", n)
		}
		seen.AddAll(res.Visited)
		comps = append(comps, res.Visited)
	}

	return comps, nil
}

// OfNode returns the component holding n, or an empty set if n is absent.
func OfNode(h *core.Hypergraph, n core.Node, opts ...core.FilterOption) (*core.NodeSet, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	res, err := bfs.BFS(h, n, bfs.WithFilter(opts...))
	if err != nil {
		return nil, err
	}

	return res.Visited, nil
}

// Count returns the number of connected components.
func Count(h *core.Hypergraph, opts ...core.FilterOption) (int, error) {
	comps, err := Connected(h, opts...)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// Largest returns the biggest component. Ties go to the component with the
// smallest member; an empty hypergraph yields an empty set.
func Largest(h *core.Hypergraph, opts ...core.FilterOption) (*core.NodeSet, error) {
	comps, err := Connected(h, opts...)
	if err != nil {
		return nil, err
	}
	best := core.NewNodeSet()
	for _, c := range comps {
		if c.Len() > best.Len() {
			best = c
		}
	}

	return best, nil
}

// LargestSize returns the node count of the biggest component.
func LargestSize(h *core.Hypergraph, opts ...core.FilterOption) (int, error) {
	best, err := Largest(h, opts...)
	if err != nil {
		return 0, err
	}

	return best.Len(), nil
}

// IsConnected reports whether h has at most one component. An empty
// hypergraph is connected.
func IsConnected(h *core.Hypergraph, opts ...core.FilterOption) (bool, error) {
	n, err := Count(h, opts...)
	if err != nil {
		return false, err
	}

	return n <= 1, nil
}
