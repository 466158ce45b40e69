// File: view.go
// Role: Non-mutating sub-hypergraph views.
// Notes:
//   - Views never mutate the source; results are fresh hypergraphs sharing
//     no memory with it and inheriting its weighted flag and logger.

package core

import (
	"slices"

	"github.com/pkg/errors"
)

// Subhypergraph returns the hypergraph induced by nodes: exactly the given
// nodes, plus every hyperedge of h whose node set is a subset of them. A
// requested node absent from h appears isolated. Membership is a set test,
// so edge order and repetitions do not matter.
//
// Complexity: O(len(nodes) + sum of edge sizes).
func (h *Hypergraph) Subhypergraph(nodes []Node) *Hypergraph {
	keep := make(map[Node]struct{}, len(nodes))
	for _, n := range nodes {
		keep[n] = struct{}{}
	}
	out := h.emptyLike(len(keep), 0)
	for n := range keep {
		out.AddNode(n)
	}
	for _, id := range h.sortedEdgeIDs() {
		e := h.edges[id]
		inside := true
		for _, v := range e.nodes {
			if _, ok := keep[v]; !ok {
				inside = false
				break
			}
		}
		if inside {
			out.insertRecord(id, newHyperedge(e.nodes, e.weight))
		}
	}

	return out
}

// ArityOption selects the hyperedge arities kept by SubhypergraphByArity.
type ArityOption func(a *aritySelection)

type aritySelection struct {
	orders, sizes []int
	hasOrders     bool
	hasSizes      bool
}

// Orders keeps hyperedges whose order is one of ks.
func Orders(ks ...int) ArityOption {
	return func(a *aritySelection) {
		a.orders = append(a.orders, ks...)
		a.hasOrders = true
	}
}

// Sizes keeps hyperedges whose size is one of ks.
func Sizes(ks ...int) ArityOption {
	return func(a *aritySelection) {
		a.sizes = append(a.sizes, ks...)
		a.hasSizes = true
	}
}

// SubhypergraphByArity returns a hypergraph with only the hyperedges whose
// arity is selected. With keepNodes every node of h is copied, isolated or
// not; otherwise only nodes of kept hyperedges appear.
//
// Errors: ErrInvalidFilterCombination when both Orders and Sizes are given,
// ErrMissingFilter when neither is.
func (h *Hypergraph) SubhypergraphByArity(keepNodes bool, opts ...ArityOption) (*Hypergraph, error) {
	var sel aritySelection
	for _, opt := range opts {
		if opt != nil {
			opt(&sel)
		}
	}
	switch {
	case sel.hasOrders && sel.hasSizes:
		return nil, errors.Wrapf(ErrInvalidFilterCombination, "orders %v, sizes %v", sel.orders, sel.sizes)
	case !sel.hasOrders && !sel.hasSizes:
		return nil, ErrMissingFilter
	}
	sizes := sel.sizes
	if sel.hasOrders {
		sizes = make([]int, len(sel.orders))
		for i, k := range sel.orders {
			sizes[i] = k + 1
		}
	}

	out := h.emptyLike(0, 0)
	if keepNodes {
		for n := range h.incidence {
			out.AddNode(n)
		}
	}
	for _, id := range h.sortedEdgeIDs() {
		if e := h.edges[id]; slices.Contains(sizes, e.Size()) {
			out.insertRecord(id, newHyperedge(e.nodes, e.weight))
		}
	}

	return out, nil
}

// emptyLike returns an empty hypergraph with h's configuration.
func (h *Hypergraph) emptyLike(nodes, edges int) *Hypergraph {
	opts := []Option{WithLogger(h.logger), WithCapacity(nodes, edges)}
	if h.weighted {
		opts = append(opts, WithWeighted())
	}

	return New(opts...)
}
