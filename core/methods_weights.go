// File: methods_weights.go
// Role: Weight and arity listings: Weight(s), Orders/Sizes, Max*, IsUniform,
//       DistributionOfSizes, NumEdgesWith.
// Determinism:
//   - Listings follow EdgeID ascending, matching Edges().

package core

// Weight returns the weight of the hyperedge with this sequence and whether
// it is stored.
func (h *Hypergraph) Weight(nodes []Node) (float64, bool) {
	e, ok := h.edges[Fingerprint(nodes)]
	if !ok {
		return 0, false
	}

	return e.weight, true
}

// Weights lists every hyperedge weight ordered by EdgeID, or nil when there
// are no hyperedges.
func (h *Hypergraph) Weights() []float64 {
	if len(h.edges) == 0 {
		return nil
	}
	out := make([]float64, 0, len(h.edges))
	for _, id := range h.sortedEdgeIDs() {
		out = append(out, h.edges[id].weight)
	}

	return out
}

// WeightsWith lists the weights of hyperedges matching the filter.
// An order or a size is required.
func (h *Hypergraph) WeightsWith(opts ...FilterOption) ([]float64, error) {
	f, err := resolveRequired(opts...)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, id := range h.sortedEdgeIDs() {
		if e := h.edges[id]; f.Match(e.Size()) {
			out = append(out, e.weight)
		}
	}

	return out, nil
}

// NumEdgesWith counts hyperedges matching the filter. An order or a size is
// required. Complexity: O(E).
func (h *Hypergraph) NumEdgesWith(opts ...FilterOption) (int, error) {
	f, err := resolveRequired(opts...)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range h.edges {
		if f.Match(e.Size()) {
			count++
		}
	}

	return count, nil
}

// Sizes lists every hyperedge size ordered by EdgeID, or nil without edges.
func (h *Hypergraph) Sizes() []int {
	if len(h.edges) == 0 {
		return nil
	}
	out := make([]int, 0, len(h.edges))
	for _, id := range h.sortedEdgeIDs() {
		out = append(out, h.edges[id].Size())
	}

	return out
}

// Orders lists every hyperedge order ordered by EdgeID, or nil without edges.
func (h *Hypergraph) Orders() []int {
	sizes := h.Sizes()
	for i := range sizes {
		sizes[i]--
	}

	return sizes
}

// MaxSize returns the largest hyperedge size, 0 when there are no edges.
func (h *Hypergraph) MaxSize() int {
	best := 0
	for _, e := range h.edges {
		best = max(best, e.Size())
	}

	return best
}

// MaxOrder returns the largest hyperedge order, 0 when there are no edges.
func (h *Hypergraph) MaxOrder() int {
	if len(h.edges) == 0 {
		return 0
	}

	return h.MaxSize() - 1
}

// IsUniform reports whether every hyperedge has the same size and returns
// that size. A hypergraph with no edges is 0-uniform.
func (h *Hypergraph) IsUniform() (int, bool) {
	size := -1
	for _, e := range h.edges {
		switch {
		case size < 0:
			size = e.Size()
		case e.Size() != size:
			return 0, false
		}
	}

	return max(size, 0), true
}

// DistributionOfSizes maps each hyperedge size to the number of hyperedges
// of that size.
func (h *Hypergraph) DistributionOfSizes() map[int]int {
	out := make(map[int]int)
	for _, e := range h.edges {
		out[e.Size()]++
	}

	return out
}

// DistributionOfOrders is DistributionOfSizes keyed by order (size - 1).
func (h *Hypergraph) DistributionOfOrders() map[int]int {
	out := make(map[int]int)
	for size, count := range h.DistributionOfSizes() {
		out[size-1] = count
	}

	return out
}
