package converters

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/3michele/hgraph/core"
)

// ErrGraphNil is returned when a nil hypergraph is passed.
var ErrGraphNil = errors.New("converters: graph is nil")

// TwoSection builds the clique expansion of h.
//
// Each matching hyperedge links every pair of its distinct nodes. A pair
// shared by several hyperedges gets one gonum edge whose weight is the sum
// of their weights on weighted hypergraphs, or the number of shared
// hyperedges on unweighted ones. Repeated nodes and single-node hyperedges
// add no self edges.
//
// Complexity: O(V + Σ s²) over matching hyperedges of size s.
func TwoSection(h *core.Hypergraph, opts ...core.FilterOption) (*simple.WeightedUndirectedGraph, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	f, err := core.ResolveFilter(opts...)
	if err != nil {
		return nil, err
	}

	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, n := range h.Nodes() {
		g.AddNode(simple.Node(n))
	}
	for e := range h.IterEdges() {
		if !f.Match(e.Size()) {
			continue
		}
		inc := 1.0
		if h.Weighted() {
			inc = e.Weight()
		}
		members := distinct(e.Nodes())
		for i := range members {
			for j := i + 1; j < len(members); j++ {
				u, v := int64(members[i]), int64(members[j])
				w, ok := g.Weight(u, v)
				if !ok {
					w = 0
				}
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(v), w+inc))
			}
		}
	}

	return g, nil
}

// distinct drops repeated nodes, keeping first occurrences in order.
func distinct(nodes []core.Node) []core.Node {
	seen := make(map[core.Node]struct{}, len(nodes))
	out := nodes[:0]
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
