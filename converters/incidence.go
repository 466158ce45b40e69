package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/3michele/hgraph/core"
)

// IncidenceGraph is the bipartite view of a hypergraph.
type IncidenceGraph struct {
	// Graph holds node vertices (ID = node value) and hyperedge vertices.
	Graph *simple.UndirectedGraph

	// Edges maps each hyperedge vertex ID back to its EdgeID.
	Edges map[int64]core.EdgeID
}

// IsEdgeVertex reports whether the gonum vertex id stands for a hyperedge.
func (ig *IncidenceGraph) IsEdgeVertex(id int64) bool {
	_, ok := ig.Edges[id]
	return ok
}

// Incidence builds the bipartite incidence graph of h. Hyperedge vertices
// take fresh ids that do not clash with any node id. A repeated node is
// linked once.
func Incidence(h *core.Hypergraph, opts ...core.FilterOption) (*IncidenceGraph, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	f, err := core.ResolveFilter(opts...)
	if err != nil {
		return nil, err
	}

	g := simple.NewUndirectedGraph()
	for _, n := range h.Nodes() {
		g.AddNode(simple.Node(n))
	}
	out := &IncidenceGraph{Graph: g, Edges: make(map[int64]core.EdgeID)}
	for e := range h.IterEdges() {
		if !f.Match(e.Size()) {
			continue
		}
		ev := g.NewNode()
		g.AddNode(ev)
		out.Edges[ev.ID()] = e.ID()
		for _, n := range distinct(e.Nodes()) {
			g.SetEdge(g.NewEdge(simple.Node(n), ev))
		}
	}

	return out, nil
}
