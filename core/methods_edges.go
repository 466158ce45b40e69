// File: methods_edges.go
// Role: Hyperedge lifecycle: AddEdge(s), RemoveEdge(s), SetWeight, plus the
//       record-level helpers insertRecord/removeRecord.
// Determinism:
//   - Edges()/EdgesWith() return copies ordered by EdgeID ascending.

package core

import "github.com/pkg/errors"

// AddEdge adds the node sequence with weight 0. Missing nodes are created.
// It reports whether the hyperedge was new; re-adding an existing sequence
// resets its weight to 0 and returns false.
func (h *Hypergraph) AddEdge(nodes []Node) bool {
	return h.AddEdgeWeighted(nodes, 0)
}

// AddEdgeWeighted adds the node sequence with weight w, or updates the weight
// of the stored hyperedge with the same sequence. w is stored as 0 when the
// hypergraph is unweighted. The input slice is copied.
//
// Complexity: O(len(nodes)).
func (h *Hypergraph) AddEdgeWeighted(nodes []Node, w float64) bool {
	if !h.weighted {
		w = 0
	}
	id := Fingerprint(nodes)
	h.touch()
	if e, ok := h.edges[id]; ok {
		e.weight = w
		return false
	}
	h.insertRecord(id, newHyperedge(nodes, w))

	return true
}

// AddEdges adds every sequence with weight 0 and reports whether all were new.
func (h *Hypergraph) AddEdges(edges [][]Node) bool {
	all := true
	for _, nodes := range edges {
		all = h.AddEdge(nodes) && all
	}

	return all
}

// AddEdgesWeighted adds edges[i] with weights[i]; edges past the end of
// weights get 0. It reports whether all hyperedges were new.
func (h *Hypergraph) AddEdgesWeighted(edges [][]Node, weights []float64) bool {
	all := true
	for i, nodes := range edges {
		var w float64
		if i < len(weights) {
			w = weights[i]
		}
		all = h.AddEdgeWeighted(nodes, w) && all
	}

	return all
}

// RemoveEdge deletes the hyperedge with this exact sequence. Its nodes stay.
// It reports whether the hyperedge existed.
//
// Complexity: O(len(nodes)).
func (h *Hypergraph) RemoveEdge(nodes []Node) bool {
	id := Fingerprint(nodes)
	e, ok := h.edges[id]
	if !ok {
		return false
	}
	h.removeRecord(id, e)

	return true
}

// RemoveEdges deletes every sequence and reports whether all existed.
func (h *Hypergraph) RemoveEdges(edges [][]Node) bool {
	all := true
	for _, nodes := range edges {
		all = h.RemoveEdge(nodes) && all
	}

	return all
}

// SetWeight replaces the weight of an existing hyperedge and returns the
// previous one. On unweighted hypergraphs the stored weight stays 0.
//
// Errors: ErrEdgeNotFound if the sequence is not stored.
func (h *Hypergraph) SetWeight(nodes []Node, w float64) (float64, error) {
	e, ok := h.edges[Fingerprint(nodes)]
	if !ok {
		return 0, errors.Wrapf(ErrEdgeNotFound, "set weight of %v", nodes)
	}
	if !h.weighted {
		w = 0
	}
	prev := e.weight
	e.weight = w
	h.touch()

	return prev, nil
}

// Edges returns a copy of every node sequence ordered by EdgeID, or nil when
// there are no hyperedges.
func (h *Hypergraph) Edges() [][]Node {
	if len(h.edges) == 0 {
		return nil
	}
	out := make([][]Node, 0, len(h.edges))
	for _, id := range h.sortedEdgeIDs() {
		out = append(out, h.edges[id].Nodes())
	}

	return out
}

// EdgesWith returns the sequences of hyperedges matching the filter, ordered
// by EdgeID. An order or a size is required.
func (h *Hypergraph) EdgesWith(opts ...FilterOption) ([][]Node, error) {
	f, err := resolveRequired(opts...)
	if err != nil {
		return nil, err
	}
	var out [][]Node
	for _, id := range h.sortedEdgeIDs() {
		if e := h.edges[id]; f.Match(e.Size()) {
			out = append(out, e.Nodes())
		}
	}

	return out, nil
}

// Edge returns the stored record for the sequence, if any.
// The record is read-only and valid until the next mutation.
func (h *Hypergraph) Edge(nodes []Node) (*Hyperedge, bool) {
	e, ok := h.edges[Fingerprint(nodes)]
	return e, ok
}

// insertRecord stores e under id and registers it with each of its nodes.
func (h *Hypergraph) insertRecord(id EdgeID, e *Hyperedge) {
	h.edges[id] = e
	for _, n := range e.nodes {
		set, ok := h.incidence[n]
		if !ok {
			set = make(map[EdgeID]struct{})
			h.incidence[n] = set
		}
		set[id] = struct{}{}
	}
}

// removeRecord deletes e and unregisters id from the incidence set of each of
// its nodes. Nodes absent from the incidence index are skipped.
func (h *Hypergraph) removeRecord(id EdgeID, e *Hyperedge) {
	delete(h.edges, id)
	for _, n := range e.nodes {
		delete(h.incidence[n], id)
	}
	h.touch()
}
