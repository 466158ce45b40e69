// File: hypergraph.go
// Role: Seeding constructors, counts, membership, Clone/Clear, String/Stats
//       and the internal invariant checker exposed as Validate.
// Determinism:
//   - sortedEdgeIDs yields edge ids ascending; every listing built on it is stable.

package core

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// From builds an unweighted hypergraph holding the given edges.
// Repeated sequences collapse into one hyperedge.
func From(edges [][]Node, opts ...Option) *Hypergraph {
	h := New(append([]Option{WithCapacity(0, len(edges))}, opts...)...)
	h.AddEdges(edges)

	return h
}

// FromWeighted builds a weighted hypergraph. The i-th edge takes weights[i];
// edges past the end of weights get 0. When a sequence repeats, the record
// is the first one seen and the weight is the last one supplied.
func FromWeighted(edges [][]Node, weights []float64, opts ...Option) *Hypergraph {
	opts = append([]Option{WithWeighted(), WithCapacity(0, len(edges))}, opts...)
	h := New(opts...)
	h.AddEdgesWeighted(edges, weights)

	return h
}

// Weighted reports whether the hypergraph stores non-zero weights.
func (h *Hypergraph) Weighted() bool { return h.weighted }

// NumNodes returns the number of nodes. Complexity: O(1).
func (h *Hypergraph) NumNodes() int { return len(h.incidence) }

// NumEdges returns the number of hyperedges. Complexity: O(1).
func (h *Hypergraph) NumEdges() int { return len(h.edges) }

// HasNode reports whether n is in the hypergraph.
func (h *Hypergraph) HasNode(n Node) bool {
	_, ok := h.incidence[n]
	return ok
}

// HasEdge reports whether the exact node sequence is stored.
func (h *Hypergraph) HasEdge(nodes []Node) bool {
	_, ok := h.edges[Fingerprint(nodes)]
	return ok
}

// Clear removes every node and hyperedge. The weighted flag, the logger and
// the allocated map capacity are kept.
func (h *Hypergraph) Clear() {
	h.logger.Debug("clearing hypergraph",
		zap.Int("nodes", len(h.incidence)),
		zap.Int("edges", len(h.edges)))
	clear(h.incidence)
	clear(h.edges)
	h.touch()
}

// Clone returns a deep copy sharing no memory with h.
// Complexity: O(V + sum of edge sizes).
func (h *Hypergraph) Clone() *Hypergraph {
	out := &Hypergraph{
		weighted:  h.weighted,
		incidence: make(map[Node]map[EdgeID]struct{}, len(h.incidence)),
		edges:     make(map[EdgeID]*Hyperedge, len(h.edges)),
		logger:    h.logger,
		nodeHint:  h.nodeHint,
		edgeHint:  h.edgeHint,
	}
	for n, ids := range h.incidence {
		set := make(map[EdgeID]struct{}, len(ids))
		for id := range ids {
			set[id] = struct{}{}
		}
		out.incidence[n] = set
	}
	for id, e := range h.edges {
		out.edges[id] = newHyperedge(e.nodes, e.weight)
	}

	return out
}

// String implements fmt.Stringer.
func (h *Hypergraph) String() string {
	return fmt.Sprintf("Hypergraph with %d nodes and %d edges", len(h.incidence), len(h.edges))
}

// Stats is a read-only summary of a hypergraph.
type Stats struct {
	Weighted      bool
	NodeCount     int
	EdgeCount     int
	IsolatedCount int
	MaxSize       int
	// UniformSize is the common edge size when Uniform is true.
	UniformSize int
	Uniform     bool
}

// Stats computes a summary snapshot. Complexity: O(V·deg + E).
func (h *Hypergraph) Stats() Stats {
	isolated, _ := h.IsolatedNodes()
	size, uniform := h.IsUniform()

	return Stats{
		Weighted:      h.weighted,
		NodeCount:     len(h.incidence),
		EdgeCount:     len(h.edges),
		IsolatedCount: len(isolated),
		MaxSize:       h.MaxSize(),
		UniformSize:   size,
		Uniform:       uniform,
	}
}

// Validate checks the internal consistency of both indexes and returns the
// first violation found, or nil.
//
// Checked:
//   - every id in a node's incidence set resolves to a record containing the node;
//   - every node of every record has an incidence entry holding the record id;
//   - every record id equals the fingerprint of its node sequence;
//   - no two ids map to the same node sequence;
//   - unweighted hypergraphs store only zero weights.
//
// Complexity: O(V·deg + sum of edge sizes).
func (h *Hypergraph) Validate() error {
	for n, ids := range h.incidence {
		for id := range ids {
			e, ok := h.edges[id]
			if !ok {
				return errors.Errorf("core: node %d references missing hyperedge %d", n, id)
			}
			if !e.Contains(n) {
				return errors.Errorf("core: node %d references hyperedge %d not containing it", n, id)
			}
		}
	}
	seen := make(map[string]EdgeID, len(h.edges))
	for id, e := range h.edges {
		if fp := Fingerprint(e.nodes); fp != id {
			return errors.Errorf("core: hyperedge %v stored under %d, fingerprint is %d", e.nodes, id, fp)
		}
		key := fmt.Sprint(e.nodes)
		if other, dup := seen[key]; dup {
			return errors.Errorf("core: hyperedges %d and %d share sequence %s", other, id, key)
		}
		seen[key] = id
		for _, n := range e.nodes {
			ids, ok := h.incidence[n]
			if !ok {
				return errors.Errorf("core: hyperedge %d holds node %d with no incidence entry", id, n)
			}
			if _, ok = ids[id]; !ok {
				return errors.Errorf("core: node %d is missing hyperedge %d in its incidence set", n, id)
			}
		}
		if !h.weighted && e.weight != 0 {
			return errors.Errorf("core: unweighted hypergraph stores weight %v on %d", e.weight, id)
		}
	}

	return nil
}

// touch records a mutation for the IterEdges guard.
func (h *Hypergraph) touch() { h.version++ }

// sortedEdgeIDs returns every edge id ascending.
func (h *Hypergraph) sortedEdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(h.edges))
	for id := range h.edges {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// sortedIncidence returns the ids incident to n ascending.
func (h *Hypergraph) sortedIncidence(n Node) []EdgeID {
	set := h.incidence[n]
	ids := make([]EdgeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
