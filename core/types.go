// SPDX-License-Identifier: MIT
// File: types.go
// Role: Node, EdgeID, Hypergraph, Option, sentinel errors and New.

package core

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sentinel errors for core hypergraph operations.
var (
	// ErrInvalidFilterCombination indicates that both an order and a size filter were given.
	ErrInvalidFilterCombination = errors.New("core: order and size cannot be both specified")

	// ErrMissingFilter indicates that neither an order nor a size filter was given
	// to an operation that requires one.
	ErrMissingFilter = errors.New("core: at least one between order and size must be specified")

	// ErrNegativeArity indicates a negative order or size filter.
	ErrNegativeArity = errors.New("core: order and size must be non-negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent hyperedge.
	ErrEdgeNotFound = errors.New("core: hyperedge not found")

	// ErrModifiedDuringIteration is the panic value raised when the hypergraph
	// is mutated while an IterEdges sequence is being consumed.
	ErrModifiedDuringIteration = errors.New("core: hypergraph modified during edge iteration")
)

// Node is an opaque node identifier. Nodes carry no payload.
type Node int64

// EdgeID is the fingerprint of a hyperedge's node sequence (see Fingerprint).
type EdgeID uint64

// Option configures a Hypergraph before creation.
type Option func(h *Hypergraph)

// WithWeighted allows non-zero hyperedge weights.
// Without it every weight-setting operation stores 0.
func WithWeighted() Option {
	return func(h *Hypergraph) { h.weighted = true }
}

// WithLogger attaches a logger used for debug traces of cascading mutations.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hypergraph) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithCapacity pre-sizes the incidence index and the edge table.
// Negative hints are treated as zero.
func WithCapacity(nodes, edges int) Option {
	return func(h *Hypergraph) {
		h.nodeHint = max(nodes, 0)
		h.edgeHint = max(edges, 0)
	}
}

// Hypergraph is the core in-memory hypergraph data structure.
//
// It keeps two mutually referencing indexes:
//   - incidence: node → set of ids of the hyperedges touching it. Every node
//     in the hypergraph has an entry; an empty set means the node is isolated.
//   - edges: id → hyperedge record. The id is always Fingerprint(record nodes).
//
// The indexes refer to each other only through EdgeID values; all cross
// updates happen inside Hypergraph methods.
//
// A Hypergraph is not safe for concurrent mutation. Callers sharing one
// across goroutines must guard every call with a single external lock.
type Hypergraph struct {
	weighted bool

	incidence map[Node]map[EdgeID]struct{}
	edges     map[EdgeID]*Hyperedge

	// version increments on every mutation; IterEdges uses it to detect
	// writes under a live iteration.
	version uint64

	logger *zap.Logger

	nodeHint int
	edgeHint int
}

// New creates an empty Hypergraph with the given options.
// By default the hypergraph is unweighted and logs nothing.
// Complexity: O(1) plus the requested capacity.
func New(opts ...Option) *Hypergraph {
	h := &Hypergraph{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	h.incidence = make(map[Node]map[EdgeID]struct{}, h.nodeHint)
	h.edges = make(map[EdgeID]*Hyperedge, h.edgeHint)

	return h
}
