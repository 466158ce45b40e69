// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Hypergraph.
package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil hypergraph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the hypergraph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// NoDepthLimit is the MaxDepth value that disables the depth bound.
const NoDepthLimit = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(n core.Node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n core.Node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n core.Node, depth int) error

	// MaxDepth bounds expansion: neighbors of a node at depth d are
	// enqueued only while d < MaxDepth. NoDepthLimit disables the bound,
	// 0 visits the start only.
	MaxDepth int

	// Filter restricts the hyperedges a step may cross.
	Filter []core.FilterOption

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth limit
//   - no arity filter
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(core.Node, int) {},
		OnDequeue: func(core.Node, int) {},
		OnVisit:   func(core.Node, int) error { return nil },
		MaxDepth:  NoDepthLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n core.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n core.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search depth.
//
//	d >= 0: nodes at depth d are visited but not expanded
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOrder only crosses hyperedges of order k.
func WithOrder(k int) Option {
	return WithFilter(core.ByOrder(k))
}

// WithSize only crosses hyperedges of size k.
func WithSize(k int) Option {
	return WithFilter(core.BySize(k))
}

// WithFilter appends raw core filter options, e.g. core.UpTo().
func WithFilter(opts ...core.FilterOption) Option {
	return func(o *Options) {
		o.Filter = append(o.Filter, opts...)
	}
}

// Result holds the outcome of a BFS traversal:
//   - Visited: every reached node, the start included.
//   - Order: nodes in visit sequence.
//   - Depth: distance in hops from the start.
//   - Parent: predecessor in the BFS tree.
type Result struct {
	Visited *core.NodeSet
	Order   []core.Node
	Depth   map[core.Node]int
	Parent  map[core.Node]core.Node
}

// PathTo reconstructs the fewest-hop path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.Node) ([]core.Node, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []core.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
