// Package dfs defines types and options for depth-first search traversal over
// a core.Hypergraph, including cancellation, pre-/post-order hooks, depth
// limiting, arity filtering and full-hypergraph (forest) traversal.
package dfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Hypergraph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(h, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n core.Node, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(n core.Node) error

	// MaxDepth, if non-negative, limits recursion: a node discovered at
	// depth MaxDepth is not expanded. A depth of 0 visits only the start
	// node. Default is -1 (no limit).
	MaxDepth int

	// Filter restricts the hyperedges a step may cross.
	Filter []core.FilterOption

	// FullTraversal, if true, runs DFS from every unvisited node in
	// ascending order, covering every component.
	FullTraversal bool

	err error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No arity filter
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(n core.Node) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. Negative limits are rejected with
// ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithOrder only crosses hyperedges of order k.
func WithOrder(k int) Option { return WithFilter(core.ByOrder(k)) }

// WithSize only crosses hyperedges of size k.
func WithSize(k int) Option { return WithFilter(core.BySize(k)) }

// WithFilter appends raw core filter options.
func WithFilter(opts ...core.FilterOption) Option {
	return func(o *Options) {
		o.Filter = append(o.Filter, opts...)
	}
}

// WithFullTraversal restarts DFS from each unvisited node, covering every
// component.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Visited holds every reached node.
	Visited *core.NodeSet

	// Order records nodes in discovery sequence (pre-order).
	Order []core.Node

	// PostOrder records nodes in the sequence they finished.
	PostOrder []core.Node

	// Depth maps each node to the depth at which it was first discovered.
	// It depends on exploration order and is not a shortest distance.
	Depth map[core.Node]int

	// Parent maps each node to the node from which it was first discovered.
	// Roots do not appear.
	Parent map[core.Node]core.Node
}
