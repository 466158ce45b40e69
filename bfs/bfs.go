// Package bfs provides breadth-first search over a core.Hypergraph,
// returning the reached node set, hop distances, parent links and visit order.
//
// BFS explores nodes in increasing hop distance from a start node. One hop
// crosses any hyperedge holding both nodes, optionally restricted by arity.
package bfs

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Hypergraph
	opts   Options
	filter []core.FilterOption
	queue  []queueItem
	res    *Result
}

// BFS runs breadth-first search on h starting from start, applying any number
// of functional Options.
//
// A start node absent from h yields an empty Result and no error.
//
// Errors: ErrGraphNil, ErrOptionViolation, core filter errors
// (core.ErrInvalidFilterCombination, core.ErrNegativeArity), context errors,
// or any OnVisit error.
func BFS(h *core.Hypergraph, start core.Node, opts ...Option) (*Result, error) {
	if h == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := core.ResolveFilter(o.Filter...); err != nil {
		return nil, err
	}

	n := h.NumNodes()
	w := &walker{
		graph:  h,
		opts:   o,
		filter: o.Filter,
		res: &Result{
			Visited: core.NewNodeSet(),
			Depth:   make(map[core.Node]int),
			Parent:  make(map[core.Node]core.Node),
		},
	}
	if !h.HasNode(start) {
		return w.res, nil
	}
	w.queue = make([]queueItem, 0, n)
	w.res.Order = make([]core.Node, 0, n)

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks n visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(n core.Node, d int) {
	w.res.Visited.Add(n)
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %d", item.node)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen filtered neighbor while the depth
// bound allows expansion.
func (w *walker) enqueueNeighbors(item queueItem) error {
	if w.opts.MaxDepth != NoDepthLimit && item.depth >= w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.node, w.filter...)
	if err != nil {
		return errors.Wrapf(ErrNeighbors, "neighbors of %d: %v", item.node, err)
	}
	for _, nbr := range neighbors {
		// first time seen?
		if !w.res.Visited.Has(nbr) {
			w.res.Parent[nbr] = item.node
			w.enqueue(nbr, item.depth+1)
		}
	}
	return nil
}
