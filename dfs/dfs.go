// Package dfs implements depth-first search (single-source and forest) on
// core.Hypergraph.
package dfs

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Hypergraph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on h. If opts include WithFullTraversal, it
// covers every component; otherwise it starts only from start.
//
// A start node absent from h yields an empty Result and no error.
//
// Errors: ErrGraphNil, ErrOptionViolation, core filter errors, context
// errors, or any hook error.
func DFS(h *core.Hypergraph, start core.Node, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if h == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}
	if _, err := core.ResolveFilter(dopts.Filter...); err != nil {
		return nil, err
	}

	// 3. Initialize result with capacity hint
	n := h.NumNodes()
	res := &Result{
		Visited: core.NewNodeSet(),
		Depth:   make(map[core.Node]int, n),
		Parent:  make(map[core.Node]core.Node, n),
	}
	walker := &dfsWalker{graph: h, opts: dopts, res: res}

	// 4. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range h.Nodes() {
			if !res.Visited.Has(v) {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
		return res, nil
	}
	if !h.HasNode(start) {
		return res, nil
	}
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits n at the given depth and recurses into unvisited neighbors.
func (w *dfsWalker) traverse(n core.Node, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth; first discovery wins
	w.res.Visited.Add(n)
	w.res.Depth[n] = depth
	w.res.Order = append(w.res.Order, n)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n, depth); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook for %d", n)
		}
	}

	// 4. Expand unless the depth bound is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(n, w.opts.Filter...)
		if err != nil {
			return errors.Wrapf(err, "dfs: Neighbors(%d)", n)
		}
		for _, nid := range nbs {
			if w.res.Visited.Has(nid) {
				continue
			}
			w.res.Parent[nid] = n
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n); err != nil {
			return errors.Wrapf(err, "dfs: OnExit hook for %d", n)
		}
	}

	// 6. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, n)

	return nil
}
