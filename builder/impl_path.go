// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_path.go - Path(n), Star(n) and Nodes(n).
//
// Contract:
//   - Path: n ≥ 2, pairwise hyperedges [i, i+1] for i = 0..n-2.
//   - Star: n ≥ 2, hub node(0), pairwise spokes [hub, leaf] for leaves 1..n-1.
//   - Nodes: n ≥ 0 isolated nodes.
//   - Weight policy: cfg.weightFn(cfg.rng) on weighted hypergraphs, else 0.
//
// Complexity: O(n) nodes + O(n) hyperedges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

const (
	methodPath   = "Path"
	methodStar   = "Star"
	methodNodes  = "Nodes"
	minPathNodes = 2
	minStarNodes = 2
)

// Path returns a Constructor that builds the path 0-1-…-(n-1) from pairwise
// hyperedges.
func Path(n int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		for i := 0; i+1 < n; i++ {
			edge := []core.Node{cfg.node(i), cfg.node(i + 1)}
			h.AddEdgeWeighted(edge, cfg.weight(h, edge))
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with hub node(0) and n-1 leaves.
func Star(n int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if n < minStarNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStarNodes)
		}
		hub := cfg.node(0)
		for i := 1; i < n; i++ {
			edge := []core.Node{hub, cfg.node(i)}
			h.AddEdgeWeighted(edge, cfg.weight(h, edge))
		}

		return nil
	}
}

// Nodes returns a Constructor that adds n isolated nodes.
func Nodes(n int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if n < 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < 0", methodNodes, n)
		}
		for i := 0; i < n; i++ {
			h.AddNode(cfg.node(i))
		}

		return nil
	}
}
