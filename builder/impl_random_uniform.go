// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_random_uniform.go - RandomUniform(n, m, k).
//
// Contract:
//   - Adds every node 0..n-1 first, so nodes left untouched stay isolated.
//   - Draws m hyperedges of k distinct nodes each, in random order.
//     Repeated draws of the same sequence collapse into one hyperedge.
//   - Requires cfg.rng (ErrNeedRandSource) and 1 ≤ k ≤ n.
//
// Determinism: identical for a fixed seed and call order.
// Complexity: O(n + m·n) (one partial shuffle per draw).

package builder

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

const methodRandomUniform = "RandomUniform"

// RandomUniform returns a Constructor that samples a random k-uniform
// hypergraph with up to m hyperedges on n nodes.
func RandomUniform(n, m, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if err := validateArity(methodRandomUniform, n, k); err != nil {
			return err
		}
		if m < 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: m=%d < 0", methodRandomUniform, m)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomUniform)
		}

		pool := make([]core.Node, n)
		for i := range pool {
			pool[i] = cfg.node(i)
			h.AddNode(pool[i])
		}
		for e := 0; e < m; e++ {
			// partial Fisher-Yates: the first k slots become the sample
			for i := 0; i < k; i++ {
				j := i + cfg.rng.Intn(n-i)
				pool[i], pool[j] = pool[j], pool[i]
			}
			h.AddEdgeWeighted(pool[:k], cfg.weight(h, pool[:k]))
		}

		return nil
	}
}
