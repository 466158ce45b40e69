// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// impl_complete.go - Complete(n, k) and Windows(n, k).
//
// Contract:
//   - Complete: every k-subset of n nodes, ascending inside each hyperedge,
//     emitted in lexicographic order. 1 ≤ k ≤ n. The number of subsets is
//     capped at maxCompleteEdges (ErrConstructFailed beyond it).
//   - Windows: the n-k+1 runs of k consecutive nodes [i, …, i+k-1].
//
// Complexity: Complete O(C(n,k)·k), Windows O((n-k+1)·k).

package builder

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

const (
	methodComplete   = "Complete"
	methodWindows    = "Windows"
	maxCompleteEdges = 1 << 20
)

// Complete returns a Constructor that builds the complete k-uniform
// hypergraph on n nodes.
func Complete(n, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if err := validateArity(methodComplete, n, k); err != nil {
			return err
		}
		if c := binomial(n, k); c < 0 || c > maxCompleteEdges {
			return errors.Wrapf(ErrConstructFailed, "%s: C(%d,%d) exceeds %d hyperedges", methodComplete, n, k, maxCompleteEdges)
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		edge := make([]core.Node, k)
		for {
			for i, v := range idx {
				edge[i] = cfg.node(v)
			}
			h.AddEdgeWeighted(edge, cfg.weight(h, edge))

			// advance to the next combination
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return nil
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Windows returns a Constructor that builds the sliding-window hypergraph.
func Windows(n, k int) Constructor {
	return func(h *core.Hypergraph, cfg builderConfig) error {
		if err := validateArity(methodWindows, n, k); err != nil {
			return err
		}
		edge := make([]core.Node, k)
		for start := 0; start+k <= n; start++ {
			for j := range edge {
				edge[j] = cfg.node(start + j)
			}
			h.AddEdgeWeighted(edge, cfg.weight(h, edge))
		}

		return nil
	}
}

// validateArity checks n ≥ 1 and 1 ≤ k ≤ n.
func validateArity(method string, n, k int) error {
	if n < 1 {
		return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < 1", method, n)
	}
	if k < 1 || k > n {
		return errors.Wrapf(ErrInvalidArity, "%s: k=%d not in [1,%d]", method, k, n)
	}

	return nil
}

// binomial returns C(n,k), or -1 once it exceeds maxCompleteEdges.
func binomial(n, k int) int {
	k = min(k, n-k)
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
		if c > maxCompleteEdges {
			return -1
		}
	}

	return c
}
