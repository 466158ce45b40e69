// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - firstID  = 0    (nodes are firstID, firstID+1, ...)
//   - rng      = nil  (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn

package builder

import (
	"math/rand"

	"github.com/3michele/hgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// First node id; constructors emit firstID+i for index i.
	firstID core.Node
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator; only observed by weighted hypergraphs.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// node maps an index to its node id.
func (c builderConfig) node(i int) core.Node { return c.firstID + core.Node(i) }

// weight draws the weight of edge, or 0 for unweighted hypergraphs.
func (c builderConfig) weight(h *core.Hypergraph, edge []core.Node) float64 {
	if !h.Weighted() {
		return 0
	}

	return c.weightFn(c.rng, edge)
}
