// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/3michele/hgraph/core"
)

// Option customizes constructors by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

// WithFirstID shifts generated node ids to start at id.
func WithFirstID(id core.Node) Option {
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-hyperedge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight sets a fixed hyperedge weight via ConstantWeightFn.
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[lo,hi) via UniformWeightFn.
func WithUniformWeight(lo, hi float64) Option {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithSizeWeight weighs each hyperedge perNode times its size via SizeWeightFn.
func WithSizeWeight(perNode float64) Option {
	return WithWeightFn(SizeWeightFn(perNode))
}
