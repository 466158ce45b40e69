// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// weight_fn.go - weight generators for emitted hyperedges.
//
// A WeightFn sees the node sequence it is weighting, so a weight may depend
// on the hyperedge's size as well as on the random source. Generators are
// only consulted when the target hypergraph is weighted.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/3michele/hgraph/core"
)

// DefaultEdgeWeight is what every emitted hyperedge weighs unless an option
// installs another WeightFn.
const DefaultEdgeWeight float64 = 1

// WeightFn returns the weight for the hyperedge nodes. rng is nil unless the
// build was seeded; the same seed and sequence must give the same weight.
// nodes is only valid for the duration of the call.
type WeightFn func(rng *rand.Rand, nodes []core.Node) float64

// DefaultWeightFn weighs every hyperedge DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand, _ []core.Node) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn weighs every hyperedge w.
// Panics if w is negative, NaN or infinite.
func ConstantWeightFn(w float64) WeightFn {
	checkWeight("ConstantWeightFn", "w", w)

	return func(_ *rand.Rand, _ []core.Node) float64 {
		return w
	}
}

// UniformWeightFn draws each hyperedge weight from [lo, hi). lo == hi always
// yields lo. Without a seeded source the draw is replaced by
// DefaultEdgeWeight, so unseeded builds stay reproducible.
// Panics unless 0 <= lo <= hi and both are finite.
func UniformWeightFn(lo, hi float64) WeightFn {
	checkWeight("UniformWeightFn", "lo", lo)
	checkWeight("UniformWeightFn", "hi", hi)
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn: hi=%g below lo=%g", hi, lo))
	}

	return func(rng *rand.Rand, _ []core.Node) float64 {
		switch {
		case lo == hi:
			return lo
		case rng == nil:
			return DefaultEdgeWeight
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// SizeWeightFn weighs a hyperedge perNode times its size, counting
// repetitions, so [1 2 3] under SizeWeightFn(0.5) weighs 1.5.
// Panics if perNode is negative, NaN or infinite.
func SizeWeightFn(perNode float64) WeightFn {
	checkWeight("SizeWeightFn", "perNode", perNode)

	return func(_ *rand.Rand, nodes []core.Node) float64 {
		return perNode * float64(len(nodes))
	}
}

func checkWeight(fn, name string, v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("builder: %s: %s must be finite and >= 0, got %g", fn, name, v))
	}
}
