// Package builder provides deterministic hypergraph generators in a
// functional-options style. Generators only call core mutation primitives
// and own no state.
//
// Entry point:
//
//	h, err := builder.Build(
//		[]core.Option{core.WithWeighted()},
//		[]builder.Option{builder.WithSeed(42), builder.WithUniformWeight(1, 10)},
//		builder.Windows(10, 3),
//		builder.RandomUniform(10, 5, 2),
//	)
//
// Constructors:
//
//   - Nodes(n)               n isolated nodes.
//   - Path(n)                pairwise path 0-1-…-(n-1).
//   - Star(n)                hub 0 with pairwise spokes to 1..n-1.
//   - Complete(n, k)         every k-subset of n nodes.
//   - Windows(n, k)          runs of k consecutive nodes.
//   - RandomUniform(n, m, k) m random k-node draws over n nodes (needs a seed).
//
// Options:
//
//   - WithFirstID(id)        shift node ids to start at id.
//   - WithSeed / WithRand    RNG for stochastic constructors and weights.
//   - WithWeightFn, WithConstantWeight, WithUniformWeight, WithSizeWeight
//     weight policy, only observed by weighted hypergraphs.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order give the
//     same hypergraph.
//   - Parameter validation happens before any mutation; errors are builder
//     sentinels checked with errors.Is.
//   - Option constructors panic on meaningless inputs (nil RNG, nil weight
//     function, negative constant weight).
package builder
