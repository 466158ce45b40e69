package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/3michele/hgraph/builder"
	"github.com/3michele/hgraph/core"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_loNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_hiBelowLo", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_hiInf", func() builder.WeightFn { return builder.UniformWeightFn(0, math.Inf(1)) }},
		{"SizeWeightFn_negative", func() builder.WeightFn { return builder.SizeWeightFn(-0.5) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	edge := []core.Node{4, 5, 5}

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil, edge))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil, edge))
	assert.Equal(t, 3.0, builder.SizeWeightFn(1)(nil, edge), "repetitions count toward size")
	assert.Zero(t, builder.SizeWeightFn(2)(nil, nil))

	uni := builder.UniformWeightFn(1, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, uni(nil, edge), "nil rng falls back to the default")
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(nil, edge))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		w := uni(rng, edge)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 3.0)
	}
}
