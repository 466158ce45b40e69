package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/builder"
	"github.com/3michele/hgraph/core"
)

// TestInvariants_RandomMutations drives random mutation sequences over
// generated hypergraphs and checks the structural invariants after each step.
func TestInvariants_RandomMutations(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		h, err := builder.Build(
			[]core.Option{core.WithWeighted()},
			[]builder.Option{builder.WithSeed(seed), builder.WithUniformWeight(0, 10)},
			builder.RandomUniform(12, 10, 3),
			builder.RandomUniform(12, 6, 2),
		)
		require.NoError(t, err)
		require.NoError(t, h.Validate())

		rng := rand.New(rand.NewSource(seed))
		for step := 0; step < 60; step++ {
			n := core.Node(rng.Intn(14))
			switch rng.Intn(6) {
			case 0:
				h.AddNode(n)
			case 1:
				h.RemoveNode(n)
			case 2:
				h.StrongRemoveNode(n)
			case 3:
				size := rng.Intn(4)
				edge := make([]core.Node, size)
				for i := range edge {
					edge[i] = core.Node(rng.Intn(14))
				}
				h.AddEdgeWeighted(edge, rng.Float64())
			case 4:
				if edges := h.Edges(); len(edges) > 0 {
					h.RemoveEdge(edges[rng.Intn(len(edges))])
				}
			case 5:
				clone := h.Clone()
				require.NoError(t, clone.Validate())
				require.Equal(t, h.Edges(), clone.Edges())
			}
			require.NoError(t, h.Validate(), "seed=%d step=%d", seed, step)
		}
	}
}
