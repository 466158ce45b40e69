package main

import (
	"github.com/spf13/cobra"

	"github.com/3michele/hgraph/internal/config"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		gen      config.GeneratorDef
		seed     int64
		weight   float64
		weighted bool
	)
	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Emit a generated hypergraph as a YAML document",
		Long: `Generate a hypergraph with a builder constructor and print it as a
document accepted by --file.

Kinds:
  nodes           N isolated nodes
  path            pairwise path over N nodes
  star            hub with N-1 pairwise spokes
  complete        every K-subset of N nodes
  windows         runs of K consecutive nodes out of N
  random_uniform  M random K-node hyperedges over N nodes (needs --seed)

Examples:
  hgraph generate windows --n 10 --k 3
  hgraph generate random_uniform --n 50 --m 80 --k 3 --seed 7 --weighted`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen.Kind = args[0]
			if cmd.Flags().Changed("seed") {
				gen.Seed = &seed
			}
			if cmd.Flags().Changed("weight") {
				gen.Weight = &weight
			}
			doc := &config.Document{Weighted: weighted, Generators: []config.GeneratorDef{gen}}

			done := a.metrics.Time("generate")
			h, err := doc.Build()
			done()
			if err != nil {
				return err
			}
			a.metrics.ObserveHypergraph(h)

			out, err := config.FromHypergraph(h).Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	f := cmd.Flags()
	f.IntVar(&gen.N, "n", 0, "number of nodes")
	f.IntVar(&gen.M, "m", 0, "number of random draws")
	f.IntVar(&gen.K, "k", 0, "hyperedge size")
	f.Int64Var((*int64)(&gen.FirstID), "first-id", 0, "id of the first generated node")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.Float64Var(&weight, "weight", 0, "constant hyperedge weight (default 1 when weighted)")
	f.BoolVar(&weighted, "weighted", false, "produce a weighted hypergraph")

	return cmd
}
