package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/format"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge and arity statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			printStats(cmd, h)
			return nil
		},
	}
}

func printStats(cmd *cobra.Command, h *core.Hypergraph) {
	st := h.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, h)
	fmt.Fprintf(out, "weighted: %t\n", st.Weighted)
	fmt.Fprintf(out, "isolated: %d\n", st.IsolatedCount)
	fmt.Fprintf(out, "max size: %d\n", st.MaxSize)
	if st.Uniform {
		fmt.Fprintf(out, "uniform: %d\n", st.UniformSize)
	} else {
		fmt.Fprintln(out, "uniform: no")
	}
	fmt.Fprintf(out, "sizes: %v\n", h.DistributionOfSizes())
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the document and the index invariants of its hypergraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			if err = h.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors NODE",
		Short: "List the nodes sharing a hyperedge with NODE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNode(args[0])
			if err != nil {
				return err
			}
			h, err := a.load()
			if err != nil {
				return err
			}
			nbs, err := h.Neighbors(n, a.filter()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), nbs)
			return nil
		},
	}
}

func newIsolatedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "isolated",
		Short: "List nodes with no neighbor through the filtered hyperedges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			iso, err := h.IsolatedNodes(a.filter()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), core.NewNodeSet(iso...))
			return nil
		},
	}
}

func newDumpCmd(a *app) *cobra.Command {
	var ids, byID bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every node and hyperedge deterministically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			opts := []format.Option{format.WithFilter(a.filter()...)}
			if ids {
				opts = append(opts, format.WithEdgeIDs())
			}
			if byID {
				opts = append(opts, format.ByEdgeID())
			}
			if err = format.Write(cmd.OutOrStdout(), h, opts...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolVar(&ids, "ids", false, "prefix each hyperedge with its id")
	cmd.Flags().BoolVar(&byID, "by-id", false, "order hyperedges by id")

	return cmd
}

func parseNode(s string) (core.Node, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid node %q", s)
	}

	return core.Node(v), nil
}
