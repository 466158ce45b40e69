package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3michele/hgraph/bfs"
	"github.com/3michele/hgraph/components"
	"github.com/3michele/hgraph/dfs"
)

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int
	var showDepth bool
	cmd := &cobra.Command{
		Use:   "bfs START",
		Short: "Breadth-first traversal from START",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseNode(args[0])
			if err != nil {
				return err
			}
			h, err := a.load()
			if err != nil {
				return err
			}
			opts := []bfs.Option{
				bfs.WithContext(cmd.Context()),
				bfs.WithFilter(a.filter()...),
			}
			if maxDepth >= 0 {
				opts = append(opts, bfs.WithMaxDepth(maxDepth))
			}
			done := a.metrics.Time("bfs")
			res, err := bfs.BFS(h, start, opts...)
			done()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Order)
			if showDepth {
				for _, n := range res.Order {
					fmt.Fprintf(out, "%d\t%d\n", n, res.Depth[n])
				}
			}
			a.logger.Debug("bfs finished", zap.Int64("start", int64(start)), zap.Int("visited", res.Visited.Len()))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", bfs.NoDepthLimit, "do not expand nodes at this depth (-1 for no limit)")
	cmd.Flags().BoolVar(&showDepth, "depth", false, "print the depth of every visited node")

	return cmd
}

func newDFSCmd(a *app) *cobra.Command {
	var maxDepth int
	var full, post bool
	cmd := &cobra.Command{
		Use:   "dfs START",
		Short: "Depth-first traversal from START",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseNode(args[0])
			if err != nil {
				return err
			}
			h, err := a.load()
			if err != nil {
				return err
			}
			opts := []dfs.Option{
				dfs.WithContext(cmd.Context()),
				dfs.WithFilter(a.filter()...),
			}
			if maxDepth >= 0 {
				opts = append(opts, dfs.WithMaxDepth(maxDepth))
			}
			if full {
				opts = append(opts, dfs.WithFullTraversal())
			}
			done := a.metrics.Time("dfs")
			res, err := dfs.DFS(h, start, opts...)
			done()
			if err != nil {
				return err
			}
			if post {
				fmt.Fprintln(cmd.OutOrStdout(), res.PostOrder)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Order)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "do not expand nodes at this depth (-1 for no limit)")
	cmd.Flags().BoolVar(&full, "full", false, "continue from every unvisited node")
	cmd.Flags().BoolVar(&post, "post-order", false, "print nodes in finishing order")

	return cmd
}

func newComponentsCmd(a *app) *cobra.Command {
	var largest bool
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.load()
			if err != nil {
				return err
			}
			done := a.metrics.Time("components")
			ccs, err := components.Connected(h, a.filter()...)
			done()
			if err != nil {
				return err
			}
			a.metrics.Components.Set(float64(len(ccs)))

			out := cmd.OutOrStdout()
			if largest {
				lc, err := components.Largest(h, a.filter()...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, lc)
				return nil
			}
			fmt.Fprintf(out, "%d components\n", len(ccs))
			for _, cc := range ccs {
				fmt.Fprintln(out, cc)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&largest, "largest", false, "print only the largest component")

	return cmd
}
