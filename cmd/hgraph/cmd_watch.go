package main

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3michele/hgraph/components"
	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/internal/config"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload --file on every change and report its shape",
		Long: `Watch the document given by --file. Each successful reload swaps in
the new hypergraph and prints one summary line; a document that fails to
load keeps the previous hypergraph. Metrics are rewritten on every reload
when --metrics-file is set. Stops on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.file == "" {
				return errors.New("--file is required")
			}
			loader, err := config.NewLoader(a.file,
				config.WithLogger(a.logger),
				config.WithGraphOptions(core.WithLogger(a.logger)))
			a.metrics.DocumentLoaded(err)
			if err != nil {
				return err
			}

			var current atomic.Pointer[core.Hypergraph]
			out := cmd.OutOrStdout()
			report := func(h *core.Hypergraph) {
				current.Store(h)
				a.metrics.ObserveHypergraph(h)
				n, err := components.Count(h, a.filter()...)
				if err != nil {
					a.logger.Warn("component count failed", zap.Error(err))
				} else {
					a.metrics.Components.Set(float64(n))
				}
				fmt.Fprintf(out, "%s, %d components\n", h, n)
				if a.metricsFile != "" {
					if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
						a.logger.Warn("metrics write failed", zap.Error(err))
					}
				}
			}
			report(loader.Hypergraph())
			loader.OnChange(func(h *core.Hypergraph) {
				a.metrics.DocumentLoaded(nil)
				report(h)
			})

			stop, err := loader.Watch()
			if err != nil {
				return err
			}
			defer stop()
			a.logger.Info("watching", zap.String("path", loader.Path()))

			<-cmd.Context().Done()
			if h := current.Load(); h != nil {
				a.logger.Info("stopped", zap.Int("nodes", h.NumNodes()), zap.Int("edges", h.NumEdges()))
			}
			return nil
		},
	}
}
