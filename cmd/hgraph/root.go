package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/internal/config"
	"github.com/3michele/hgraph/internal/metrics"
)

// unset marks an arity flag that was not given.
const unset = -1

// app carries the global flags and the per-run collaborators.
type app struct {
	file        string
	order       int
	size        int
	upTo        bool
	verbose     bool
	metricsFile string

	logger  *zap.Logger
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hgraph",
		Short: "Inspect and analyse hypergraphs",
		Long: `hgraph loads a hypergraph from a YAML document and runs queries,
traversals and component analysis over it.

Arity filters:
  --order K   only consider hyperedges with K+1 nodes
  --size K    only consider hyperedges with K nodes
  --up-to     turn the exact test into "at most"

Examples:
  hgraph stats --file graph.yaml
  hgraph bfs 1 --file graph.yaml --size 2 --max-depth 3
  hgraph components --file graph.yaml --order 1 --up-to
  hgraph generate windows --n 10 --k 3 > graph.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "", "hypergraph YAML document")
	pf.IntVar(&a.order, "order", unset, "only consider hyperedges of this order")
	pf.IntVar(&a.size, "size", unset, "only consider hyperedges of this size")
	pf.BoolVar(&a.upTo, "up-to", false, "treat --order/--size as an upper bound")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "development logging at debug level")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile on exit")

	root.AddCommand(
		newStatsCmd(a),
		newValidateCmd(a),
		newNeighborsCmd(a),
		newIsolatedCmd(a),
		newDumpCmd(a),
		newBFSCmd(a),
		newDFSCmd(a),
		newComponentsCmd(a),
		newGenerateCmd(a),
		newWatchCmd(a),
	)

	return root
}

func (a *app) setup() error {
	var err error
	if a.verbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	a.metrics = metrics.New()

	return nil
}

func (a *app) teardown() error {
	defer func() { _ = a.logger.Sync() }()
	if a.metricsFile == "" {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		return err
	}
	a.logger.Debug("metrics written", zap.String("path", a.metricsFile))

	return nil
}

// filter translates the arity flags into core filter options.
func (a *app) filter() []core.FilterOption {
	var opts []core.FilterOption
	if a.order != unset {
		opts = append(opts, core.ByOrder(a.order))
	}
	if a.size != unset {
		opts = append(opts, core.BySize(a.size))
	}
	if a.upTo {
		opts = append(opts, core.UpTo())
	}

	return opts
}

// load reads and builds the --file document.
func (a *app) load() (*core.Hypergraph, error) {
	if a.file == "" {
		return nil, errors.New("--file is required")
	}
	done := a.metrics.Time("load")
	h, err := a.build()
	done()
	a.metrics.DocumentLoaded(err)
	if err != nil {
		return nil, err
	}
	a.metrics.ObserveHypergraph(h)
	a.logger.Debug("document loaded", zap.String("path", a.file),
		zap.Int("nodes", h.NumNodes()), zap.Int("edges", h.NumEdges()))

	return h, nil
}

func (a *app) build() (*core.Hypergraph, error) {
	doc, err := config.Load(a.file)
	if err != nil {
		return nil, err
	}

	return doc.Build(core.WithLogger(a.logger))
}
