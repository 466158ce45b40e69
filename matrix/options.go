package matrix

import "github.com/3michele/hgraph/core"

// Option configures a matrix build.
type Option func(*options)

type options struct {
	weighted bool
	filter   []core.FilterOption
}

// WithWeightedEntries scales incidence entries by the hyperedge weight.
// Adjacency always uses weights on weighted hypergraphs.
func WithWeightedEntries() Option {
	return func(o *options) { o.weighted = true }
}

// WithFilter only includes hyperedges accepted by the core filter. Every node
// keeps its row.
func WithFilter(opts ...core.FilterOption) Option {
	return func(o *options) { o.filter = append(o.filter, opts...) }
}

func resolve(opts []Option) (options, core.Filter, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	f, err := core.ResolveFilter(o.filter...)

	return o, f, err
}
