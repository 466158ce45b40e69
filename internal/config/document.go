package config

import (
	"bytes"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/3michele/hgraph/builder"
	"github.com/3michele/hgraph/core"
)

// Load reads, parses and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}

	return doc, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
// Empty input is an empty unweighted document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "config: parse")
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Build materializes the document: nodes, then edges in order, then the
// generators in order. opts are applied after the document's own weighting.
func (d *Document) Build(opts ...core.Option) (*core.Hypergraph, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	hopts := make([]core.Option, 0, len(opts)+2)
	if d.Weighted {
		hopts = append(hopts, core.WithWeighted())
	}
	hopts = append(hopts, core.WithCapacity(len(d.Nodes), len(d.Edges)))
	hopts = append(hopts, opts...)

	h := core.New(hopts...)
	h.AddNodes(d.Nodes)
	for _, e := range d.Edges {
		h.AddEdgeWeighted(e.Nodes, e.Weight)
	}
	for i, g := range d.Generators {
		if err := builder.Apply(h, g.options(), g.constructor()); err != nil {
			return nil, errors.Wrapf(err, "config: generate[%d] (%s)", i, g.Kind)
		}
	}

	return h, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "config: marshal")
	}

	return out, nil
}

// FromHypergraph captures h as a document. Only nodes outside every
// hyperedge are listed under nodes.
// Edges are sorted by node sequence so equal hypergraphs encode identically.
func FromHypergraph(h *core.Hypergraph) *Document {
	doc := &Document{Weighted: h.Weighted()}
	for _, n := range h.Nodes() {
		if deg, _ := h.Degree(n); deg == 0 {
			doc.Nodes = append(doc.Nodes, n)
		}
	}
	for e := range h.IterEdges() {
		doc.Edges = append(doc.Edges, EdgeDef{Nodes: e.Nodes(), Weight: e.Weight()})
	}
	slices.SortFunc(doc.Edges, func(a, b EdgeDef) int { return slices.Compare(a.Nodes, b.Nodes) })

	return doc
}

func (g GeneratorDef) options() []builder.Option {
	opts := []builder.Option{builder.WithFirstID(g.FirstID)}
	if g.Seed != nil {
		opts = append(opts, builder.WithSeed(*g.Seed))
	}
	if g.Weight != nil {
		opts = append(opts, builder.WithConstantWeight(*g.Weight))
	}

	return opts
}

func (g GeneratorDef) constructor() builder.Constructor {
	switch g.Kind {
	case KindNodes:
		return builder.Nodes(g.N)
	case KindPath:
		return builder.Path(g.N)
	case KindStar:
		return builder.Star(g.N)
	case KindComplete:
		return builder.Complete(g.N, g.K)
	case KindWindows:
		return builder.Windows(g.N, g.K)
	case KindRandomUniform:
		return builder.RandomUniform(g.N, g.M, g.K)
	}

	// Validate rejects unknown kinds before this point
	return nil
}
