// SPDX-License-Identifier: MIT

package format

import (
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/btree"

	"github.com/3michele/hgraph/core"
)

// ErrGraphNil is returned when a nil *core.Hypergraph is passed.
var ErrGraphNil = errors.New("format: graph is nil")

// Option configures the dump.
type Option func(*options)

type options struct {
	ids    bool
	byID   bool
	indent string
	filter []core.FilterOption
}

func defaultOptions() options {
	return options{indent: "\t"}
}

// WithEdgeIDs prefixes each hyperedge with its EdgeID in hex.
func WithEdgeIDs() Option {
	return func(o *options) { o.ids = true }
}

// ByEdgeID orders hyperedges by EdgeID instead of by node sequence.
func ByEdgeID() Option {
	return func(o *options) { o.byID = true }
}

// WithFilter lists only hyperedges accepted by the core filter. Nodes are
// always listed in full.
func WithFilter(opts ...core.FilterOption) Option {
	return func(o *options) { o.filter = append(o.filter, opts...) }
}

// WithIndent sets the indentation unit.
func WithIndent(s string) Option {
	return func(o *options) { o.indent = s }
}

// entry is one listed hyperedge.
type entry struct {
	id     core.EdgeID
	nodes  []core.Node
	weight float64
}

func byNodes(a, b entry) bool { return slices.Compare(a.nodes, b.nodes) < 0 }

func byID(a, b entry) bool { return a.id < b.id }

// Write dumps h to w.
//
// Errors: ErrGraphNil, core filter errors, or the first write error.
func Write(w io.Writer, h *core.Hypergraph, opts ...Option) error {
	if h == nil {
		return ErrGraphNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	f, err := core.ResolveFilter(o.filter...)
	if err != nil {
		return err
	}

	less := byNodes
	if o.byID {
		less = byID
	}
	listing := btree.NewBTreeG[entry](less)
	for e := range h.IterEdges() {
		if !f.Match(e.Size()) {
			continue
		}
		listing.Set(entry{id: e.ID(), nodes: e.Nodes(), weight: e.Weight()})
	}

	ew := &errWriter{w: w}
	in1, in2 := o.indent, strings.Repeat(o.indent, 2)
	ew.printf("{\n%s%v,\n%s[", in1, h.Nodes(), in1)
	if listing.Len() == 0 {
		ew.printf("]\n}")
		return ew.err
	}
	i := 0
	listing.Scan(func(e entry) bool {
		sep := ","
		if i == listing.Len()-1 {
			sep = ""
		}
		i++
		if o.ids {
			ew.printf("\n%s#%016x (%v, %v)%s", in2, uint64(e.id), e.nodes, e.weight, sep)
		} else {
			ew.printf("\n%s(%v, %v)%s", in2, e.nodes, e.weight, sep)
		}
		return ew.err == nil
	})
	ew.printf("\n%s]\n}", in1)

	return ew.err
}

// Dump returns the text Write would produce.
func Dump(h *core.Hypergraph, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, h, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}
