package config

import "github.com/3michele/hgraph/core"

// Document is the top-level YAML structure describing one hypergraph.
type Document struct {
	Weighted   bool           `yaml:"weighted"`
	Nodes      []core.Node    `yaml:"nodes,omitempty"`
	Edges      []EdgeDef      `yaml:"edges,omitempty"`
	Generators []GeneratorDef `yaml:"generate,omitempty"`
}

// EdgeDef is one hyperedge: an ordered node sequence and its weight.
// A missing weight is 0.
type EdgeDef struct {
	Nodes  []core.Node `yaml:"nodes,flow"`
	Weight float64     `yaml:"weight,omitempty"`
}

// GeneratorDef appends the output of a builder constructor to the document.
// Kind selects the constructor; N, M and K are its parameters.
type GeneratorDef struct {
	Kind    string    `yaml:"kind"`
	N       int       `yaml:"n"`
	M       int       `yaml:"m,omitempty"`
	K       int       `yaml:"k,omitempty"`
	FirstID core.Node `yaml:"first_id,omitempty"`
	Seed    *int64    `yaml:"seed,omitempty"`
	// Weight, when set, is a constant weight for every generated hyperedge.
	Weight *float64 `yaml:"weight,omitempty"`
}

// Generator kinds.
const (
	KindNodes         = "nodes"
	KindPath          = "path"
	KindStar          = "star"
	KindComplete      = "complete"
	KindWindows       = "windows"
	KindRandomUniform = "random_uniform"
)
