package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3michele/hgraph/core"
	"github.com/3michele/hgraph/internal/config"
)

const sampleYAML = `
weighted: true
nodes: [9]
edges:
  - nodes: [1, 2]
    weight: 2.5
  - nodes: [2, 3, 4]
generate:
  - kind: windows
    n: 3
    k: 2
    first_id: 100
`

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "graph.yaml")
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(body), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	return path
}

func TestParse_Build(t *testing.T) {
	doc, err := config.Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.True(t, doc.Weighted)
	require.Len(t, doc.Edges, 2)
	require.Len(t, doc.Generators, 1)

	h, err := doc.Build()
	require.NoError(t, err)
	assert.True(t, h.Weighted())
	assert.Equal(t, []core.Node{1, 2, 3, 4, 9, 100, 101, 102}, h.Nodes())
	assert.Equal(t, 4, h.NumEdges())

	w, ok := h.Weight([]core.Node{1, 2})
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
	w, ok = h.Weight([]core.Node{2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, 0.0, w)
	w, ok = h.Weight([]core.Node{100, 101})
	require.True(t, ok)
	assert.Equal(t, 1.0, w, "generated edges use the builder default weight")
	assert.NoError(t, h.Validate())
}

func TestParse_Empty(t *testing.T) {
	doc, err := config.Parse(nil)
	require.NoError(t, err)
	h, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, h.NumNodes())
	assert.False(t, h.Weighted())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "weighted: true\ncolor: red\n"},
		{"bad yaml", "edges: [\n"},
		{"weight on unweighted", "edges:\n  - nodes: [1, 2]\n    weight: 3\n"},
		{"infinite weight", "weighted: true\nedges:\n  - nodes: [1]\n    weight: .inf\n"},
		{"unknown kind", "generate:\n  - kind: torus\n    n: 3\n"},
		{"missing kind", "generate:\n  - n: 3\n"},
		{"random without seed", "generate:\n  - kind: random_uniform\n    n: 3\n    m: 2\n    k: 2\n"},
		{"negative size", "generate:\n  - kind: path\n    n: -3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.body))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("edges:\n  - nodes: [1, 2]\n    weight: 3\n"))
	assert.ErrorIs(t, err, config.ErrInvalidDocument)
}

func TestBuild_GeneratorError(t *testing.T) {
	doc, err := config.Parse([]byte("generate:\n  - kind: complete\n    n: 3\n    k: 5\n"))
	require.NoError(t, err)
	_, err = doc.Build()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generate[0]")
}

func TestFromHypergraph_RoundTrip(t *testing.T) {
	h := core.New(core.WithWeighted())
	h.AddEdgeWeighted([]core.Node{3, 1}, 2)
	h.AddEdgeWeighted([]core.Node{1, 2, 3}, 0.5)
	h.AddNode(7)

	doc := config.FromHypergraph(h)
	assert.Equal(t, []core.Node{7}, doc.Nodes)
	require.Len(t, doc.Edges, 2)
	assert.Equal(t, []core.Node{1, 2, 3}, doc.Edges[0].Nodes)

	out, err := doc.Marshal()
	require.NoError(t, err)
	back, err := config.Parse(out)
	require.NoError(t, err)
	h2, err := back.Build()
	require.NoError(t, err)
	assert.Equal(t, h.Nodes(), h2.Nodes())
	assert.Equal(t, h.Edges(), h2.Edges())
	assert.Equal(t, h.Weights(), h2.Weights())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, sampleYAML)

	doc, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Edges, 2)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoader_Reload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "edges:\n  - nodes: [1, 2]\n")

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Hypergraph().NumEdges())

	var seen []*core.Hypergraph
	l.OnChange(func(h *core.Hypergraph) { seen = append(seen, h) })

	writeFile(t, dir, "edges:\n  - nodes: [1, 2]\n  - nodes: [2, 3]\n")
	h, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, h.NumEdges())
	assert.Same(t, h, l.Hypergraph())
	require.Len(t, seen, 1)

	// a broken file keeps the previous hypergraph
	writeFile(t, dir, "edges: [\n")
	_, err = l.Reload()
	assert.Error(t, err)
	assert.Same(t, h, l.Hypergraph())
	assert.Len(t, seen, 1)
}

func TestLoader_Watch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "edges:\n  - nodes: [1, 2]\n")

	l, err := config.NewLoader(path)
	require.NoError(t, err)

	changed := make(chan *core.Hypergraph, 8)
	l.OnChange(func(h *core.Hypergraph) { changed <- h })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeFile(t, dir, "edges:\n  - nodes: [1, 2]\n  - nodes: [2, 3]\n  - nodes: [3, 4]\n")

	deadline := time.After(5 * time.Second)
	for {
		select {
		case h := <-changed:
			if h.NumEdges() == 3 {
				assert.Equal(t, 3, l.Hypergraph().NumEdges())
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestNewLoader_Errors(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
