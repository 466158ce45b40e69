package bfs_test

import (
	"testing"

	"github.com/3michele/hgraph/bfs"
	"github.com/3michele/hgraph/core"
)

// BenchmarkBFS_Chain measures BFS on a chain of N pairwise hyperedges.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	h := core.New()
	for i := core.Node(0); i < N; i++ {
		h.AddEdge([]core.Node{i, i + 1})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(h, 0)
	}
}

// BenchmarkBFS_Windows measures BFS over overlapping triples 0-1-2, 1-2-3, ...
func BenchmarkBFS_Windows(b *testing.B) {
	const N = 5000
	h := core.New()
	for i := core.Node(0); i < N; i++ {
		h.AddEdge([]core.Node{i, i + 1, i + 2})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(h, 0, bfs.WithSize(3))
	}
}
