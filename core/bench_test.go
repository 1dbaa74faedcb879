package core_test

import (
	"testing"

	"github.com/katalvlaran/topogen/core"
)

// BenchmarkCanonicalize measures canonicalization of a graph whose lists
// carry every edge twice.
func BenchmarkCanonicalize(b *testing.B) {
	const n = 2000
	const d = 16
	src := core.NewGraph(n)
	for v := 0; v < n; v++ {
		for k := 1; k <= d/2; k++ {
			_ = src.AddEdge(v, (v+k)%n)
			_ = src.AddEdge(v, (v+k)%n)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := src.Clone()
		g.Canonicalize()
	}
}
