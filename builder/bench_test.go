package builder_test

import (
	"testing"

	"github.com/katalvlaran/topogen/builder"
)

// BenchmarkPolarity_Q16 measures construction of ER_16 (273 vertices).
func BenchmarkPolarity_Q16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildGraph(nil, builder.Polarity(16)); err != nil {
			b.Fatal(err)
		}
	}
}
