package brownext_test

import (
	"testing"

	"github.com/katalvlaran/topogen/brownext"
)

// BenchmarkExtend_ClusterZero measures four cluster-0 rounds on ER_31.
func BenchmarkExtend_ClusterZero(b *testing.B) {
	gen, err := brownext.NewGenerator(31)
	if err != nil {
		b.Fatal(err)
	}
	base, err := gen.Make(0, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gen.Extend(base, 4, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExtend_Neighbourhood measures q rounds of neighbourhood
// replication on ER_16.
func BenchmarkExtend_Neighbourhood(b *testing.B) {
	gen, err := brownext.NewGenerator(16)
	if err != nil {
		b.Fatal(err)
	}
	base, err := gen.Make(0, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gen.Extend(base, 0, 16); err != nil {
			b.Fatal(err)
		}
	}
}
