package brownext_test

import (
	"fmt"

	"github.com/katalvlaran/topogen/brownext"
)

// ExampleGenerator_Make extends ER_5 with two rounds of cluster-0
// replication.
func ExampleGenerator_Make() {
	gen, err := brownext.NewGenerator(5)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := gen.Make(2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	minDeg, maxDeg := g.DegreeRange()
	fmt.Println(g.Order(), minDeg, maxDeg, brownext.Validate(g, 5, 2, 0))
	// Output: 43 6 10 1
}

// ExampleNewLayout shows the even-q layout of ER_2.
func ExampleNewLayout() {
	gen, _ := brownext.NewGenerator(2)
	base, _ := gen.Make(0, 0)
	l, _ := brownext.NewLayout(base, 2)
	fmt.Println(l.Clusters, l.Centers)
	// Output: [[6] [2 3] [4 1] [5 0]] [-1 2 4 5]
}
