package brownext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/builder"
	"github.com/katalvlaran/topogen/core"
)

var (
	oddOrders  = []int{3, 5, 7, 9}
	evenOrders = []int{2, 4, 8}
	allOrders  = []int{2, 3, 4, 5, 7, 8, 9}
)

// polarity builds ER_q.
func polarity(t testing.TB, q int, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, builder.Polarity(q))
	require.NoError(t, err)
	return g
}

// generator returns a Generator with invariant checks switched on.
func generator(t testing.TB, q int, opts ...brownext.Option) *brownext.Generator {
	t.Helper()
	gen, err := brownext.NewGenerator(q, append([]brownext.Option{brownext.WithInvariantChecks()}, opts...)...)
	require.NoError(t, err)
	return gen
}
