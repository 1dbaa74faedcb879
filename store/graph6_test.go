package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/core"
	"github.com/katalvlaran/topogen/store"
)

func TestDecodeGraph6_Known(t *testing.T) {
	// House of Graphs 32194.
	g, err := store.DecodeGraph6("H@BQPS^")
	require.NoError(t, err)
	want := [][]int{
		{5}, {5, 6}, {3, 7}, {2, 5, 8}, {6, 7, 8},
		{0, 1, 3, 8}, {1, 4, 7, 8}, {2, 4, 6, 8}, {3, 4, 5, 6, 7},
	}
	assert.Equal(t, want, g.Adjacency())
	assert.Equal(t, "H@BQPS^", store.EncodeGraph6(g))
}

func TestGraph6_RoundTrip(t *testing.T) {
	for _, tc := range []struct{ q, r0, r1 int }{{2, 0, 0}, {3, 1, 0}, {4, 0, 2}, {5, 2, 0}} {
		gen, err := brownext.NewGenerator(tc.q)
		require.NoError(t, err)
		g, err := gen.Make(tc.r0, tc.r1)
		require.NoError(t, err)

		back, err := store.DecodeGraph6(store.EncodeGraph6(g))
		require.NoError(t, err)
		assert.True(t, g.Equal(back), "q=%d r0=%d r1=%d", tc.q, tc.r0, tc.r1)
	}
}

func TestGraph6_IsolatedVertices(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(1, 2))

	back, err := store.DecodeGraph6(store.EncodeGraph6(g))
	require.NoError(t, err)
	assert.Equal(t, 4, back.Order())
	assert.Equal(t, 1, back.Size())
}

func TestDecodeGraph6_Invalid(t *testing.T) {
	for _, s := range []string{"", "H@"} {
		_, err := store.DecodeGraph6(s)
		assert.ErrorIs(t, err, store.ErrBadGraph6, "%q", s)
	}
}
