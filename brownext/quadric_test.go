package brownext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/builder"
)

func TestIsQuadric(t *testing.T) {
	ok, err := brownext.IsQuadric([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = brownext.IsQuadric([]int{1, 2, 3, 4}, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = brownext.IsQuadric([]int{1, 2}, 3)
	assert.ErrorIs(t, err, brownext.ErrConstructionFault)
}

func TestQuadrics_Polarity(t *testing.T) {
	for _, q := range allOrders {
		quads, err := brownext.Quadrics(polarity(t, q), q)
		require.NoError(t, err)
		assert.Len(t, quads, q+1, "q=%d", q)
		assert.IsIncreasing(t, quads)
	}
}

func TestQuadrics_Malformed(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	_, err = brownext.Quadrics(g, 3)
	assert.ErrorIs(t, err, brownext.ErrConstructionFault)
}
