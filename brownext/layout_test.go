package brownext_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/brownext"
	"github.com/katalvlaran/topogen/builder"
)

func TestNewLayout_Invariants(t *testing.T) {
	for _, q := range allOrders {
		q := q
		t.Run("q="+strconv.Itoa(q), func(t *testing.T) {
			g := polarity(t, q)
			l, err := brownext.NewLayout(g, q)
			require.NoError(t, err)

			wantClusters := q + 1
			wantZero := q + 1
			if q%2 == 0 {
				wantClusters = q + 2
				wantZero = 1
			}
			require.Len(t, l.Clusters, wantClusters)
			require.Len(t, l.Centers, wantClusters)
			assert.Len(t, l.Clusters[0], wantZero)
			assert.Equal(t, -1, l.Centers[0])

			seen := make(map[int]bool)
			for c, members := range l.Clusters {
				if c > 0 {
					assert.Len(t, members, q, "cluster %d", c)
					assert.Equal(t, l.Centers[c], members[0], "center first in cluster %d", c)
				}
				for _, v := range members {
					assert.False(t, seen[v], "vertex %d assigned twice", v)
					seen[v] = true
					assert.Equal(t, c, l.ClusterOf[v])
				}
			}
			assert.Len(t, seen, g.Order())

			for v, p := range l.Partner {
				c := l.ClusterOf[v]
				hasPartner := q%2 != 0 && c > 0 && v != l.Centers[c]
				if !hasPartner {
					assert.Equal(t, -1, p, "vertex %d", v)
					continue
				}
				require.GreaterOrEqual(t, p, 0, "vertex %d", v)
				assert.Equal(t, c, l.ClusterOf[p])
				assert.True(t, g.HasEdge(v, p))
				assert.Equal(t, v, l.Partner[p], "partner relation is mutual")
			}
		})
	}
}

func TestNewLayout_Q3(t *testing.T) {
	l, err := brownext.NewLayout(polarity(t, 3), 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{8, 9, 11, 12}, {3, 2, 4}, {6, 1, 5}, {10, 0, 7}}, l.Clusters)
	assert.Equal(t, []int{-1, 3, 6, 10}, l.Centers)
	assert.Equal(t, []int{7, 5, 4, -1, 2, 1, -1, 0, -1, -1, -1, -1, -1}, l.Partner)
}

func TestNewLayout_Q2(t *testing.T) {
	l, err := brownext.NewLayout(polarity(t, 2), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{6}, {2, 3}, {4, 1}, {5, 0}}, l.Clusters)
	assert.Equal(t, []int{-1, 2, 4, 5}, l.Centers)
}

func TestNewLayout_Faults(t *testing.T) {
	_, err := brownext.NewLayout(nil, 3)
	assert.ErrorIs(t, err, brownext.ErrConstructionFault)

	// Wrong q for the graph: ER_3 has no vertex of degree 5.
	_, err = brownext.NewLayout(polarity(t, 3), 5)
	assert.ErrorIs(t, err, brownext.ErrConstructionFault)

	// K5 is 4-regular: for q=4 all five vertices are quadrics and none
	// touches q+1 of them.
	k5, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)
	_, err = brownext.NewLayout(k5, 4)
	assert.ErrorIs(t, err, brownext.ErrConstructionFault)

	// A perfect matching has degree 1 < q.
	m, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(8, 1))
	require.NoError(t, err)
	_, err = brownext.NewLayout(m, 2)
	assert.ErrorIs(t, err, brownext.ErrConstructionFault)
}

func TestNewLayout_StarOrdering(t *testing.T) {
	for _, q := range []int{3, 4, 5} {
		g := polarity(t, q, builder.WithStarOrdering())
		l, err := brownext.NewLayout(g, q)
		require.NoError(t, err, "q=%d", q)
		if q%2 != 0 {
			assert.Equal(t, 0, l.Clusters[0][0], "first quadric has label 0")
		} else {
			assert.Equal(t, 0, l.Centers[1])
		}
	}
}
