package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topogen/core"
)

// square builds the 4-cycle 0–1–2–3–0.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestNewGraph(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(3)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Neighbors(0))
	assert.Equal(t, 0, core.NewGraph(-2).Order())
}

func TestAddEdge_Errors(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2)
	assert.ErrorIs(t, g.AddEdge(0, 0), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 2), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddArc(-1, 0), core.ErrVertexNotFound)
	_, err := g.AddVertices(-1)
	assert.ErrorIs(t, err, core.ErrNegativeOrder)
}

func TestAddVertices(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2)
	first, err := g.AddVertices(3)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 5, g.AddVertex())
	assert.Equal(t, 6, g.Order())
}

func TestEdgesAndDegrees(t *testing.T) {
	t.Parallel()

	g := square(t)
	assert.Equal(t, 4, g.Size())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(9, 0))
	assert.Equal(t, 2, g.Degree(3))
	assert.Equal(t, 0, g.Degree(9))

	minDeg, maxDeg := g.DegreeRange()
	assert.Equal(t, 2, minDeg)
	assert.Equal(t, 2, maxDeg)

	require.NoError(t, g.AddEdge(0, 2))
	minDeg, maxDeg = g.DegreeRange()
	assert.Equal(t, 2, minDeg)
	assert.Equal(t, 3, maxDeg)
	require.NoError(t, g.CheckSymmetric())
}

func TestFromAdjacency(t *testing.T) {
	t.Parallel()

	raw := [][]int{{1, 1, 0}, {0}}
	g, err := core.FromAdjacency(raw)
	require.NoError(t, err)
	raw[0][0] = 99 // the graph must not alias the input
	assert.Equal(t, []int{1, 1, 0}, g.Neighbors(0))

	_, err = core.FromAdjacency([][]int{{3}})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	g, err := core.FromAdjacency([][]int{
		{3, 1, 0, 1, 2, 3},
		{0, 0},
		{0, 2},
		{0},
	})
	require.NoError(t, err)
	assert.False(t, g.IsCanonical())

	g.Canonicalize()
	assert.True(t, g.IsCanonical())
	assert.Equal(t, [][]int{{1, 2, 3}, {0}, {0}, {0}}, g.Adjacency())

	// idempotent
	once := g.Clone()
	g.Canonicalize()
	assert.True(t, once.Equal(g))
}

func TestCanonicalize_EmptyLists(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(3)
	g.Canonicalize()
	assert.True(t, g.IsCanonical())
	assert.Equal(t, 3, g.Order())
}

func TestCheckSymmetric(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(3)
	require.NoError(t, g.AddArc(0, 1))
	assert.ErrorIs(t, g.CheckSymmetric(), core.ErrAsymmetric)
	require.NoError(t, g.AddArc(1, 0))
	assert.NoError(t, g.CheckSymmetric())
	g.Canonicalize()
	assert.NoError(t, g.CheckSymmetric())
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	g := square(t)
	c := g.Clone()
	require.True(t, g.Equal(c))
	require.NoError(t, c.AddEdge(0, 2))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.Equal(c))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	var nilGraph *core.Graph
	assert.True(t, nilGraph.Equal(nil))
	assert.False(t, square(t).Equal(nil))
	assert.False(t, square(t).Equal(core.NewGraph(4)))
	assert.False(t, square(t).Equal(core.NewGraph(5)))
}
