package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/adjacency"
	"github.com/katalvlaran/salesman/prim_kruskal"
	"github.com/katalvlaran/salesman/tsp"
)

func TestPreorder_LowestIndexFirst(t *testing.T) {
	// Tree: 0–3, 0–1, 1–2, 3–4 (inserted out of order on purpose).
	l := adjacency.NewList(5)
	l.AddEdge(0, 3, 1)
	l.AddEdge(3, 4, 1)
	l.AddEdge(0, 1, 1)
	l.AddEdge(1, 2, 1)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, tsp.Preorder(l.ByDest(), 0))
	assert.Equal(t, []int{3, 0, 1, 2, 4}, tsp.Preorder(l.ByDest(), 3))
}

func TestPreorder_VisitsEveryCityOnceFromZero(t *testing.T) {
	for _, n := range []int{2, 5, 30, 200} {
		_, g := randomInstance(n, int64(n)*7)
		tree, _, err := prim_kruskal.Prim(g, 0)
		require.NoError(t, err)

		mustPermutation(t, tsp.Preorder(tree.ByDest(), 0), n)
	}
}

func TestApprox_UnitSquare(t *testing.T) {
	tb, g := instance(unitSquare())
	res, err := tsp.Approx(tb, g, prim_kruskal.MethodPrim)
	require.NoError(t, err)

	mustPermutation(t, res.Tour, 4)
	assert.InDelta(t, 4.0, res.Cost, epsCost)
}

func TestApprox_WithinTwiceOptimal(t *testing.T) {
	for n := 3; n <= 8; n++ {
		tb, g := randomInstance(n, int64(n)*13)
		_, opt := bruteForce(tb)

		for _, m := range []prim_kruskal.Method{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
			res, err := tsp.Approx(tb, g, m)
			require.NoError(t, err)
			mustPermutation(t, res.Tour, n)
			assert.LessOrEqual(t, res.Cost, 2*opt+epsCost, "n=%d %s", n, m)
			assert.GreaterOrEqual(t, res.Cost, opt-epsCost, "n=%d %s", n, m)
		}
	}
}

func TestApprox_Errors(t *testing.T) {
	tb, g := instance(unitSquare()[:1])
	_, err := tsp.Approx(tb, g, prim_kruskal.MethodPrim)
	assert.ErrorIs(t, err, tsp.ErrTooFewCities)

	tb, g = instance(unitSquare())
	_, err = tsp.Approx(tb, g, "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
