// Package tsp_test holds helpers shared across the *_test.go files of the
// package: instance builders and a brute-force oracle for small N.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/adjacency"
	"github.com/katalvlaran/salesman/city"
	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/tsp"
)

const (
	// epsCost is the tolerance for comparing tour costs computed in different orders.
	epsCost = 1e-9

	// side is the coordinate range of random instances.
	side = 100.0
)

// unitSquare returns cities at (0,0), (0,1), (1,1), (1,0).
func unitSquare() []city.City {
	return []city.City{
		city.New(0, 0, 0),
		city.New(1, 0, 1),
		city.New(2, 1, 1),
		city.New(3, 1, 0),
	}
}

// instance returns the table and weight-ordered complete graph of cs.
func instance(cs []city.City) (*distance.Table, adjacency.WeightOrdered) {
	tb := distance.New(cs)
	return tb, adjacency.Complete(tb).ByWeight()
}

// randomInstance returns a deterministic random instance of n cities.
func randomInstance(n int, seed int64) (*distance.Table, adjacency.WeightOrdered) {
	return instance(city.Random(n, seed, side, side))
}

// mustPath builds a complete path from perm.
func mustPath(t testing.TB, perm ...int) *tsp.Path {
	t.Helper()
	p, err := tsp.PathFromPermutation(perm)
	require.NoError(t, err)
	return p
}

// mustPermutation asserts that tour is a permutation of 0..n-1 starting at 0.
func mustPermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n)
	require.Equal(t, 0, tour[0], "tour must start at city 0: %v", tour)
	seen := make([]bool, n)
	for _, c := range tour {
		require.True(t, c >= 0 && c < n, "city %d out of range in %v", c, tour)
		require.False(t, seen[c], "city %d repeated in %v", c, tour)
		seen[c] = true
	}
}

// bruteForce enumerates every permutation of 1..n-1 after the fixed city 0
// and returns the cheapest closed tour and its cost.
func bruteForce(tb *distance.Table) ([]int, float64) {
	n := tb.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	var bestTour []int

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			p, _ := tsp.PathFromPermutation(perm)
			if c := p.FullCost(tb); c < best {
				best = c
				bestTour = p.Cities()
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(1)

	return bestTour, best
}
