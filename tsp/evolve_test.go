package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvolve_UncrossesUnitSquare(t *testing.T) {
	tb, _ := instance(unitSquare())
	p := mustPath(t, 0, 2, 1, 3)

	var passes []float64
	cost := p.EvolveFunc(tb, func(pass int, c float64) {
		require.Equal(t, len(passes)+1, pass)
		passes = append(passes, c)
	})

	assert.InDelta(t, 4.0, cost, epsCost)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Cities())
	assert.Len(t, passes, 1)
}

func TestEvolve_MonotoneAndIdempotent(t *testing.T) {
	const n = 25
	tb, _ := randomInstance(n, 11)
	r := rand.New(rand.NewSource(11))

	for trial := 0; trial < 5; trial++ {
		p := mustPath(t, r.Perm(n)...)
		anchor := p.Front()
		before := p.FullCost(tb)

		after := p.Evolve(tb)
		assert.LessOrEqual(t, after, before)
		assert.InDelta(t, p.FullCost(tb), after, epsCost)
		assert.Equal(t, anchor, p.Front(), "position 0 is fixed")
		assert.True(t, p.Complete())

		fixed := p.Cities()
		calls := 0
		again := p.EvolveFunc(tb, func(int, float64) { calls++ })
		assert.Equal(t, after, again)
		assert.Equal(t, fixed, p.Cities())
		assert.Zero(t, calls)
	}
}

func TestEvolve_TinyTours(t *testing.T) {
	tb, _ := instance(unitSquare()[:2])
	p := mustPath(t, 1, 0)
	assert.InDelta(t, 2.0, p.Evolve(tb), epsCost)
	assert.Equal(t, []int{1, 0}, p.Cities())
}
