package tsp

import "github.com/katalvlaran/salesman/distance"

// Evolve improves a complete path in place by first-improvement pairwise swap
// hill-climbing and returns its final closed cost.
//
// A pass visits every position pair (i, j) with 1 ≤ i < j < N (position 0 is
// the anchor), swaps the two cities, recomputes FullCost, and keeps the swap
// only if the cost strictly decreased. Passes repeat until one keeps nothing.
// The result is a local optimum, not necessarily a global one; the cost never
// increases, and calling Evolve again on its output changes nothing.
//
// Complexity: O(N³) per pass.
func (p *Path) Evolve(t *distance.Table) float64 {
	return p.EvolveFunc(t, nil)
}

// EvolveFunc is Evolve with a callback invoked after every pass that kept at
// least one swap, receiving the 1-based pass number and the new cost.
func (p *Path) EvolveFunc(t *distance.Table, onPass func(pass int, cost float64)) float64 {
	var (
		n       = len(p.seq)
		current = p.FullCost(t)
		pass    int
		i, j    int
	)
	for {
		updated := false
		for i = 1; i < n; i++ {
			for j = i + 1; j < n; j++ {
				p.swap(i, j)
				if c := p.FullCost(t); c < current {
					current = c
					updated = true
				} else {
					p.swap(i, j)
				}
			}
		}
		if !updated {
			return current
		}
		pass++
		if onPass != nil {
			onPass(pass, current)
		}
	}
}
