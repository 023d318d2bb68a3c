package tsp

import (
	"github.com/katalvlaran/salesman/adjacency"
	"github.com/katalvlaran/salesman/distance"
)

// FullCost returns the closed-tour cost: every consecutive pair plus the
// wraparound from the last city back to the first.
//
// Complexity: O(Len()).
func (p *Path) FullCost(t *distance.Table) float64 {
	n := len(p.seq)
	if n < 2 {
		return 0
	}
	var cost float64
	for i := 0; i < n-1; i++ {
		cost += t.At(p.seq[i], p.seq[i+1])
	}

	return cost + t.At(p.seq[n-1], p.seq[0])
}

// LowerBound estimates the cost of the cheapest closed tour extending p.
// It is the sum of:
//
//   - the exact cost of the edges between consecutive cities of p;
//   - half the cheapest edge from Front() to an unvisited city (the eventual
//     closing edge);
//   - half the cheapest edge from Back() to an unvisited city (the next step);
//   - for every unvisited city, half the sum of its two cheapest edges towards
//     Front(), Back() or another unvisited city.
//
// g must list edges cheapest first, so each scan stops after the first one
// or two qualifying entries. If p is complete the closing edge is added
// instead, making LowerBound equal FullCost. p must not be empty.
//
// The estimate trades tightness for speed; it is a branch ordering and
// pruning heuristic, not a Held–Karp bound.
//
// Complexity: O(N²) worst case, typically O(N) per unvisited city scan prefix.
func (p *Path) LowerBound(t *distance.Table, g adjacency.WeightOrdered) float64 {
	n := len(p.seq)
	var lb float64
	for i := 0; i < n-1; i++ {
		lb += t.At(p.seq[i], p.seq[i+1])
	}

	first, last := p.seq[0], p.seq[n-1]
	if p.Complete() {
		return lb + t.At(last, first)
	}

	lb += p.cheapestToUnvisited(g, first) / 2
	lb += p.cheapestToUnvisited(g, last) / 2

	var (
		city  int
		count int
	)
	for city = 0; city < len(p.visited); city++ {
		if p.visited[city] {
			continue
		}
		count = 2
		for _, e := range g.Edges(city) {
			if e.Dest == first || e.Dest == last || !p.visited[e.Dest] {
				lb += e.Weight / 2
				if count--; count == 0 {
					break
				}
			}
		}
	}

	return lb
}

// cheapestToUnvisited returns the weight of the first edge of city leading
// off the path, or 0 if there is none.
func (p *Path) cheapestToUnvisited(g adjacency.WeightOrdered, city int) float64 {
	for _, e := range g.Edges(city) {
		if !p.visited[e.Dest] {
			return e.Weight
		}
	}

	return 0
}
