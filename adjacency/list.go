// Package adjacency provides the per-city edge lists of a TSP instance.
//
// A List is the mutable builder: edges are inserted symmetrically, each
// endpoint receiving a copy oriented away from itself. Consumers never read
// the builder in a particular order; they take one of two immutable snapshots:
//
//	ByDest()   → DestOrdered   ascending destination index (deterministic traversal)
//	ByWeight() → WeightOrdered ascending weight, ties by destination (Prim, bounds)
//
// Because each algorithm declares the snapshot type it needs, a list sorted
// for one purpose cannot be handed to the other by accident.
//
// Lists are not safe for concurrent mutation. Snapshots are read-only and may
// be shared freely.
package adjacency

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/salesman/distance"
)

// Edge is a weighted connection from Src to Dest.
type Edge struct {
	Src    int
	Dest   int
	Weight float64
}

// List maps every city index to its sequence of incident edges.
type List struct {
	edges [][]Edge
	count int // undirected edges inserted through AddEdge, or arcs/2 for Complete
}

// NewList returns an empty list over n cities.
func NewList(n int) *List {
	return &List{edges: make([][]Edge, n)}
}

// Complete returns the complete graph over the cities of t: for every ordered
// pair i≠j, city i owns the edge i→j weighted t.At(i,j).
//
// Complexity: O(N²) time and space.
func Complete(t *distance.Table) *List {
	n := t.Len()
	l := NewList(n)

	var i, j int
	for i = 0; i < n; i++ {
		row := make([]Edge, 0, n-1)
		for j = 0; j < n; j++ {
			if i != j {
				row = append(row, Edge{Src: i, Dest: j, Weight: t.At(i, j)})
			}
		}
		l.edges[i] = row
	}
	l.count = n * (n - 1) / 2

	return l
}

// AddEdge inserts the undirected edge {src, dest} into both endpoints' lists.
// Indices must be in [0, Len()).
//
// Complexity: O(1) amortized.
func (l *List) AddEdge(src, dest int, weight float64) {
	l.edges[src] = append(l.edges[src], Edge{Src: src, Dest: dest, Weight: weight})
	l.edges[dest] = append(l.edges[dest], Edge{Src: dest, Dest: src, Weight: weight})
	l.count++
}

// Len returns the number of cities.
func (l *List) Len() int { return len(l.edges) }

// EdgeCount returns the number of undirected edges.
func (l *List) EdgeCount() int { return l.count }

// Edges returns city's edges in insertion order. The slice must not be modified.
func (l *List) Edges(city int) []Edge { return l.edges[city] }

// Weight returns the total weight of the undirected edges.
func (l *List) Weight() float64 {
	var sum float64
	for _, row := range l.edges {
		for _, e := range row {
			sum += e.Weight
		}
	}

	return sum / 2
}

// ByDest returns a snapshot with every city's edges in ascending destination order.
//
// Complexity: O(E log E) time, O(E) space.
func (l *List) ByDest() DestOrdered {
	return DestOrdered{view: l.snapshot(func(a, b Edge) int {
		return cmp.Compare(a.Dest, b.Dest)
	})}
}

// ByWeight returns a snapshot with every city's edges in ascending weight
// order; equal weights keep ascending destination order.
//
// Complexity: O(E log E) time, O(E) space.
func (l *List) ByWeight() WeightOrdered {
	return WeightOrdered{view: l.snapshot(func(a, b Edge) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Dest, b.Dest)
	})}
}

func (l *List) snapshot(order func(a, b Edge) int) view {
	out := make([][]Edge, len(l.edges))
	for i, row := range l.edges {
		out[i] = slices.Clone(row)
		slices.SortStableFunc(out[i], order)
	}

	return view{edges: out}
}
