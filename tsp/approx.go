package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/adjacency"
	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/prim_kruskal"
)

// Approx computes the MST-preorder 2-approximation.
//
//  1. Spanning tree of g (method selects Prim from city 0 or Kruskal).
//  2. Preorder walk of the tree from city 0, neighbours in ascending index order.
//  3. The walk, read as a closed tour, costs at most twice the optimum on
//     metric inputs (triangle inequality shortcuts every revisit).
//
// Complexity: O(N² log N) for the tree on a complete graph, O(N) for the walk.
func Approx(t *distance.Table, g adjacency.WeightOrdered, method prim_kruskal.Method) (Result, error) {
	if g.Len() < 2 {
		return Result{}, ErrTooFewCities
	}
	tree, _, err := prim_kruskal.Compute(g, prim_kruskal.Options{Method: method, Root: 0})
	if err != nil {
		return Result{}, fmt.Errorf("tsp: spanning tree: %w", err)
	}

	order := Preorder(tree.ByDest(), 0)
	p, err := PathFromPermutation(order)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: order, Cost: p.FullCost(t)}, nil
}

// Preorder returns the depth-first preorder of tree from root. It uses an
// explicit stack, so any N is safe. Neighbours are pushed in reverse
// destination order, making the lowest-indexed unvisited neighbour the next
// one visited. Every city reachable from root appears exactly once.
//
// Complexity: O(V + E).
func Preorder(tree adjacency.DestOrdered, root int) []int {
	var (
		n       = tree.Len()
		out     = make([]int, 0, n)
		visited = make([]bool, n)
		stack   = []int{root}
	)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[next] {
			continue
		}
		visited[next] = true
		out = append(out, next)

		edges := tree.Edges(next)
		for k := len(edges) - 1; k >= 0; k-- {
			if !visited[edges[k].Dest] {
				stack = append(stack, edges[k].Dest)
			}
		}
	}

	return out
}
