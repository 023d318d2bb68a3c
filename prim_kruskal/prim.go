package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/salesman/adjacency"
)

// Prim computes the MST of g by growing a tree outwards from root.
//
// Steps:
//  1. Validate: N > 0 and root ∈ [0, N).
//  2. Mark root visited and push all of its edges into the frontier.
//  3. While the frontier is not empty and fewer than N−1 edges are accepted:
//     a. Pop the cheapest edge (u→v); ties pop in insertion order.
//     b. If v is already visited, skip it (the edge would close a cycle).
//     c. Otherwise mark v, add {u, v} to the tree and push v's edges
//     towards cities still outside the tree.
//  4. If the tree has fewer than N−1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g adjacency.WeightOrdered, root int) (*adjacency.List, float64, error) {
	n := g.Len()
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}

	var (
		tree    = adjacency.NewList(n)
		visited = make([]bool, n)
		pq      = &edgePQ{}
		total   float64
	)

	// 2. Seed the frontier from root.
	visited[root] = true
	pq.pushAll(g.Edges(root), visited)

	// 3. Grow until the tree spans N cities or the frontier runs dry.
	for pq.Len() > 0 && tree.EdgeCount() < n-1 {
		// 3a. Cheapest frontier edge.
		e := heap.Pop(pq).(frontierEdge).Edge
		// 3b. Both ends already in the tree.
		if visited[e.Dest] {
			continue
		}
		// 3c. Accept and expand.
		visited[e.Dest] = true
		tree.AddEdge(e.Src, e.Dest, e.Weight)
		total += e.Weight

		pq.pushAll(g.Edges(e.Dest), visited)
	}

	// 4. A dry frontier before N−1 edges means some city is unreachable.
	if tree.EdgeCount() < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// frontierEdge is a heap entry; seq records insertion order for tie-breaking.
type frontierEdge struct {
	adjacency.Edge
	seq int
}

// edgePQ implements heap.Interface as a min-heap of frontier edges by Weight.
type edgePQ struct {
	items []frontierEdge
	next  int
}

// pushAll pushes every edge of es whose destination is not yet visited.
func (pq *edgePQ) pushAll(es []adjacency.Edge, visited []bool) {
	for _, e := range es {
		if !visited[e.Dest] {
			heap.Push(pq, frontierEdge{Edge: e, seq: pq.next})
			pq.next++
		}
	}
}

func (pq *edgePQ) Len() int { return len(pq.items) }

func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.Weight == b.Weight {
		return a.seq < b.seq
	}

	return a.Weight < b.Weight
}

func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(frontierEdge)) }

func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	e := old[n-1]
	pq.items = old[:n-1]

	return e
}
