package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/salesman/adjacency"
)

// Kruskal computes the MST of g with a disjoint-set forest (path compression,
// union by rank).
//
// Steps:
//  1. Validate N > 0; a single city yields an empty tree.
//  2. Collect each undirected edge once (Src < Dest); skip self-loops.
//  3. Stable sort by weight; equal weights keep (Src, Dest) order.
//  4. Accept an edge iff its endpoints lie in different components; stop at N−1 edges.
//  5. Fewer than N−1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g adjacency.WeightOrdered) (*adjacency.List, float64, error) {
	n := g.Len()
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}
	tree := adjacency.NewList(n)
	if n == 1 {
		return tree, 0, nil
	}

	var edges []adjacency.Edge
	for u := 0; u < n; u++ {
		for _, e := range g.Edges(u) {
			if e.Src < e.Dest {
				edges = append(edges, e)
			}
		}
	}
	slices.SortStableFunc(edges, func(a, b adjacency.Edge) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Src, b.Src); c != 0 {
			return c
		}
		return cmp.Compare(a.Dest, b.Dest)
	})

	ds := newDisjointSet(n)
	var total float64
	for _, e := range edges {
		if !ds.union(e.Src, e.Dest) {
			continue
		}
		tree.AddEdge(e.Src, e.Dest, e.Weight)
		total += e.Weight
		if tree.EdgeCount() == n-1 {
			break
		}
	}

	if tree.EdgeCount() < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// disjointSet is a union-find forest over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns u's root, halving the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
