// Package tsp solves the symmetric Euclidean Travelling Salesman Problem by
// branch-and-bound, seeded with an MST-preorder 2-approximation.
//
// Pipeline (Solve):
//
//  1. adjacency.Complete(dist).ByWeight(): every city's edges, cheapest first.
//  2. Approx: MST (prim_kruskal), preorder walk from city 0 in ascending
//     destination order. The walk is a tour of cost ≤ 2·OPT on metric inputs
//     and becomes the first incumbent.
//  3. Branch-and-bound: depth-first over permutations rooted at city 0.
//     Candidates are ordered by Path.LowerBound and pruned when their bound is
//     not strictly below the incumbent cost. Every complete tour that beats
//     the incumbent is polished by Path.Evolve before it is stored.
//
// The search is exhaustive with pruning: run to completion it returns an
// optimal closed tour. It is single-threaded and purely synchronous; the
// in-progress Path is shared by the whole call chain and every Push is paired
// with a deferred Pop, so a returning call always leaves the path as it found it.
//
// Library code never logs. Progress, new incumbents and refinement passes are
// surfaced through Options.Hooks; counters live in a Stats value owned by the
// search and returned in the Report.
//
// Exact search is practical for a few dozen cities. For larger inputs set
// Options.TimeLimit or cancel the context to take the best tour found so far.
// The recursion depth equals N.
package tsp
