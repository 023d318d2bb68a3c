// Package prim_kruskal computes minimum spanning trees over adjacency lists
// whose per-city edges are ordered by weight (adjacency.WeightOrdered).
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph is a subset of edges
//     that connects every vertex with minimum total weight.
//   - For a metric TSP instance the MST weight is a lower bound on the optimal
//     tour, and a preorder walk of the tree is a tour of at most twice the
//     optimum. The tsp package uses exactly that walk to seed its search.
//
// Algorithms Provided
//
//   - Prim(g, root) (*adjacency.List, float64, error)
//
//   - Strategy: grow one tree from root. A min-heap frontier holds candidate
//     edges ordered by weight (equal weights pop in insertion order). The
//     cheapest edge whose destination is outside the tree is accepted and the
//     new city's edges join the frontier. Stops as soon as N−1 edges are
//     accepted, or earlier if the frontier runs dry (disconnected input).
//
//   - Complexity: O(E log E) time, O(V + E) space. On the complete graph of
//     a TSP instance that is O(N² log N).
//
//   - Kruskal(g) (*adjacency.List, float64, error)
//
//   - Strategy: stable sort of all undirected edges by weight, then a
//     union-find pass accepting edges that join two components.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Use-Case: reference implementation and alternative seed builder.
//
// Both return the tree as an *adjacency.List (each edge stored at both
// endpoints) plus its total weight. Callers that need a deterministic
// traversal take tree.ByDest().
//
// Errors
//
//   - ErrEmptyGraph     : the list has no cities.
//   - ErrRootOutOfRange : Prim root outside [0, N).
//   - ErrDisconnected   : fewer than N−1 edges could be accepted.
//   - ErrUnknownMethod  : Compute received an unsupported Method.
package prim_kruskal
