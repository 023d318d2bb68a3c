// Package salesman finds optimal closed tours through cities on a plane.
//
// The module is organised as a pipeline of small packages:
//
//	city/           City records, the "id x y" reader/writer, random instances
//	distance/       symmetric Euclidean distance Table (gonum SymDense)
//	adjacency/      adjacency List with destination- and weight-ordered views
//	prim_kruskal/   minimum spanning trees (Prim, Kruskal)
//	tsp/            Path model, lower bound, swap hill-climbing, MST-preorder
//	                seed and the branch-and-bound search (Solve)
//	cmd/salesman/   command line front end
//
// Quick start:
//
//	cities, _ := city.Load("cities.txt", 12)
//	rep, err := tsp.Solve(ctx, distance.New(cities), tsp.DefaultOptions())
//	fmt.Println(rep.Best.Tour, rep.Best.Cost)
//
// Library packages never log and never panic on user input; search events are
// exposed through tsp.Hooks.
package salesman
