package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/salesman/city"
	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/tsp"
)

// ExampleSolve solves the unit square; the optimal tour walks its perimeter.
func ExampleSolve() {
	cities := []city.City{
		city.New(0, 0, 0),
		city.New(1, 1, 1),
		city.New(2, 0, 1),
		city.New(3, 1, 0),
	}
	rep, err := tsp.Solve(context.Background(), distance.New(cities), tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("tour: %v cost: %.1f\n", rep.Best.Tour, rep.Best.Cost)
	// Output: tour: [0 2 1 3] cost: 4.0
}

// ExamplePath_Evolve uncrosses a bow-tie tour of the unit square.
func ExamplePath_Evolve() {
	cities := []city.City{
		city.New(0, 0, 0),
		city.New(1, 0, 1),
		city.New(2, 1, 1),
		city.New(3, 1, 0),
	}
	t := distance.New(cities)
	p, _ := tsp.PathFromPermutation([]int{0, 2, 1, 3})
	fmt.Printf("before: %.3f\n", p.FullCost(t))
	fmt.Printf("after: %.3f %s\n", p.Evolve(t), p)
	// Output:
	// before: 4.828
	// after: 4.000 0 1 2 3
}
