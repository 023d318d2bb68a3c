package city

import (
	"math/rand"

	"github.com/quasilyte/gmath"
)

// defaultSeed is used when callers pass seed==0, so the zero value still
// yields a reproducible instance.
const defaultSeed int64 = 1

// Random returns n cities uniformly distributed over [0,width)×[0,height).
// The same (n, seed, width, height) always yields the same instance.
//
// Complexity: O(n).
func Random(n int, seed int64, width, height float64) []City {
	if n < 0 {
		n = 0
	}
	if seed == 0 {
		seed = defaultSeed
	}
	r := rand.New(rand.NewSource(seed))

	cities := make([]City, n)
	for i := range cities {
		cities[i] = City{ID: i, Pos: gmath.Vec{X: r.Float64() * width, Y: r.Float64() * height}}
	}

	return cities
}
