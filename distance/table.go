// Package distance provides the immutable pairwise distance table of a TSP
// instance.
//
// A Table is built once and then shared by reference across every cost and
// bound evaluation. It never changes after construction, so concurrent readers
// need no synchronization.
//
// Storage is a gonum symmetric dense matrix: only the upper triangle is kept,
// which makes At(i,j) == At(j,i) hold by construction.
package distance

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/salesman/city"
)

// symTol is the structural tolerance for symmetry checks in FromRows.
const symTol = 1e-12

var (
	// ErrEmpty is returned by FromRows for a matrix without rows.
	ErrEmpty = errors.New("distance: empty matrix")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("distance: matrix is not square")

	// ErrNonZeroDiagonal is returned when a diagonal entry is not 0.
	ErrNonZeroDiagonal = errors.New("distance: diagonal not zero")

	// ErrNegativeWeight is returned for a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("distance: negative distance")

	// ErrNaNInf is returned for a NaN or infinite entry; tables describe complete graphs.
	ErrNaNInf = errors.New("distance: NaN or Inf entry")

	// ErrAsymmetry is returned when a_ij and a_ji differ by more than symTol.
	ErrAsymmetry = errors.New("distance: matrix is not symmetric")
)

// Table is an N×N matrix of Euclidean distances between indexed cities.
type Table struct {
	n int
	m *mat.SymDense
}

// New builds the table for cities, which must be indexed by ID.
//
// Complexity: O(N²) time and space.
func New(cities []city.City) *Table {
	n := len(cities)
	if n == 0 {
		return &Table{}
	}
	m := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.SetSym(i, j, cities[i].Distance(cities[j]))
		}
	}

	return &Table{n: n, m: m}
}

// FromRows builds a table from a precomputed square matrix.
//
// Contracts: n ≥ 1 rows of length n, zero diagonal, finite non-negative
// entries, |a_ij − a_ji| ≤ 1e-12. The upper triangle is stored.
//
// Complexity: O(N²).
func FromRows(rows [][]float64) (*Table, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x := rows[i][j]
			switch {
			case math.IsNaN(x) || math.IsInf(x, 0):
				return nil, ErrNaNInf
			case i == j && x != 0:
				return nil, ErrNonZeroDiagonal
			case x < 0:
				return nil, ErrNegativeWeight
			}
		}
	}

	m := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !scalar.EqualWithinAbs(rows[i][j], rows[j][i], symTol) {
				return nil, ErrAsymmetry
			}
			m.SetSym(i, j, rows[i][j])
		}
	}

	return &Table{n: n, m: m}, nil
}

// Len returns N, the number of cities.
func (t *Table) Len() int { return t.n }

// At returns the distance between cities i and j.
// Indices must be in [0, N); anything else is a caller bug.
func (t *Table) At(i, j int) float64 { return t.m.At(i, j) }
