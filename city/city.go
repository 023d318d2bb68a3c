// Package city defines the point set of a Euclidean TSP instance and the
// reader for its plain-text record format.
//
// Records are whitespace separated triples:
//
//	id x y
//
// where id is a dense 0-based index and x, y are floating-point coordinates.
// The number of records is supplied by the caller; exactly that many are
// consumed and the returned slice is indexed by id.
package city

import (
	"errors"

	"github.com/quasilyte/gmath"
)

var (
	// ErrTooFewCities is returned when the requested city count is below 1.
	ErrTooFewCities = errors.New("city: city count must be at least 1")

	// ErrShortInput is returned when the input ends before all declared records were read.
	ErrShortInput = errors.New("city: input has fewer records than declared")

	// ErrBadField is returned for a non-numeric id or coordinate, or a NaN/Inf coordinate.
	ErrBadField = errors.New("city: malformed field")

	// ErrIDOutOfRange is returned when a record id falls outside [0, n).
	ErrIDOutOfRange = errors.New("city: id out of range")

	// ErrDuplicateID is returned when two records carry the same id.
	ErrDuplicateID = errors.New("city: duplicate id")
)

// City is one point of the instance. It is immutable after load.
type City struct {
	ID  int
	Pos gmath.Vec
}

// New returns a City at (x, y).
func New(id int, x, y float64) City {
	return City{ID: id, Pos: gmath.Vec{X: x, Y: y}}
}

// Distance returns the Euclidean distance between c and other.
func (c City) Distance(other City) float64 {
	return c.Pos.DistanceTo(other.Pos)
}
