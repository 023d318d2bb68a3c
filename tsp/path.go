package tsp

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path is an ordered sequence of distinct cities paired with an O(1)
// membership set over all N cities of the instance.
//
// Invariant: Len() equals the number of cities for which Visited is true.
//
// A Path is used two ways:
//   - complete (built by PathFromPermutation): the seed and every incumbent,
//     rearranged in place by Evolve;
//   - in progress (built by NewPath): grown and shrunk by Push/Pop during the
//     search, always restored before a recursive step returns.
type Path struct {
	seq     []int
	visited []bool
}

// NewPath returns an empty path over n cities.
func NewPath(n int) *Path {
	return &Path{seq: make([]int, 0, n), visited: make([]bool, n)}
}

// PathFromPermutation returns the complete path perm, which must be a
// permutation of 0..len(perm)-1. perm is copied.
//
// Complexity: O(n) time and space.
func PathFromPermutation(perm []int) (*Path, error) {
	n := len(perm)
	if n == 0 {
		return nil, ErrNotPermutation
	}
	p := NewPath(n)
	for _, c := range perm {
		if c < 0 || c >= n || p.visited[c] {
			return nil, fmt.Errorf("%w: %v", ErrNotPermutation, perm)
		}
		p.Push(c)
	}

	return p, nil
}

// Push appends city. Pushing a city already on the path is a programming
// error and panics.
func (p *Path) Push(city int) {
	if p.visited[city] {
		panic("tsp: push of visited city " + strconv.Itoa(city))
	}
	p.visited[city] = true
	p.seq = append(p.seq, city)
}

// Pop removes the last city. Popping an empty path panics.
func (p *Path) Pop() {
	last := len(p.seq) - 1
	if last < 0 {
		panic("tsp: pop of empty path")
	}
	p.visited[p.seq[last]] = false
	p.seq = p.seq[:last]
}

// Front returns the first city. The path must not be empty.
func (p *Path) Front() int { return p.seq[0] }

// Back returns the last city. The path must not be empty.
func (p *Path) Back() int { return p.seq[len(p.seq)-1] }

// Len returns the number of cities on the path.
func (p *Path) Len() int { return len(p.seq) }

// Size returns N, the number of cities of the instance.
func (p *Path) Size() int { return len(p.visited) }

// Complete reports whether every city is on the path.
func (p *Path) Complete() bool { return len(p.seq) == len(p.visited) }

// Visited reports whether city is on the path.
func (p *Path) Visited(city int) bool { return p.visited[city] }

// At returns the city at position i.
func (p *Path) At(i int) int { return p.seq[i] }

// Cities returns a copy of the sequence.
func (p *Path) Cities() []int { return slices.Clone(p.seq) }

// Clone returns an independent copy.
func (p *Path) Clone() *Path {
	seq := make([]int, len(p.seq), len(p.visited))
	copy(seq, p.seq)

	return &Path{seq: seq, visited: slices.Clone(p.visited)}
}

// String returns the cities separated by single spaces, e.g. "0 3 1 2".
func (p *Path) String() string { return FormatTour(p.seq) }

// FormatTour renders tour the way Path.String does.
func FormatTour(tour []int) string {
	var b strings.Builder
	for i, c := range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// swap exchanges the cities at positions i and j. Membership is unchanged.
func (p *Path) swap(i, j int) { p.seq[i], p.seq[j] = p.seq[j], p.seq[i] }
