package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/salesman/adjacency"
)

var (
	// ErrEmptyGraph indicates a list without cities; there is nothing to span.
	ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

	// ErrRootOutOfRange indicates that Prim's root is not a city of the list.
	ErrRootOutOfRange = errors.New("prim_kruskal: root out of range")

	// ErrDisconnected indicates that a spanning tree covering all vertices cannot be formed.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method selects the MST algorithm.
type Method string

const (
	// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
	MethodPrim Method = "prim"

	// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
	MethodKruskal Method = "kruskal"
)

// Options configures which MST algorithm to run and, for Prim, its root.
type Options struct {
	Method Method

	// Root is the starting city for Prim. Unused by Kruskal.
	Root int
}

// DefaultOptions returns Prim rooted at city 0.
func DefaultOptions() Options {
	return Options{Method: MethodPrim, Root: 0}
}

// ParseMethod maps a user-supplied name onto a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodPrim, MethodKruskal:
		return m, nil
	default:
		return "", ErrUnknownMethod
	}
}

// Compute runs the algorithm selected by opts.Method.
func Compute(g adjacency.WeightOrdered, opts Options) (*adjacency.List, float64, error) {
	switch opts.Method {
	case MethodPrim:
		return Prim(g, opts.Root)
	case MethodKruskal:
		return Kruskal(g)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
