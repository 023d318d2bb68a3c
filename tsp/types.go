package tsp

import (
	"errors"
	"time"

	"github.com/katalvlaran/salesman/prim_kruskal"
)

var (
	// ErrTooFewCities is returned when an instance has fewer than two cities.
	ErrTooFewCities = errors.New("tsp: need at least two cities")

	// ErrNotPermutation is returned when a tour is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("tsp: not a permutation")

	// ErrInterrupted is returned when the search stopped before exhausting
	// the root. The Report still carries the best tour found so far.
	ErrInterrupted = errors.New("tsp: search interrupted")

	// ErrTimeLimit is the cancellation cause when Options.TimeLimit elapses.
	ErrTimeLimit = errors.New("tsp: time limit reached")
)

// DefaultProgressEvery is the number of examined branches between two
// OnProgress notifications.
const DefaultProgressEvery uint64 = 10_000_000

// DefaultPruneEvery is the number of pruned branches between two OnPrune
// notifications.
const DefaultPruneEvery uint64 = 1_000_000

// stopCheckMask makes the search poll its context every 4096 branches.
const stopCheckMask = 4095

// Result is a tour and its closed cost. Tour is a permutation starting at city 0.
type Result struct {
	Tour []int
	Cost float64
}

// String returns the tour as space separated city indices.
func (r Result) String() string { return FormatTour(r.Tour) }

// Report is the outcome of Solve.
type Report struct {
	// Best is the final incumbent; optimal when Complete is true.
	Best Result

	// Seed is the MST-preorder approximation the search started from.
	Seed Result

	// Stats are the search counters.
	Stats Stats

	// Complete is false when the search was interrupted.
	Complete bool

	Elapsed time.Duration
}

// Options configures Solve. Use DefaultOptions and override fields.
type Options struct {
	// MST selects the spanning-tree algorithm for the seed.
	MST prim_kruskal.Method

	// ProgressEvery is the branch count between OnProgress calls; 0 disables them.
	ProgressEvery uint64

	// PruneEvery is the prune count between OnPrune calls; 0 disables them.
	PruneEvery uint64

	// TimeLimit bounds the search; 0 means unlimited.
	TimeLimit time.Duration

	Hooks Hooks
}

// DefaultOptions returns Prim seeding, progress every DefaultProgressEvery
// branches, a prune notice every DefaultPruneEvery prunes, and no time limit.
func DefaultOptions() Options {
	return Options{
		MST:           prim_kruskal.MethodPrim,
		ProgressEvery: DefaultProgressEvery,
		PruneEvery:    DefaultPruneEvery,
	}
}

// Hooks are optional callbacks invoked synchronously from the search.
// Slices passed to hooks are copies and may be retained.
type Hooks struct {
	// OnSeed receives the approximate tour before the search starts.
	OnSeed func(seed Result)

	// OnIncumbent receives every new best tour after refinement.
	OnIncumbent func(inc Incumbent)

	// OnRefine receives the cost after each improving Evolve pass.
	OnRefine func(pass int, cost float64)

	// OnProgress receives periodic snapshots of the search.
	OnProgress func(p Progress)

	// OnPrune receives a snapshot every Options.PruneEvery prunes. Current
	// ends with the city whose extension was just pruned.
	OnPrune func(p Progress)
}

// Incumbent describes a newly accepted best tour.
type Incumbent struct {
	// Found is the cost of the tour as the search reached it.
	Found float64

	// Cost is the cost after Evolve; Cost ≤ Found.
	Cost float64

	Tour []int
}

// Progress is a periodic snapshot of the search.
type Progress struct {
	Stats    Stats
	BestCost float64
	Best     []int

	// Current is the in-progress partial tour.
	Current []int
}

// Stats accumulates search counters. It is owned by a single search.
type Stats struct {
	// Branches counts candidate cities examined in branching steps.
	Branches uint64

	// Prunes counts branches skipped because their bound reached the incumbent.
	Prunes uint64

	// Depth sums the partial-tour length at every examined branch.
	Depth uint64

	// Leaves counts completed tours whose cost was evaluated.
	Leaves uint64

	// Incumbents counts accepted improvements over the seed.
	Incumbents uint64
}

// PruneRatio returns Prunes/Branches, 0 before the first branch.
func (s Stats) PruneRatio() float64 {
	if s.Branches == 0 {
		return 0
	}

	return float64(s.Prunes) / float64(s.Branches)
}

// AvgBranchLength returns the mean partial-tour length at a branch.
func (s Stats) AvgBranchLength() float64 {
	if s.Branches == 0 {
		return 0
	}

	return float64(s.Depth) / float64(s.Branches)
}
