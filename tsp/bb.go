// The branch-and-bound engine explores permutations rooted at city 0 depth-first:
//
//   - Near-complete step (N−1 cities placed): place the remaining city,
//     evaluate the closed cost, and if it is strictly below the incumbent,
//     polish a copy with Evolve and store it as the new incumbent.
//   - Branching step: for every unvisited city compute the LowerBound of the
//     path extended by it, sort candidates by (bound, city), and descend into
//     each candidate whose bound is strictly below the current incumbent cost.
//     Siblings are checked individually rather than cut at the first prune,
//     so correctness does not depend on bound monotonicity.
//
// Every Push is paired with a deferred Pop in descend, on all exit paths
// including pruning and interruption. The shared in-progress path is thus
// identical before and after any step.
//
// Complexity: exponential worst case; per branching step O(N) bound
// evaluations of O(N²) each.

package tsp

import (
	"cmp"
	"context"
	"slices"

	"github.com/katalvlaran/salesman/adjacency"
	"github.com/katalvlaran/salesman/distance"
)

// bbEngine holds the search state. It is used by a single goroutine.
type bbEngine struct {
	n     int
	dist  *distance.Table
	graph adjacency.WeightOrdered

	path     *Path // in-progress tour, path.At(0) == 0
	best     *Path // incumbent
	bestCost float64

	stats         Stats
	hooks         Hooks
	progressEvery uint64
	pruneEvery    uint64

	ctx     context.Context
	stopErr error // first observed cancellation cause; non-nil stops the search
}

// candidate is a branch of the current step.
type candidate struct {
	bound float64
	city  int
}

func newEngine(ctx context.Context, t *distance.Table, g adjacency.WeightOrdered, seed *Path, opts Options) *bbEngine {
	e := &bbEngine{
		n:             t.Len(),
		dist:          t,
		graph:         g,
		path:          NewPath(t.Len()),
		best:          seed,
		bestCost:      seed.FullCost(t),
		hooks:         opts.Hooks,
		progressEvery: opts.ProgressEvery,
		pruneEvery:    opts.PruneEvery,
		ctx:           ctx,
	}
	e.path.Push(0)

	return e
}

// run searches from the root and reports whether it finished.
func (e *bbEngine) run() bool {
	if e.stopped() {
		return false
	}
	e.branch()

	return e.stopErr == nil
}

// branch is one recursive step on the current path.
func (e *bbEngine) branch() {
	// 1. Near-complete: only the closing city is left.
	if e.path.Len() == e.n-1 {
		e.closeTour()
		return
	}

	// 2. Bound every extension, cheapest first.
	for _, c := range e.candidates() {
		// 2a. Account and poll for cancellation on the sparse cadence.
		e.stats.Branches++
		e.stats.Depth += uint64(e.path.Len())
		if e.stats.Branches&stopCheckMask == 0 && e.stopped() {
			return
		}
		e.maybeReport()

		// 2b. Recurse while the bound beats the incumbent seen right now.
		e.descend(c.city, func() {
			if c.bound < e.bestCost {
				e.branch()
				return
			}
			// 2c. Prune; the pruned extension is still on the path here.
			e.stats.Prunes++
			e.maybeReportPrune()
		})
		if e.stopErr != nil {
			return
		}
	}
}

// candidates returns every unvisited city with the bound of the path
// extended by it, ordered by (bound, city).
func (e *bbEngine) candidates() []candidate {
	out := make([]candidate, 0, e.n-e.path.Len())
	for c := 0; c < e.n; c++ {
		if e.path.Visited(c) {
			continue
		}
		e.descend(c, func() {
			out = append(out, candidate{bound: e.path.LowerBound(e.dist, e.graph), city: c})
		})
	}
	slices.SortFunc(out, func(a, b candidate) int {
		if r := cmp.Compare(a.bound, b.bound); r != 0 {
			return r
		}
		return cmp.Compare(a.city, b.city)
	})

	return out
}

// closeTour places the single remaining city and evaluates the closed tour.
func (e *bbEngine) closeTour() {
	// 1a. The only unvisited city.
	last := 0
	for e.path.Visited(last) {
		last++
	}
	e.descend(last, func() {
		e.stats.Leaves++
		// 1b. Strict improvement only; ties keep the older incumbent.
		if cost := e.path.FullCost(e.dist); cost < e.bestCost {
			e.accept(cost)
		}
	})
}

// accept stores a polished copy of the current complete path as the incumbent.
func (e *bbEngine) accept(found float64) {
	cand := e.path.Clone()
	cost := cand.EvolveFunc(e.dist, e.hooks.OnRefine)

	e.best = cand
	e.bestCost = cost
	e.stats.Incumbents++
	if e.hooks.OnIncumbent != nil {
		e.hooks.OnIncumbent(Incumbent{Found: found, Cost: cost, Tour: cand.Cities()})
	}
}

// descend pushes city, runs fn, and pops city on every exit path.
func (e *bbEngine) descend(city int, fn func()) {
	e.path.Push(city)
	defer e.path.Pop()
	fn()
}

// stopped records and reports context cancellation.
func (e *bbEngine) stopped() bool {
	if e.stopErr != nil {
		return true
	}
	if e.ctx.Err() != nil {
		e.stopErr = context.Cause(e.ctx)
		return true
	}

	return false
}

func (e *bbEngine) maybeReport() {
	if e.hooks.OnProgress == nil || e.progressEvery == 0 || e.stats.Branches%e.progressEvery != 0 {
		return
	}
	e.hooks.OnProgress(e.snapshot())
}

func (e *bbEngine) maybeReportPrune() {
	if e.hooks.OnPrune == nil || e.pruneEvery == 0 || e.stats.Prunes%e.pruneEvery != 0 {
		return
	}
	e.hooks.OnPrune(e.snapshot())
}

func (e *bbEngine) snapshot() Progress {
	return Progress{
		Stats:    e.stats,
		BestCost: e.bestCost,
		Best:     e.best.Cities(),
		Current:  e.path.Cities(),
	}
}
