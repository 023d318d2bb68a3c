package tsp

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/salesman/adjacency"
	"github.com/katalvlaran/salesman/distance"
)

// Solve runs the full pipeline on t: complete weight-ordered adjacency,
// MST-preorder seed, then branch-and-bound from city 0.
//
// The search stops early when ctx is cancelled or opts.TimeLimit elapses; the
// Report then holds the best tour found so far, Complete is false, and the
// error wraps ErrInterrupted together with the cancellation cause
// (ErrTimeLimit for the time limit).
//
// Errors: ErrTooFewCities for N < 2; spanning-tree errors from Approx.
func Solve(ctx context.Context, t *distance.Table, opts Options) (Report, error) {
	if t == nil || t.Len() < 2 {
		return Report{}, ErrTooFewCities
	}
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, opts.TimeLimit, ErrTimeLimit)
		defer cancel()
	}
	start := time.Now()

	g := adjacency.Complete(t).ByWeight()
	seed, err := Approx(t, g, opts.MST)
	if err != nil {
		return Report{}, err
	}
	if opts.Hooks.OnSeed != nil {
		opts.Hooks.OnSeed(Result{Tour: append([]int(nil), seed.Tour...), Cost: seed.Cost})
	}

	incumbent, err := PathFromPermutation(seed.Tour)
	if err != nil {
		return Report{}, err
	}
	e := newEngine(ctx, t, g, incumbent, opts)
	done := e.run()

	rep := Report{
		Best:     Result{Tour: e.best.Cities(), Cost: e.bestCost},
		Seed:     seed,
		Stats:    e.stats,
		Complete: done,
		Elapsed:  time.Since(start),
	}
	if !done {
		return rep, fmt.Errorf("%w: %w", ErrInterrupted, e.stopErr)
	}

	return rep, nil
}
