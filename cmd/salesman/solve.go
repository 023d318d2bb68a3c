package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/kr/pretty"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/salesman/city"
	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/prim_kruskal"
	"github.com/katalvlaran/salesman/tsp"
)

// solveConfig is the resolved flag set of the solve command.
type solveConfig struct {
	Input         string
	Cities        int
	MST           prim_kruskal.Method
	ProgressEvery uint64
	PruneEvery    uint64
	TimeLimit     time.Duration
	LogLevel      string
	CPUProfile    string
}

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "find the optimal tour through the cities of a file",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "file of whitespace separated `id x y` records",
				EnvVars:  []string{"SALESMAN_INPUT"},
				Required: true,
			},
			&cli.IntFlag{
				Name:     "cities",
				Aliases:  []string{"n"},
				Usage:    "number of records to read",
				EnvVars:  []string{"SALESMAN_CITIES"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "mst",
				Usage:   "spanning tree for the seed tour: prim or kruskal",
				Value:   string(prim_kruskal.MethodPrim),
				EnvVars: []string{"SALESMAN_MST"},
			},
			&cli.Uint64Flag{
				Name:    "progress-every",
				Usage:   "branches between progress lines, 0 disables them",
				Value:   tsp.DefaultProgressEvery,
				EnvVars: []string{"SALESMAN_PROGRESS_EVERY"},
			},
			&cli.Uint64Flag{
				Name:    "prune-every",
				Usage:   "prunes between partial-tour notices, 0 disables them",
				Value:   tsp.DefaultPruneEvery,
				EnvVars: []string{"SALESMAN_PRUNE_EVERY"},
			},
			&cli.DurationFlag{
				Name:    "time-limit",
				Usage:   "stop the search after this long and print the best tour so far, 0 for no limit",
				EnvVars: []string{"SALESMAN_TIME_LIMIT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   defaultLogLevel,
				EnvVars: []string{"SALESMAN_LOG_LEVEL"},
			},
			&cli.PathFlag{
				Name:    "cpuprofile",
				Usage:   "write a CPU profile into this directory",
				EnvVars: []string{"SALESMAN_CPUPROFILE"},
			},
		},
		Action: runSolve,
	}
}

func runSolve(c *cli.Context) error {
	method, err := prim_kruskal.ParseMethod(c.String("mst"))
	if err != nil {
		return err
	}
	cfg := solveConfig{
		Input:         c.Path("input"),
		Cities:        c.Int("cities"),
		MST:           method,
		ProgressEvery: c.Uint64("progress-every"),
		PruneEvery:    c.Uint64("prune-every"),
		TimeLimit:     c.Duration("time-limit"),
		LogLevel:      c.String("log-level"),
		CPUProfile:    c.Path("cpuprofile"),
	}

	w := c.App.Writer
	logger, err := newLogger(w, cfg.LogLevel)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "configuration", "config", pretty.Sprint(cfg))
	logHost(c.Context, logger)

	if cfg.CPUProfile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(cfg.CPUProfile),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop()
	}

	cities, err := city.Load(cfg.Input, cfg.Cities)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "cities loaded", "input", cfg.Input, "cities", len(cities))

	opts := tsp.DefaultOptions()
	opts.MST = cfg.MST
	opts.ProgressEvery = cfg.ProgressEvery
	opts.PruneEvery = cfg.PruneEvery
	opts.TimeLimit = cfg.TimeLimit
	opts.Hooks = searchHooks(w, logger)

	rep, err := tsp.Solve(c.Context, distance.New(cities), opts)
	switch {
	case errors.Is(err, tsp.ErrInterrupted):
		level.Warn(logger).Log("msg", "search stopped early, tour may not be optimal", "err", err)
	case err != nil:
		return err
	}

	level.Info(logger).Log(
		"msg", "search finished",
		"complete", rep.Complete,
		"took", rep.Elapsed,
		"branches", rep.Stats.Branches,
		"prunes", rep.Stats.Prunes,
		"leaves", rep.Stats.Leaves,
		"incumbents", rep.Stats.Incumbents,
	)
	printResult(w, "best", rep.Best)

	return nil
}

// searchHooks prints the seed and routes search events to logger.
func searchHooks(w io.Writer, logger log.Logger) tsp.Hooks {
	return tsp.Hooks{
		OnSeed: func(seed tsp.Result) {
			printResult(w, "seed", seed)
		},
		OnIncumbent: func(inc tsp.Incumbent) {
			level.Info(logger).Log(
				"msg", "new best tour",
				"found", inc.Found,
				"cost", inc.Cost,
				"tour", tsp.FormatTour(inc.Tour),
			)
		},
		OnRefine: func(pass int, cost float64) {
			level.Debug(logger).Log("msg", "improved cost", "pass", pass, "cost", cost)
		},
		OnProgress: func(p tsp.Progress) {
			level.Info(logger).Log(
				"msg", "progress",
				"calls", p.Stats.Branches,
				"prunes", p.Stats.Prunes,
				"prune_ratio", fmt.Sprintf("%.4f", p.Stats.PruneRatio()),
				"avg_branch_length", fmt.Sprintf("%.2f", p.Stats.AvgBranchLength()),
				"best_cost", p.BestCost,
				"best", tsp.FormatTour(p.Best),
				"current", tsp.FormatTour(p.Current),
			)
		},
		OnPrune: func(p tsp.Progress) {
			level.Info(logger).Log(
				"msg", "pruned",
				"prunes", p.Stats.Prunes,
				"path", tsp.FormatTour(p.Current),
			)
		},
	}
}

func printResult(w io.Writer, label string, r tsp.Result) {
	fmt.Fprintf(w, "%s tour: %s\n%s cost: %.6f\n", label, r, label, r.Cost)
}
