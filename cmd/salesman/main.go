// Command salesman reads a list of cities and prints the cheapest closed tour
// through all of them, found by branch-and-bound from an MST-preorder seed.
//
//	salesman solve --input cities.txt --cities 12
//	salesman generate --cities 12 --seed 7 --output cities.txt
//
// Every flag can also be set through its SALESMAN_* environment variable.
// SIGINT or SIGTERM stops the search; the best tour found so far is printed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "salesman:", err)
		stop()
		os.Exit(1)
	}
}

// newApp assembles the command tree. Errors are returned from Run instead of
// exiting, so main owns the exit status.
func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "salesman",
		Usage:     "solve Euclidean travelling salesman instances exactly",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			solveCommand(),
			generateCommand(),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
