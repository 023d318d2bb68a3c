package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/salesman/city"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "write a random instance in the format read by solve",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "cities",
				Aliases:  []string{"n"},
				Usage:    "number of cities",
				EnvVars:  []string{"SALESMAN_CITIES"},
				Required: true,
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "random seed; the same seed yields the same instance",
				Value:   1,
				EnvVars: []string{"SALESMAN_SEED"},
			},
			&cli.Float64Flag{
				Name:  "width",
				Usage: "x coordinates are drawn from [0, width)",
				Value: 10000,
			},
			&cli.Float64Flag{
				Name:  "height",
				Usage: "y coordinates are drawn from [0, height)",
				Value: 10000,
			},
			&cli.PathFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "destination file, standard output when empty",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	n := c.Int("cities")
	if n < 1 {
		return fmt.Errorf("%w: %d", city.ErrTooFewCities, n)
	}
	cities := city.Random(n, c.Int64("seed"), c.Float64("width"), c.Float64("height"))

	out := c.Path("output")
	if out == "" {
		return city.Write(c.App.Writer, cities)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %q: %w", out, err)
	}
	if err := city.Write(f, cities); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
