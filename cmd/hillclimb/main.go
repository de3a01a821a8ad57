// Command hillclimb reads a height map and prints the two answers: the fewest
// steps from the start marker to the end marker, and the fewest steps of the
// shortest hike from any lowest cell to the end marker.
//
// Flags control the input path (also HILLCLIMB_INPUT, optionally set through
// a .env file), parallel execution of the two queries, path printing and
// debug logging.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
	"github.com/katalvlaran/hillclimb/ucs"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "hillclimb"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCommand builds the CLI; results are written to out.
func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "shortest climbs across a height map",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "inputs/day12.in",
				Usage:   "height map file ('a'-'z', 'S' start, 'E' end)",
				Sources: cli.EnvVars("HILLCLIMB_INPUT"),
			},
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "run both queries concurrently",
			},
			&cli.BoolFlag{
				Name:  "show-path",
				Usage: "print every step of both paths",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return run(ctx, out, config{
				input:    cmd.String("input"),
				parallel: cmd.Bool("parallel"),
				showPath: cmd.Bool("show-path"),
				debug:    cmd.Bool("debug"),
			})
		},
	}
}

// config is the resolved command-line configuration.
type config struct {
	input    string
	parallel bool
	showPath bool
	debug    bool
}

// run parses the input file, solves both queries and prints the report.
func run(ctx context.Context, out io.Writer, cfg config) error {
	t0 := time.Now()
	f, err := os.Open(cfg.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	g, err := heightmap.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.input, err)
	}
	fmt.Fprintf(out, "Parsing the input took %s\n\n", time.Since(t0))
	if cfg.debug {
		log.Printf("Parsed %dx%d grid, start %v, end %v", g.Height(), g.Width(), g.Start(), g.End())
	}

	var opts []ucs.Option
	if cfg.debug {
		var closed atomic.Int64 // both queries may close nodes concurrently
		opts = append(opts, ucs.WithOnClose(func(ucs.Node) { closed.Add(1) }))
		defer func() { log.Printf("Closed %d positions in total", closed.Load()) }()
	}

	if cfg.parallel {
		t := time.Now()
		rep, err := hillclimb.Solve(ctx, g, hillclimb.WithParallel(), hillclimb.WithSearchOptions(opts...))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Both parts took %s\n\n", time.Since(t))
		report(out, "Part 1", "Minimum steps to reach the end", rep.Climb, cfg.showPath)
		report(out, "Part 2", "Shortest hike path length", rep.Hike, cfg.showPath)
		return nil
	}

	t1 := time.Now()
	climb, err := hillclimb.Climb(g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Part 1 took %s\n", time.Since(t1))
	report(out, "Part 1", "Minimum steps to reach the end", climb, cfg.showPath)

	t2 := time.Now()
	hike, err := hillclimb.Hike(g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Part 2 took %s\n", time.Since(t2))
	report(out, "Part 2", "Shortest hike path length", hike, cfg.showPath)

	return nil
}

// report prints one query's answer, or "unreachable" when no path exists.
func report(out io.Writer, part, label string, res *ucs.Result, showPath bool) {
	if !res.Found {
		fmt.Fprintf(out, "%s:\n%s: unreachable\n\n", part, label)
		return
	}
	fmt.Fprintf(out, "%s:\n%s: %d\n", part, label, res.Steps())
	if showPath {
		for i, s := range res.Path {
			fmt.Fprintf(out, "  %3d %v elevation %d\n", i, s.Position, s.Elevation)
		}
	}
	fmt.Fprintln(out)
}
