// Package hillclimb answers the two height-map navigation queries on a
// heightmap.Grid:
//
//   - Climb: fewest steps from Start to End, climbing at most one unit per step.
//   - Hike:  fewest steps from End down to the nearest elevation-0 cell,
//     under the mirrored rule, which equals the shortest climb from any
//     lowest cell to End.
//
// Solve runs both, sequentially or concurrently over the shared read-only grid.
// An unreachable destination is reported through Result.Found, never as an error.
package hillclimb

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/ucs"
)

// ErrNilGrid is returned when a nil grid is passed.
var ErrNilGrid = errors.New("hillclimb: grid is nil")

// Climb searches forward from g.Start() to g.End() with the ascent-limited rule.
func Climb(g *heightmap.Grid, opts ...ucs.Option) (*ucs.Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return ucs.Search(g, adjacency.Ascent(g), g.Start(), ucs.At(g.End()), opts...)
}

// Hike searches backward from g.End() with the descent-limited rule until it
// closes any cell at heightmap.MinElevation. The returned path runs from End
// to that cell.
func Hike(g *heightmap.Grid, opts ...ucs.Option) (*ucs.Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return ucs.Search(g, adjacency.Descent(g), g.End(), ucs.ElevationIs(g, heightmap.MinElevation), opts...)
}

// Report holds the outcome of both queries.
type Report struct {
	Climb *ucs.Result
	Hike  *ucs.Result
}

// Option configures Solve.
type Option func(*Options)

// Options controls how Solve runs the two queries.
type Options struct {
	// Parallel runs Climb and Hike on separate goroutines.
	Parallel bool
	// Search options forwarded to both queries.
	Search []ucs.Option
}

// WithParallel runs both queries concurrently.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithSearchOptions forwards options to both underlying searches.
func WithSearchOptions(opts ...ucs.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// Solve runs Climb and Hike on g. In parallel mode each goroutine owns its
// own search state; only the immutable grid is shared. ctx is checked before
// each query starts.
func Solve(ctx context.Context, g *heightmap.Grid, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGrid
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	var rep Report
	climb := func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := Climb(g, cfg.Search...)
		rep.Climb = res
		return err
	}
	hike := func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := Hike(g, cfg.Search...)
		rep.Hike = res
		return err
	}

	if !cfg.Parallel {
		if err := climb(ctx); err != nil {
			return Report{}, err
		}
		if err := hike(ctx); err != nil {
			return Report{}, err
		}
		return rep, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return climb(egCtx) })
	eg.Go(func() error { return hike(egCtx) })
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	return rep, nil
}
