package ucs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for Search and Distances.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("ucs: grid is nil")

	// ErrNilStrategy is returned if no adjacency strategy is supplied.
	ErrNilStrategy = errors.New("ucs: adjacency strategy is nil")

	// ErrNilGoal is returned if no goal is supplied.
	ErrNilGoal = errors.New("ucs: goal is nil")

	// ErrSourceOutOfBounds is returned when the source is not a cell of the grid.
	ErrSourceOutOfBounds = errors.New("ucs: source position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ucs: invalid option supplied")
)

// Node is a search record: the position reached, the position it was reached
// from, and the number of steps taken from the source.
type Node struct {
	Position  heightmap.Position
	Parent    heightmap.Position // meaningful only when HasParent
	HasParent bool               // false only for the source node
	Cost      int
}

// Step is one element of a returned path.
type Step struct {
	Position  heightmap.Position
	Elevation int
}

// Result is the outcome of a Search.
//   - Path: source-first steps, nil when Found is false.
//   - Goal: the goal cell discovered (zero value when Found is false).
//   - Found: whether any reachable cell satisfied the goal.
//   - Closed: how many positions were finalised.
type Result struct {
	Path   []Step
	Goal   heightmap.Position
	Found  bool
	Closed int
}

// Steps returns the number of edges on the path, or -1 if no path was found.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Positions returns the path positions without elevations.
func (r *Result) Positions() []heightmap.Position {
	if !r.Found {
		return nil
	}
	out := make([]heightmap.Position, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.Position
	}
	return out
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and hooks for a single Search.
type Options struct {
	// MaxCost bounds the cost of any node pushed onto the open set.
	MaxCost int

	// OnPush is called for every node pushed onto the open set.
	OnPush func(n Node)

	// OnClose is called once for every node moved to the closed set,
	// before the goal test.
	OnClose func(n Node)

	err error
}

// DefaultOptions returns Options with no cost bound and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt,
		OnPush:  func(Node) {},
		OnClose: func(Node) {},
	}
}

// WithMaxCost stops the search from expanding beyond n steps. A goal that is
// only reachable in more than n steps is reported as not found.
//
//	n >= 0: limit to n
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxCost(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCost = n
	}
}

// WithOnPush registers a callback run for every push onto the open set.
func WithOnPush(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnClose registers a callback run as each node is closed.
func WithOnClose(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}
