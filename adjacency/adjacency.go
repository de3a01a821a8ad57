// Package adjacency provides the neighbor-generation rules used to walk a
// heightmap.Grid: an ascent-limited rule for forward search and its inverse,
// a descent-limited rule, for searching backward from the summit.
//
// Both rules look at the four orthogonal neighbors (north, south, west, east
// in that order), drop those outside the grid before any elevation lookup,
// and keep the ones the rule allows. Neighbor order only affects which of
// several equally short paths a search returns, never its length.
package adjacency

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ErrUnknownKind is returned by For for a Kind it does not recognise.
var ErrUnknownKind = errors.New("adjacency: unknown strategy kind")

// Strategy produces the positions reachable in one step from a position.
type Strategy interface {
	// Neighbors returns the in-bounds positions reachable from p, zero to four of them.
	Neighbors(p heightmap.Position) []heightmap.Position
	// Allows reports whether a step from elevation from to elevation to is legal.
	Allows(from, to int) bool
}

// Kind selects one of the two built-in strategies.
type Kind int

const (
	// Forward climbs at most one unit per step (Ascent).
	Forward Kind = iota
	// Reverse descends at most one unit per step (Descent).
	Reverse
)

// String returns "forward", "reverse" or "Kind(n)".
func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// For returns the strategy of the given kind bound to g.
func For(g *heightmap.Grid, k Kind) (Strategy, error) {
	switch k {
	case Forward:
		return Ascent(g), nil
	case Reverse:
		return Descent(g), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}

// offsets lists the orthogonal moves as (dRow, dCol): north, south, west, east.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// rule binds a step predicate to a grid.
type rule struct {
	grid  *heightmap.Grid
	allow func(from, to int) bool
}

// Ascent returns the forward rule: a neighbor n of p is reachable when
// elevation(n) <= elevation(p) + 1. Descending is unrestricted.
func Ascent(g *heightmap.Grid) Strategy {
	return &rule{grid: g, allow: func(from, to int) bool { return to <= from+1 }}
}

// Descent returns the reverse rule: a neighbor n of p is reachable when
// elevation(n) >= max(0, elevation(p) - 1). Climbing is unrestricted.
func Descent(g *heightmap.Grid) Strategy {
	return &rule{grid: g, allow: func(from, to int) bool {
		floor := from - 1
		if floor < heightmap.MinElevation {
			floor = heightmap.MinElevation
		}
		return to >= floor
	}}
}

// Allows implements Strategy.
func (r *rule) Allows(from, to int) bool { return r.allow(from, to) }

// Neighbors implements Strategy.
// Complexity: O(1).
func (r *rule) Neighbors(p heightmap.Position) []heightmap.Position {
	h := r.grid.ElevationAt(p)
	out := make([]heightmap.Position, 0, len(offsets))
	for _, d := range offsets {
		n := heightmap.Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !r.grid.InBounds(n) {
			continue
		}
		if r.allow(h, r.grid.ElevationAt(n)) {
			out = append(out, n)
		}
	}
	return out
}
