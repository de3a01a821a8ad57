package ucs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Goal decides whether the search may stop at a position.
type Goal interface {
	Reached(p heightmap.Position) bool
}

// GoalFunc adapts an ordinary function to the Goal interface.
type GoalFunc func(p heightmap.Position) bool

// Reached implements Goal.
func (f GoalFunc) Reached(p heightmap.Position) bool { return f(p) }

// At is satisfied only by target.
func At(target heightmap.Position) Goal {
	return GoalFunc(func(p heightmap.Position) bool { return p == target })
}

// AnyOf is satisfied by any of the given positions.
func AnyOf(targets ...heightmap.Position) Goal {
	set := mapset.New[heightmap.Position]()
	for _, t := range targets {
		set.Put(t)
	}
	return GoalFunc(set.Has)
}

// ElevationIs is satisfied by any cell of g whose elevation equals e.
// The search only asks about in-bounds positions.
func ElevationIs(g *heightmap.Grid, e int) Goal {
	return GoalFunc(func(p heightmap.Position) bool { return g.ElevationAt(p) == e })
}
