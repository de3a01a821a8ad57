package ucs

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Distances runs a plain breadth-first flood from source under s and returns
// the step count to every reachable position (source included, at 0).
// Unreachable positions are absent from the map.
//
// Complexity: O(N) time and memory, N = W×H.
func Distances(g *heightmap.Grid, s adjacency.Strategy, source heightmap.Position) (map[heightmap.Position]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if s == nil {
		return nil, ErrNilStrategy
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutOfBounds, source, g.Height(), g.Width())
	}

	dist := make(map[heightmap.Position]int, g.Height()*g.Width())
	dist[source] = 0
	queue := []heightmap.Position{source}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range s.Neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist, nil
}
