package ucs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/ucs"
)

// puzzle is the canonical 5×8 height map: start at (0,0), end at (2,5).
const puzzle = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

func pos(r, c int) heightmap.Position { return heightmap.Position{Row: r, Col: c} }

func mustParse(t testing.TB, s string) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.ParseString(s)
	require.NoError(t, err)
	return g
}

// randomGrid builds an h×w grid whose neighboring cells mostly differ by a
// small amount, so that both reachable and unreachable targets occur.
func randomGrid(t testing.TB, rng *rand.Rand, h, w int) *heightmap.Grid {
	t.Helper()
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c := 0; c < w; c++ {
			cells[r][c] = rng.Intn(heightmap.MaxElevation/5 + 1)
			if rng.Intn(10) == 0 {
				cells[r][c] = rng.Intn(heightmap.Wall + 1)
			}
		}
	}
	start := pos(rng.Intn(h), rng.Intn(w))
	end := pos(rng.Intn(h), rng.Intn(w))
	g, err := heightmap.New(cells, start, end)
	require.NoError(t, err)
	return g
}

// requireValidPath checks the structural invariants every found path must hold:
// it starts at source, stays in bounds, moves one orthogonal cell per step,
// obeys the strategy, records true elevations and ends on a goal cell.
func requireValidPath(t *testing.T, g *heightmap.Grid, s adjacency.Strategy, source heightmap.Position, goal ucs.Goal, res *ucs.Result) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	require.Equal(t, source, res.Path[0].Position)
	require.Equal(t, res.Goal, res.Path[len(res.Path)-1].Position)
	require.True(t, goal.Reached(res.Goal))
	require.Equal(t, len(res.Path)-1, res.Steps())

	seen := make(map[heightmap.Position]bool, len(res.Path))
	for i, st := range res.Path {
		require.True(t, g.InBounds(st.Position), "step %d %v out of bounds", i, st.Position)
		require.Equal(t, g.ElevationAt(st.Position), st.Elevation, "step %d elevation", i)
		require.False(t, seen[st.Position], "position %v repeated", st.Position)
		seen[st.Position] = true
		if i == 0 {
			continue
		}
		prev := res.Path[i-1]
		dr, dc := st.Position.Row-prev.Position.Row, st.Position.Col-prev.Position.Col
		require.Equal(t, 1, abs(dr)+abs(dc), "step %d is not an orthogonal move", i)
		require.True(t, s.Allows(prev.Elevation, st.Elevation),
			"step %d from %d to %d violates the strategy", i, prev.Elevation, st.Elevation)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
