package hillclimb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/hillclimb"
	"github.com/katalvlaran/hillclimb/ucs"
)

const puzzle = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func mustParse(t *testing.T, s string) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.ParseString(s)
	require.NoError(t, err)
	return g
}

func TestClimbAndHike(t *testing.T) {
	g := mustParse(t, puzzle)

	climb, err := hillclimb.Climb(g)
	require.NoError(t, err)
	assert.Equal(t, 31, climb.Steps())
	assert.Equal(t, g.Start(), climb.Path[0].Position)
	assert.Equal(t, g.End(), climb.Goal)

	hike, err := hillclimb.Hike(g)
	require.NoError(t, err)
	assert.Equal(t, 29, hike.Steps())
	assert.Equal(t, g.End(), hike.Path[0].Position)
	assert.Equal(t, heightmap.MinElevation, hike.Path[len(hike.Path)-1].Elevation)
}

func TestNilGrid(t *testing.T) {
	_, err := hillclimb.Climb(nil)
	assert.ErrorIs(t, err, hillclimb.ErrNilGrid)
	_, err = hillclimb.Hike(nil)
	assert.ErrorIs(t, err, hillclimb.ErrNilGrid)
	_, err = hillclimb.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, hillclimb.ErrNilGrid)
}

func TestSolve(t *testing.T) {
	g := mustParse(t, puzzle)
	for _, tc := range []struct {
		name string
		opts []hillclimb.Option
	}{
		{"Sequential", nil},
		{"Parallel", []hillclimb.Option{hillclimb.WithParallel()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := hillclimb.Solve(context.Background(), g, tc.opts...)
			require.NoError(t, err)
			require.NotNil(t, rep.Climb)
			require.NotNil(t, rep.Hike)
			assert.Equal(t, 31, rep.Climb.Steps())
			assert.Equal(t, 29, rep.Hike.Steps())
		})
	}
}

// TestSolve_ParallelMatchesSequential shares one grid between many concurrent solves.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	g := mustParse(t, puzzle)
	want, err := hillclimb.Solve(context.Background(), g)
	require.NoError(t, err)

	results := make(chan hillclimb.Report, 8)
	for i := 0; i < cap(results); i++ {
		go func() {
			rep, err := hillclimb.Solve(context.Background(), g, hillclimb.WithParallel())
			assert.NoError(t, err)
			results <- rep
		}()
	}
	for i := 0; i < cap(results); i++ {
		rep := <-results
		assert.Equal(t, want.Climb.Path, rep.Climb.Path)
		assert.Equal(t, want.Hike.Path, rep.Hike.Path)
	}
}

func TestSolve_Unreachable(t *testing.T) {
	g := mustParse(t, "Sb#\n##E\n")
	rep, err := hillclimb.Solve(context.Background(), g, hillclimb.WithParallel())
	require.NoError(t, err)
	assert.False(t, rep.Climb.Found)
	assert.False(t, rep.Hike.Found)
}

func TestSolve_SearchOptionsForwarded(t *testing.T) {
	g := mustParse(t, puzzle)

	rep, err := hillclimb.Solve(context.Background(), g,
		hillclimb.WithSearchOptions(ucs.WithMaxCost(30)))
	require.NoError(t, err)
	assert.False(t, rep.Climb.Found, "climb needs 31 steps")
	assert.Equal(t, 29, rep.Hike.Steps())

	_, err = hillclimb.Solve(context.Background(), g,
		hillclimb.WithParallel(), hillclimb.WithSearchOptions(ucs.WithMaxCost(-3)))
	assert.ErrorIs(t, err, ucs.ErrOptionViolation)
}

func TestSolve_Canceled(t *testing.T) {
	g := mustParse(t, puzzle)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hillclimb.Solve(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = hillclimb.Solve(ctx, g, hillclimb.WithParallel())
	assert.ErrorIs(t, err, context.Canceled)
}
