package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of elevations.
// It deep-copies the input so later changes to elevations are not observed.
// Returns ErrEmptyGrid or ErrNonRectangular (both wrap ErrInvalidShape),
// ErrElevationRange for values outside [MinElevation, Wall], and
// ErrMarkerOutOfBounds if start or end is not a cell of the grid.
// Complexity: O(W×H) time and memory.
func New(elevations [][]int, start, end Position) (*Grid, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(elevations), len(elevations[0])
	for r, row := range elevations {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, e := range elevations[r] {
			if e < MinElevation || e > Wall {
				return nil, fmt.Errorf("%w: %d at %v", ErrElevationRange, e, Position{r, c})
			}
			cells[r][c] = e
		}
	}

	g := &Grid{height: h, width: w, cells: cells, start: start, end: end}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrMarkerOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrMarkerOutOfBounds, end)
	}

	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Start returns the designated start cell.
func (g *Grid) Start() Position { return g.start }

// End returns the designated end cell.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within [0,Height) × [0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// ElevationAt returns the elevation stored at p.
// Callers must bounds-check first; an out-of-bounds p is a contract
// violation and panics with an error wrapping ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) ElevationAt(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.height, g.width))
	}
	return g.cells[p.Row][p.Col]
}

// Positions returns every cell position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, g.height*g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			out = append(out, Position{r, c})
		}
	}
	return out
}

// String renders the grid in the textual form accepted by Parse.
// Wall cells are written as '#'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			p := Position{r, c}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.end:
				sb.WriteByte('E')
			case g.cells[r][c] == Wall:
				sb.WriteByte('#')
			default:
				sb.WriteByte(byte('a' + g.cells[r][c]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
