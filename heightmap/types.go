package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap construction and lookups.
var (
	// ErrInvalidShape is the umbrella for every shape failure of the input grid.
	ErrInvalidShape = errors.New("heightmap: invalid grid shape")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidShape)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidShape)
	// ErrElevationRange indicates a cell value outside [MinElevation, Wall].
	ErrElevationRange = errors.New("heightmap: elevation out of range")
	// ErrMarkerOutOfBounds indicates Start or End is not a cell of the grid.
	ErrMarkerOutOfBounds = errors.New("heightmap: marker position out of bounds")
	// ErrOutOfBounds is raised (as a panic value) when a lookup escapes the grid.
	ErrOutOfBounds = errors.New("heightmap: position out of bounds")
	// ErrUnknownCell indicates an unrecognised character in the textual form.
	ErrUnknownCell = errors.New("heightmap: unknown cell character")
	// ErrMissingMarker indicates the textual form lacks an 'S' or 'E' marker.
	ErrMissingMarker = errors.New("heightmap: missing start or end marker")
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = errors.New("heightmap: duplicate start or end marker")
)

const (
	// MinElevation is the lowest elevation, written 'a' (and 'S').
	MinElevation = 0
	// MaxElevation is the highest elevation, written 'z' (and 'E').
	MaxElevation = 25
	// Wall is one above MaxElevation. No ascent-limited move can climb onto it
	// from a cell below MaxElevation, so it walls cells off in synthetic grids.
	Wall = MaxElevation + 1
)

// Position addresses a single cell: Row counts down from the top, Col counts
// right from the left edge.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable elevation grid. Once built it is read-only; every
// accessor is safe for concurrent use.
type Grid struct {
	height, width int
	cells         [][]int
	start, end    Position
}
