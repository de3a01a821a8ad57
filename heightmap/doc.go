// Package heightmap models an immutable, rectangular elevation grid with two
// designated cells, Start and End, as used by height-map navigation puzzles.
//
// What:
//
//   - Grid wraps a rectangular [][]int of elevations, deep-copied on construction.
//   - Position addresses a cell by (Row, Col); it is comparable and used as a map key.
//   - Parse reads the textual form: 'a'..'z' are elevations 0..25,
//     'S' marks the start (elevation 0) and 'E' marks the end (elevation 25).
//
// Guarantees:
//
//   - A Grid is never mutated after New returns, so it may be shared by any
//     number of concurrent readers without locking.
//   - Start and End are always in bounds.
//
// Errors:
//
//   - ErrInvalidShape: wrapped by ErrEmptyGrid and ErrNonRectangular.
//   - ErrElevationRange: a cell value lies outside [MinElevation, Wall].
//   - ErrMarkerOutOfBounds: Start or End lies outside the grid.
//   - ErrUnknownCell, ErrMissingMarker, ErrDuplicateMarker: Parse failures.
//   - ErrOutOfBounds: carried by the panic raised from ElevationAt on a bad position.
//
// Complexity:
//
//   - New, Parse: O(W×H) time and memory.
//   - ElevationAt, InBounds: O(1).
package heightmap
