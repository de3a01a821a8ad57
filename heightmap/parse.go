package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a height map in its textual form, one row per line:
//
//	'a'..'z'  elevation 0..25
//	'S'       start marker, elevation 0
//	'E'       end marker, elevation 25
//	'#'       Wall
//
// Trailing blank lines and '\r' line endings are ignored. Exactly one 'S' and
// one 'E' must be present.
func Parse(r io.Reader) (*Grid, error) {
	var (
		rows               [][]int
		start, end         Position
		haveStart, haveEnd bool
		blankSeen          bool
	)
	sc := bufio.NewScanner(r)
	for row := 0; sc.Scan(); row++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			blankSeen = true
			continue
		}
		if blankSeen {
			return nil, fmt.Errorf("%w: blank line inside grid before row %d", ErrInvalidShape, row)
		}

		cells := make([]int, 0, len(line))
		for col, ch := range line {
			p := Position{len(rows), col}
			switch {
			case ch == 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateMarker, p)
				}
				start, haveStart = p, true
				cells = append(cells, MinElevation)
			case ch == 'E':
				if haveEnd {
					return nil, fmt.Errorf("%w: second 'E' at %v", ErrDuplicateMarker, p)
				}
				end, haveEnd = p, true
				cells = append(cells, MaxElevation)
			case ch == '#':
				cells = append(cells, Wall)
			case ch >= 'a' && ch <= 'z':
				cells = append(cells, int(ch-'a'))
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, ch, p)
			}
		}
		rows = append(rows, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if !haveStart || !haveEnd {
		return nil, fmt.Errorf("%w: start=%t end=%t", ErrMissingMarker, haveStart, haveEnd)
	}

	return New(rows, start, end)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
