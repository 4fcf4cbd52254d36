// Package heightmap defines core types and sentinel errors
// for the heightmap package of github.com/katalvlaran/hillclimb.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrMalformedGrid is wrapped by every structural parse failure.
	ErrMalformedGrid = errors.New("heightmap: malformed grid")

	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)

	// ErrInvalidSymbol indicates a character outside 'a'..'z', 'S', 'E'.
	ErrInvalidSymbol = fmt.Errorf("%w: invalid elevation symbol", ErrMalformedGrid)

	// ErrStartMarker indicates a missing or duplicated start marker.
	ErrStartMarker = fmt.Errorf("%w: exactly one start marker required", ErrMalformedGrid)

	// ErrEndMarker indicates a missing or duplicated end marker.
	ErrEndMarker = fmt.Errorf("%w: exactly one end marker required", ErrMalformedGrid)

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("heightmap: coordinate out of bounds")
)

// Raw input symbols.
const (
	StartMarker = 'S'
	EndMarker   = 'E'
)

// Elevation is a height level, 0 ('a') through 25 ('z').
type Elevation uint8

const (
	// MinElevation is the lowest level, written 'a'.
	MinElevation Elevation = 0
	// MaxElevation is the highest level, written 'z'.
	MaxElevation Elevation = 25
)

// ElevationOf maps a lowercase letter to its elevation.
func ElevationOf(r byte) (Elevation, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return Elevation(r - 'a'), true
}

// Symbol returns the letter for e.
func (e Elevation) Symbol() byte { return 'a' + byte(e) }

// Coord is a cell position. Row grows downward, Col grows rightward.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col} }

// Orthogonal neighbour offsets in the fixed order N, E, S, W.
var offsets = [4]Coord{{Row: -1}, {Col: 1}, {Row: 1}, {Col: -1}}

// Grid is an immutable elevation field with resolved start and end cells.
// cells holds elevations in row-major order; width and height define dimensions.
type Grid struct {
	width, height int
	cells         []Elevation
	start, end    Coord
}
