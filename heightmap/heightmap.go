// Package heightmap provides parsing and read-only access to an elevation
// grid. It supports:
//
//   - Parsing puzzle text with 'S' and 'E' markers
//   - Programmatic construction from numeric elevations
//   - Row-major indexing and orthogonal neighbourhoods
package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 1 << 20

// Parse builds a Grid from puzzle text, one row per line.
// See ParseReader for the accepted format and returned errors.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader reads an elevation map from r.
//
// Each line holds 'a'..'z' plus exactly one 'S' and exactly one 'E'.
// A trailing '\r' on each line and trailing blank lines are ignored.
// Every failure wraps ErrMalformedGrid; no partial grid is returned.
// Complexity: O(W×H) time and memory.
func ParseReader(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		rows = append(rows, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Elevation, 0, w*h),
	}
	var starts, ends int
	for row, line := range rows {
		if len(line) != w {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrNonRectangular, row+1, len(line), w)
		}
		for col := 0; col < len(line); col++ {
			ch := line[col]
			switch ch {
			case StartMarker:
				starts++
				g.start = Coord{Row: row, Col: col}
				ch = MinElevation.Symbol()
			case EndMarker:
				ends++
				g.end = Coord{Row: row, Col: col}
				ch = MaxElevation.Symbol()
			}
			e, ok := ElevationOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidSymbol, line[col], row+1, col+1)
			}
			g.cells = append(g.cells, e)
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartMarker, starts)
	}
	if ends != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrEndMarker, ends)
	}

	return g, nil
}

// New constructs a Grid from numeric elevations. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidSymbol for elevations
// above MaxElevation, or ErrOutOfBounds when start or end lies outside.
func New(elevations [][]Elevation, start, end Coord) (*Grid, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(elevations), len(elevations[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Elevation, 0, w*h),
		start:  start,
		end:    end,
	}
	for row, line := range elevations {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, row, len(line), w)
		}
		for col, e := range line {
			if e > MaxElevation {
				return nil, fmt.Errorf("%w: elevation %d at %v", ErrInvalidSymbol, e, Coord{Row: row, Col: col})
			}
		}
		g.cells = append(g.cells, line...)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}

	return g, nil
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Len is the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// Start is the resolved start marker position.
func (g *Grid) Start() Coord { return g.start }

// End is the resolved end marker position.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Index maps c to its row-major index: Row*Width + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// At returns the elevation of c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (Elevation, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.height, g.width)
	}
	return g.cells[g.Index(c)], nil
}

// ElevationAt returns the elevation at a row-major index without checks.
func (g *Grid) ElevationAt(idx int) Elevation {
	return g.cells[idx]
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// N, E, S, W.
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.AppendNeighbors(make([]Coord, 0, len(offsets)), c)
}

// AppendNeighbors appends the in-bounds orthogonal neighbours of c to dst,
// in the order N, E, S, W, and returns the extended slice.
func (g *Grid) AppendNeighbors(dst []Coord, c Coord) []Coord {
	for _, d := range offsets {
		if n := c.Add(d); g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Lowest returns every cell at MinElevation in row-major order.
// The start cell is included.
func (g *Grid) Lowest() []Coord {
	var out []Coord
	for i, e := range g.cells {
		if e == MinElevation {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// String renders the grid in its input notation, markers included.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Len() + g.height)
	for i, e := range g.cells {
		c := g.Coordinate(i)
		switch c {
		case g.start:
			b.WriteByte(StartMarker)
		case g.end:
			b.WriteByte(EndMarker)
		default:
			b.WriteByte(e.Symbol())
		}
		if c.Col == g.width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
