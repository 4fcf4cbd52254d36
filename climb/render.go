package climb

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Path drawing symbols.
const (
	markEmpty = '.'
	markEnd   = 'E'
	markUp    = '^'
	markDown  = 'v'
	markLeft  = '<'
	markRight = '>'
)

// RenderPath draws path over a grid-sized canvas of '.'. Every cell but the
// last shows the direction of the next move; the last shows 'E'.
// Returns ErrInvalidPath if a cell lies outside g or two consecutive cells
// are not orthogonally adjacent. An empty path renders an empty canvas.
func RenderPath(g *heightmap.Grid, path []heightmap.Coord) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	canvas := make([]byte, g.Len())
	for i := range canvas {
		canvas[i] = markEmpty
	}
	for i, c := range path {
		if !g.InBounds(c) {
			return "", fmt.Errorf("%w: step %d at %v is out of bounds", ErrInvalidPath, i, c)
		}
		if i == len(path)-1 {
			canvas[g.Index(c)] = markEnd
			break
		}
		mark, ok := direction(c, path[i+1])
		if !ok {
			return "", fmt.Errorf("%w: step %d from %v to %v is not a single move", ErrInvalidPath, i, c, path[i+1])
		}
		canvas[g.Index(c)] = mark
	}

	var b strings.Builder
	b.Grow(g.Len() + g.Height())
	for row := 0; row < g.Height(); row++ {
		b.Write(canvas[row*g.Width() : (row+1)*g.Width()])
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// direction returns the arrow for a single orthogonal move a→b.
func direction(a, b heightmap.Coord) (byte, bool) {
	switch (heightmap.Coord{Row: b.Row - a.Row, Col: b.Col - a.Col}) {
	case heightmap.Coord{Row: -1}:
		return markUp, true
	case heightmap.Coord{Row: 1}:
		return markDown, true
	case heightmap.Coord{Col: -1}:
		return markLeft, true
	case heightmap.Coord{Col: 1}:
		return markRight, true
	}
	return 0, false
}
