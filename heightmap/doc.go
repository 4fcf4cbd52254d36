// Package heightmap parses an elevation map into an immutable grid that
// path searches can share freely.
//
// What:
//
//   - Grid wraps a rectangular field of elevations 0..25 ('a'..'z').
//   - Resolves the start marker 'S' (elevation 'a') and the end marker 'E'
//     (elevation 'z') to concrete coordinates during parsing.
//   - Exposes bounds checks, row-major indexing and the fixed set of four
//     orthogonal neighbours used by searches.
//
// Why:
//
//   - Searches need a read-only map they can share across goroutines while
//     keeping their own per-run bookkeeping.
//   - Parsing failures are surfaced up front so a search never sees a
//     malformed map.
//
// Complexity:
//
//   - Parse:     O(W×H) time and memory.
//   - Neighbors: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every structural failure; the concrete
//     kinds ErrEmptyGrid, ErrNonRectangular, ErrInvalidSymbol,
//     ErrStartMarker and ErrEndMarker all wrap it.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// Example:
//
//	g, err := heightmap.Parse("Sbc\nfeE")
//	if err != nil {
//	    // errors.Is(err, heightmap.ErrMalformedGrid)
//	}
//	fmt.Println(g.Start(), g.End()) // (0,0) (1,2)
package heightmap
