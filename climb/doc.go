// Package climb provides fewest-move route finding over a heightmap.Grid
// under the climb rule: a move to an orthogonal neighbour is legal only if
// the neighbour is at most one level higher. Descending any amount is
// always legal.
//
// What
//
//   - ShortestPath: fewest moves between two given cells.
//   - FewestStepsFromLowest: fewest moves to a given cell from the nearest
//     cell at the lowest elevation ('a'), answered by one reverse search.
//   - RenderPath: draws a found route with ^ v < > arrows.
//   - Result carries Status (Found, Unreachable, Truncated), Steps, the
//     optional Path and the number of expanded cells.
//
// Algorithm
//
//	Uniform-cost expansion with unit move costs. Each run owns a node table
//	(tentative cost, parent, open/closed state) sized to the grid and an
//	indexed min-heap frontier ordered by cost, ties broken by row-major
//	index. A rediscovered cell only has its entry updated in place, never
//	duplicated. Closed cells are final and never revisited.
//
// Determinism
//
//	The fixed neighbour order (N, E, S, W) and row-major tie-break make the
//	cost, the chosen path and the expansion count reproducible across runs.
//
// Concurrency
//
//	A Grid is read-only and may be shared by concurrent searches; every call
//	allocates its own node table and frontier.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N log N)
//   - Memory: O(N)
//
// Usage
//
//	res, err := climb.ShortestPath(g, g.Start(), g.End(), climb.WithReturnPath())
//	switch {
//	case err != nil:
//	    // ErrNilGrid, ErrOutOfBounds, ErrOptionViolation, ErrSearchTruncated, ctx errors
//	case !res.Reachable():
//	    // no route
//	default:
//	    fmt.Println(res.Steps, res.Path)
//	}
//
// Options
//
//   - DefaultOptions():       background context, no path, no budget, no-op hooks.
//   - WithContext(ctx):       cancellation, checked once per expansion.
//   - WithReturnPath():       fill Result.Path.
//   - WithMaxExpansions(n):   stop after n closed cells with ErrSearchTruncated.
//   - WithOnOpen(fn):         hook when a cell is opened or improved.
//   - WithOnClose(fn):        hook when a cell's cost becomes final.
//
// Errors
//
//   - ErrNilGrid             if the grid pointer is nil.
//   - ErrOutOfBounds         if a supplied coordinate is outside the grid.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative budget).
//   - ErrSearchTruncated     if the expansion budget ran out.
//   - ErrInvariantViolation  on an internal defect such as a cell closed twice.
//   - ErrInvalidPath         from RenderPath for malformed paths.
package climb
