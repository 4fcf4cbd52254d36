// Package climb finds fewest-move routes across a heightmap.Grid where each
// move may climb at most one level.
//
// Searches expand cells in order of increasing move count from an indexed
// min-heap, closing each cell exactly once, and stop as soon as the goal is
// closed.
package climb

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// stepRule reports whether a single move from elevation from to elevation to
// is allowed.
type stepRule func(from, to heightmap.Elevation) bool

// ascending is the climb rule: rise by at most one, descend freely.
func ascending(from, to heightmap.Elevation) bool { return to <= from+1 }

// descending is the climb rule walked backwards from the destination.
func descending(from, to heightmap.Elevation) bool { return ascending(to, from) }

// CanStep reports whether a single move from elevation from to elevation to
// obeys the climb rule.
func CanStep(from, to heightmap.Elevation) bool { return ascending(from, to) }

// runner encapsulates mutable search state for one invocation.
type runner struct {
	grid     *heightmap.Grid
	opts     Options
	ctx      context.Context
	rule     stepRule
	nodes    []searchNode
	queue    frontier
	nbrs     []heightmap.Coord
	expanded int
}

// ShortestPath returns the fewest moves from from to to.
// Returns ErrNilGrid, ErrOutOfBounds or ErrOptionViolation for invalid input,
// ErrSearchTruncated with a Truncated result when the budget runs out,
// or the context error on cancellation. An unreachable destination is not an
// error: the result has Status Unreachable and Steps NoPath.
//
// Complexity: O(W·H·log(W·H)) time, O(W·H) memory.
func ShortestPath(g *heightmap.Grid, from, to heightmap.Coord, opts ...Option) (Result, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return notFound(Unreachable, from, to), err
	}
	if !g.InBounds(from) {
		return notFound(Unreachable, from, to), fmt.Errorf("%w: from %v", ErrOutOfBounds, from)
	}
	if !g.InBounds(to) {
		return notFound(Unreachable, from, to), fmt.Errorf("%w: to %v", ErrOutOfBounds, to)
	}

	target := g.Index(to)
	r := newRunner(g, o, ascending)
	found, status, err := r.search(g.Index(from), func(idx int) bool { return idx == target })
	if status != Found {
		res := notFound(status, from, to)
		res.Expanded = r.expanded
		return res, err
	}

	res := Result{
		Status:   Found,
		Steps:    r.nodes[found].cost,
		Start:    from,
		End:      to,
		Expanded: r.expanded,
	}
	if o.ReturnPath {
		path := r.chain(found)
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		res.Path = path
	}
	return res, nil
}

// FewestStepsFromLowest returns the fewest moves to to from any cell at
// heightmap.MinElevation. It runs a single search outward from to under the
// reversed climb rule and stops at the first lowest cell it closes, which
// yields the same count as trying every lowest cell as a start.
// Result.Start is the chosen lowest cell; ties go to the smallest row-major
// index among equally distant cells. Errors match ShortestPath.
func FewestStepsFromLowest(g *heightmap.Grid, to heightmap.Coord, opts ...Option) (Result, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return notFound(Unreachable, to, to), err
	}
	if !g.InBounds(to) {
		return notFound(Unreachable, to, to), fmt.Errorf("%w: to %v", ErrOutOfBounds, to)
	}

	r := newRunner(g, o, descending)
	found, status, err := r.search(g.Index(to), func(idx int) bool {
		return g.ElevationAt(idx) == heightmap.MinElevation
	})
	if status != Found {
		res := notFound(status, to, to)
		res.Expanded = r.expanded
		return res, err
	}

	res := Result{
		Status:   Found,
		Steps:    r.nodes[found].cost,
		Start:    g.Coordinate(found),
		End:      to,
		Expanded: r.expanded,
	}
	if o.ReturnPath {
		// Parents point toward to, so the chain already reads start→end.
		res.Path = r.chain(found)
	}
	return res, nil
}

// buildOptions applies opts over DefaultOptions and validates g.
func buildOptions(g *heightmap.Grid, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrNilGrid
	}
	return o, nil
}

// notFound builds a result carrying no route.
func notFound(s Status, from, to heightmap.Coord) Result {
	return Result{Status: s, Steps: NoPath, Start: from, End: to}
}

// newRunner allocates a fresh node table sized to the grid.
func newRunner(g *heightmap.Grid, o Options, rule stepRule) *runner {
	nodes := make([]searchNode, g.Len())
	for i := range nodes {
		nodes[i] = searchNode{cost: unreached, parent: -1, heapIndex: -1}
	}
	return &runner{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		rule:  rule,
		nodes: nodes,
		queue: frontier{items: make([]int, 0, g.Len()), nodes: nodes},
		nbrs:  make([]heightmap.Coord, 0, 4),
	}
}

// search expands cells from src until goal accepts a closed cell, the
// frontier empties, the budget runs out or the context is cancelled.
// It returns the index of the goal cell when Found.
func (r *runner) search(src int, goal func(idx int) bool) (int, Status, error) {
	r.relaxTo(src, 0, -1)
	for r.queue.Len() > 0 {
		// cancellation check (once per expansion)
		select {
		case <-r.ctx.Done():
			return -1, Truncated, r.ctx.Err()
		default:
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return -1, Truncated, fmt.Errorf("%w: %d cells closed, %d still open", ErrSearchTruncated, r.expanded, r.queue.Len())
		}

		cur := heap.Pop(&r.queue).(int)
		if err := r.close(cur); err != nil {
			return -1, Unreachable, err
		}
		if goal(cur) {
			return cur, Found, nil
		}
		r.expand(cur)
	}
	return -1, Unreachable, nil
}

// close finalizes cur. Closing a cell twice is a defect.
func (r *runner) close(cur int) error {
	n := &r.nodes[cur]
	if n.state != open {
		return fmt.Errorf("%w: cell %v popped in state %d", ErrInvariantViolation, r.grid.Coordinate(cur), n.state)
	}
	n.state = closed
	r.expanded++
	r.opts.OnClose(r.grid.Coordinate(cur), n.cost)
	return nil
}

// expand relaxes every legal, not yet closed neighbour of cur.
func (r *runner) expand(cur int) {
	g := r.grid
	here := g.ElevationAt(cur)
	next := r.nodes[cur].cost + 1
	r.nbrs = g.AppendNeighbors(r.nbrs[:0], g.Coordinate(cur))
	for _, c := range r.nbrs {
		idx := g.Index(c)
		if r.nodes[idx].state == closed {
			continue
		}
		if !r.rule(here, g.ElevationAt(idx)) {
			continue
		}
		r.relaxTo(idx, next, cur)
	}
}

// relaxTo records cost and parent for idx if cost is strictly better, and
// opens idx or restores heap order.
func (r *runner) relaxTo(idx, cost, parent int) {
	n := &r.nodes[idx]
	if cost >= n.cost {
		return
	}
	n.cost = cost
	n.parent = parent
	if n.state == open {
		heap.Fix(&r.queue, n.heapIndex)
	} else {
		n.state = open
		heap.Push(&r.queue, idx)
	}
	r.opts.OnOpen(r.grid.Coordinate(idx), cost)
}

// chain follows parent links from idx back to the search source.
func (r *runner) chain(idx int) []heightmap.Coord {
	path := make([]heightmap.Coord, 0, r.nodes[idx].cost+1)
	for at := idx; at >= 0; at = r.nodes[at].parent {
		path = append(path, r.grid.Coordinate(at))
	}
	return path
}
