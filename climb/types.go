// Package climb defines result types, tunable options and error definitions
// for step-limited shortest-path searches over a heightmap.Grid.
package climb

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("climb: grid is nil")

	// ErrOutOfBounds is returned when a supplied coordinate lies outside the grid.
	ErrOutOfBounds = fmt.Errorf("climb: %w", heightmap.ErrOutOfBounds)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("climb: invalid option supplied")

	// ErrSearchTruncated is returned together with a Truncated result when
	// the expansion budget runs out before a definitive answer.
	ErrSearchTruncated = errors.New("climb: search truncated by expansion budget")

	// ErrInvariantViolation reports an internal defect, e.g. a cell closed twice.
	ErrInvariantViolation = errors.New("climb: internal invariant violated")

	// ErrInvalidPath is returned by RenderPath for non-contiguous or
	// out-of-bounds paths.
	ErrInvalidPath = errors.New("climb: invalid path")
)

// NoPath is the Steps value of any result that is not Found.
const NoPath = -1

// Status classifies the outcome of a search.
type Status int

const (
	// Unreachable means the search completed and no legal route exists.
	Unreachable Status = iota
	// Found means a shortest route was found.
	Found
	// Truncated means the search stopped early (budget or cancellation).
	Truncated
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Unreachable:
		return "unreachable"
	case Found:
		return "found"
	case Truncated:
		return "truncated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the outcome of a search:
//   - Status: Found, Unreachable or Truncated.
//   - Steps:  minimum number of moves, NoPath unless Found.
//   - Path:   start→end cells, only with WithReturnPath and Found.
//   - Start:  the cell the route begins at. For FewestStepsFromLowest this
//     is the chosen lowest cell when Found.
//   - End:    the destination cell.
//   - Expanded: number of cells closed during the run.
type Result struct {
	Status   Status
	Steps    int
	Path     []heightmap.Coord
	Start    heightmap.Coord
	End      heightmap.Coord
	Expanded int
}

// Reachable reports whether a route was found.
func (r Result) Reachable() bool { return r.Status == Found }

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative budget), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// ReturnPath fills Result.Path when a route is found.
	ReturnPath bool

	// MaxExpansions, if > 0, caps the number of closed cells.
	// A value of 0 disables the cap.
	MaxExpansions int

	// OnOpen is called whenever a cell is opened or its cost improves.
	OnOpen func(c heightmap.Coord, cost int)

	// OnClose is called once per cell when its cost becomes final.
	OnClose func(c heightmap.Coord, cost int)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no path reconstruction
//   - no expansion budget
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		ReturnPath:    false,
		MaxExpansions: 0,
		OnOpen:        func(heightmap.Coord, int) {},
		OnClose:       func(heightmap.Coord, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxExpansions stops the search after n cells have been closed.
//
//	n > 0: budget of n expansions
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnOpen registers a callback run when a cell is opened or improved.
func WithOnOpen(fn func(c heightmap.Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithOnClose registers a callback run when a cell is closed.
func WithOnClose(fn func(c heightmap.Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}
