package heightmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Sample checks dimensions, markers and marker elevations.
func TestParse_Sample(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	require.Equal(t, 8, g.Width())
	require.Equal(t, 5, g.Height())
	require.Equal(t, 40, g.Len())
	require.Equal(t, heightmap.Coord{Row: 0, Col: 0}, g.Start())
	require.Equal(t, heightmap.Coord{Row: 2, Col: 5}, g.End())

	e, err := g.At(g.Start())
	require.NoError(t, err)
	require.Equal(t, heightmap.MinElevation, e, "start is treated as 'a'")

	e, err = g.At(g.End())
	require.NoError(t, err)
	require.Equal(t, heightmap.MaxElevation, e, "end is treated as 'z'")

	e, err = g.At(heightmap.Coord{Row: 1, Col: 3})
	require.NoError(t, err)
	require.Equal(t, byte('r'), e.Symbol())
}

// TestParse_CRLFAndTrailingBlankLines ensures Windows line endings and
// trailing blank lines are tolerated.
func TestParse_CRLFAndTrailingBlankLines(t *testing.T) {
	g, err := heightmap.Parse("Sab\r\nbcE\r\n\r\n\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, heightmap.Coord{Row: 1, Col: 2}, g.End())
}

// TestParse_Errors verifies every malformed input is rejected and that each
// specific error also matches ErrMalformedGrid.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", heightmap.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", heightmap.ErrEmptyGrid},
		{"NonRectangular", "Sab\nbE\n", heightmap.ErrNonRectangular},
		{"BlankLineInside", "Sab\n\nbcE\n", heightmap.ErrNonRectangular},
		{"InvalidSymbol", "Sa#\nbcE\n", heightmap.ErrInvalidSymbol},
		{"UpperCaseLetter", "SaB\nbcE\n", heightmap.ErrInvalidSymbol},
		{"MissingStart", "aab\nbcE\n", heightmap.ErrStartMarker},
		{"DuplicateStart", "SaS\nbcE\n", heightmap.ErrStartMarker},
		{"MissingEnd", "Sab\nbcz\n", heightmap.ErrEndMarker},
		{"DuplicateEnd", "SEb\nbcE\n", heightmap.ErrEndMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := heightmap.Parse(tc.input)
			require.Nil(t, g, "no partial grid on failure")
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, heightmap.ErrMalformedGrid)
		})
	}
}

// TestParse_ErrorLocation checks that errors name the offending line.
func TestParse_ErrorLocation(t *testing.T) {
	_, err := heightmap.Parse("Sab\nbc?\nddE\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2 column 3")
}

// TestParseReader_ReadError surfaces reader failures unchanged.
func TestParseReader_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := heightmap.ParseReader(failingReader{err: boom})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, heightmap.ErrMalformedGrid)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// TestString_RoundTrip ensures String reproduces the parsed text.
func TestString_RoundTrip(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	require.Equal(t, sample, g.String())
}

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew validates programmatic construction.
func TestNew(t *testing.T) {
	elev := [][]heightmap.Elevation{{0, 1}, {2, 25}}
	g, err := heightmap.New(elev, heightmap.Coord{}, heightmap.Coord{Row: 1, Col: 1})
	require.NoError(t, err)

	// The grid owns a copy of its input.
	elev[0][1] = 9
	e, err := g.At(heightmap.Coord{Row: 0, Col: 1})
	require.NoError(t, err)
	require.Equal(t, heightmap.Elevation(1), e)

	cases := []struct {
		name  string
		elev  [][]heightmap.Elevation
		start heightmap.Coord
		end   heightmap.Coord
		err   error
	}{
		{"EmptyRows", nil, heightmap.Coord{}, heightmap.Coord{}, heightmap.ErrEmptyGrid},
		{"EmptyCols", [][]heightmap.Elevation{{}}, heightmap.Coord{}, heightmap.Coord{}, heightmap.ErrEmptyGrid},
		{"Ragged", [][]heightmap.Elevation{{0, 1}, {2}}, heightmap.Coord{}, heightmap.Coord{}, heightmap.ErrNonRectangular},
		{"TooHigh", [][]heightmap.Elevation{{0, 26}}, heightmap.Coord{}, heightmap.Coord{}, heightmap.ErrInvalidSymbol},
		{"StartOutside", [][]heightmap.Elevation{{0, 1}}, heightmap.Coord{Row: 1}, heightmap.Coord{}, heightmap.ErrOutOfBounds},
		{"EndOutside", [][]heightmap.Elevation{{0, 1}}, heightmap.Coord{}, heightmap.Coord{Col: -1}, heightmap.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heightmap.New(tc.elev, tc.start, tc.end)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestInBoundsAndAt checks bounds on a 2×3 grid.
func TestInBoundsAndAt(t *testing.T) {
	g, err := heightmap.Parse("Sbc\ndeE")
	require.NoError(t, err)

	for _, c := range []heightmap.Coord{{0, 0}, {1, 2}, {0, 2}} {
		require.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []heightmap.Coord{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		require.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, err := g.At(c)
		require.ErrorIs(t, err, heightmap.ErrOutOfBounds)
	}
}

// TestIndexCoordinate checks the row-major round trip.
func TestIndexCoordinate(t *testing.T) {
	g, err := heightmap.Parse("Sbcd\nefgE\nijkl")
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		c := g.Coordinate(i)
		require.Equal(t, i, g.Index(c))
		e, err := g.At(c)
		require.NoError(t, err)
		require.Equal(t, e, g.ElevationAt(i))
	}
	require.Equal(t, heightmap.Coord{Row: 1, Col: 3}, g.Coordinate(7))
}

// TestNeighbors verifies order N, E, S, W and clipping at the border.
func TestNeighbors(t *testing.T) {
	g, err := heightmap.Parse("Sbc\ndef\nghE")
	require.NoError(t, err)

	require.Equal(t, []heightmap.Coord{{0, 1}, {1, 0}}, g.Neighbors(heightmap.Coord{0, 0}))
	require.Equal(t, []heightmap.Coord{{0, 1}, {1, 2}, {2, 1}, {1, 0}}, g.Neighbors(heightmap.Coord{1, 1}))
	require.Equal(t, []heightmap.Coord{{1, 2}, {2, 1}}, g.Neighbors(heightmap.Coord{2, 2}))

	buf := make([]heightmap.Coord, 0, 4)
	buf = g.AppendNeighbors(buf, heightmap.Coord{0, 2})
	require.Equal(t, []heightmap.Coord{{1, 2}, {0, 1}}, buf)
}

// TestLowest lists every 'a' cell, the start included.
func TestLowest(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	low := g.Lowest()
	require.Len(t, low, 6)
	require.Equal(t, g.Start(), low[0])
	for _, c := range low {
		e, err := g.At(c)
		require.NoError(t, err)
		require.Equal(t, heightmap.MinElevation, e)
	}
}

// TestElevationOf covers the symbol mapping boundaries.
func TestElevationOf(t *testing.T) {
	e, ok := heightmap.ElevationOf('a')
	require.True(t, ok)
	require.Equal(t, heightmap.MinElevation, e)
	e, ok = heightmap.ElevationOf('z')
	require.True(t, ok)
	require.Equal(t, heightmap.MaxElevation, e)
	for _, ch := range []byte{'S', 'E', '`', '{', '0'} {
		_, ok := heightmap.ElevationOf(ch)
		require.False(t, ok, "symbol %q", ch)
	}
	require.Equal(t, "(3,4)", heightmap.Coord{Row: 3, Col: 4}.String())
	require.True(t, strings.HasPrefix(heightmap.ErrEmptyGrid.Error(), "heightmap: malformed grid"))
}
