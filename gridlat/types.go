// Package gridlat defines core types, move tags, and sentinel errors
// for the gridlat subpackage of github.com/katalvlaran/numglyph.
package gridlat

import (
	"errors"

	"github.com/katalvlaran/numglyph/pathgen"
)

// Sentinel errors for gridlat extensions. Every one of them marks a move that
// is not a legal continuation; the pathgen engine excludes such moves
// silently, and direct callers may inspect them with errors.Is.
var (
	// ErrUnknownDirection indicates a direction tag outside the four moves
	// this lattice enumerates.
	ErrUnknownDirection = errors.New("gridlat: unknown direction")

	// ErrRetracedSegment indicates the move would redraw a grid segment the
	// path has already drawn. Strokes never overlap.
	ErrRetracedSegment = errors.New("gridlat: move retraces an existing segment")

	// ErrNegativeValue indicates the move would push the working value below
	// zero. Magnitudes stay non-negative; polarity comes from the root bias.
	ErrNegativeValue = errors.New("gridlat: move would make the value negative")
)

// The four moves. Each is one unit stroke on the integer grid paired with an
// arithmetic effect on the path's working value.
const (
	// Inc steps east and adds one.
	Inc pathgen.Direction = iota
	// Dec steps west and subtracts one.
	Dec
	// Dbl steps north and doubles.
	Dbl
	// Hlv steps south and halves.
	Hlv
)

// letters renders moves compactly: I, D, B, H.
var letters = [...]byte{Inc: 'I', Dec: 'D', Dbl: 'B', Hlv: 'H'}

// offsets maps each move to its unit step on the grid.
var offsets = [...][2]int{
	Inc: {1, 0},
	Dec: {-1, 0},
	Dbl: {0, 1},
	Hlv: {0, -1},
}

// Lattice is the reference pathgen.Lattice on the integer grid. It is
// stateless and safe for concurrent use; all per-search state lives in the
// paths it spawns.
type Lattice struct{}

// New returns the grid lattice.
func New() *Lattice { return &Lattice{} }

// Directions enumerates the closed move set: Inc, Dec, Dbl, Hlv.
func (*Lattice) Directions() []pathgen.Direction {
	return []pathgen.Direction{Inc, Dec, Dbl, Hlv}
}

// Root builds the zero-move path at the origin with working value zero,
// biased by sign.
func (*Lattice) Root(sign pathgen.Sign) pathgen.Path {
	return newRoot(sign)
}
