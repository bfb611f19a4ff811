package gridlat

import "github.com/katalvlaran/numglyph/pathgen"

// Box is the inclusive bounding box of every grid point a path has visited.
// The zero Box covers the single origin cell. Box is a value type; paths hand
// out copies, never shared state.
type Box struct {
	MinX, MaxX int
	MinY, MaxY int
}

// grow returns the box extended to cover point (x, y).
func (b Box) grow(x, y int) Box {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}

	return b
}

// QuasiArea scores compactness as the box footprint in grid cells:
// (width+1) × (height+1). A lone point scores 1; smaller is tighter.
func (b Box) QuasiArea() float64 {
	return float64((b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1))
}

// AtLeastAsGood reports whether this box is at least as compact as other.
// Entries failing this test against a confirmed best are pruned by the
// engine and can never come back.
func (b Box) AtLeastAsGood(other pathgen.Bounds) bool {
	return b.QuasiArea() <= other.QuasiArea()
}
