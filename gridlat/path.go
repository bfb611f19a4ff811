package gridlat

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/numglyph/pathgen"
)

// point is one grid coordinate on the lattice.
type point struct {
	x, y int
}

// gridPath is an immutable chain of strokes from the origin. Extending never
// mutates the receiver: every derived path carries its own move list, point
// trail, and value.
//
// Invariants:
//   - len(pts) == len(moves) + 1, pts[0] == origin.
//   - value is the unsigned working value (never negative); the signed value
//     is fixed at construction from the root bias.
//   - no two consecutive point pairs in pts describe the same unordered
//     segment (strokes never overlap).
type gridPath struct {
	sign   pathgen.Sign
	value  *big.Rat // unsigned working value
	signed *big.Rat // sign × value, precomputed
	moves  []pathgen.Direction
	pts    []point
	box    Box
}

// newRoot builds the zero-move path at the origin with value zero.
func newRoot(sign pathgen.Sign) *gridPath {
	return &gridPath{
		sign:   sign,
		value:  new(big.Rat),
		signed: new(big.Rat),
		pts:    []point{{0, 0}},
	}
}

// Value returns the path's exact signed value. Read-only for callers.
func (p *gridPath) Value() *big.Rat { return p.signed }

// Len returns the number of moves taken.
func (p *gridPath) Len() int { return len(p.moves) }

// Bounds returns the path's bounding box.
func (p *gridPath) Bounds() pathgen.Bounds { return p.box }

// Moves returns a copy of the move sequence.
func (p *gridPath) Moves() []pathgen.Direction {
	out := make([]pathgen.Direction, len(p.moves))
	copy(out, p.moves)

	return out
}

// String renders the move sequence as letters, e.g. "IBB". The root renders
// as the empty string.
func (p *gridPath) String() string {
	var sb strings.Builder
	sb.Grow(len(p.moves))
	for _, m := range p.moves {
		sb.WriteByte(letters[m])
	}

	return sb.String()
}

// BetterThan implements the preference order over exact matches, doubling as
// the engine's viability filter: fewer moves wins outright; equal move counts
// fall through to the strictly smaller bounding-box footprint.
// True unconditionally when best is nil.
func (p *gridPath) BetterThan(best pathgen.Path) bool {
	if best == nil {
		return true
	}
	if p.Len() != best.Len() {
		return p.Len() < best.Len()
	}

	return p.box.QuasiArea() < best.Bounds().QuasiArea()
}

// Extend appends one move and returns the new path, or a sentinel error when
// the move is not a legal continuation:
//
//   - ErrUnknownDirection for tags outside Inc/Dec/Dbl/Hlv.
//   - ErrNegativeValue when Dec would push the working value below zero.
//   - ErrRetracedSegment when the stroke would redraw an existing segment.
func (p *gridPath) Extend(d pathgen.Direction) (pathgen.Path, error) {
	if int(d) >= len(offsets) {
		return nil, ErrUnknownDirection
	}

	// 1) Arithmetic effect on the working value.
	next := new(big.Rat)
	switch d {
	case Inc:
		next.Add(p.value, ratOne)
	case Dec:
		if p.value.Cmp(ratOne) < 0 {
			return nil, ErrNegativeValue
		}
		next.Sub(p.value, ratOne)
	case Dbl:
		next.Mul(p.value, ratTwo)
	case Hlv:
		next.Quo(p.value, ratTwo)
	}

	// 2) Geometric effect: one unit stroke; strokes never overlap.
	last := p.pts[len(p.pts)-1]
	dst := point{last.x + offsets[d][0], last.y + offsets[d][1]}
	if p.hasSegment(last, dst) {
		return nil, ErrRetracedSegment
	}

	// 3) Assemble the child with fresh backing arrays.
	moves := make([]pathgen.Direction, len(p.moves), len(p.moves)+1)
	copy(moves, p.moves)
	pts := make([]point, len(p.pts), len(p.pts)+1)
	copy(pts, p.pts)

	signed := new(big.Rat).Set(next)
	if p.sign == pathgen.SignNegative {
		signed.Neg(signed)
	}

	return &gridPath{
		sign:   p.sign,
		value:  next,
		signed: signed,
		moves:  append(moves, d),
		pts:    append(pts, dst),
		box:    p.box.grow(dst.x, dst.y),
	}, nil
}

// hasSegment reports whether the unordered segment a—b is already drawn.
// Path lengths stay small in practice, so a linear scan beats bookkeeping.
func (p *gridPath) hasSegment(a, b point) bool {
	var u, v point
	for i := 0; i+1 < len(p.pts); i++ {
		u, v = p.pts[i], p.pts[i+1]
		if (u == a && v == b) || (u == b && v == a) {
			return true
		}
	}

	return false
}

// Shared rational constants. Operands only — never mutated.
var (
	ratOne = big.NewRat(1, 1)
	ratTwo = big.NewRat(2, 1)
)
