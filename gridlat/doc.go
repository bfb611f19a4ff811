// Package gridlat provides the reference lattice for pathgen: unit strokes on
// the integer grid whose four directions carry exact arithmetic effects.
//
// Overview:
//
//   - Four moves, each one unit stroke paired with an arithmetic step on the
//     path's unsigned working value:
//     Inc — east,  +1
//     Dec — west,  −1
//     Dbl — north, ×2
//     Hlv — south, ÷2
//   - The working value starts at zero and never goes negative; the sign of
//     the final value is fixed once by the root bias (pathgen.SignOf).
//   - Strokes never overlap: a move that would redraw a segment the path has
//     already drawn is not a legal continuation (ErrRetracedSegment). One
//     consequence: a path can never immediately reverse its previous stroke.
//   - Compactness is the inclusive bounding box of all visited points, scored
//     as its footprint in cells — QuasiArea = (width+1) × (height+1).
//
// Worked example (target 4):
//
//	    ●
//	    B          value: 0 →(I) 1 →(B) 2 →(B) 4
//	    ●
//	    B
//	●─I─●
//
//	Inc,Dbl,Dbl encodes 4 in three moves inside a 2×3-cell box; pathgen
//	returns it over four-move alternatives such as Inc,Inc,Inc,Inc.
//
// Error handling (sentinel errors, all "not a legal continuation"):
//
//   - ErrUnknownDirection: direction tag outside the four moves.
//   - ErrRetracedSegment:  the stroke would redraw an existing segment.
//   - ErrNegativeValue:    Dec would push the working value below zero.
//
// Determinism and heuristics:
//
//   - The lattice is stateless and deterministic, so pathgen's determinism
//     guarantee holds.
//   - Every move changes the value by ±1 or a factor of two, keeping
//     pathgen's doubling/halving estimate admissible: returned sequences are
//     move-minimal.
//
// Thread safety:
//
//   - Lattice is stateless; paths are immutable. Everything here is safe for
//     concurrent use.
//
// See also:
//
//   - pathgen: the search engine consuming this lattice.
package gridlat
