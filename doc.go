// Package numglyph turns exact rational numbers into compact sequences of
// discrete moves on a finite-branching lattice — the computational core
// behind move-based numeric notations.
//
// 🚀 What is numglyph?
//
//	A small, dependency-light library that brings together:
//		• pathgen — best-first search for the shortest exact-valued move sequence,
//		  with branch-and-bound pruning once a candidate is confirmed
//		• gridlat — a reference lattice on the integer grid (add, subtract,
//		  double, halve) with self-avoiding stroke rules and bounding boxes
//
// ✨ Why choose numglyph?
//
//   - Exact by construction – all values are math/big rationals; a returned
//     sequence evaluates to the requested target, never an approximation
//   - Pluggable – the engine consumes Lattice/Path/Bounds contracts, so any
//     notation system can supply its own move semantics and compactness rules
//   - Deterministic – identical target, flags, and lattice reproduce the
//     identical sequence
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	pathgen/ — frontier management, admissible-style heuristic, exact-match
//	           tracking and dominance pruning
//	gridlat/ — concrete moves, segment legality, bounding-box compactness
//
// Quick ASCII example (target 4 on gridlat, moves I=+1 east, B=×2 north):
//
//	    ●
//	    B          value: 0 →(I) 1 →(B) 2 →(B) 4
//	    ●
//	    B
//	●─I─●
//
//	I,B,B reaches 4 in three moves inside a 2×3-cell box; the engine returns
//	it over four-move alternatives such as I,I,I,I.
//
// Dive into README.md for full examples and the collaborator contract.
//
//	go get github.com/katalvlaran/numglyph
package numglyph
