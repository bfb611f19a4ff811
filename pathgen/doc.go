// Package pathgen finds the most compact sequence of discrete directional
// moves on a finite-branching lattice whose exact rational value equals a
// requested target.
//
// Overview:
//
//   - Generate runs a best-first search (A*-style frontier ordered by an
//     admissible-style estimate of total moves) combined with branch-and-bound
//     pruning: each time a new best exact match is confirmed, every frontier
//     entry whose bounding shape it dominates is discarded permanently.
//   - "Most compact" is a two-level order: fewest moves first, then the
//     smallest bounding-shape quasi-area among equal-length exact matches.
//   - The lattice, its move semantics, and its compactness rules are supplied
//     by the caller through three small contracts: Lattice, Path, and Bounds.
//     Package gridlat ships a ready reference implementation.
//
// When to use:
//
//   - Encoding numeric constants as move sequences for a move-based notation,
//     where shorter and geometrically tighter sequences are preferred.
//   - Any shortest-sequence search over immutable candidate paths where exact
//     rational arithmetic matters and candidate pruning is driven by a
//     dominance order on bounding shapes.
//
// Key features:
//
//   - Exact by construction: values are math/big rationals; a returned path's
//     Value() equals the target exactly, never approximately.
//   - Functional options: WithTrimLarger() forbids intermediate magnitudes
//     above the target's; WithAllowFractions() permits non-integral values;
//     WithMaxExpansions(n) / WithMaxPriority(p) bound otherwise unbounded
//     searches.
//   - Deterministic: identical target, options, and lattice reproduce the
//     identical path (given a deterministic lattice).
//   - Single-threaded, blocking, no shared state: one run owns its entire
//     frontier; a fresh run per target.
//
// Error handling (sentinel errors):
//
//   - ErrNilLattice:      nil Lattice passed to Generate.
//   - ErrNilTarget:       nil *big.Rat target passed to Generate.
//   - ErrNoDirections:    the lattice enumerates an empty direction set.
//   - ErrUnreachable:     the search space holds no exact match — a normal
//     outcome (the lattice simply cannot express the target under the active
//     constraints), not a failure.
//   - ErrBudgetExceeded:  the expansion budget ran out before any match.
//   - ErrBadMaxExpansions, ErrBadMaxPriority: returned via panic from the
//     corresponding option constructors on non-positive arguments.
//
// API reference:
//
//	func Generate(
//	    lat Lattice,
//	    target *big.Rat,
//	    opts ...Option,
//	) (Path, error)
//
//	  - lat:    the collaborator supplying Root(sign) and Directions().
//	  - target: exact signed rational; its sign biases the root, its
//	            magnitude drives every comparison.
//	  - opts:   zero or more functional options, including:
//	      • WithTrimLarger():      no intermediate magnitude above the target.
//	      • WithAllowFractions():  permit non-integral values.
//	      • WithMaxExpansions(n):  cap frontier pops; on exhaustion return the
//	                               incumbent match or ErrBudgetExceeded.
//	      • WithMaxPriority(p):    never enqueue candidates estimated beyond p
//	                               total moves.
//	  - Path:   an exact match, or nil alongside a sentinel error.
//
// Optimality caveat:
//
//   - The internal estimate assumes a single move can at best double or halve
//     progress toward the target. Lattices whose moves change a value by more
//     than a factor of two per move may render the estimate inadmissible: the
//     returned path is still exact, but its move count may not be minimal.
//     Verify against your lattice's semantics before relying on minimality.
//
// Thread safety:
//
//   - Generate shares nothing between calls and may be invoked concurrently
//     with distinct lattices. A Lattice shared between concurrent calls must
//     itself be safe for concurrent use.
//
// See also:
//
//   - gridlat: the reference integer-grid lattice (add, subtract, double,
//     halve) with self-avoiding stroke rules and bounding-box compactness.
package pathgen
