// Package pathgen — exact-value move-sequence generation.
//
// Generate runs a best-first search over lattice paths combined with
// branch-and-bound pruning: the frontier is ordered by an admissible-style
// estimate of total moves, and every time a new best exact match is
// confirmed, entries whose bounding shape it dominates are discarded for
// good. Optimality is two-level: fewest moves first, then the smallest
// bounding-shape quasi-area among equal-length exact matches.
//
// Rationale (succinct):
//  1. The target is decomposed once into an unsigned magnitude and a Sign;
//     the sign only biases the root path, all comparisons use magnitudes.
//  2. Successor filtering and final selection both consult the current best
//     exact match. The best is always passed explicitly as a parameter — a
//     borrowed snapshot — never captured as implicit mutable state.
//  3. Illegal continuations are expected and frequent; the engine excludes
//     them silently (see Path.Extend).
//  4. The run is single-threaded and blocking. Callers needing bounded time
//     set WithMaxExpansions or WithMaxPriority; the engine has no clock.
package pathgen

import (
	"container/heap"
	"math/big"
)

// Generate searches for the most compact move sequence on lat whose exact
// value equals target. "Most compact" means fewest moves, then smallest
// bounding-shape quasi-area among equal-length exact matches.
//
// Returns:
//
//   - path: an exact match. Its Value() equals target exactly, never
//     approximately. For a zero target this is the zero-move root.
//   - err:  one of the sentinel errors, or nil on success.
//
// Preconditions and validation (in order):
//  1. lat must be non-nil (ErrNilLattice).
//  2. target must be non-nil (ErrNilTarget).
//  3. lat.Directions() must be non-empty (ErrNoDirections).
//
// Outcomes beyond success:
//
//   - ErrUnreachable    if the (possibly budget-capped) search space holds no
//     exact match. A normal outcome, not a failure.
//   - ErrBudgetExceeded if WithMaxExpansions ran out before any match. When a
//     match exists at budget exhaustion it is returned instead: exact, though
//     not necessarily move-minimal.
//
// Optimality holds when every lattice move changes a path's value by at most
// a factor of two (or a bounded additive step). Lattices with stronger moves
// may make the internal estimate inadmissible, in which case the returned
// match is still exact but its move count may not be minimal.
//
// Complexity: output-sensitive. Each expansion costs O(D log F) for D
// directions and frontier size F, plus O(F) on rounds that confirm a match.
func Generate(lat Lattice, target *big.Rat, opts ...Option) (Path, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the lattice is non-nil.
	if lat == nil {
		return nil, ErrNilLattice
	}

	// 3) Validate the target is non-nil.
	if target == nil {
		return nil, ErrNilTarget
	}

	// 4) Validate the direction set is non-empty.
	dirs := lat.Directions()
	if len(dirs) == 0 {
		return nil, ErrNoDirections
	}

	// 5) Decompose the target: unsigned magnitude for every comparison,
	//    sign only to bias the root path.
	r := &runner{
		dirs:      dirs,
		magnitude: new(big.Rat).Abs(target),
		options:   cfg,
	}

	// 6) Seed the frontier with the zero-move root at its estimated priority.
	r.push(lat.Root(SignOf(target)))

	// 7) Run the search to completion. The runner never escapes this call, so
	//    all state is owned by exactly one engine instance for its lifetime.
	return r.process()
}

// runner holds the mutable state for a single Generate execution.
type runner struct {
	dirs       []Direction // fixed direction set, enumerated once
	magnitude  *big.Rat    // unsigned target magnitude, immutable
	options    Options     // constraint flags and budgets
	frontier   frontier    // min-heap of in-progress candidates
	best       Path        // best confirmed exact match; nil before the first
	expansions int         // frontier pops performed so far
}

// process is the core loop: expand the cheapest frontier entry, and whenever
// a round produces an exact match, re-select the best candidate and prune
// dominated entries. Terminates when the frontier empties or budgets run out.
func (r *runner) process() (Path, error) {
	// Zero target: the zero-move root is already exact; no search is needed.
	if r.magnitude.Sign() == 0 {
		return heap.Pop(&r.frontier).(queuedPath).path, nil
	}

	var candidate Path
	for r.frontier.Len() > 0 {
		// 1) Enforce the expansion budget before popping.
		if r.expansions >= r.options.MaxExpansions {
			if r.best != nil {
				return r.best, nil // exact, though possibly not minimal
			}

			return nil, ErrBudgetExceeded
		}

		// 2) Expand the minimum-priority path; skip bookkeeping unless the
		//    round produced at least one exact match.
		if !r.expand() {
			continue
		}

		// 3) Among all exact matches currently in the frontier, take the one
		//    with the smallest quasi-area (the secondary tie-break).
		candidate = r.frontier.smallestMatch(r.magnitude)
		if candidate == nil || !candidate.BetterThan(r.best) {
			continue
		}

		// 4) Promote the candidate and prune every frontier entry whose
		//    bounds it dominates. The search space shrinks permanently: the
		//    best solution is only ever replaced, never cleared.
		r.best = candidate
		r.frontier.retainAtLeastAsGood(candidate.Bounds())
	}

	// 5) Frontier exhausted: report the confirmed best, or unreachability.
	if r.best == nil {
		return nil, ErrUnreachable
	}

	return r.best, nil
}

// expand pops the single cheapest frontier entry, generates its successors
// over the full direction set, filters them, and inserts every survivor with
// a freshly computed priority. Reports whether at least one successor's value
// hit the target magnitude this round.
func (r *runner) expand() bool {
	current := heap.Pop(&r.frontier).(queuedPath).path
	r.expansions++

	var (
		matched bool
		next    Path
		err     error
		d       Direction
		abs     = new(big.Rat) // scratch for magnitude comparisons
	)
	for _, d = range r.dirs {
		// Attempt the extension; an error means d is not a legal continuation
		// from current's state. Expected and frequent — exclude silently.
		next, err = current.Extend(d)
		if err != nil {
			continue
		}

		// TrimLarger: the extended magnitude must not exceed the target's.
		if r.options.TrimLarger && abs.Abs(next.Value()).Cmp(r.magnitude) > 0 {
			continue
		}

		// Integer-only mode: discard fractional intermediates.
		if !r.options.AllowFractions && !next.Value().IsInt() {
			continue
		}

		// Viability against the current best exact match (borrowed snapshot):
		// once a best is known, candidates that cannot beat it per the same
		// comparator used for final selection are discarded immediately.
		if !next.BetterThan(r.best) {
			continue
		}

		if abs.Abs(next.Value()).Cmp(r.magnitude) == 0 {
			matched = true
		}
		r.push(next)
	}

	return matched
}

// push inserts p with its estimated priority, unless the estimate exceeds
// the configured priority cap.
func (r *runner) push(p Path) {
	priority := r.estimate(p)
	if priority > r.options.MaxPriority {
		return
	}
	heap.Push(&r.frontier, queuedPath{path: p, priority: priority})
}
