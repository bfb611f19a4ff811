package pathgen

// Test-Bridge (White-Box) for the private heuristic and frontier.
//
// Purpose:
//   - Expose the UNEXPORTED estimate kernel and the frontier heap to
//     pathgen_test ONLY, enabling white-box verification without widening the
//     production API.
//
// Provided Surface:
//   - EstimateMoves_TestOnly: thin pass-through to runner.estimate.
//   - FrontierProbe_TestOnly: a read/write handle over a private frontier.
//
// Behavior & Determinism:
//   - Deterministic wrappers; no side effects beyond the wrapped operations.

import (
	"container/heap"
	"math/big"
)

// EstimateMoves_TestOnly runs the private heuristic for path p against the
// magnitude of target, under the given options.
func EstimateMoves_TestOnly(p Path, target *big.Rat, opts ...Option) int {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &runner{magnitude: new(big.Rat).Abs(target), options: cfg}

	return r.estimate(p)
}

// FrontierProbe_TestOnly wraps a private frontier heap for white-box tests.
type FrontierProbe_TestOnly struct {
	f frontier
}

// Len reports the number of queued candidates.
func (fp *FrontierProbe_TestOnly) Len() int { return fp.f.Len() }

// Push enqueues p at the given priority.
func (fp *FrontierProbe_TestOnly) Push(p Path, priority int) {
	heap.Push(&fp.f, queuedPath{path: p, priority: priority})
}

// PopMin dequeues the minimum-priority candidate.
func (fp *FrontierProbe_TestOnly) PopMin() (Path, int) {
	qp := heap.Pop(&fp.f).(queuedPath)

	return qp.path, qp.priority
}

// Retain forwards to the private dominance-pruning rebuild.
func (fp *FrontierProbe_TestOnly) Retain(ref Bounds) { fp.f.retainAtLeastAsGood(ref) }

// SmallestMatch forwards to the private exact-match frontier scan.
func (fp *FrontierProbe_TestOnly) SmallestMatch(magnitude *big.Rat) Path {
	return fp.f.smallestMatch(magnitude)
}
