package pathgen

import (
	"container/heap"
	"math/big"
)

// queuedPath pairs a candidate path with its estimated total move count.
// The estimate covers moves already taken plus a lower bound on moves
// remaining, so the frontier always expands the most promising path first.
type queuedPath struct {
	path     Path // in-progress candidate, immutable
	priority int  // estimated total moves to reach the target
}

// frontier is a min-heap (priority queue) of queuedPath, ordered by priority
// ascending. Ties carry no canonical order; callers must not rely on one.
// A path is removed permanently once popped and expanded — only its children
// are ever inserted back.
type frontier []queuedPath

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller priority → expanded sooner.
func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type queuedPath.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(queuedPath)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to queuedPath.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedPath{} // release the Path reference
	*f = old[:n-1]

	return item
}

// retainAtLeastAsGood prunes every entry whose bounds are dominated by ref,
// i.e. not at least as good as it. The heap lacks native filtering, so the
// backing slice is compacted in place and re-heapified: O(n) total, no
// reallocation.
func (f *frontier) retainAtLeastAsGood(ref Bounds) {
	kept := (*f)[:0]
	var qp queuedPath
	for _, qp = range *f {
		if qp.path.Bounds().AtLeastAsGood(ref) {
			kept = append(kept, qp)
		}
	}
	// Zero the tail so pruned paths become collectable.
	for i := len(kept); i < len(*f); i++ {
		(*f)[i] = queuedPath{}
	}
	*f = kept
	heap.Init(f)
}

// smallestMatch scans the entire frontier for entries whose unsigned value
// equals magnitude and returns the one with the smallest quasi-area, or nil
// when no entry matches. Equal scores keep the first entry encountered, which
// is deterministic for a deterministic run.
func (f frontier) smallestMatch(magnitude *big.Rat) Path {
	var (
		best     Path
		bestArea float64
		area     float64
		abs      = new(big.Rat) // scratch, reused across entries
		qp       queuedPath
	)
	for _, qp = range f {
		if abs.Abs(qp.path.Value()).Cmp(magnitude) != 0 {
			continue
		}
		area = qp.path.Bounds().QuasiArea()
		if best == nil || area < bestArea {
			best = qp.path
			bestArea = area
		}
	}

	return best
}
