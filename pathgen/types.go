// Package pathgen defines the collaborator contracts, configuration options,
// and sentinel errors for the exact-value move-sequence generator.
package pathgen

import (
	"errors"
	"math"
	"math/big"
)

// Sentinel errors returned by Generate.
var (
	// ErrNilLattice indicates that a nil Lattice was passed to Generate.
	ErrNilLattice = errors.New("pathgen: lattice is nil")

	// ErrNilTarget indicates that a nil *big.Rat target was passed to Generate.
	ErrNilTarget = errors.New("pathgen: target is nil")

	// ErrNoDirections indicates that the lattice enumerates an empty direction
	// set, leaving the engine nothing to extend paths with.
	ErrNoDirections = errors.New("pathgen: lattice enumerates no directions")

	// ErrUnreachable indicates the search space was exhausted without finding
	// an exact match. This is a normal outcome, not a failure: the target is
	// simply not representable under the active constraints.
	ErrUnreachable = errors.New("pathgen: target not reachable under the active constraints")

	// ErrBudgetExceeded indicates the expansion budget (WithMaxExpansions) ran
	// out before any exact match was confirmed.
	ErrBudgetExceeded = errors.New("pathgen: expansion budget exhausted before any exact match")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to a
	// non-positive value.
	ErrBadMaxExpansions = errors.New("pathgen: MaxExpansions must be positive")

	// ErrBadMaxPriority indicates that MaxPriority was set to a non-positive
	// value.
	ErrBadMaxPriority = errors.New("pathgen: MaxPriority must be positive")
)

// Sign biases the root path so that the lattice produces values of the
// requested polarity. The engine itself compares unsigned magnitudes only.
type Sign int

const (
	// SignNegative biases the root toward negative values.
	SignNegative Sign = -1

	// SignPositive biases the root toward positive values (zero included).
	SignPositive Sign = 1
)

// SignOf derives the root bias for a target: SignNegative for negative
// targets, SignPositive otherwise.
func SignOf(target *big.Rat) Sign {
	if target.Sign() < 0 {
		return SignNegative
	}

	return SignPositive
}

// Direction is an opaque move tag. Its meaning is defined entirely by the
// Lattice that enumerates it; the engine only feeds it back into Path.Extend.
type Direction uint8

// Bounds describes the geometric footprint of a path. Implementations must be
// immutable once returned.
type Bounds interface {
	// QuasiArea returns a scalar compactness score. Smaller is more compact;
	// the engine uses it as the secondary tie-break among equal-length matches.
	QuasiArea() float64

	// AtLeastAsGood reports whether this shape is at least as good as other.
	// Frontier entries whose bounds fail this test against a newly confirmed
	// best solution are pruned permanently.
	AtLeastAsGood(other Bounds) bool
}

// Path is an immutable sequence of moves starting from a lattice root.
// Extending a path produces a new Path and never mutates the receiver.
type Path interface {
	// Value returns the path's exact signed value. Callers must not mutate
	// the returned rational.
	Value() *big.Rat

	// Len returns the number of moves taken so far.
	Len() int

	// Bounds returns the path's bounding shape.
	Bounds() Bounds

	// Extend attempts to append one move. It returns the extended Path, or an
	// error meaning the direction is not a legal continuation. The engine
	// treats any error as a silent exclusion, never a failure.
	Extend(d Direction) (Path, error)

	// BetterThan reports whether this path should be preferred over (or is
	// still able to beat) the given best-so-far exact match. It must return
	// true unconditionally when best is nil.
	BetterThan(best Path) bool
}

// Lattice supplies the fixed, finite direction set and the sign-biased root
// path. Implementations must be deterministic: identical call sequences must
// yield identical paths, or Generate's determinism guarantee is void.
type Lattice interface {
	// Directions enumerates the closed direction set. Iteration order may
	// affect which tied solution is produced first, never final optimality.
	Directions() []Direction

	// Root builds the zero-move path with value zero, biased by sign.
	Root(sign Sign) Path
}

// Options configures the behavior of Generate. Use the With* functional
// options to construct it; see DefaultOptions for the zero configuration.
type Options struct {
	TrimLarger     bool // Reject intermediates larger than the target magnitude
	AllowFractions bool // Permit non-integral values along the path
	MaxExpansions  int  // Maximum number of frontier expansions
	MaxPriority    int  // Maximum admissible heuristic priority
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithTrimLarger forbids intermediate values whose magnitude exceeds the
// target magnitude.
func WithTrimLarger() Option {
	return func(o *Options) {
		o.TrimLarger = true
	}
}

// WithAllowFractions permits non-integral intermediate and final values.
// If not set, every path value must be an integer.
func WithAllowFractions() Option {
	return func(o *Options) {
		o.AllowFractions = true
	}
}

// WithMaxExpansions bounds the number of frontier expansions. When the budget
// runs out, Generate returns the best exact match found so far (exact but not
// necessarily minimal), or ErrBudgetExceeded if none exists yet.
// Must pass a positive value; zero or negative cause ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithMaxPriority bounds the heuristic priority of enqueued candidates.
// Candidates estimated to need more than p total moves are dropped, which
// turns an otherwise unbounded search into a finite one.
// Must pass a positive value; zero or negative cause ErrBadMaxPriority.
func WithMaxPriority(p int) Option {
	return func(o *Options) {
		if p <= 0 {
			panic(ErrBadMaxPriority.Error())
		}
		o.MaxPriority = p
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - TrimLarger:     false (intermediates may overshoot the target).
//   - AllowFractions: false (integers only).
//   - MaxExpansions:  math.MaxInt (no expansion budget).
//   - MaxPriority:    math.MaxInt (no priority cap).
func DefaultOptions() Options {
	return Options{
		TrimLarger:     false,
		AllowFractions: false,
		MaxExpansions:  math.MaxInt,
		MaxPriority:    math.MaxInt,
	}
}
