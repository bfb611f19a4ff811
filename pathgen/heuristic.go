package pathgen

import "math/big"

// Shared rational constants for the estimate. Operands only — never mutated.
var (
	ratOne  = big.NewRat(1, 1)
	ratTwo  = big.NewRat(2, 1)
	ratFive = big.NewRat(5, 1)
	ratTen  = big.NewRat(10, 1)
)

// estimate returns a lower-bound style estimate of the total moves needed to
// reach the target through p: moves already taken plus an estimate of moves
// remaining, assuming a single move can at best double or halve progress.
//
// Shape of the estimate:
//
//   - Base: p's current move count.
//   - A zero-valued path is charged one extra move, and its working value is
//     inflated by a magnitude-dependent offset (10 above target 10, 5 above
//     target 5, else 1) so that "no progress yet" is never treated as free
//     and dead zero-valued branches sink for larger targets.
//   - While the working value exceeds the working target, halve it and charge
//     one move; symmetrically, while half the working target still exceeds
//     the working value, halve the target and charge one move.
//
// The estimate orders the frontier only; correctness comes from exhaustive
// exploration and the exact-match filter, never from this bound.
//
// A zero target magnitude short-circuits to the bare move count: the halving
// loops cannot terminate against zero on exact rationals, and a zero target
// is satisfied by the root before any estimate matters.
func (r *runner) estimate(p Path) int {
	est := p.Len()
	if r.magnitude.Sign() == 0 {
		return est
	}

	// Local working copies; the path's value and the engine's magnitude stay
	// untouched.
	val := new(big.Rat).Abs(p.Value())
	target := new(big.Rat).Set(r.magnitude)

	if val.Sign() == 0 {
		est++
		switch {
		case target.Cmp(ratTen) > 0:
			val.Add(val, ratTen)
		case target.Cmp(ratFive) > 0:
			val.Add(val, ratFive)
		default:
			val.Add(val, ratOne)
		}
	}

	// Overshoot: each halving models the best a single move can undo.
	for val.Cmp(target) > 0 {
		val.Quo(val, ratTwo)
		est++
	}

	// Undershoot: halve the target toward the value; each halving models the
	// best a single move can gain.
	half := new(big.Rat)
	for half.Quo(target, ratTwo).Cmp(val) > 0 {
		target.Set(half)
		est++
	}

	return est
}
