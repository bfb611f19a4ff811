package pathgen_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numglyph/pathgen"
)

// constPath is a frozen path snapshot: just a value, a move count, and a
// footprint score. Extension is never legal.
type constPath struct {
	value *big.Rat
	moves int
	area  float64
}

func (p constPath) Value() *big.Rat        { return p.value }
func (p constPath) Len() int               { return p.moves }
func (p constPath) Bounds() pathgen.Bounds { return stubBounds{area: p.area} }

func (p constPath) Extend(pathgen.Direction) (pathgen.Path, error) {
	return nil, errors.New("constPath: frozen")
}

func (p constPath) BetterThan(pathgen.Path) bool { return true }

// frozen builds a constPath from an integer fraction.
func frozen(num, den int64, moves int) constPath {
	return constPath{value: big.NewRat(num, den), moves: moves}
}

// TestEstimate_TableDriven pins the estimate to hand-computed values:
// base move count, the zero-value inflation tiers, and both halving loops.
func TestEstimate_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		path   constPath
		target *big.Rat
		want   int
	}{
		// Overshoot: 20 halves twice to reach 5.
		{"overshoot_halves", frozen(20, 1, 3), big.NewRat(5, 1), 5},
		// Zero value, target above 10: inflate by 10, already within reach.
		{"zero_inflate_ten", frozen(0, 1, 0), big.NewRat(12, 1), 1},
		// Zero value, target above 5: inflate by 5, already within reach.
		{"zero_inflate_five", frozen(0, 1, 0), big.NewRat(8, 1), 1},
		// Zero value, small target: inflate by 1, one target halving left.
		{"zero_inflate_one", frozen(0, 1, 0), big.NewRat(3, 1), 2},
		// Undershoot: target 16 halves three times toward value 1.
		{"undershoot_halves", frozen(1, 1, 2), big.NewRat(16, 1), 5},
		// Fractional value one halving short of the target.
		{"fractional", frozen(1, 2, 1), big.NewRat(2, 1), 2},
		// Equal value and target: no remaining work beyond moves taken.
		{"already_exact", frozen(5, 1, 4), big.NewRat(5, 1), 4},
		// Zero target short-circuits to the bare move count.
		{"zero_target", frozen(7, 1, 4), new(big.Rat), 4},
		// Negative values estimate by magnitude.
		{"negative_value", frozen(-20, 1, 3), big.NewRat(5, 1), 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pathgen.EstimateMoves_TestOnly(tc.path, tc.target)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestEstimate_NeverBelowLen pins the floor: the estimate can never promise
// fewer total moves than the path has already taken.
func TestEstimate_NeverBelowLen(t *testing.T) {
	for moves := 0; moves < 8; moves++ {
		p := constPath{value: big.NewRat(int64(moves), 1), moves: moves}
		got := pathgen.EstimateMoves_TestOnly(p, big.NewRat(9, 1))
		require.GreaterOrEqual(t, got, moves)
	}
}

// TestEstimate_LeavesInputsUntouched verifies the estimate works on local
// copies: neither the path's value nor the caller's target may change.
func TestEstimate_LeavesInputsUntouched(t *testing.T) {
	p := frozen(40, 1, 2)
	target := big.NewRat(5, 1)
	_ = pathgen.EstimateMoves_TestOnly(p, target)
	require.Zero(t, p.value.Cmp(big.NewRat(40, 1)))
	require.Zero(t, target.Cmp(big.NewRat(5, 1)))
}
