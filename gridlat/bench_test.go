package gridlat_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/numglyph/gridlat"
	"github.com/katalvlaran/numglyph/pathgen"
)

// BenchmarkExtend measures the cost of one stroke on a mid-length path:
// value arithmetic, the linear segment scan, and the copy-on-extend slices.
func BenchmarkExtend(b *testing.B) {
	p := gridlat.New().Root(pathgen.SignPositive)
	for _, m := range []pathgen.Direction{gridlat.Inc, gridlat.Dbl, gridlat.Inc, gridlat.Dbl} {
		next, err := p.Extend(m)
		if err != nil {
			b.Fatalf("setup Extend failed: %v", err)
		}
		p = next
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Extend(gridlat.Inc); err != nil {
			b.Fatalf("Extend failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Ten measures a full engine run encoding the integer ten.
func BenchmarkGenerate_Ten(b *testing.B) {
	target := big.NewRat(10, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathgen.Generate(gridlat.New(), target); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
