package align_test

import (
	"testing"

	"github.com/katalvlaran/bytealg/align"
)

// benchmarkLocate runs Locate on synthetic inputs of lengths n and m that
// share a planted fragment, so the traceback phase is exercised too.
func benchmarkLocate(b *testing.B, n, m int, opts align.Options) {
	x := make([]byte, n)
	y := make([]byte, m)
	for i := range x {
		x[i] = byte('a' + i%4)
	}
	for j := range y {
		y[j] = byte('e' + j%4)
	}
	// Plant one shared fragment in the middle of each input.
	copy(x[n/2:], "SHAREDFRAGMENT")
	copy(y[m/2:], "SHAREDFRAGMENT")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Locate(x, y, opts); err != nil {
			b.Fatalf("Locate failed: %v", err)
		}
	}
}

// BenchmarkLocate_BasicSmall benchmarks Basic scoring on 128×128 inputs.
func BenchmarkLocate_BasicSmall(b *testing.B) {
	opts := align.DefaultOptions()
	opts.MinLength = 4
	benchmarkLocate(b, 128, 128, opts)
}

// BenchmarkLocate_BasicMedium benchmarks Basic scoring on 512×512 inputs.
func BenchmarkLocate_BasicMedium(b *testing.B) {
	opts := align.DefaultOptions()
	opts.MinLength = 4
	benchmarkLocate(b, 512, 512, opts)
}

// BenchmarkLocate_Amino benchmarks BLOSUM62 scoring on 256×256 inputs.
func BenchmarkLocate_Amino(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Variant = align.Amino
	opts.MinLength = 4
	benchmarkLocate(b, 256, 256, opts)
}
