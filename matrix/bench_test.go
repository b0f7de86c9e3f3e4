package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cmalign/matrix"
)

// BenchmarkCopyFrom measures snapshotting a 300×300 buffer, the per-iteration
// cost the aligner pays before every softmax and Sinkhorn pass.
func BenchmarkCopyFrom(b *testing.B) {
	src, _ := matrix.NewFilled(301, 301, 0.1)
	dst, _ := matrix.NewDense(301, 301)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := dst.CopyFrom(src); err != nil {
			b.Fatalf("CopyFrom failed: %v", err)
		}
	}
}

// BenchmarkAbsDiff measures the convergence test over the real block.
func BenchmarkAbsDiff(b *testing.B) {
	x, _ := matrix.NewFilled(301, 301, 0.1)
	y, _ := matrix.NewFilled(301, 301, 0.2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.AbsDiff(y, 300, 300)
	}
}
