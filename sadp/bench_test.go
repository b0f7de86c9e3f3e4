package sadp_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cmalign/contactmap"
	"github.com/katalvlaran/cmalign/matrix"
	"github.com/katalvlaran/cmalign/sadp"
)

// bandMap builds an n-residue map with contacts |i-j| ≤ 2 plus a few random
// long-range ones, roughly the density of a real contact map.
func bandMap(b *testing.B, n int, seed int64) *contactmap.ContactMap {
	rng := rand.New(rand.NewSource(seed))
	var cs []contactmap.Contact
	for i := 0; i < n; i++ {
		for d := 1; d <= 2 && i+d < n; d++ {
			cs = append(cs, contactmap.Contact{I: i, J: i + d})
		}
		if j := rng.Intn(n); j > i+4 {
			cs = append(cs, contactmap.Contact{I: i, J: j})
		}
	}
	cm, err := contactmap.FromEdges(n, cs)
	if err != nil {
		b.Fatalf("FromEdges: %v", err)
	}

	return cm
}

// BenchmarkRun_50x60 measures a full alignment of mid-sized maps.
func BenchmarkRun_50x60(b *testing.B) {
	x, y := bandMap(b, 50, 1), bandMap(b, 60, 2)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	m, err := sadp.New(x, y, sadp.DefaultOptions(), sadp.WithLogger(logger))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Run()
	}
}

// BenchmarkBalance measures Sinkhorn passes on a 201×201 matrix.
func BenchmarkBalance(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	src, _ := matrix.NewDense(201, 201)
	for i := 0; i < 201; i++ {
		row := src.Row(i)
		for j := range row {
			row[j] = rng.Float64() + 0.01
		}
	}
	m := src.CloneDense()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.CopyFrom(src)
		sadp.Balance(m, 30, 0.05)
	}
}

// BenchmarkNonCrossing measures the DP on a 300×300 identity.
func BenchmarkNonCrossing(b *testing.B) {
	w, _ := matrix.NewDense(300, 300)
	for i := 0; i < 300; i++ {
		w.Row(i)[i] = 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sadp.NonCrossing(w)
	}
}
