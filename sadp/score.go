// SPDX-License-Identifier: MIT

package sadp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cmalign/contactmap"
	"github.com/katalvlaran/cmalign/matrix"
)

// Verdict is the outcome of verifying a final matching.
type Verdict struct {
	// Feasible is false when two matched contacts cross.
	Feasible bool
	// SharedContacts counts contacts present in both maps under the matching.
	SharedContacts int
	// Score is SharedContacts / min(edges_X, edges_Y), unrounded; 0 when
	// either map has no contacts.
	Score float64
	// Crossing names the first crossing found (valid only when !Feasible).
	Crossing [2]Pair
}

// Verify recounts the shared contacts implied by the binary matching m
// (rows index x, columns index y) and checks that they are consistently
// ordered.
//
// For every matched (i,j) and every neighbor pair k ∈ adj_X(i), l ∈ adj_Y(j)
// with (k,l) also matched: if k and l lie on the same side of i and j the
// contact is shared and counted; otherwise the matching crosses and the
// verdict is infeasible immediately. Each shared contact is seen from both
// endpoints, so the count is halved at the end.
//
// Verify is pure: calling it twice on the same inputs yields the same Verdict.
//
// Errors: ErrNilContactMap, ErrShapeMismatch.
//
// Complexity: O(n1·n2 + Σ_matched deg_X(i)·deg_Y(j)).
func Verify(m *matrix.Dense, x, y *contactmap.ContactMap) (Verdict, error) {
	if x == nil || y == nil {
		return Verdict{}, ErrNilContactMap
	}
	if m == nil {
		return Verdict{}, matrix.ErrNilMatrix
	}
	n1, n2 := x.NumNodes(), y.NumNodes()
	if m.Rows() != n1 || m.Cols() != n2 {
		return Verdict{}, fmt.Errorf("Verify: %dx%d matrix for %d and %d nodes: %w",
			m.Rows(), m.Cols(), n1, n2, ErrShapeMismatch)
	}

	ax, ay := x.Adjacency(), y.Adjacency()
	var seen int
	for i := 0; i < n1; i++ {
		row := m.Row(i)
		for j := 0; j < n2; j++ {
			if row[j] <= 0 {
				continue
			}
			for _, k := range ax[i] {
				kRow := m.Row(k)
				for _, l := range ay[j] {
					if kRow[l] <= 0 {
						continue
					}
					if (k < i && l < j) || (k > i && l > j) {
						seen++
						continue
					}

					return Verdict{
						Feasible: false,
						Crossing: [2]Pair{{X: i, Y: j}, {X: k, Y: l}},
					}, nil
				}
			}
		}
	}

	v := Verdict{Feasible: true, SharedContacts: seen / 2}
	if minEdges := min(x.NumEdges(), y.NumEdges()); minEdges > 0 {
		v.Score = float64(seen) / (2.0 * float64(minEdges))
	}

	return v, nil
}

// roundScore rounds to two decimals, as scores are reported.
func roundScore(s float64) float64 {
	return math.Round(100*s) / 100
}
