// SPDX-License-Identifier: MIT

package sadp

import "math"

// distanceDamping scales the sequence-separation mismatch |r·d1 − d2| in the
// neighbor-pair weight w = 1 / (1 + distanceDamping·|r·d1 − d2|).
const distanceDamping = 0.1

// maxExponent bounds b·Q before exponentiation; exp(709) is just below
// math.MaxFloat64.
const maxExponent = 709.0

// exponentCap returns the largest exponent for which a row of n2+1 cells,
// each at most exp(cap), still sums to a finite value.
func exponentCap(n2 int) float64 {
	return maxExponent - math.Log(float64(n2+1))
}

// softmax recomputes the real n1×n2 block of M from the snapshot M0.
//
// Algorithm:
//
//	for i < n1, j < n2:
//	  Q[i][j] = Σ w(i,k,j,l) · M0[k][l]
//	            over k ∈ adj_X(i), l ∈ adj_Y(j) with (k<i ∧ l<j) ∨ (k>i ∧ l>j)
//	  w       = 1 / (1 + 0.1·|r·|i−k| − |j−l||)
//	  M[i][j] = exp(min(b · Q[i][j], cap))
//
// Only same-side neighbor pairs contribute, so compatibility rewards
// order-preserving correspondences; the slack row and column are left
// untouched. r = max(n1,n2)/n1 rescales separations of the smaller map.
// The exponent is capped (see exponentCap) so that dense maps at large b
// keep every entry finite and Sinkhorn never divides Inf by Inf.
//
// Complexity: O(n1·n2·avgDeg_X·avgDeg_Y). No allocation.
func (m *Matcher) softmax(b, r float64) {
	ax, ay := m.x.Adjacency(), m.y.Adjacency()
	for i := 0; i < m.n1; i++ {
		qRow := m.q.Row(i)
		mRow := m.m.Row(i)
		for j := 0; j < m.n2; j++ {
			var q float64
			for _, k := range ax[i] {
				d1 := float64(absInt(i - k))
				prev := m.prevIteration.Row(k)
				for _, l := range ay[j] {
					if (i > k && j > l) || (i < k && j < l) {
						d2 := float64(absInt(j - l))
						w := 1.0 / (1.0 + distanceDamping*math.Abs(r*d1-d2))
						q += w * prev[l]
					}
				}
			}
			qRow[j] = q
			mRow[j] = math.Exp(min(b*q, m.expCap))
		}
	}
}

// absInt returns |x|.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
