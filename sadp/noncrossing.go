// SPDX-License-Identifier: MIT

package sadp

import "github.com/katalvlaran/cmalign/matrix"

// NonCrossing extracts a maximum-weight non-crossing matching from the
// weight matrix w (typically the binary output of Discretize) and returns
// it as a fresh binary matrix of the same shape.
//
// A matching is non-crossing when any two kept cells (i1,j1), (i2,j2) with
// i1 < i2 also satisfy j1 < j2. This is global sequence alignment without
// gap penalties.
//
// Algorithm Outline:
//  1. Fill the score table S row by row:
//     S[i][0] = w[i][0]
//     S[i][j] = w[i][j] + max(sOpt[0..j-1])          for j ≥ 1
//     where sOpt[j] is the best S[·][j] over all earlier rows, updated
//     after each row is complete.
//  2. Backtrack from the last row with column bound k = n2: in row i pick the
//     column jOpt < k with the largest S[i][jOpt] (the rightmost one on
//     ties), keep (i,jOpt), set k = jOpt and move to row i-1. Stop when
//     rows run out or k reaches 0.
//
// Every visited row keeps exactly one cell, and column bounds strictly
// decrease, so the output is non-crossing by construction. The backtrack
// may keep a zero-weight cell where it continues the best chain.
//
// Complexity: O(n1·n2) time and memory.
func NonCrossing(w *matrix.Dense) *matrix.Dense {
	n1, n2 := w.Rows(), w.Cols()
	out, _ := matrix.NewDense(n1, n2) // shape already validated by w
	if n1 == 0 || n2 == 0 {
		return out
	}

	s, _ := matrix.NewDense(n1, n2)
	sOpt := make([]float64, n2)
	for i := 0; i < n1; i++ {
		wRow, sRow := w.Row(i), s.Row(i)
		sRow[0] = wRow[0]
		var best float64
		for j := 1; j < n2; j++ {
			if sOpt[j-1] > best {
				best = sOpt[j-1]
			}
			sRow[j] = wRow[j] + best
		}
		for j, v := range sRow {
			if v > sOpt[j] {
				sOpt[j] = v
			}
		}
	}

	k := n2
	for i := n1 - 1; i >= 0 && k > 0; i-- {
		sRow := s.Row(i)
		best, jOpt := -1.0, k-1
		for j := 0; j < k; j++ {
			if best <= sRow[j] {
				best, jOpt = sRow[j], j
			}
		}
		out.Row(i)[jOpt] = 1
		k = jOpt
	}

	return out
}
