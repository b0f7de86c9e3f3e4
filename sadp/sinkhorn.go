// SPDX-License-Identifier: MIT

package sadp

import (
	"math"

	"github.com/katalvlaran/cmalign/matrix"
)

// BalanceStats reports how a Sinkhorn run ended.
type BalanceStats struct {
	// Passes is the number of row+column normalization passes performed.
	Passes int
	// Residual is Σ|M − M_prev| of the last pass, over every cell.
	Residual float64
	// Converged is true when Residual dropped below eps before maxPasses.
	Converged bool
}

// Balance drives m toward a doubly-stochastic matrix by alternating row and
// column normalization (Sinkhorn balancing), in place.
//
// Algorithm, per pass (at most maxPasses):
//  1. Snapshot m.
//  2. Scale every row to sum 1.
//  3. Scale every column to sum 1, accumulating Σ|m − snapshot| over all cells.
//  4. Stop once that residual is below eps.
//
// A row or column whose sum is exactly 0 is left as is rather than divided
// by zero; this occurs for degenerate inputs such as an all-zero matrix.
//
// Balance allocates one snapshot buffer; the matcher uses a preallocated one.
//
// Complexity: O(maxPasses·rows·cols).
func Balance(m *matrix.Dense, maxPasses int, eps float64) BalanceStats {
	return balance(rowViews(m), rowViews(m.CloneDense()), m.Cols(), maxPasses, eps)
}

// rowViews returns the rows of m as slices sharing its storage.
func rowViews(m *matrix.Dense) [][]float64 {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = m.Row(i)
	}

	return rows
}

// balance is Balance over caller-owned row views: cur is the matrix being
// balanced and prev a snapshot buffer of the same shape.
func balance(cur, prev [][]float64, cols, maxPasses int, eps float64) BalanceStats {
	rows := len(cur)
	var st BalanceStats
	for pass := 0; pass < maxPasses; pass++ {
		st.Passes++
		for i := range cur {
			copy(prev[i], cur[i])
		}

		// rows
		for _, row := range cur {
			var sum float64
			for _, v := range row {
				sum += v
			}
			if sum == 0 {
				continue
			}
			for j := range row {
				row[j] /= sum
			}
		}

		// columns, accumulating the pass residual
		var residual float64
		for j := 0; j < cols; j++ {
			var sum float64
			for i := 0; i < rows; i++ {
				sum += cur[i][j]
			}
			for i := 0; i < rows; i++ {
				if sum != 0 {
					cur[i][j] /= sum
				}
				residual += math.Abs(cur[i][j] - prev[i][j])
			}
		}
		st.Residual = residual

		if residual < eps {
			st.Converged = true
			break
		}
	}

	return st
}
