// SPDX-License-Identifier: MIT

package sadp

import (
	"fmt"

	"github.com/katalvlaran/cmalign/matrix"
)

// Discretize collapses the top-left n1×n2 block of the continuous match
// matrix m into a hard assignment: a fresh n1×n2 matrix with exactly one 1
// per row and no column used twice.
//
// Rows are processed in index order; each takes the largest value among the
// columns no earlier row has claimed (strict >, so the lowest column wins a
// tie within a row). Earlier rows therefore win contested columns. This
// first-come policy is part of the result's determinism.
//
// Errors:
//   - ErrShapeMismatch if m is smaller than n1×n2.
//   - ErrNoFreeColumn if a row finds every column claimed (n1 > n2).
//
// Complexity: O(n1·n2).
func Discretize(m *matrix.Dense, n1, n2 int) (*matrix.Dense, error) {
	if n1 < 0 || n2 < 0 || m.Rows() < n1 || m.Cols() < n2 {
		return nil, fmt.Errorf("Discretize: %dx%d block of %dx%d matrix: %w",
			n1, n2, m.Rows(), m.Cols(), ErrShapeMismatch)
	}
	out, err := matrix.NewDense(n1, n2)
	if err != nil {
		return nil, err
	}

	claimed := make([]bool, n2)
	for i := 0; i < n1; i++ {
		row := m.Row(i)
		best, idx := -1.0, -1
		for j := 0; j < n2; j++ {
			if best < row[j] && !claimed[j] {
				best, idx = row[j], j
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("Discretize: row %d of %d with %d columns: %w", i, n1, n2, ErrNoFreeColumn)
		}
		out.Row(i)[idx] = 1
		claimed[idx] = true
	}

	return out, nil
}
