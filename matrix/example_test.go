package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cmalign/matrix"
)

// ExampleDense_Row shows the no-copy row view used by iterative solvers.
func ExampleDense_Row() {
	m, _ := matrix.NewFilled(2, 3, 0.5)
	row := m.Row(0)
	for j := range row {
		row[j] *= 2
	}
	fmt.Println(m.RowSum(0), m.RowSum(1))
	// Output: 3 1.5
}
