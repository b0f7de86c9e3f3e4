package sadp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmalign/matrix"
	"github.com/katalvlaran/cmalign/sadp"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// ones lists the (row, col) cells holding 1.
func ones(m *matrix.Dense) []matrix.Cell { return m.NonZero() }

// TestBalance_Converges balances a positive square matrix.
func TestBalance_Converges(t *testing.T) {
	m := dense(t, [][]float64{{1, 2}, {3, 4}})
	st := sadp.Balance(m, 30, 0.05)

	assert.True(t, st.Converged)
	assert.Equal(t, 2, st.Passes)
	assert.Less(t, st.Residual, 0.05)
	for j := 0; j < 2; j++ {
		assert.InDelta(t, 1.0, m.ColSum(j), 1e-12, "columns are normalized last")
	}
	for i := 0; i < 2; i++ {
		assert.InDelta(t, 1.0, m.RowSum(i), 1e-3)
	}
}

// TestBalance_PassLimit stops at maxPasses without converging.
func TestBalance_PassLimit(t *testing.T) {
	m := dense(t, [][]float64{{1, 100}, {1, 1}})
	st := sadp.Balance(m, 1, 0)

	assert.False(t, st.Converged)
	assert.Equal(t, 1, st.Passes)
}

// TestBalance_ZeroMatrix leaves an all-zero matrix finite and unchanged.
func TestBalance_ZeroMatrix(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	st := sadp.Balance(m, 30, 0.05)
	assert.True(t, st.Converged)
	assert.Equal(t, 1, st.Passes)
	for i := 0; i < 3; i++ {
		for _, v := range m.Row(i) {
			assert.False(t, math.IsNaN(v))
			assert.Zero(t, v)
		}
	}
}

// TestDiscretize_FirstComeColumns checks the greedy column claim.
func TestDiscretize_FirstComeColumns(t *testing.T) {
	m := dense(t, [][]float64{
		{0.9, 0.1, 0.0, 0.5},
		{0.8, 0.2, 0.1, 0.5},
		{0.1, 0.3, 0.3, 0.5},
		{0.5, 0.5, 0.5, 0.5},
	})
	out, err := sadp.Discretize(m, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 3, out.Cols())
	assert.Equal(t, []matrix.Cell{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1}, // column 0 already taken by row 0
		{Row: 2, Col: 2}, // tie broken toward the lower column, which is claimed
	}, ones(out))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, out.RowSum(i))
	}
}

// TestDiscretize_Errors covers the two failure modes.
func TestDiscretize_Errors(t *testing.T) {
	m := dense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})

	_, err := sadp.Discretize(m, 3, 2)
	assert.ErrorIs(t, err, sadp.ErrNoFreeColumn)

	_, err = sadp.Discretize(m, 4, 2)
	assert.ErrorIs(t, err, sadp.ErrShapeMismatch)
}

// TestNonCrossing_Table runs hand-checked binary inputs.
func TestNonCrossing_Table(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want []matrix.Cell
	}{
		{
			name: "Identity",
			in:   [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			want: []matrix.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			name: "DropsCrossingCell",
			in:   [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
			want: []matrix.Cell{{Row: 1, Col: 0}, {Row: 2, Col: 1}},
		},
		{
			name: "KeepsZeroWeightConnector",
			in:   [][]float64{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}},
			want: []matrix.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 3}},
		},
		{
			name: "AntiDiagonal",
			in:   [][]float64{{0, 0, 0, 1}, {0, 0, 1, 0}, {0, 1, 0, 0}},
			want: []matrix.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 3}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := sadp.NonCrossing(dense(t, tc.in))
			assert.Equal(t, tc.want, ones(out))

			cells := ones(out)
			for k := 1; k < len(cells); k++ {
				assert.Less(t, cells[k-1].Col, cells[k].Col, "matching must not cross")
			}
		})
	}
}

// TestNonCrossing_Empty handles degenerate shapes.
func TestNonCrossing_Empty(t *testing.T) {
	m, err := matrix.NewDense(0, 5)
	require.NoError(t, err)
	out := sadp.NonCrossing(m)
	assert.Equal(t, 0, out.Rows())
	assert.Equal(t, 5, out.Cols())
}

// TestVerify_CountsSharedContacts scores the identity on a triangle.
func TestVerify_CountsSharedContacts(t *testing.T) {
	tri := triangle(t)
	id := dense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	v, err := sadp.Verify(id, tri, tri)
	require.NoError(t, err)
	assert.True(t, v.Feasible)
	assert.Equal(t, 3, v.SharedContacts)
	assert.Equal(t, 1.0, v.Score)

	again, err := sadp.Verify(id, tri, tri)
	require.NoError(t, err)
	assert.Equal(t, v, again, "Verify is pure")
}

// TestVerify_DetectsCrossing feeds a crossing matching directly.
func TestVerify_DetectsCrossing(t *testing.T) {
	x := mustMap(t, 2, [2]int{0, 1})
	y := mustMap(t, 2, [2]int{0, 1})
	swap := dense(t, [][]float64{{0, 1}, {1, 0}})

	v, err := sadp.Verify(swap, x, y)
	require.NoError(t, err)
	assert.False(t, v.Feasible)
	assert.Equal(t, [2]sadp.Pair{{X: 0, Y: 1}, {X: 1, Y: 0}}, v.Crossing)
}

// TestVerify_Errors rejects bad inputs.
func TestVerify_Errors(t *testing.T) {
	tri := triangle(t)
	_, err := sadp.Verify(dense(t, [][]float64{{1}}), tri, tri)
	assert.ErrorIs(t, err, sadp.ErrShapeMismatch)

	_, err = sadp.Verify(nil, tri, tri)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = sadp.Verify(dense(t, [][]float64{{1}}), nil, tri)
	assert.ErrorIs(t, err, sadp.ErrNilContactMap)
}

// TestOptions_Validate walks the parameter domain.
func TestOptions_Validate(t *testing.T) {
	require.NoError(t, sadp.DefaultOptions().Validate())

	tests := map[string]func(o *sadp.Options){
		"B0Zero":     func(o *sadp.Options) { o.B0 = 0 },
		"BfBelowB0":  func(o *sadp.Options) { o.Bf = o.B0 },
		"BrOne":      func(o *sadp.Options) { o.Br = 1 },
		"I0Zero":     func(o *sadp.Options) { o.I0 = 0 },
		"I1Negative": func(o *sadp.Options) { o.I1 = -1 },
		"Eps0Neg":    func(o *sadp.Options) { o.Eps0 = -0.1 },
		"Eps1Neg":    func(o *sadp.Options) { o.Eps1 = -0.1 },
		"BfNaN":      func(o *sadp.Options) { o.Bf = math.NaN() },
		"BrInf":      func(o *sadp.Options) { o.Br = math.Inf(1) },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			o := sadp.DefaultOptions()
			mutate(&o)
			assert.ErrorIs(t, o.Validate(), sadp.ErrInvalidOptions)
			assert.Zero(t, sadp.OuterSteps(o))
		})
	}
}

// TestOuterSteps checks the schedule length for the defaults.
func TestOuterSteps(t *testing.T) {
	o := sadp.DefaultOptions()
	assert.Equal(t, 42, sadp.OuterSteps(o))
	assert.Equal(t, 168, sadp.MaxIterations(o))
}
