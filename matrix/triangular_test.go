// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpperTriangularForm(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want [][]float64
	}{
		{"swap to identity", [][]int{{0, 1}, {1, 0}}, [][]float64{{1, 0}, {0, 1}}},
		{"no swap", [][]int{{2, 4}, {1, 3}}, [][]float64{{2, 4}, {0, 1}}},
		{"rank one", [][]int{{1, 2}, {2, 4}}, [][]float64{{2, 4}, {0, 0}}},
		{"rectangular", [][]int{{1, 2, 3}, {2, 4, 6}}, [][]float64{{2, 4, 6}, {0, 0, 0}}},
		{"zero column skipped", [][]int{{0, 1}, {0, 2}}, [][]float64{{0, 2}, {0, 0}}},
		{"single row", [][]int{{3, 1, 2}}, [][]float64{{3, 1, 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MustDense(t, tc.in)
			before := m.ToRows()

			got, err := m.UpperTriangularForm()
			require.NoError(t, err)
			require.Empty(t, approxDiff(MustDense(t, tc.want), got))
			require.Equal(t, before, m.ToRows(), "input must not be mutated")
		})
	}
}

func TestUpperTriangularForm_DiagonalMatchesDeterminant(t *testing.T) {
	m := MustDense(t, [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})

	u, err := m.UpperTriangularForm()
	require.NoError(t, err)

	prod := 1.0
	for i := 0; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, err := u.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
		d, err := u.At(i, i)
		require.NoError(t, err)
		prod *= d
	}
	require.InDelta(t, 306, math.Abs(prod), floatTol*1e3)
}
