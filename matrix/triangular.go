// SPDX-License-Identifier: MIT

package matrix

// UpperTriangularForm returns a row-echelon form of m computed by Gaussian
// elimination in float64, whatever the element type of m.
//
// Implementation:
//   - Stage 1: copy m into a float64 work matrix.
//   - Stage 2: for each column, pick the row (at or below the current pivot
//     row) with the largest |value| and swap it up (partial pivoting).
//   - Stage 3: a column whose best candidate is exactly zero has no pivot;
//     it is skipped and the pivot row stays put.
//   - Stage 4: eliminate below the pivot: row_i -= (a[i][col]/pivot)·row_pivot,
//     then store an exact zero under the pivot.
//
// Behavior highlights:
//   - Works for rectangular inputs; the input is never mutated.
//   - Row swaps change the determinant's sign; the result is a shape, not a
//     determinant-preserving factorization.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func (m *Dense[T]) UpperTriangularForm() (*Dense[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTriangular, err)
	}
	a, err := Cast[float64](m)
	if err != nil {
		return nil, matrixErrorf(opTriangular, err)
	}

	rows, cols := a.r, a.c
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		best := pivotRow
		for i := pivotRow + 1; i < rows; i++ {
			if abs(a.data[i*cols+col]) > abs(a.data[best*cols+col]) {
				best = i
			}
		}
		if a.data[best*cols+col] == 0 {
			continue
		}
		if best != pivotRow {
			a.swapRows(best, pivotRow)
		}

		pivot := a.data[pivotRow*cols+col]
		src := a.data[pivotRow*cols : (pivotRow+1)*cols]
		for i := pivotRow + 1; i < rows; i++ {
			dst := a.data[i*cols : (i+1)*cols]
			factor := dst[col] / pivot
			if factor == 0 {
				continue
			}
			for k := col + 1; k < cols; k++ {
				dst[k] -= factor * src[k]
			}
			dst[col] = 0
		}
		pivotRow++
	}

	return a, nil
}

// swapRows exchanges rows i and j in place.
func (m *Dense[T]) swapRows(i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
