// SPDX-License-Identifier: MIT
// Package matrix: minors, cofactors, determinants, adjugate and inverse.
//
// Two independent determinant algorithms are provided and must agree on
// every square input:
//   - Determinant: recursive cofactor (Laplace) expansion along row 0.
//   - DeterminantByPermutation: Σ_σ sign(σ)·Π_i a[i][σ(i)].
//
// Both are O(n!·n); they target the small fixed orders the tools use
// (n ≤ ~8). Inversion uses the adjugate: A⁻¹ = adj(A) / det(A).
//
// Numeric policy:
//   - Integer element types are exact (wrapping on overflow like plain Go
//     arithmetic); inversion truncates adj/det toward zero.
//   - Floating element types test singularity as |det| <= eps
//     (DefaultEpsilon unless WithEpsilon is given).

package matrix

// MinorMatrix returns the (r−1)×(c−1) matrix obtained by deleting row i and
// column j. A 1×1 input yields a legal 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (i or j outside the matrix).
func (m *Dense[T]) MinorMatrix(i, j int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinorMat, err)
	}
	if err := validateIndex(m, i, j); err != nil {
		return nil, matrixErrorf(opMinorMat, err)
	}

	return m.minorMatrix(i, j), nil
}

// minorMatrix is MinorMatrix without validation.
func (m *Dense[T]) minorMatrix(i, j int) *Dense[T] {
	res := newZeroOK[T](m.r-1, m.c-1)
	dst := 0
	for row := 0; row < m.r; row++ {
		if row == i {
			continue
		}
		base := row * m.c
		for col := 0; col < m.c; col++ {
			if col == j {
				continue
			}
			res.data[dst] = m.data[base+col]
			dst++
		}
	}

	return res
}

// Minor returns det(MinorMatrix(i, j)). Square matrices only.
func (m *Dense[T]) Minor(i, j int) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err := validateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return m.minorMatrix(i, j).cofactorDet(), nil
}

// AlgebraicAddition returns the cofactor (−1)^(i+j)·Minor(i, j).
func (m *Dense[T]) AlgebraicAddition(i, j int) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if err := validateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return m.cofactor(i, j), nil
}

// cofactor computes the signed minor without validation. Unsigned element
// types wrap on negation.
func (m *Dense[T]) cofactor(i, j int) T {
	minor := m.minorMatrix(i, j).cofactorDet()
	if (i+j)%2 == 1 {
		return -minor
	}

	return minor
}

// Determinant computes det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - Base case 1×1: the sole element (0×0: 1, the empty product).
//   - Otherwise Σ_j m[0][j]·AlgebraicAddition(0, j).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n!·n), Space O(n^2) per recursion level.
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.cofactorDet(), nil
}

// cofactorDet is the unvalidated recursive kernel behind Determinant.
func (m *Dense[T]) cofactorDet() T {
	switch m.r {
	case 0:
		return 1
	case 1:
		return m.data[0]
	}
	var det T
	for j := 0; j < m.c; j++ {
		if m.data[j] == 0 {
			continue
		}
		det += m.data[j] * m.cofactor(0, j)
	}

	return det
}

// DeterminantByPermutation computes det(m) as the signed sum over all
// column permutations σ of Π_i m[i][σ(i)].
//
// Implementation:
//   - Permutations are generated by in-place swaps; every swap of two
//     distinct positions flips the parity, so the sign is tracked without
//     counting inversions.
//
// Complexity:
//   - Time O(n!·n), Space O(n).
func (m *Dense[T]) DeterminantByPermutation() (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDetPerm, err)
	}

	n := m.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var det T
	var walk func(k int, odd bool)
	walk = func(k int, odd bool) {
		if k == n {
			prod := T(1)
			for i := 0; i < n; i++ {
				prod *= m.data[i*n+perm[i]]
			}
			if odd {
				det -= prod
			} else {
				det += prod
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k+1, odd != (i != k))
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0, false)

	return det, nil
}

// AdjointMatrix returns the adjugate: the transpose of the cofactor matrix,
// adj[i][j] = AlgebraicAddition(j, i).
func (m *Dense[T]) AdjointMatrix() (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	n := m.r
	res := newZeroOK[T](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.data[i*n+j] = m.cofactor(j, i)
		}
	}

	return res, nil
}

// InvertedMatrix returns adj(m)/det(m).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrSingular when det == 0 (integer T) or |det| <= eps (floating T).
//   - ErrNaNInf when a floating det is NaN or ±Inf (overflow).
//
// Notes:
//   - For integer element types the division truncates; the result is the
//     exact inverse only for unimodular inputs.
func (m *Dense[T]) InvertedMatrix(opts ...Option) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	det := m.cofactorDet()
	if !isFinite(det) {
		return nil, matrixErrorf(opInverse, ErrNaNInf)
	}
	if isZero(det, o.eps) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj, err := m.AdjointMatrix()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = adj.DivInPlace(det); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj, nil
}
