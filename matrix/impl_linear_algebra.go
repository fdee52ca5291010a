// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Dense matrices: element-wise addition
// and subtraction, scalar scaling and division, matrix multiplication,
// transposition and integer powers. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical arithmetic kernels and their compound (in-place) forms.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Pure kernels allocate exactly one result; *InPlace kernels allocate nothing
//     except Pow, which needs scratch products.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opDiv        = "Div"
	opNeg        = "Neg"
	opTranspose  = "Transposed"
	opPow        = "Pow"
	opMinor      = "Minor"
	opMinorMat   = "MinorMatrix"
	opCofactor   = "AlgebraicAddition"
	opDet        = "Determinant"
	opDetPerm    = "DeterminantByPermutation"
	opAdjoint    = "AdjointMatrix"
	opInverse    = "InvertedMatrix"
	opTriangular = "UpperTriangularForm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns m + b element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := newZeroOK[T](m.r, m.c)
	ewAdd(res.data, m.data, b.data)

	return res, nil
}

// AddInPlace performs m += b.
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	ewAdd(m.data, m.data, b.data)

	return nil
}

// Sub returns m - b element-wise.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := newZeroOK[T](m.r, m.c)
	ewSub(res.data, m.data, b.data)

	return res, nil
}

// SubInPlace performs m -= b.
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	ewSub(m.data, m.data, b.data)

	return nil
}

// Scale returns alpha*m.
func (m *Dense[T]) Scale(alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newZeroOK[T](m.r, m.c)
	ewScale(res.data, m.data, alpha)

	return res, nil
}

// ScaleInPlace performs m *= alpha.
func (m *Dense[T]) ScaleInPlace(alpha T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	ewScale(m.data, m.data, alpha)

	return nil
}

// Div returns m/d element-wise.
// Errors: ErrDivisionByZero for integer T when d == 0.
func (m *Dense[T]) Div(d T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res := newZeroOK[T](m.r, m.c)
	if err := ewDiv(res.data, m.data, d); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return res, nil
}

// DivInPlace performs m /= d. On error m is left untouched.
func (m *Dense[T]) DivInPlace(d T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opDiv, err)
	}
	if err := ewDiv(m.data, m.data, d); err != nil {
		return matrixErrorf(opDiv, err)
	}

	return nil
}

// Neg returns -m.
func (m *Dense[T]) Neg() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := newZeroOK[T](m.r, m.c)
	ewNeg(res.data, m.data)

	return res, nil
}

// Mul returns the matrix product m×b, result[i][j] = Σ_k m[i][k]*b[k][j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == b.Rows).
//   - Stage 2: i→k→j loop so the inner loop walks both b and the result row
//     contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := m.r, m.c, b.c
	res := newZeroOK[T](rows, cols)

	var i, k, j int
	var aik T
	for i = 0; i < rows; i++ {
		out := res.data[i*cols : (i+1)*cols]
		for k = 0; k < inner; k++ {
			aik = m.data[i*inner+k]
			bk := b.data[k*cols : (k+1)*cols]
			for j = 0; j < cols; j++ {
				out[j] += aik * bk[j]
			}
		}
	}

	return res, nil
}

// Transposed returns mᵀ with result[j][i] = m[i][j].
// Complexity: O(r*c).
func (m *Dense[T]) Transposed() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newZeroOK[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Pow raises a square matrix to an integer power.
//
// Behavior:
//   - p == 0: identity of the same order.
//   - p > 0: repeated multiplication m×m×…×m.
//   - p < 0: InvertedMatrix(opts...) raised to −p.
//
// Errors:
//   - ErrDimensionMismatch for non-square m; ErrSingular for p < 0 on a
//     singular matrix.
//
// Complexity:
//   - Time O(|p|·n^3) (plus O(n!·n) for the inverse when p < 0).
func (m *Dense[T]) Pow(p int, opts ...Option) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := m
	if p < 0 {
		inv, err := m.InvertedMatrix(opts...)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base, p = inv, -p
	}

	res, err := Identity[T](m.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	for ; p > 0; p-- {
		if res, err = res.Mul(base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}

// PowInPlace replaces m with m^p. On error m is left untouched.
func (m *Dense[T]) PowInPlace(p int, opts ...Option) error {
	res, err := m.Pow(p, opts...)
	if err != nil {
		return err
	}
	copy(m.data, res.data)

	return nil
}
