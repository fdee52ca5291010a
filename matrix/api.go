// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin free-function entry points mirroring the Dense methods,
//     for call sites that read better as f(a, b) than a.f(b).
//   - Each facade delegates to the canonical method.

package matrix

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New[T](m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.r)
}

// Sum is a + b. Complexity: O(rc).
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return a.Add(b) }

// Diff is a − b. Complexity: O(rc).
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return a.Sub(b) }

// Product is the matrix product a × b. Complexity: O(r*n*c).
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return a.Mul(b) }

// Transpose returns mᵀ.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) { return m.Transposed() }

// InverseOf returns m⁻¹ via the adjugate method.
func InverseOf[T Number](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return m.InvertedMatrix(opts...)
}

// Det returns det(m) by cofactor expansion.
func Det[T Number](m *Dense[T]) (T, error) { return m.Determinant() }
