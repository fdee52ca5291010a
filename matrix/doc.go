// Package matrix offers a generic dense matrix over integer and floating
// element types.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major matrix whose dimensions are fixed at
//     construction. Every shape-sensitive operation validates its operands
//     at call time and fails with ErrDimensionMismatch.
//   - Row[T]: a fixed-length row view with the same arithmetic one
//     dimension lower.
//   - Arithmetic: Add, Sub, Scale, Div, Neg, Mul, Pow and in-place variants.
//   - Shape transforms: Transposed, MinorMatrix, UpperTriangularForm, Cast.
//   - Determinants by cofactor expansion and by permutation expansion,
//     cofactors, the adjugate and adjugate-based inversion.
//
// Determinants and inversion are factorial-time and intended for small
// matrices (the tools built on this package work with 3×3).
//
// See the examples in this package for usage patterns.
package matrix
