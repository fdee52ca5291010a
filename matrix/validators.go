// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/index checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Use for Add/Sub and compound assignment.
func ValidateSameShape[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Returns ErrNonSquare (which matches ErrDimensionMismatch) otherwise.
func ValidateSquare[T Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a×b.
func ValidateMulCompatible[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex checks 0 ≤ i < rows and 0 ≤ j < cols.
func validateIndex[T Number](m *Dense[T], i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return validatorErrorf(fmt.Sprintf("validateIndex(%d,%d)", i, j), ErrOutOfRange)
	}

	return nil
}

// validateLen ensures two rows (or flat buffers) have the same length.
func validateLen[T Number](a, b []T) error {
	if len(a) != len(b) {
		return validatorErrorf("validateLen", ErrDimensionMismatch)
	}

	return nil
}
