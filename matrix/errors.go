// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions. Methods without an error result
// (Rows, Clone, Equal, Apply, ToRows, String, ...) require a non-nil receiver.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// the sentinels with matrixErrorf("<Op>", err); callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular, division by zero).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a nested literal is empty or ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/MinorMatrix) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// square-only operation on a rectangular matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare is returned by square-only operations (determinants,
	// inversion, powers) on a rectangular matrix. It wraps ErrDimensionMismatch.
	ErrNonSquare = fmt.Errorf("matrix: non-square matrix: %w", ErrDimensionMismatch)

	// ErrSingular is returned when inversion is requested on a matrix whose
	// determinant is zero (integer element types) or within eps of zero
	// (floating element types).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivisionByZero is returned when an integer-typed matrix or row is
	// divided by a zero scalar. Floating types follow IEEE-754 instead.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNaNInf signals a NaN or ±Inf value where only finite values are
	// accepted: stored elements and inversion determinants.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
