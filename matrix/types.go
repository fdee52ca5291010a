// SPDX-License-Identifier: MIT

// Package matrix: element type set and numeric helpers shared by kernels.
package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Dense or Row may hold.
// Unsigned element types compute modulo 2^bits (sign changes wrap).
type Number interface {
	constraints.Integer | constraints.Float
}

// isIntegral reports whether T truncates division (any integer kind).
func isIntegral[T Number]() bool {
	one, two := T(1), T(2)

	return one/two == 0
}

// abs returns |v|. For unsigned T it is the identity.
func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// isFinite reports whether v is neither NaN nor ±Inf. Integers always are.
func isFinite[T Number](v T) bool {
	if isIntegral[T]() {
		return true
	}
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isZero reports whether v is singular-zero under the numeric policy:
// exact zero for integer T, |v| <= eps for floating T.
func isZero[T Number](v T, eps float64) bool {
	if isIntegral[T]() {
		return v == 0
	}

	return float64(abs(v)) <= eps
}
