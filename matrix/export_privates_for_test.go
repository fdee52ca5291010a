// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private kernels.
//
// Purpose:
//   - Expose unexported ew* micro-kernels and numeric helpers to matrix_test
//     only, without widening the production API.
//   - The file is a _test.go file in package matrix, so it is invisible in
//     production builds.

// EwDivForTest exposes ewDiv.
func EwDivForTest[T Number](dst, a []T, d T) error { return ewDiv(dst, a, d) }

// EwNegForTest exposes ewNeg.
func EwNegForTest[T Number](dst, a []T) { ewNeg(dst, a) }

// IsZeroForTest exposes isZero.
func IsZeroForTest[T Number](v T, eps float64) bool { return isZero(v, eps) }

// IsIntegralForTest exposes isIntegral.
func IsIntegralForTest[T Number]() bool { return isIntegral[T]() }
