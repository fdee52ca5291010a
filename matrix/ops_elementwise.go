// SPDX-License-Identifier: MIT
// Package matrix: element-wise flat-slice kernels (ew*).
//
// Purpose:
//   - Centralize the single-loop element-wise operations shared by Row and
//     Dense, so both surfaces have identical semantics.
//
// Contract:
//   - dst may alias a (in-place compound assignment); lengths are validated
//     by the callers.
//   - Loops run 0..n-1 in a fixed order.

package matrix

// ewAdd writes dst[k] = a[k] + b[k].
func ewAdd[T Number](dst, a, b []T) {
	for k := range dst {
		dst[k] = a[k] + b[k]
	}
}

// ewSub writes dst[k] = a[k] - b[k].
func ewSub[T Number](dst, a, b []T) {
	for k := range dst {
		dst[k] = a[k] - b[k]
	}
}

// ewScale writes dst[k] = a[k] * alpha.
func ewScale[T Number](dst, a []T, alpha T) {
	for k := range dst {
		dst[k] = a[k] * alpha
	}
}

// ewDiv writes dst[k] = a[k] / d.
// Integer element types reject d == 0 (Go would panic); floating types follow
// IEEE-754 and may produce ±Inf/NaN.
func ewDiv[T Number](dst, a []T, d T) error {
	if d == 0 && isIntegral[T]() {
		return ErrDivisionByZero
	}
	for k := range dst {
		dst[k] = a[k] / d
	}

	return nil
}

// ewNeg writes dst[k] = -a[k].
func ewNeg[T Number](dst, a []T) {
	for k := range dst {
		dst[k] = -a[k]
	}
}
