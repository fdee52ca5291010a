// SPDX-License-Identifier: MIT

// Package softnum: sentinel errors.
// Every checked operation returns one of these (possibly wrapped with an
// operation tag); callers match with errors.Is.
package softnum

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmeticOverflow is returned when a checked add/sub/mul/neg/div
	// result is not representable in the wrapped integer type.
	ErrArithmeticOverflow = errors.New("softnum: arithmetic overflow")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("softnum: division by zero")
)

// Operation tags used in error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
	opNeg = "Neg"
)

// softnumErrorf wraps err with an operation tag and the offending operands.
// Use only when err != nil.
func softnumErrorf[T Integer](op string, a, b T, err error) error {
	return fmt.Errorf("%s(%v,%v): %w", op, a, b, err)
}
