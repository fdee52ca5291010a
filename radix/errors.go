// SPDX-License-Identifier: MIT

package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrBaseOutOfRange is returned when a base lies outside [MinBase, MaxBase].
	ErrBaseOutOfRange = errors.New("radix: base out of range")

	// ErrInvalidDigit is returned for a character that is not a digit of the
	// requested base, and for an empty digit string ("" or "-").
	ErrInvalidDigit = errors.New("radix: invalid digit")
)

// radixErrorf wraps err with an operation tag. Use only when err != nil.
func radixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
