// SPDX-License-Identifier: MIT

// Package bin2dec parses unsigned binary numerals into uint32.
//
// Leading zeros are allowed and do not count toward the 32-bit limit; a
// numeral with more than 32 significant bits reports
// softnum.ErrArithmeticOverflow.
package bin2dec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lw/softnum"
)

var (
	// ErrEmpty is returned for an empty numeral.
	ErrEmpty = errors.New("bin2dec: empty input")

	// ErrInvalidDigit is returned when the numeral contains anything but '0' and '1'.
	ErrInvalidDigit = errors.New("bin2dec: invalid binary digit")
)

var two = softnum.New[uint32](2)

// Parse converts a binary numeral such as "1011" to its value.
//
// Errors:
//   - ErrEmpty, ErrInvalidDigit (signs and whitespace included),
//     softnum.ErrArithmeticOverflow.
func Parse(s string) (uint32, error) {
	if s == "" {
		return 0, ErrEmpty
	}

	acc := softnum.New[uint32](0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return 0, fmt.Errorf("Parse(%q): %q at %d: %w", s, c, i, ErrInvalidDigit)
		}
		var err error
		if acc, err = acc.MulAdd(two, softnum.New(uint32(c-'0'))); err != nil {
			return 0, fmt.Errorf("Parse(%q): %w", s, err)
		}
	}

	return acc.Value(), nil
}
