// SPDX-License-Identifier: MIT

// Package radix converts signed integers between textual numeral systems
// with bases 2 through 36.
//
// Digits are '0'-'9' followed by the uppercase letters 'A'-'Z' for the
// values 10..35. A numeral may carry one leading '-'. Parsing accumulates
// through softnum checked arithmetic, so a numeral that does not fit in an
// int64 yields softnum.ErrArithmeticOverflow instead of wrapping.
package radix

import (
	"fmt"

	"github.com/katalvlaran/lw/softnum"
)

// Base limits.
const (
	MinBase = 2
	MaxBase = 36
)

// Operation tags used in error wrapping.
const (
	opValidateBase = "ValidateBase"
	opParseBase    = "ParseBase"
	opCharToDigit  = "CharToDigit"
	opDigitToChar  = "DigitToChar"
	opStringToInt  = "StringToInt"
	opIntToString  = "IntToString"
	opConvert      = "Convert"
)

// ValidateBase returns ErrBaseOutOfRange unless MinBase <= base <= MaxBase.
func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return radixErrorf(opValidateBase, fmt.Errorf("%d: %w", base, ErrBaseOutOfRange))
	}

	return nil
}

// ParseBase reads a decimal base such as "16" and validates its range.
func ParseBase(s string) (int, error) {
	v, err := StringToInt(s, 10)
	if err != nil {
		return 0, radixErrorf(opParseBase, err)
	}
	if v < MinBase || v > MaxBase {
		return 0, radixErrorf(opParseBase, fmt.Errorf("%d: %w", v, ErrBaseOutOfRange))
	}

	return int(v), nil
}

// CharToDigit returns the value of c in the given base.
//
// Errors:
//   - ErrBaseOutOfRange for an invalid base.
//   - ErrInvalidDigit when c is not a digit of base (lowercase letters included).
func CharToDigit(c byte, base int) (int, error) {
	if err := ValidateBase(base); err != nil {
		return 0, radixErrorf(opCharToDigit, err)
	}

	d := -1
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	}
	if d < 0 || d >= base {
		return 0, radixErrorf(opCharToDigit, fmt.Errorf("%q in base %d: %w", c, base, ErrInvalidDigit))
	}

	return d, nil
}

// DigitToChar returns the character for digit value d (0 <= d < base).
func DigitToChar(d, base int) (byte, error) {
	if err := ValidateBase(base); err != nil {
		return 0, radixErrorf(opDigitToChar, err)
	}
	if d < 0 || d >= base {
		return 0, radixErrorf(opDigitToChar, fmt.Errorf("%d in base %d: %w", d, base, ErrInvalidDigit))
	}
	if d < 10 {
		return byte('0' + d), nil
	}

	return byte('A' + d - 10), nil
}

// StringToInt parses s as a numeral in the given base.
//
// Implementation:
//   - Each digit is folded in as r = r*base + sign*digit, so negative values
//     accumulate downward and math.MinInt64 itself is representable.
//
// Errors:
//   - ErrBaseOutOfRange, ErrInvalidDigit (including "" and "-"),
//     softnum.ErrArithmeticOverflow when the value does not fit in int64.
func StringToInt(s string, base int) (int64, error) {
	if err := ValidateBase(base); err != nil {
		return 0, radixErrorf(opStringToInt, err)
	}

	digits, sign := s, int64(1)
	if len(digits) > 0 && digits[0] == '-' {
		digits, sign = digits[1:], -1
	}
	if digits == "" {
		return 0, radixErrorf(opStringToInt, fmt.Errorf("%q: %w", s, ErrInvalidDigit))
	}

	b := softnum.New(int64(base))
	acc := softnum.New(int64(0))
	for i := 0; i < len(digits); i++ {
		d, err := CharToDigit(digits[i], base)
		if err != nil {
			return 0, radixErrorf(opStringToInt, err)
		}
		if acc, err = acc.MulAdd(b, softnum.New(sign*int64(d))); err != nil {
			return 0, radixErrorf(opStringToInt, fmt.Errorf("%q: %w", s, err))
		}
	}

	return acc.Value(), nil
}

// IntToString renders n in the given base. Zero renders as "0"; negative
// values get a leading '-'. Exact for math.MinInt64.
func IntToString(n int64, base int) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", radixErrorf(opIntToString, err)
	}
	if n == 0 {
		return "0", nil
	}

	// 64 binary digits plus a sign.
	var buf [65]byte
	pos := len(buf)
	b := int64(base)
	for neg := n < 0; n != 0; n /= b {
		r := n % b
		if neg {
			r = -r
		}
		c, err := DigitToChar(int(r), base)
		if err != nil {
			return "", radixErrorf(opIntToString, err)
		}
		pos--
		buf[pos] = c
		if n/b == 0 && neg {
			pos--
			buf[pos] = '-'
		}
	}

	return string(buf[pos:]), nil
}

// Convert re-renders value from base `from` into base `to`.
func Convert(value string, from, to int) (string, error) {
	n, err := StringToInt(value, from)
	if err != nil {
		return "", radixErrorf(opConvert, err)
	}
	out, err := IntToString(n, to)
	if err != nil {
		return "", radixErrorf(opConvert, err)
	}

	return out, nil
}
