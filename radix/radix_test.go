// SPDX-License-Identifier: MIT

package radix_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lw/radix"
	"github.com/katalvlaran/lw/softnum"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		value    string
		from, to int
		want     string
	}{
		{"1F", 16, 10, "31"},
		{"1010", 2, 8, "12"},
		{"-255", 10, 16, "-FF"},
		{"0", 10, 2, "0"},
		{"-0", 10, 2, "0"},
		{"ZZ", 36, 10, "1295"},
		{"0007", 8, 2, "111"},
		{"9223372036854775807", 10, 16, "7FFFFFFFFFFFFFFF"},
		{"-9223372036854775808", 10, 16, "-8000000000000000"},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			got, err := radix.Convert(tc.value, tc.from, tc.to)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestStringToInt_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		base  int
		want  error
	}{
		{"empty", "", 10, radix.ErrInvalidDigit},
		{"sign only", "-", 10, radix.ErrInvalidDigit},
		{"digit too large", "19", 8, radix.ErrInvalidDigit},
		{"lowercase", "1f", 16, radix.ErrInvalidDigit},
		{"double sign", "--1", 10, radix.ErrInvalidDigit},
		{"plus sign", "+1", 10, radix.ErrInvalidDigit},
		{"base too small", "1", 1, radix.ErrBaseOutOfRange},
		{"base too large", "1", 37, radix.ErrBaseOutOfRange},
		{"overflow", "9223372036854775808", 10, softnum.ErrArithmeticOverflow},
		{"negative overflow", "-9223372036854775809", 10, softnum.ErrArithmeticOverflow},
		{"long binary", "1" + strings.Repeat("0", 63), 2, softnum.ErrArithmeticOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := radix.StringToInt(tc.value, tc.base)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestStringToInt_Extremes(t *testing.T) {
	v, err := radix.StringToInt("-"+"1"+strings.Repeat("0", 63), 2)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)

	s, err := radix.IntToString(math.MinInt64, 2)
	require.NoError(t, err)
	require.Equal(t, "-1"+strings.Repeat("0", 63), s)
}

func TestCharDigitMapping(t *testing.T) {
	for d := 0; d < radix.MaxBase; d++ {
		c, err := radix.DigitToChar(d, radix.MaxBase)
		require.NoError(t, err)
		back, err := radix.CharToDigit(c, radix.MaxBase)
		require.NoError(t, err)
		require.Equal(t, d, back)
	}

	_, err := radix.DigitToChar(10, 10)
	require.ErrorIs(t, err, radix.ErrInvalidDigit)
	_, err = radix.DigitToChar(-1, 10)
	require.ErrorIs(t, err, radix.ErrInvalidDigit)
	_, err = radix.CharToDigit('A', 10)
	require.ErrorIs(t, err, radix.ErrInvalidDigit)
	_, err = radix.CharToDigit('0', 40)
	require.ErrorIs(t, err, radix.ErrBaseOutOfRange)
}

func TestParseBase(t *testing.T) {
	b, err := radix.ParseBase("16")
	require.NoError(t, err)
	require.Equal(t, 16, b)

	for _, bad := range []string{"1", "37", "-2", "", "x", "99999999999999999999"} {
		_, err := radix.ParseBase(bad)
		require.Error(t, err, bad)
	}
	_, err = radix.ParseBase("37")
	require.ErrorIs(t, err, radix.ErrBaseOutOfRange)
}

func TestIntToString_MatchesStrconv(t *testing.T) {
	for base := radix.MinBase; base <= radix.MaxBase; base++ {
		for _, n := range []int64{0, 1, -1, 35, -36, 1 << 40, math.MaxInt64, math.MinInt64} {
			got, err := radix.IntToString(n, base)
			require.NoError(t, err)
			require.Equal(t, strings.ToUpper(strconv.FormatInt(n, base)), got, "n=%d base=%d", n, base)
		}
	}
}

func TestRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("StringToInt(IntToString(v, b), b) == v", prop.ForAll(
		func(v int64, base int) bool {
			s, err := radix.IntToString(v, base)
			if err != nil {
				return false
			}
			back, err := radix.StringToInt(s, base)
			return err == nil && back == v
		},
		gen.OneGenOf(gen.Int64(), gen.Int64Range(-1000, 1000), gen.Const(int64(math.MinInt64)), gen.Const(int64(math.MaxInt64))),
		gen.IntRange(radix.MinBase, radix.MaxBase),
	))

	properties.TestingRun(t)
}
