// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lw/matrix"
)

// --- ewDiv -------------------------------------------------------------------

func TestEwDiv_IntegerZeroRejected(t *testing.T) {
	t.Parallel()

	src := []int{4, 6}
	dst := []int{4, 6}
	err := matrix.EwDivForTest(dst, src, 0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)
	require.Equal(t, []int{4, 6}, dst, "dst must be untouched on error")
}

func TestEwDiv_FloatZeroFollowsIEEE(t *testing.T) {
	t.Parallel()

	dst := make([]float64, 3)
	require.NoError(t, matrix.EwDivForTest(dst, []float64{1, -1, 0}, 0))
	require.True(t, math.IsInf(dst[0], 1))
	require.True(t, math.IsInf(dst[1], -1))
	require.True(t, math.IsNaN(dst[2]))
}

func TestEwDiv_Truncates(t *testing.T) {
	t.Parallel()

	dst := make([]int, 3)
	require.NoError(t, matrix.EwDivForTest(dst, []int{7, -7, 5}, 2))
	require.Equal(t, []int{3, -3, 2}, dst)
}

// --- ewNeg -------------------------------------------------------------------

func TestEwNeg_AliasedInPlace(t *testing.T) {
	t.Parallel()

	buf := []int8{1, -2, 0}
	matrix.EwNegForTest(buf, buf)
	require.Equal(t, []int8{-1, 2, 0}, buf)
}

func TestEwNeg_UnsignedWraps(t *testing.T) {
	t.Parallel()

	buf := []uint8{1, 0}
	matrix.EwNegForTest(buf, buf)
	require.Equal(t, []uint8{255, 0}, buf)
}

// --- numeric helpers ---------------------------------------------------------

func TestIsIntegral(t *testing.T) {
	require.True(t, matrix.IsIntegralForTest[int]())
	require.True(t, matrix.IsIntegralForTest[uint16]())
	require.False(t, matrix.IsIntegralForTest[float32]())
	require.False(t, matrix.IsIntegralForTest[float64]())
}

func TestIsZero(t *testing.T) {
	require.True(t, matrix.IsZeroForTest(0, matrix.DefaultEpsilon))
	require.False(t, matrix.IsZeroForTest(1, 10), "integers ignore eps")
	require.True(t, matrix.IsZeroForTest(1e-12, matrix.DefaultEpsilon))
	require.True(t, matrix.IsZeroForTest(-1e-12, matrix.DefaultEpsilon))
	require.False(t, matrix.IsZeroForTest(1e-6, matrix.DefaultEpsilon))
	require.False(t, matrix.IsZeroForTest(1e-12, 0))
}
