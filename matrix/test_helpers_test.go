// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lw/matrix"
)

// floatTol is the comparison tolerance for float64 round-trips in tests.
const floatTol = 1e-9

// smoke is the 3×3 fixture shared by the determinant and inverse tests (det = 48).
var smoke = [][]float64{
	{1, 10, 3},
	{4, 5, 6},
	{7, 8, 9},
}

// MustDense builds a matrix from a literal or fails the test.
func MustDense[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T matrix.Number](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// RandIntRows returns an r×c literal with entries in [-9, 9].
// Deterministic for a given seed.
func RandIntRows(r, c int, seed int64) [][]int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			out[i][j] = int64(rng.Intn(19) - 9)
		}
	}

	return out
}

// approxDiff reports a go-cmp diff of two float matrices under floatTol.
func approxDiff(want, got *matrix.Dense[float64]) string {
	return cmp.Diff(want.ToRows(), got.ToRows(), cmpopts.EquateApprox(0, floatTol))
}
