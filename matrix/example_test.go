// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lw/matrix"
)

// ExampleDense_InvertedMatrix multiplies a matrix by its inverse, rounds the
// float product and narrows it to int before printing.
func ExampleDense_InvertedMatrix() {
	a := matrix.MustFromRows([][]float64{
		{1, 10, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	inv, err := a.InvertedMatrix()
	if err != nil {
		fmt.Println(err)
		return
	}
	prod, _ := a.Mul(inv)
	ints, _ := matrix.Cast[int](prod.Apply(math.Round))

	fmt.Print(ints.Stringify(1))
	// Output:
	// 1 0 0
	// 0 1 0
	// 0 0 1
}

// ExampleDense_Determinant shows both determinant algorithms.
func ExampleDense_Determinant() {
	a := matrix.MustFromRows([][]int{
		{1, 10, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	det, _ := a.Determinant()
	perm, _ := a.DeterminantByPermutation()
	fmt.Println(det, perm)
	// Output:
	// 48 48
}

// ExampleDense_UpperTriangularForm reduces a rank-one matrix.
func ExampleDense_UpperTriangularForm() {
	a := matrix.MustFromRows([][]int{{1, 2}, {2, 4}})

	u, _ := a.UpperTriangularForm()
	fmt.Print(u)
	// Output:
	// [2, 4]
	// [0, 0]
}

// ExampleRow_Stringify renders a row right-justified.
func ExampleRow_Stringify() {
	r := matrix.Row[int]{7, -12, 300}
	fmt.Printf("%q\n", r.Stringify(4))
	// Output:
	// "   7  -12  300"
}
