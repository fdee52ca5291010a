// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ctxRow is the error tag for Row methods.
const ctxRow = "Row"

// Row is a fixed-length ordered sequence of elements. Rows returned by
// Dense.Row share storage with their matrix: in-place operations on such a
// row mutate the owning matrix, and the row's length never changes.
//
// Row supports the same arithmetic as Dense at one dimension lower, plus
// unary negation and width-padded rendering.
type Row[T Number] []T

// Len returns the number of elements.
func (r Row[T]) Len() int { return len(r) }

// Clone returns an independent copy.
func (r Row[T]) Clone() Row[T] {
	cp := make(Row[T], len(r))
	copy(cp, r)

	return cp
}

// Add returns r + o. Errors: ErrDimensionMismatch on length mismatch.
func (r Row[T]) Add(o Row[T]) (Row[T], error) {
	if err := validateLen(r, o); err != nil {
		return nil, matrixErrorf(ctxRow+"."+opAdd, err)
	}
	out := make(Row[T], len(r))
	ewAdd(out, r, o)

	return out, nil
}

// AddInPlace performs r += o.
func (r Row[T]) AddInPlace(o Row[T]) error {
	if err := validateLen(r, o); err != nil {
		return matrixErrorf(ctxRow+"."+opAdd, err)
	}
	ewAdd(r, r, o)

	return nil
}

// Sub returns r - o.
func (r Row[T]) Sub(o Row[T]) (Row[T], error) {
	if err := validateLen(r, o); err != nil {
		return nil, matrixErrorf(ctxRow+"."+opSub, err)
	}
	out := make(Row[T], len(r))
	ewSub(out, r, o)

	return out, nil
}

// SubInPlace performs r -= o.
func (r Row[T]) SubInPlace(o Row[T]) error {
	if err := validateLen(r, o); err != nil {
		return matrixErrorf(ctxRow+"."+opSub, err)
	}
	ewSub(r, r, o)

	return nil
}

// Scale returns r * alpha.
func (r Row[T]) Scale(alpha T) Row[T] {
	out := make(Row[T], len(r))
	ewScale(out, r, alpha)

	return out
}

// ScaleInPlace performs r *= alpha.
func (r Row[T]) ScaleInPlace(alpha T) { ewScale(r, r, alpha) }

// Div returns r / d. Errors: ErrDivisionByZero for integer T and d == 0.
func (r Row[T]) Div(d T) (Row[T], error) {
	out := make(Row[T], len(r))
	if err := ewDiv(out, r, d); err != nil {
		return nil, matrixErrorf(ctxRow+"."+opDiv, err)
	}

	return out, nil
}

// DivInPlace performs r /= d. On error r is left untouched.
func (r Row[T]) DivInPlace(d T) error {
	if err := ewDiv(r, r, d); err != nil {
		return matrixErrorf(ctxRow+"."+opDiv, err)
	}

	return nil
}

// Neg returns -r.
func (r Row[T]) Neg() Row[T] {
	out := make(Row[T], len(r))
	ewNeg(out, r)

	return out
}

// Stringify renders the row with every element right-justified to
// columnWidth characters, separated by a single space. Elements wider than
// columnWidth are printed in full.
func (r Row[T]) Stringify(columnWidth int) string {
	var b strings.Builder
	r.writeTo(&b, columnWidth)

	return b.String()
}

// writeTo appends the padded rendering of r to b.
func (r Row[T]) writeTo(b *strings.Builder, columnWidth int) {
	for j, v := range r {
		if j > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(b, "%*v", columnWidth, v)
	}
}
