// SPDX-License-Identifier: MIT

// Package softnum provides overflow-checked integer arithmetic.
//
// Every operation pre-checks the result against the representable range of
// the wrapped type and returns ErrArithmeticOverflow instead of wrapping
// around. The package is generic over all Go integer kinds (signed and
// unsigned, any width).
//
// Two surfaces are offered:
//   - free functions Add/Sub/Mul/Div/Neg on raw values, returning (T, error);
//   - the immutable value type Number[T], whose methods delegate to them.
//
// Complexity: every operation is O(1) and allocation-free.
package softnum

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of element types softnum can wrap.
type Integer interface {
	constraints.Integer
}

// Signed reports whether T is a signed integer type.
func Signed[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Max returns the largest value representable by T.
func Max[T Integer]() T {
	var zero T
	if !Signed[T]() {
		return ^zero
	}
	bits := unsafe.Sizeof(zero) * 8

	return T(1)<<(bits-1) - 1
}

// Min returns the smallest value representable by T (zero for unsigned T).
func Min[T Integer]() T {
	var zero T
	if !Signed[T]() {
		return zero
	}

	return -Max[T]() - 1
}

// Add returns a+b or ErrArithmeticOverflow when the sum leaves T's range.
//
// Overflow condition: b>0 ∧ a>max−b, or b<0 ∧ a<min−b.
func Add[T Integer](a, b T) (T, error) {
	if (b > 0 && a > Max[T]()-b) || (b < 0 && a < Min[T]()-b) {
		return 0, softnumErrorf(opAdd, a, b, ErrArithmeticOverflow)
	}

	return a + b, nil
}

// Sub returns a−b or ErrArithmeticOverflow.
//
// The result equals Add(a, −b) whenever −b is representable. The bounds are
// checked directly against min+b / max+b so that b == Min[T]() and unsigned
// operands never need negation.
func Sub[T Integer](a, b T) (T, error) {
	if (b < 0 && a > Max[T]()+b) || (b > 0 && a < Min[T]()+b) {
		return 0, softnumErrorf(opSub, a, b, ErrArithmeticOverflow)
	}

	return a - b, nil
}

// Mul returns a*b or ErrArithmeticOverflow.
//
// Implementation:
//   - Stage 1: pick the sign quadrant of (a, b).
//   - Stage 2: compare against max/b or min/b (min/a) before multiplying.
func Mul[T Integer](a, b T) (T, error) {
	hi, lo := Max[T](), Min[T]()
	if (a < 0 && b < 0 && a < hi/b) ||
		(a < 0 && b > 0 && a < lo/b) ||
		(a > 0 && b < 0 && b < lo/a) ||
		(a > 0 && b > 0 && a > hi/b) {
		return 0, softnumErrorf(opMul, a, b, ErrArithmeticOverflow)
	}

	return a * b, nil
}

// Div returns the truncated quotient a/b.
// Errors: ErrDivisionByZero for b == 0; ErrArithmeticOverflow for min/−1.
func Div[T Integer](a, b T) (T, error) {
	var zero T
	if b == zero {
		return 0, softnumErrorf(opDiv, a, b, ErrDivisionByZero)
	}
	if Signed[T]() && a == Min[T]() && b == zero-1 {
		return 0, softnumErrorf(opDiv, a, b, ErrArithmeticOverflow)
	}

	return a / b, nil
}

// Neg returns −a. It behaves as Mul(a, −1): min overflows for signed T and
// every non-zero value overflows for unsigned T.
func Neg[T Integer](a T) (T, error) {
	var zero T
	if Signed[T]() {
		if a == Min[T]() {
			return 0, softnumErrorf(opNeg, a, zero, ErrArithmeticOverflow)
		}
		return -a, nil
	}
	if a != zero {
		return 0, softnumErrorf(opNeg, a, zero, ErrArithmeticOverflow)
	}

	return zero, nil
}

// Number is an immutable checked integer. Each operation yields a new Number.
// The zero value is a valid Number holding 0.
type Number[T Integer] struct {
	v T
}

// New wraps v.
func New[T Integer](v T) Number[T] { return Number[T]{v: v} }

// Value unwraps the underlying integer for use in ordinary expressions.
func (n Number[T]) Value() T { return n.v }

// String implements fmt.Stringer.
func (n Number[T]) String() string { return fmt.Sprint(n.v) }

// Add returns n+o.
func (n Number[T]) Add(o Number[T]) (Number[T], error) { return lift(Add(n.v, o.v)) }

// Sub returns n−o.
func (n Number[T]) Sub(o Number[T]) (Number[T], error) { return lift(Sub(n.v, o.v)) }

// Mul returns n*o.
func (n Number[T]) Mul(o Number[T]) (Number[T], error) { return lift(Mul(n.v, o.v)) }

// Div returns n/o.
func (n Number[T]) Div(o Number[T]) (Number[T], error) { return lift(Div(n.v, o.v)) }

// Neg returns −n.
func (n Number[T]) Neg() (Number[T], error) { return lift(Neg(n.v)) }

// MulAdd returns n*m + a, the accumulation step of positional numerals.
func (n Number[T]) MulAdd(m, a Number[T]) (Number[T], error) {
	p, err := n.Mul(m)
	if err != nil {
		return Number[T]{}, err
	}

	return p.Add(a)
}

// lift wraps a raw (value, error) pair into a Number.
func lift[T Integer](v T, err error) (Number[T], error) {
	if err != nil {
		return Number[T]{}, err
	}

	return Number[T]{v: v}, nil
}
