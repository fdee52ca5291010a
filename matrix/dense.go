// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors
//     instead of panicking.
//   - Fix dimensions at construction; no operation ever reshapes a Dense in place.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Row: O(1); Clone/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRowAt = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of element type T.
//   - r,c hold dimensions (rows, cols), fixed for the lifetime of the value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Pure operations (Add, Mul, Transposed, ...) return new values; the
// *InPlace variants mutate only the receiver.
type Dense[T Number] struct {
	r, c int // row and column counts (>0 for public constructors; 0 allowed for internal minors)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newZeroOK is an internal constructor that allows rows==0 or cols==0.
// Used by MinorMatrix on 1×N / N×1 inputs.
func newZeroOK[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// FromRows builds a matrix from a nested literal, inferring the shape.
//
// Errors:
//   - ErrBadShape when the literal is empty or its first row is empty.
//   - ErrDimensionMismatch when a later row differs in length from the first.
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrBadShape)
	}

	return NewShaped(len(rows), len(rows[0]), rows)
}

// NewShaped builds a rows×cols matrix from a nested literal whose shape must
// match exactly.
//
// Errors:
//   - ErrInvalidDimensions for non-positive rows/cols.
//   - ErrDimensionMismatch when the literal has a different row count or
//     any row has a different length.
//   - ErrNaNInf when a floating element is NaN or ±Inf.
func NewShaped[T Number](rows, cols int, literal [][]T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf("NewShaped", err)
	}
	if len(literal) != rows {
		return nil, matrixErrorf("NewShaped", fmt.Errorf("%d literal rows for %d: %w", len(literal), rows, ErrDimensionMismatch))
	}
	for i, row := range literal {
		if len(row) != cols {
			return nil, matrixErrorf("NewShaped", fmt.Errorf("row %d has %d elements for %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, matrixErrorf("NewShaped", fmt.Errorf("element (%d,%d): %w", i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// MustFromRows is FromRows for literals known to be well-formed (tests,
// examples, package-level fixtures). It panics on a malformed literal.
func MustFromRows[T Number](rows [][]T) *Dense[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// At returns the value at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	if err := validateIndex(m, row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrNaNInf for a non-finite v.
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err := validateIndex(m, row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns row i as a view sharing storage with m. The view's capacity is
// clipped so that appending to it can never overwrite the next row.
func (m *Dense[T]) Row(i int) (Row[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(ctxRowAt, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowAt, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return Row[T](m.data[lo:hi:hi]), nil
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and identical elements.
// A nil o is never equal.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if o.data[k] != v {
			return false
		}
	}

	return true
}

// Apply returns a new matrix with fn applied to every element in row-major
// order, e.g. m.Apply(math.Round) before narrowing with Cast.
func (m *Dense[T]) Apply(fn func(T) T) *Dense[T] {
	res := newZeroOK[T](m.r, m.c)
	for k, v := range m.data {
		res.data[k] = fn(v)
	}

	return res
}

// ToRows returns a fresh nested copy of the elements.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders "[a, b]\n[c, d]\n" for diagnostics.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Stringify renders the matrix row by row: each element right-justified to
// columnWidth characters, elements separated by one space, every row
// terminated by '\n'.
func (m *Dense[T]) Stringify(columnWidth int) string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		Row[T](m.data[i*m.c:(i+1)*m.c]).writeTo(&b, columnWidth)
		b.WriteByte('\n')
	}

	return b.String()
}

// Cast converts every element to TT using Go's conversion rules (floating
// to integer truncates toward zero). It is the explicit replacement for an
// implicit converting constructor.
func Cast[TT, T Number](m *Dense[T]) (*Dense[TT], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Cast", err)
	}
	out := &Dense[TT]{r: m.r, c: m.c, data: make([]TT, len(m.data))}
	for k, v := range m.data {
		out.data[k] = TT(v)
	}

	return out, nil
}
