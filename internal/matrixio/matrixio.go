// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as whitespace-separated text,
// one row per line.
package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lw/matrix"
)

// Shape errors wrap matrix.ErrDimensionMismatch so callers can match either.
var (
	ErrTooFewLines     = fmt.Errorf("matrixio: too few lines: %w", matrix.ErrDimensionMismatch)
	ErrTooFewElements  = fmt.Errorf("matrixio: too few elements in row: %w", matrix.ErrDimensionMismatch)
	ErrTooManyElements = fmt.Errorf("matrixio: too many elements in row: %w", matrix.ErrDimensionMismatch)

	// ErrBadNumber is returned for a token that is not a finite decimal
	// number. Hexadecimal floats, "nan" and "inf" are rejected.
	ErrBadNumber = errors.New("matrixio: malformed number")
)

// Read parses a rows×cols matrix from r. Empty lines are skipped and do not
// count as rows; a line holding only whitespace is a row with no elements.
// Reading stops right after the last row, so several matrices can be read
// back to back from the same reader.
func Read(r *bufio.Reader, rows, cols int) (*matrix.Dense[float64], error) {
	m, err := matrix.New[float64](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	for i := 0; i < rows; {
		line, rerr := r.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return nil, fmt.Errorf("matrixio: row %d: %w", i, rerr)
		}
		if strings.TrimRight(line, "\r\n") == "" {
			if rerr != nil {
				return nil, fmt.Errorf("matrixio: %d of %d rows: %w", i, rows, ErrTooFewLines)
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > cols {
			return nil, fmt.Errorf("matrixio: row %d has %d elements for %d: %w", i, len(fields), cols, ErrTooManyElements)
		}
		if len(fields) < cols {
			return nil, fmt.Errorf("matrixio: row %d has %d elements for %d: %w", i, len(fields), cols, ErrTooFewElements)
		}
		for j, tok := range fields {
			v, perr := parseDecimal(tok)
			if perr != nil {
				return nil, fmt.Errorf("matrixio: row %d column %d %q: %w", i, j, tok, ErrBadNumber)
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("matrixio: %w", err)
			}
		}
		i++
	}

	return m, nil
}

// parseDecimal accepts only [+-]digits[.digits][e[+-]digits] spellings that
// parse to a finite float64.
func parseDecimal(tok string) (float64, error) {
	if strings.IndexFunc(tok, notDecimalRune) >= 0 {
		return 0, ErrBadNumber
	}

	// Overflow to ±Inf reports strconv.ErrRange.
	return strconv.ParseFloat(tok, 64)
}

func notDecimalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		return false
	}

	return true
}

// Write prints m row by row: each element formatted with precision decimal
// places, separated by a single space, every row terminated by '\n'.
// Negative zero prints as zero.
func Write[T matrix.Number](w io.Writer, m *matrix.Dense[T], precision int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, row := range m.ToRows() {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			f := float64(v)
			if f == 0 {
				f = 0
			}
			bw.WriteString(strconv.FormatFloat(f, 'f', precision, 64))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}

	return nil
}
