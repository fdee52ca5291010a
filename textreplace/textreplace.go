// SPDX-License-Identifier: MIT

// Package textreplace performs line-oriented substring replacement over
// streams.
package textreplace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReplaceString replaces every non-overlapping occurrence of search in s
// with repl, scanning left to right. Replaced text is never rescanned.
// An empty search leaves s unchanged.
func ReplaceString(s, search, repl string) string {
	if search == "" {
		return s
	}

	return strings.ReplaceAll(s, search, repl)
}

// Copy reads r line by line, applies ReplaceString to each line and writes
// it to w terminated by '\n' (a missing final newline is added). It returns
// the number of lines written; zero lines means r was empty.
//
// Lines may be arbitrarily long. A trailing '\r' is kept as line content.
func Copy(r io.Reader, w io.Writer, search, repl string) (lines int, err error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, rerr := br.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return lines, fmt.Errorf("textreplace: read line %d: %w", lines+1, rerr)
		}
		if line == "" && rerr != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		if _, err = bw.WriteString(ReplaceString(line, search, repl)); err != nil {
			return lines, fmt.Errorf("textreplace: write line %d: %w", lines+1, err)
		}
		if err = bw.WriteByte('\n'); err != nil {
			return lines, fmt.Errorf("textreplace: write line %d: %w", lines+1, err)
		}
		lines++
		if rerr != nil {
			break
		}
	}

	if err = bw.Flush(); err != nil {
		return lines, fmt.Errorf("textreplace: flush: %w", err)
	}

	return lines, nil
}
