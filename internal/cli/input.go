// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadLine returns the next line of r without its line terminator ("\n" or
// "\r\n"). A final line without a terminator is returned normally; ErrNoInput
// is returned only when r is exhausted before any byte of the line.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("cli: read line: %w", err)
	}
	if line == "" && err != nil {
		return "", ErrNoInput
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
