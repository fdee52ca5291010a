// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrArgCount is returned when a tool receives a positional argument
	// count it has no mode for.
	ErrArgCount = errors.New("cli: invalid number of arguments")

	// ErrBadConfig is returned by LoadConfig for out-of-range settings.
	ErrBadConfig = errors.New("cli: invalid configuration")

	// ErrNoInput is returned when stdin ends before the required input.
	ErrNoInput = errors.New("cli: incomplete input")
)

// ExitError carries the process exit code a failure maps to. Failures that
// are not ExitErrors exit with 1.
type ExitError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *ExitError) Error() string { return fmt.Sprintf("exit %d: %v", e.Code, e.Err) }

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ExitError) Unwrap() error { return e.Err }

// StdinFailure marks err as a failure of interactive (stdin) input, which
// reports ERROR but exits with 0.
func StdinFailure(err error) error {
	if err == nil {
		return nil
	}

	return &ExitError{Code: 0, Err: err}
}

// exitCode resolves the exit code for err: 0 for nil, the ExitError code
// when one is in the chain, 1 otherwise.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	return 1
}
