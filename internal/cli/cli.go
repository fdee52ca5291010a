// SPDX-License-Identifier: MIT

// Package cli holds the plumbing shared by the command-line tools: the
// ERROR/exit-code contract, environment configuration, logging and the
// help convention.
//
// Contract:
//   - Success prints the result and exits 0.
//   - Any failure prints exactly "ERROR" on stdout. The exit code is 1,
//     unless the failure came from stdin input (StdinFailure), which exits 0.
//   - "-h" or "--help" anywhere on the command line prints the tool's
//     documentation and exits 0.
//   - The failure cause is logged on stderr at debug level.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errorMessage is the only user-facing failure output.
const errorMessage = "ERROR"

// Env is what a tool's command builder receives.
type Env struct {
	Config Config
	Log    zerolog.Logger
}

// Builder constructs a tool's root command.
type Builder func(env *Env) *cobra.Command

// Main runs the tool against the process streams and returns its exit code.
func Main(build Builder) int {
	cfg, err := LoadConfig()
	if err != nil {
		log := NewLogger(os.Stderr, DefaultLogLevel)
		return report(os.Stdout, log, err)
	}

	return Run(build, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command built by build with the given arguments and
// streams, prints ERROR on failure and returns the exit code.
func Run(build Builder, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &Env{Config: cfg, Log: NewLogger(stderr, cfg.LogLevel)}

	cmd := build(env)
	// cobra falls back to os.Args for nil args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	// Positional values such as "-255" must reach the tool untouched.
	cmd.DisableFlagParsing = true
	cmd.CompletionOptions.DisableDefaultCmd = true

	return report(stdout, env.Log, cmd.Execute())
}

// report prints ERROR for a non-nil err and maps it to an exit code.
func report(stdout io.Writer, log zerolog.Logger, err error) int {
	if err == nil {
		return 0
	}
	code := exitCode(err)
	log.Debug().Err(err).Int("exit", code).Msg("command failed")
	fmt.Fprintln(stdout, errorMessage)

	return code
}

// HelpRequested reports whether "-h" or "--help" appears anywhere in args.
func HelpRequested(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}

	return false
}

// PrintHelp writes the command's long documentation to its output stream.
func PrintHelp(cmd *cobra.Command) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)

	return err
}

// ArgCounts accepts any of the listed positional argument counts, and any
// arguments at all when help is requested.
func ArgCounts(counts ...int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if HelpRequested(args) {
			return nil
		}
		for _, n := range counts {
			if len(args) == n {
				return nil
			}
		}

		return fmt.Errorf("%w: got %d, want one of %v", ErrArgCount, len(args), counts)
	}
}
