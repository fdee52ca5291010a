// SPDX-License-Identifier: MIT

// Command replace substitutes every occurrence of a string in a text.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lw/internal/cli"
	"github.com/katalvlaran/lw/textreplace"
)

const doc = `replace - replace every occurrence of a string

Usage:
  replace <input file> <output file> <search string> <replace string>
  replace

Modes:
  File:  reads <input file>, replaces every occurrence of <search string>
         with <replace string> and writes the result to <output file>.
  Stdin: with no arguments standard input is read as
           <search string>
           <replace string>
           <text...>
         and the replaced text is written to standard output.

Occurrences are matched left to right without overlap; replaced text is
not searched again. An empty search string leaves the text unchanged.

Errors:
  File mode: a wrong number of arguments, an unreadable input file or an
  unwritable output file prints ERROR and exits with code 1.
  Stdin mode: missing search string, replace string or text prints ERROR
  and exits with code 0.

  replace -h | --help   prints this text.`

func newRootCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "replace [<in> <out> <search> <replace>]",
		Short: "Replace every occurrence of a string",
		Long:  doc,
		Args:  cli.ArgCounts(0, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.HelpRequested(args) {
				return cli.PrintHelp(cmd)
			}
			if len(args) == 4 {
				return replaceFiles(env, args[0], args[1], args[2], args[3])
			}

			return cli.StdinFailure(replaceStdin(env, cmd))
		},
	}
}

func replaceFiles(env *cli.Env, inPath, outPath, search, repl string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	lines, err := textreplace.Copy(in, out, search, repl)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("replace %s -> %s: %w", inPath, outPath, err)
	}
	env.Log.Debug().Int("lines", lines).Str("out", outPath).Msg("replaced")

	return nil
}

func replaceStdin(env *cli.Env, cmd *cobra.Command) error {
	r := bufio.NewReader(cmd.InOrStdin())
	search, err := cli.ReadLine(r)
	if err != nil {
		return err
	}
	repl, err := cli.ReadLine(r)
	if err != nil {
		return err
	}

	lines, err := textreplace.Copy(r, cmd.OutOrStdout(), search, repl)
	if err != nil {
		return err
	}
	if lines == 0 {
		return cli.ErrNoInput
	}
	env.Log.Debug().Int("lines", lines).Msg("replaced")

	return nil
}

func main() {
	os.Exit(cli.Main(newRootCmd))
}
