// SPDX-License-Identifier: MIT

// Command bin2dec prints the decimal value of a binary number.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lw/bin2dec"
	"github.com/katalvlaran/lw/internal/cli"
)

const doc = `bin2dec - convert a binary number to decimal

Usage:
  bin2dec <binary number>
  bin2dec

Modes:
  Arguments: the binary number is given as the only argument.
  Stdin:     with no arguments the first line of standard input is read.

The number consists of the digits 0 and 1 and must fit in 32 bits
(leading zeros are allowed).

Errors:
  Arguments mode: a wrong number of arguments or an invalid number prints
  ERROR and exits with code 1.
  Stdin mode: missing input or an invalid number prints ERROR and exits
  with code 0.

  bin2dec -h | --help   prints this text.`

func newRootCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "bin2dec [binary]",
		Short: "Convert a binary number to decimal",
		Long:  doc,
		Args:  cli.ArgCounts(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.HelpRequested(args) {
				return cli.PrintHelp(cmd)
			}
			if len(args) == 1 {
				return convert(cmd, args[0])
			}

			line, err := cli.ReadLine(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return cli.StdinFailure(err)
			}
			env.Log.Debug().Str("input", line).Msg("read stdin")

			return cli.StdinFailure(convert(cmd, line))
		},
	}
}

func convert(cmd *cobra.Command, s string) error {
	v, err := bin2dec.Parse(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

	return err
}

func main() {
	os.Exit(cli.Main(newRootCmd))
}
