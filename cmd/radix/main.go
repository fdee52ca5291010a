// SPDX-License-Identifier: MIT

// Command radix converts an integer between numeral systems.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lw/internal/cli"
	"github.com/katalvlaran/lw/radix"
)

const doc = `radix - convert an integer between numeral systems

Usage:
  radix <from base> <to base> <value>

The bases range from 2 to 36. Digits above 9 are written with the
uppercase letters A-Z (A = 10 ... Z = 35). The value may start with '-'.

Examples:
  radix 16 10 1F      prints 31
  radix 2 8 1010      prints 12
  radix 10 16 -255    prints -FF

Errors:
  A base outside 2..36, a character that is not a digit of the source
  base, a value that does not fit in a signed 64-bit integer or a wrong
  number of arguments prints ERROR and exits with code 1.

  radix -h | --help   prints this text.`

func newRootCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "radix <from> <to> <value>",
		Short: "Convert an integer between numeral systems",
		Long:  doc,
		Args:  cli.ArgCounts(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.HelpRequested(args) {
				return cli.PrintHelp(cmd)
			}
			from, err := radix.ParseBase(args[0])
			if err != nil {
				return err
			}
			to, err := radix.ParseBase(args[1])
			if err != nil {
				return err
			}
			out, err := radix.Convert(args[2], from, to)
			if err != nil {
				return err
			}
			env.Log.Debug().Int("from", from).Int("to", to).Str("value", args[2]).Msg("converted")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}

func main() {
	os.Exit(cli.Main(newRootCmd))
}
