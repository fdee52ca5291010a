// SPDX-License-Identifier: MIT

// Command invert prints the inverse of a square matrix.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lw/internal/cli"
	"github.com/katalvlaran/lw/internal/matrixio"
	"github.com/katalvlaran/lw/matrix"
)

const doc = `invert - invert a square matrix

Usage:
  invert <matrix file>
  invert

Modes:
  File:  the matrix is read from <matrix file>.
  Stdin: with no arguments the matrix is read from standard input.

A matrix is written one row per line, elements separated by spaces or
tabs; empty lines are ignored but a line of only spaces is a short row.
Elements are decimal numbers; nan, inf and hexadecimal floats are malformed.
The order defaults to 3 (LW_MATRIX_ORDER).
The inverse is computed as adj(A)/det(A) and printed one row per line with
3 decimal places (LW_PRECISION). A matrix whose |det| does not exceed
LW_EPSILON (default 1e-9) is singular.

Errors:
  File mode: a wrong number of arguments, a missing file, a malformed or a
  singular matrix prints ERROR and exits with code 1.
  Stdin mode: a missing, malformed or singular matrix prints ERROR and
  exits with code 0.

  invert -h | --help   prints this text.`

func newRootCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "invert [file]",
		Short: "Invert a square matrix",
		Long:  doc,
		Args:  cli.ArgCounts(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.HelpRequested(args) {
				return cli.PrintHelp(cmd)
			}
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				return invert(env, f, cmd.OutOrStdout())
			}

			return cli.StdinFailure(invert(env, cmd.InOrStdin(), cmd.OutOrStdout()))
		},
	}
}

func invert(env *cli.Env, in io.Reader, out io.Writer) error {
	order := env.Config.MatrixOrder
	m, err := matrixio.Read(bufio.NewReader(in), order, order)
	if err != nil {
		return err
	}
	inv, err := m.InvertedMatrix(matrix.WithEpsilon(env.Config.Epsilon))
	if err != nil {
		return err
	}
	env.Log.Debug().Int("order", order).Msg("inverted")

	return matrixio.Write(out, inv, env.Config.Precision)
}

func main() {
	os.Exit(cli.Main(newRootCmd))
}
