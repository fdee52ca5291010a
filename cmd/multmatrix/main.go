// SPDX-License-Identifier: MIT

// Command multmatrix prints the product of two square matrices.
package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lw/internal/cli"
	"github.com/katalvlaran/lw/internal/matrixio"
	"github.com/katalvlaran/lw/matrix"
)

const doc = `multmatrix - multiply two square matrices

Usage:
  multmatrix <matrix file 1> <matrix file 2>
  multmatrix

Modes:
  Files: each file holds one matrix.
  Stdin: with no arguments both matrices are read from standard input,
         one after the other.

A matrix is written one row per line, elements separated by spaces or
tabs; empty lines are ignored but a line of only spaces is a short row.
Elements are decimal numbers; nan, inf and hexadecimal floats are malformed.
The order defaults to 3 (LW_MATRIX_ORDER).
The product is printed one row per line with 3 decimal places
(LW_PRECISION).

Errors:
  File mode: a wrong number of arguments, a missing file or a malformed
  matrix prints ERROR and exits with code 1.
  Stdin mode: a missing or malformed matrix prints ERROR and exits with
  code 0.

  multmatrix -h | --help   prints this text.`

func newRootCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "multmatrix [<file1> <file2>]",
		Short: "Multiply two square matrices",
		Long:  doc,
		Args:  cli.ArgCounts(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.HelpRequested(args) {
				return cli.PrintHelp(cmd)
			}
			order := env.Config.MatrixOrder

			if len(args) == 2 {
				a, err := readFile(args[0], order)
				if err != nil {
					return err
				}
				b, err := readFile(args[1], order)
				if err != nil {
					return err
				}
				return multiply(env, cmd, a, b)
			}

			r := bufio.NewReader(cmd.InOrStdin())
			a, err := matrixio.Read(r, order, order)
			if err != nil {
				return cli.StdinFailure(err)
			}
			b, err := matrixio.Read(r, order, order)
			if err != nil {
				return cli.StdinFailure(err)
			}

			return cli.StdinFailure(multiply(env, cmd, a, b))
		},
	}
}

func multiply(env *cli.Env, cmd *cobra.Command, a, b *matrix.Dense[float64]) error {
	p, err := a.Mul(b)
	if err != nil {
		return err
	}
	env.Log.Debug().Int("order", p.Rows()).Msg("multiplied")

	return matrixio.Write(cmd.OutOrStdout(), p, env.Config.Precision)
}

func readFile(path string, order int) (*matrix.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return matrixio.Read(bufio.NewReader(f), order, order)
}

func main() {
	os.Exit(cli.Main(newRootCmd))
}
