// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lw/internal/cli"
)

func runBin2Dec(stdin string, args ...string) (int, string) {
	var out, errw bytes.Buffer
	code := cli.Run(newRootCmd, cli.DefaultConfig(), args, strings.NewReader(stdin), &out, &errw)

	return code, out.String()
}

func TestBin2DecArguments(t *testing.T) {
	code, out := runBin2Dec("", "1010")
	require.Zero(t, code)
	require.Equal(t, "10\n", out)

	code, out = runBin2Dec("", "102")
	require.Equal(t, 1, code)
	require.Equal(t, "ERROR\n", out)

	code, out = runBin2Dec("", "1", "0")
	require.Equal(t, 1, code)
	require.Equal(t, "ERROR\n", out)

	code, out = runBin2Dec("", "1"+strings.Repeat("0", 32))
	require.Equal(t, 1, code)
	require.Equal(t, "ERROR\n", out)
}

func TestBin2DecStdin(t *testing.T) {
	code, out := runBin2Dec("11111111\nignored\n")
	require.Zero(t, code)
	require.Equal(t, "255\n", out)

	code, out = runBin2Dec("12\n")
	require.Zero(t, code)
	require.Equal(t, "ERROR\n", out)

	code, out = runBin2Dec("")
	require.Zero(t, code)
	require.Equal(t, "ERROR\n", out)
}

func TestBin2DecHelp(t *testing.T) {
	code, out := runBin2Dec("", "-h")
	require.Zero(t, code)
	require.Contains(t, out, "bin2dec <binary number>")
}
