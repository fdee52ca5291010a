// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lw/internal/cli"
)

var errBoom = errors.New("boom")

// echoTool prints its arguments, fails with errBoom on "fail" and with a
// stdin failure on "stdin-fail".
func echoTool(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:  "echo",
		Long: "echo documentation",
		Args: cli.ArgCounts(0, 1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cli.HelpRequested(args) {
				return cli.PrintHelp(cmd)
			}
			switch strings.Join(args, " ") {
			case "fail":
				return errBoom
			case "stdin-fail":
				return cli.StdinFailure(errBoom)
			}
			env.Log.Info().Msg("echo")
			_, err := cmd.OutOrStdout().Write([]byte(strings.Join(args, ",") + "\n"))
			return err
		},
	}
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errw bytes.Buffer
	cfg := cli.DefaultConfig()
	cfg.LogLevel = "debug"
	code = cli.Run(echoTool, cfg, args, strings.NewReader(""), &out, &errw)

	return code, out.String(), errw.String()
}

func TestRun_Success(t *testing.T) {
	code, out, _ := run(t, "-255", "x")
	require.Zero(t, code)
	require.Equal(t, "-255,x\n", out, "dash-prefixed positionals are not flags")
}

func TestRun_Failures(t *testing.T) {
	code, out, logs := run(t, "fail")
	require.Equal(t, 1, code)
	require.Equal(t, "ERROR\n", out)
	require.Contains(t, logs, "command failed")
	require.Contains(t, logs, "boom")

	code, out, _ = run(t, "stdin-fail")
	require.Zero(t, code)
	require.Equal(t, "ERROR\n", out)

	code, out, _ = run(t, "a", "b", "c")
	require.Equal(t, 1, code)
	require.Equal(t, "ERROR\n", out)
}

func TestRun_HelpAnywhere(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"a", "b", "c", "--help"}, {"x", "-h"}} {
		code, out, _ := run(t, args...)
		require.Zero(t, code, args)
		require.Equal(t, "echo documentation\n", out, args)
	}
}

func TestExitError(t *testing.T) {
	err := cli.StdinFailure(errBoom)
	require.ErrorIs(t, err, errBoom)

	var ee *cli.ExitError
	require.ErrorAs(t, err, &ee)
	require.Zero(t, ee.Code)
	require.Contains(t, err.Error(), "boom")

	require.NoError(t, cli.StdinFailure(nil))
}

func TestArgCounts(t *testing.T) {
	check := cli.ArgCounts(0, 2)
	require.NoError(t, check(nil, nil))
	require.NoError(t, check(nil, []string{"a", "b"}))
	require.ErrorIs(t, check(nil, []string{"a"}), cli.ErrArgCount)
	require.NoError(t, check(nil, []string{"a", "--help"}))
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := cli.NewLogger(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.NotContains(t, buf.String(), "\x1b[", "no colour for non-terminals")
}

func TestRun_NilArgsIsStdinMode(t *testing.T) {
	var out, errw bytes.Buffer
	code := cli.Run(echoTool, cli.DefaultConfig(), nil, strings.NewReader(""), &out, &errw)
	require.Zero(t, code)
	require.Equal(t, "\n", out.String())
}
