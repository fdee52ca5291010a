// SPDX-License-Identifier: MIT

package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lw/internal/cli"
	"github.com/katalvlaran/lw/matrix"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cli.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, cli.Config{
		LogLevel:    "warn",
		MatrixOrder: 3,
		Precision:   3,
		Epsilon:     matrix.DefaultEpsilon,
	}, cfg)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LW_LOG_LEVEL", "debug")
	t.Setenv("LW_MATRIX_ORDER", "4")
	t.Setenv("LW_PRECISION", "5")
	t.Setenv("LW_EPSILON", "0.001")

	cfg, err := cli.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 4, cfg.MatrixOrder)
	require.Equal(t, 5, cfg.Precision)
	require.Equal(t, 0.001, cfg.Epsilon)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"LW_MATRIX_ORDER": "0",
		"LW_PRECISION":    "-1",
		"LW_EPSILON":      "-0.5",
		"LW_LOG_LEVEL":    "loud",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := cli.LoadConfig()
			require.ErrorIs(t, err, cli.ErrBadConfig)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("LW_MATRIX_ORDER", "three")
		_, err := cli.LoadConfig()
		require.ErrorIs(t, err, cli.ErrBadConfig)
	})
}
