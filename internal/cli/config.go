// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lw/matrix"
)

// EnvPrefix is prepended to every environment key, e.g. LW_PRECISION.
const EnvPrefix = "LW"

// Configuration keys and documented defaults.
const (
	KeyLogLevel    = "log_level"
	KeyMatrixOrder = "matrix_order"
	KeyPrecision   = "precision"
	KeyEpsilon     = "epsilon"

	DefaultLogLevel    = "warn"
	DefaultMatrixOrder = 3
	DefaultPrecision   = 3
)

// Config is the resolved front-end configuration.
type Config struct {
	LogLevel    string  `mapstructure:"log_level"`
	MatrixOrder int     `mapstructure:"matrix_order"`
	Precision   int     `mapstructure:"precision"`
	Epsilon     float64 `mapstructure:"epsilon"`
}

// DefaultConfig returns the configuration used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		MatrixOrder: DefaultMatrixOrder,
		Precision:   DefaultPrecision,
		Epsilon:     matrix.DefaultEpsilon,
	}
}

// LoadConfig resolves Config from LW_* environment variables on top of the
// defaults.
func LoadConfig() (Config, error) {
	return loadConfig(viper.New())
}

func loadConfig(v *viper.Viper) (Config, error) {
	def := DefaultConfig()
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyMatrixOrder, def.MatrixOrder)
	v.SetDefault(KeyPrecision, def.Precision)
	v.SetDefault(KeyEpsilon, def.Epsilon)
	for _, key := range []string{KeyLogLevel, KeyMatrixOrder, KeyPrecision, KeyEpsilon} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("cli: bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrBadConfig, c.LogLevel)
	}
	if c.MatrixOrder <= 0 {
		return fmt.Errorf("%w: matrix order %d must be > 0", ErrBadConfig, c.MatrixOrder)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: precision %d must be >= 0", ErrBadConfig, c.Precision)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon %v must be finite and >= 0", ErrBadConfig, c.Epsilon)
	}

	return nil
}
