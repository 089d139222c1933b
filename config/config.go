// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the graphmetrics command,
// backed by viper: defaults, an optional config file, GRAPHMETRICS_*
// environment variables and bound command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood by Config.
const (
	KeyInputPath          = "input.path"
	KeyInputDedupe        = "input.dedupe"
	KeyInputSkipMalformed = "input.skip_malformed"
	KeyPercentiles        = "metrics.percentiles"
	KeySubsample          = "metrics.subsample"
	KeySeed               = "metrics.seed"
	KeyLogLevel           = "logging.level"
	KeyProgressEvery      = "logging.progress_every"

	envPrefix = "GRAPHMETRICS"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config manages run configuration using viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyInputPath, "")
	v.SetDefault(KeyInputDedupe, true)
	v.SetDefault(KeyInputSkipMalformed, false)

	v.SetDefault(KeyPercentiles, []float64{0, 25, 50, 75, 100})
	v.SetDefault(KeySubsample, 1.0)
	v.SetDefault(KeySeed, int64(1))

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyProgressEvery, int64(500_000))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a YAML, JSON or TOML file into the configuration.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// BindFlag makes flag override key when the flag was set on the command line.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("%w: no flag for %s", ErrInvalidConfig, key)
	}

	return c.v.BindPFlag(key, flag)
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) InputPath() string    { return c.v.GetString(KeyInputPath) }
func (c *Config) Dedupe() bool         { return c.v.GetBool(KeyInputDedupe) }
func (c *Config) SkipMalformed() bool  { return c.v.GetBool(KeyInputSkipMalformed) }
func (c *Config) Subsample() float64   { return c.v.GetFloat64(KeySubsample) }
func (c *Config) Seed() int64          { return c.v.GetInt64(KeySeed) }
func (c *Config) LogLevel() string     { return c.v.GetString(KeyLogLevel) }
func (c *Config) ProgressEvery() int64 { return c.v.GetInt64(KeyProgressEvery) }

// Percentiles returns the requested percentiles. Values from a flag or an
// environment variable arrive as a comma-separated string.
func (c *Config) Percentiles() ([]float64, error) {
	raw := c.v.Get(KeyPercentiles)
	switch val := raw.(type) {
	case []float64:
		return val, nil
	case string:
		return parsePercentiles(val)
	case []string:
		return parsePercentiles(strings.Join(val, ","))
	case []any:
		out := make([]float64, 0, len(val))
		for _, x := range val {
			f, err := toFloat(x)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s has type %T", ErrInvalidConfig, KeyPercentiles, raw)
	}
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	ps, err := c.Percentiles()
	if err != nil {
		return err
	}
	if len(ps) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyPercentiles)
	}
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return fmt.Errorf("%w: percentile %v outside [0,100]", ErrInvalidConfig, p)
		}
	}
	if m := c.Subsample(); !(m >= 1) {
		return fmt.Errorf("%w: %s=%v, want >= 1", ErrInvalidConfig, KeySubsample, m)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err)
	}

	return nil
}

// Logger creates a console zerolog logger writing to w at the configured
// level. An unparsable level falls back to info.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "graphmetrics").Logger()
}
