// SPDX-License-Identifier: MIT

// Package config loads the mafx CLI settings.
//
// Sources, lowest to highest precedence:
//   - built-in defaults (Default),
//   - a YAML file (explicit --config path, else mafx.yaml in the working
//     directory or the user config directory),
//   - MAFX_* environment variables (MAFX_PRECISION, MAFX_LOG_LEVEL, ...),
//   - command-line flags bound through LoadOptions.Flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name.
	AppName = "mafx"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "mafx"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MAFX"
)

// Output formats.
const (
	FormatText  = "text"
	FormatLaTeX = "latex"
)

// Configuration keys; flags bound by LoadOptions.Flags use the same names
// with "_" replaced by "-".
const (
	KeyLogLevel   = "log_level"
	KeyPrecision  = "precision"
	KeyFormat     = "format"
	KeyEpsilon    = "epsilon"
	KeyRandomSeed = "random_seed"
	KeyRandomMin  = "random_min"
	KeyRandomMax  = "random_max"
)

// maxPrecision is the largest useful significant-digit count for float64.
const maxPrecision = 17

// maxRandomAbs bounds random_min and random_max: every integer up to 2^53 is
// exact in float64.
const maxRandomAbs = 1 << 53

var (
	// ErrInvalidConfig reports a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid value")
	// ErrConfigNotFound reports an explicit --config path that does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
)

// Config is the effective CLI configuration.
type Config struct {
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// Precision is the number of significant digits printed for
	// non-integral values; -1 prints the shortest round-trip form.
	Precision int `mapstructure:"precision" yaml:"precision"`
	// Format is the default output format: text or latex.
	Format string `mapstructure:"format" yaml:"format"`
	// Epsilon is the tolerance for rank, orthogonality and nilpotency.
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`
	// RandomSeed seeds `mafx random`; 0 seeds from the clock.
	RandomSeed int64 `mapstructure:"random_seed" yaml:"random_seed"`
	// RandomMin and RandomMax bound the integers drawn by `mafx random`.
	RandomMin int `mapstructure:"random_min" yaml:"random_min"`
	RandomMax int `mapstructure:"random_max" yaml:"random_max"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:   zerolog.LevelWarnValue,
		Precision:  -1,
		Format:     FormatText,
		Epsilon:    1e-9,
		RandomSeed: 0,
		RandomMin:  0,
		RandomMax:  9,
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config path; when set, it must exist.
	ConfigFile string
	// SearchDirs replaces the default search path (working directory, then
	// the user config directory) when ConfigFile is empty.
	SearchDirs []string
	// Flags, when non-nil, is consulted for changed flags named after the keys.
	Flags *pflag.FlagSet
}

// Load resolves the configuration and returns it with the path of the file
// that was read ("" when none was found).
//
// Errors: ErrConfigNotFound, ErrInvalidConfig, or a wrapped viper read error.
func Load(opts LoadOptions) (Config, string, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyPrecision, defaults.Precision)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeyEpsilon, defaults.Epsilon)
	v.SetDefault(KeyRandomSeed, defaults.RandomSeed)
	v.SetDefault(KeyRandomMin, defaults.RandomMin)
	v.SetDefault(KeyRandomMax, defaults.RandomMax)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return Config{}, "", err
		}
	}

	resolved, err := readConfigFile(v, opts)
	if err != nil {
		return Config{}, "", err
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err = cfg.Validate(); err != nil {
		return Config{}, "", err
	}

	return cfg, resolved, nil
}

// FlagName is the command-line flag bound to a configuration key.
func FlagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// bindFlags binds every key that has a matching flag in fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyLogLevel, KeyPrecision, KeyFormat, KeyEpsilon, KeyRandomSeed, KeyRandomMin, KeyRandomMax} {
		f := fs.Lookup(FlagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", f.Name, err)
		}
	}

	return nil
}

// readConfigFile loads the explicit file or the first mafx.yaml on the search path.
func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFile)
		}
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}

		return opts.ConfigFile, nil
	}

	dirs := opts.SearchDirs
	if dirs == nil {
		dirs = defaultSearchDirs()
	}
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileExt)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}

	return v.ConfigFileUsed(), nil
}

// defaultSearchDirs is the working directory followed by <user config dir>/mafx.
func defaultSearchDirs() []string {
	dirs := []string{"."}
	if base, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(base, AppName))
	}

	return dirs
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("%w: %s %q", ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}
	if c.Precision < -1 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: %s %d not in [-1,%d]", ErrInvalidConfig, KeyPrecision, c.Precision, maxPrecision)
	}
	if c.Format != FormatText && c.Format != FormatLaTeX {
		return fmt.Errorf("%w: %s %q (want %s or %s)", ErrInvalidConfig, KeyFormat, c.Format, FormatText, FormatLaTeX)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: %s %v", ErrInvalidConfig, KeyEpsilon, c.Epsilon)
	}
	if c.RandomMin < -maxRandomAbs || c.RandomMax > maxRandomAbs {
		return fmt.Errorf("%w: %s/%s [%d,%d] outside ±2^53", ErrInvalidConfig, KeyRandomMin, KeyRandomMax, c.RandomMin, c.RandomMax)
	}
	if c.RandomMin > c.RandomMax {
		return fmt.Errorf("%w: %s %d > %s %d", ErrInvalidConfig, KeyRandomMin, c.RandomMin, KeyRandomMax, c.RandomMax)
	}

	return nil
}

// YAML renders c in the config-file format.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return out, nil
}
