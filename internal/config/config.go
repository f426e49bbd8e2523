// Package config holds the lvmatch CLI configuration: defaults, loading from
// flags/env/file through viper, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmatch/bipartite"
)

// EnvPrefix is the environment prefix; solver.max_size maps to LVMATCH_SOLVER_MAX_SIZE.
const EnvPrefix = "LVMATCH"

// Output formats for solve results
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the complete CLI configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Solver SolverConfig `mapstructure:"solver"`
	// Output selects the result format: "text" or "json".
	Output string `mapstructure:"output"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // text or json
}

// SolverConfig maps onto bipartite options.
type SolverConfig struct {
	Parallel bool `mapstructure:"parallel"`
	// MaxSize refuses inputs with max(rows, cols) above it (0 = unlimited).
	MaxSize int `mapstructure:"max_size"`
	// Verify re-checks the returned assignment and its cost.
	Verify bool `mapstructure:"verify"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "INFO",
			Format: "text",
		},
		Solver: SolverConfig{
			Parallel: false,
			MaxSize:  16,
			Verify:   false,
		},
		Output: OutputText,
	}
}

// SetDefaults registers Default() values on v so they are visible even
// without a config file.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("solver.parallel", defaults.Solver.Parallel)
	v.SetDefault("solver.max_size", defaults.Solver.MaxSize)
	v.SetDefault("solver.verify", defaults.Solver.Verify)

	v.SetDefault("output", defaults.Output)
}

// Init prepares v: defaults, environment binding and the optional config
// file. cfgFile, when set, must exist; otherwise lvmatch.yaml is searched in
// the working directory and $HOME/.config/lvmatch and may be absent.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("lvmatch")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/lvmatch")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return cfg, nil
}

// SolverOptions translates the solver section into bipartite options.
func (c *Config) SolverOptions() []bipartite.Option {
	return []bipartite.Option{
		bipartite.WithParallel(c.Solver.Parallel),
		bipartite.WithMaxSize(c.Solver.MaxSize),
	}
}
