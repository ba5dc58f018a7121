package main

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/arith"
)

// Config holds settings for the command line tool. Values come from the
// defaults, then a config file, then flags.
type Config struct {
	// Prec is the precision of float calculations in bits.
	Prec uint `toml:"prec" yaml:"prec"`
	// MaxDepth limits paren nesting. Zero means no limit.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	// Format is the printf format for results.
	Format string `toml:"format" yaml:"format"`
	// Echo prints the expression tree before each result.
	Echo bool `toml:"echo" yaml:"echo"`
	// Jobs is the number of expressions evaluated concurrently in a batch.
	Jobs int `toml:"jobs" yaml:"jobs"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// NoColor disables colored error output.
	NoColor bool `toml:"no_color" yaml:"no_color"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Prec:     arith.DefaultPrec,
		Format:   "%v",
		Jobs:     1,
		LogLevel: "warn",
	}
}

// LoadConfig reads a config file on top of the defaults. The format is
// chosen by the file extension: .toml, .yaml, or .yml. Environment
// variables in the path are expanded.
func LoadConfig(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file type %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Prec > big.MaxPrec {
		return fmt.Errorf("precision %d exceeds maximum %d", c.Prec, uint(big.MaxPrec))
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, not %d", c.Jobs)
	}
	if c.Format == "" {
		return fmt.Errorf("format must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the log level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

// Override copies each setting whose flag was set on the command line from
// flags into c.
func (c *Config) Override(fs *pflag.FlagSet, flags *Config) {
	if fs.Changed("prec") {
		c.Prec = flags.Prec
	}
	if fs.Changed("max-depth") {
		c.MaxDepth = flags.MaxDepth
	}
	if fs.Changed("fmt") {
		c.Format = flags.Format
	}
	if fs.Changed("echo") {
		c.Echo = flags.Echo
	}
	if fs.Changed("jobs") {
		c.Jobs = flags.Jobs
	}
	if fs.Changed("log-level") {
		c.LogLevel = flags.LogLevel
	}
	if fs.Changed("no-color") {
		c.NoColor = flags.NoColor
	}
}

// addFlags registers the config flags on fs, storing values into c.
func (c *Config) addFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.UintVarP(&c.Prec, "prec", "p", d.Prec, "precision of float calculations in bits")
	fs.IntVar(&c.MaxDepth, "max-depth", d.MaxDepth, "maximum paren nesting depth (0 for no limit)")
	fs.StringVar(&c.Format, "fmt", d.Format, "result formatting string")
	fs.BoolVar(&c.Echo, "echo", d.Echo, "print expression trees")
	fs.IntVar(&c.Jobs, "jobs", d.Jobs, "number of expressions to evaluate concurrently")
	fs.StringVar(&c.LogLevel, "log-level", d.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.NoColor, "no-color", d.NoColor, "disable colored output")
}
