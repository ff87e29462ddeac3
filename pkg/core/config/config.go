// File: config.go
// Title: Application Configuration
// Description: Loads the chrono tool configuration from a TOML or YAML file,
//              applies defaults, .env files and CHRONO_* environment
//              overrides, and turns the settings into chrono formats, a log
//              level and a clock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-19
//
// Change History:
// - 2025-12-06 v0.1.0: TOML configuration with defaults and environment expansion
// - 2026-10-19 v0.2.0: Output and clock sections, YAML files, afero, cleanenv

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/msto63/chrono/foundation/chrono"
	chronoerr "github.com/msto63/chrono/foundation/core/error"
	"github.com/msto63/chrono/foundation/core/log"
	"github.com/msto63/chrono/foundation/utils/timex"
)

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = "CHRONO_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Clock   ClockConfig   `toml:"clock" yaml:"clock"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name" env:"CHRONO_NAME"`
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"CHRONO_LOG_LEVEL"`
	LogFormat string `toml:"log_format" yaml:"log_format" env:"CHRONO_LOG_FORMAT"`
}

// OutputConfig controls how values are printed
type OutputConfig struct {
	DateFormat  string `toml:"date_format" yaml:"date_format" env:"CHRONO_DATE_FORMAT"`
	SpanFormat  string `toml:"span_format" yaml:"span_format" env:"CHRONO_SPAN_FORMAT"`
	FullSeconds bool   `toml:"full_seconds" yaml:"full_seconds" env:"CHRONO_FULL_SECONDS"`
	WithOffset  bool   `toml:"with_offset" yaml:"with_offset" env:"CHRONO_WITH_OFFSET"`
}

// ClockConfig selects the clock behind "now"
type ClockConfig struct {
	// Offset overrides the local offset, e.g. "+02:00"
	Offset string `toml:"offset" yaml:"offset" env:"CHRONO_CLOCK_OFFSET"`
	// Zone takes the local offset from an IANA zone, e.g. "Europe/Berlin"
	Zone string `toml:"zone" yaml:"zone" env:"CHRONO_CLOCK_ZONE"`
	// Exact reads the clock at full resolution by default
	Exact bool `toml:"exact" yaml:"exact" env:"CHRONO_CLOCK_EXACT"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "chrono"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.Output.DateFormat == "" {
		c.Output.DateFormat = chrono.DateAndTime.String()
	}
	if c.Output.SpanFormat == "" {
		c.Output.SpanFormat = chrono.SpanNormal.String()
	}
}

func configError(code chronoerr.Code, err error, format string, args ...interface{}) *chronoerr.Error {
	msg := fmt.Sprintf(format, args...)
	var e *chronoerr.Error
	if err != nil {
		e = chronoerr.Wrap(err, msg)
	} else {
		e = chronoerr.New(msg)
	}
	return e.WithCode(code).WithOperation("config.Load")
}

// Load reads the configuration file at path from fs. Unset values fall back
// to the defaults, CHRONO_* variables override the file.
func Load(fs afero.Fs, path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, configError(chronoerr.CodeMissingConfig, err, "config file not found: %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, configError(chronoerr.CodeInvalidConfig, err, "failed to parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, configError(chronoerr.CodeInvalidConfig, err, "failed to parse %s", path)
		}
	default:
		return nil, configError(chronoerr.CodeInvalidConfig, nil, "unsupported config file type %q", ext)
	}

	return finish(&cfg)
}

// LoadFromEnv loads the file named by CHRONO_CONFIG or the first file found
// in the default locations. Without any file the defaults are used.
func LoadFromEnv(fs afero.Fs) (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(fs, path)
	}

	for _, p := range DefaultPaths() {
		if ok, _ := afero.Exists(fs, p); ok {
			return Load(fs, p)
		}
	}

	return finish(&Config{})
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{"./chrono.toml", "./chrono.yaml", "./chrono.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "chrono", "config.toml"),
			filepath.Join(home, ".config", "chrono", "config.yaml"))
	}
	return paths
}

func finish(cfg *Config) (*Config, error) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, configError(chronoerr.CodeEnvironmentError, err, "failed to read environment overrides")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv sets the variables of a .env file that are not set yet.
// A missing file is not an error.
func LoadDotEnv(fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return configError(chronoerr.CodeEnvironmentError, err, "failed to open %s", path)
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return configError(chronoerr.CodeEnvironmentError, err, "failed to parse %s", path)
	}
	for k, v := range vars {
		if _, exists := os.LookupEnv(k); !exists {
			os.Setenv(k, v)
		}
	}
	return nil
}

// Validate checks that every setting names something that exists
func (c *Config) Validate() error {
	var problems []string
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level: %q", c.General.LogLevel))
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_format: %q", c.General.LogFormat))
	}
	if _, err := chrono.ParseDateTimeFormat(c.Output.DateFormat); err != nil {
		problems = append(problems, fmt.Sprintf("output.date_format: %q", c.Output.DateFormat))
	}
	if _, err := chrono.ParseTimeSpanFormat(c.Output.SpanFormat); err != nil {
		problems = append(problems, fmt.Sprintf("output.span_format: %q", c.Output.SpanFormat))
	}
	if c.Clock.Offset != "" && c.Clock.Zone != "" {
		problems = append(problems, "clock: offset and zone are exclusive")
	}
	if c.Clock.Offset != "" {
		if _, err := timex.ParseOffset(c.Clock.Offset); err != nil {
			problems = append(problems, fmt.Sprintf("clock.offset: %q", c.Clock.Offset))
		}
	}
	if c.Clock.Zone != "" {
		if _, err := timex.NewZoneClock(c.Clock.Zone); err != nil {
			problems = append(problems, fmt.Sprintf("clock.zone: %q", c.Clock.Zone))
		}
	}

	if len(problems) > 0 {
		return chronoerr.New("invalid configuration: "+strings.Join(problems, "; ")).
			WithCode(chronoerr.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("problems", problems)
	}
	return nil
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.General.LogLevel)
	return level
}

// LogFormat returns the configured log format
func (c *Config) LogFormat() log.Format {
	format, _ := log.ParseFormat(c.General.LogFormat)
	return format
}

// DateTimeFormat returns the configured date format
func (c *Config) DateTimeFormat() chrono.DateTimeFormat {
	f, _ := chrono.ParseDateTimeFormat(c.Output.DateFormat)
	return f
}

// TimeSpanFormat returns the configured span format
func (c *Config) TimeSpanFormat() chrono.TimeSpanFormat {
	f, _ := chrono.ParseTimeSpanFormat(c.Output.SpanFormat)
	return f
}

// FormatOptions returns the DateTime format options of the output section
func (c *Config) FormatOptions() []chrono.FormatOption {
	var opts []chrono.FormatOption
	if c.Output.FullSeconds {
		opts = append(opts, chrono.NoMilliseconds())
	}
	if c.Output.WithOffset {
		opts = append(opts, chrono.WithOffset())
	}
	return opts
}

// FormatDateTime renders d with the output settings
func (c *Config) FormatDateTime(d chrono.DateTime) string {
	return d.Format(c.DateTimeFormat(), c.FormatOptions()...)
}

// FormatTimeSpan renders s with the output settings
func (c *Config) FormatTimeSpan(s chrono.TimeSpan) string {
	return s.Format(c.TimeSpanFormat(), c.Output.FullSeconds)
}

// NewClock builds the clock described by the clock section
func (c *Config) NewClock() (chrono.Clock, error) {
	switch {
	case c.Clock.Zone != "":
		zc, err := timex.NewZoneClock(c.Clock.Zone)
		if err != nil {
			return nil, err
		}
		return zc, nil
	case c.Clock.Offset != "":
		offset, err := timex.ParseOffset(c.Clock.Offset)
		if err != nil {
			return nil, err
		}
		return timex.OffsetClock{Clock: timex.SystemClock{}, Offset: offset}, nil
	default:
		return timex.SystemClock{}, nil
	}
}
