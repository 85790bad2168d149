// Package config loads and saves carbonfocus settings from
// ~/.carbonfocus/config.yaml, with optional project-local overlays and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonfocus/internal/targets"
)

// Environment variables read by New.
const (
	EnvHome       = "CARBONFOCUS_HOME"
	EnvProjectDir = "CARBONFOCUS_PROJECT_DIR"
	EnvLogLevel   = "CARBONFOCUS_LOG_LEVEL"
	EnvOutput     = "CARBONFOCUS_OUTPUT"
)

const (
	configFileName = "config.yaml"
	maxPrecision   = 10
)

// Output formats accepted by output.default_format.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full settings file.
type Config struct {
	Output       OutputConfig       `yaml:"output"`
	Logging      LoggingConfig      `yaml:"logging"`
	Organization OrganizationConfig `yaml:"organization"`
	Targets      TargetsConfig      `yaml:"targets"`
	Session      SessionConfig      `yaml:"session"`
	Server       ServerConfig       `yaml:"server"`

	configPath string
}

// OutputConfig controls command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls zerolog setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// OrganizationConfig fills organization fields an activity file leaves out.
type OrganizationConfig struct {
	Name     string `yaml:"name,omitempty"`
	Industry string `yaml:"industry,omitempty"`
}

// TargetsConfig holds defaults for target projections.
type TargetsConfig struct {
	BaseYear            int     `yaml:"base_year"`
	TargetYear          int     `yaml:"target_year"`
	ReductionPercentage float64 `yaml:"reduction_percentage"`
	Framework           string  `yaml:"framework"`
	EndYear             int     `yaml:"end_year"`
}

// SessionConfig controls the snapshot session store.
type SessionConfig struct {
	Enabled    bool `yaml:"enabled"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// ServerConfig controls `carbonfocus serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings without reading any file.
func Default() *Config {
	return &Config{
		Output:  OutputConfig{DefaultFormat: FormatTable, Precision: 2},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Targets: TargetsConfig{
			BaseYear:            targets.DefaultBaseYear,
			TargetYear:          targets.MilestoneYear,
			ReductionPercentage: 42,
			Framework:           targets.FrameworkParis,
			EndYear:             targets.DefaultPathwayEndYear,
		},
		Session: SessionConfig{Enabled: true, TTLSeconds: 86400},
		Server:  ServerConfig{Addr: "127.0.0.1:8085"},
	}
}

// New returns the defaults overlaid with the config file, if one exists,
// and then with environment overrides.
func New() *Config {
	cfg := Default()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	if cfg.configPath != "" {
		if _, err := os.Stat(cfg.configPath); err == nil {
			_ = cfg.Load()
		}
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file Load and Save use.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Load overlays the config file onto c.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes c to its config path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate reports every semantic problem in c.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) { problems = append(problems, fmt.Sprintf(format, args...)) }

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		add("output.default_format %q must be one of table, json, ndjson", c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		add("output.precision %d must be between 0 and %d", c.Output.Precision, maxPrecision)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		add("logging.level %q is not a valid level", c.Logging.Level)
	}
	if c.Targets.TargetYear <= c.Targets.BaseYear {
		add("targets.target_year %d must be after targets.base_year %d", c.Targets.TargetYear, c.Targets.BaseYear)
	}
	if c.Targets.EndYear < c.Targets.BaseYear {
		add("targets.end_year %d must not be before targets.base_year %d", c.Targets.EndYear, c.Targets.BaseYear)
	}
	if p := c.Targets.ReductionPercentage; p < 0 || p > 100 {
		add("targets.reduction_percentage %g must be between 0 and 100", p)
	}
	if f := c.Targets.Framework; f != "" && !strings.EqualFold(f, targets.FrameworkCustom) {
		if _, err := targets.ParseFramework(f); err != nil {
			add("targets.framework %q is not a known framework", f)
		}
	}
	if c.Session.TTLSeconds < 0 {
		add("session.ttl_seconds %d must not be negative", c.Session.TTLSeconds)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		add("server.addr must not be empty")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
