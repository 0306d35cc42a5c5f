package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/statementlab/internal/model"
)

// FileName is the project config file written by init.
const FileName = "statementlab.yaml"

// Config represents the top-level statementlab.yaml configuration.
type Config struct {
	Catalog    CatalogConfig    `yaml:"catalog"`
	Zones      ZonesConfig      `yaml:"zones"`
	Session    SessionConfig    `yaml:"session"`
	Log        LogConfig        `yaml:"log"`
	AttemptLog AttemptLogConfig `yaml:"attempt_log"`
}

// CatalogConfig locates the chart of accounts. An empty path uses the
// built-in chart.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ZonesConfig locates an optional zones.yaml override.
type ZonesConfig struct {
	Path string `yaml:"path,omitempty"`
}

// SessionConfig controls how drills start.
type SessionConfig struct {
	DefaultStatement string `yaml:"default_statement"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AttemptLogConfig controls the CSV record of placement attempts.
type AttemptLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a statementlab.yaml file from disk. Relative paths inside it are
// resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config that uses the built-in chart and zones.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			DefaultStatement: string(model.BalanceSheet),
		},
		Log: LogConfig{
			Level: "info",
		},
		AttemptLog: AttemptLogConfig{
			Enabled: false,
			Path:    filepath.Join("logs", "attempts.csv"),
		},
	}
}

// Validate checks values that would otherwise fail later at first use.
func (c *Config) Validate() error {
	if _, err := model.ParseStatementType(c.Session.DefaultStatement); err != nil {
		return fmt.Errorf("session.default_statement: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	if c.AttemptLog.Enabled && c.AttemptLog.Path == "" {
		return fmt.Errorf("attempt_log.path: required when attempt_log.enabled is true")
	}
	return nil
}

// DefaultStatement returns the parsed session.default_statement.
func (c *Config) DefaultStatement() model.StatementType {
	st, err := model.ParseStatementType(c.Session.DefaultStatement)
	if err != nil {
		return model.BalanceSheet
	}
	return st
}

func (c *Config) resolve(dir string) {
	for _, p := range []*string{&c.Catalog.Path, &c.Zones.Path, &c.AttemptLog.Path} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}
