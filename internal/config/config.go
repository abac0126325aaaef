// Package config loads vanitykey settings from an optional YAML file.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/vanitykey/pkg/keygen"
	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

// File mirrors the YAML configuration file.
type File struct {
	Target         string        `yaml:"target"`
	IgnoreCase     bool          `yaml:"ignore_case"`
	KeyType        string        `yaml:"key_type"`
	Workers        int           `yaml:"workers"`
	WorkersPerCPU  int           `yaml:"workers_per_cpu"`
	BatchSize      int           `yaml:"batch_size"`
	CheckInterval  int           `yaml:"check_interval"`
	ReportInterval time.Duration `yaml:"report_interval"`
	CI             *bool         `yaml:"ci"`
	OutDir         string        `yaml:"out_dir"`
	PrivateKeyFile string        `yaml:"private_key_file"`
	PublicKeyFile  string        `yaml:"public_key_file"`
	Comment        string        `yaml:"comment"`
	Force          bool          `yaml:"force"`
	Timeout        time.Duration `yaml:"timeout"`
	MetricsAddr    string        `yaml:"metrics_addr"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
}

// Default returns the settings used when no file is given.
func Default() File {
	search := vanity.DefaultSearchConfig()
	return File{
		KeyType:        keygen.Ed25519.String(),
		WorkersPerCPU:  search.WorkersPerCPU,
		BatchSize:      search.BatchSize,
		CheckInterval:  search.CheckInterval,
		ReportInterval: vanity.DefaultReportInterval,
		OutDir:         ".",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Search converts the file settings into an engine configuration.
func (f File) Search() vanity.SearchConfig {
	cfg := vanity.DefaultSearchConfig()
	cfg.Target = f.Target
	cfg.CaseSensitive = !f.IgnoreCase
	cfg.Workers = f.Workers
	if f.WorkersPerCPU != 0 {
		cfg.WorkersPerCPU = f.WorkersPerCPU
	}
	if f.BatchSize != 0 {
		cfg.BatchSize = f.BatchSize
	}
	if f.CheckInterval != 0 {
		cfg.CheckInterval = f.CheckInterval
	}
	cfg.Timeout = f.Timeout
	return cfg
}

// KeyTypeValue parses the configured key type.
func (f File) KeyTypeValue() (keygen.KeyType, error) {
	return keygen.ParseKeyType(f.KeyType)
}

// Validate reports configuration errors before any search starts.
func (f File) Validate() error {
	var errs []error
	if err := f.Search().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := f.KeyTypeValue(); err != nil {
		errs = append(errs, err)
	}
	if f.CheckInterval > f.BatchSize && f.BatchSize > 0 {
		errs = append(errs, fmt.Errorf("check_interval %d exceeds batch_size %d", f.CheckInterval, f.BatchSize))
	}
	if f.ReportInterval < 0 {
		errs = append(errs, fmt.Errorf("report_interval must not be negative, got %s", f.ReportInterval))
	}
	if _, err := ParseLevel(f.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(f.LogFormat) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", f.LogFormat))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// NewLogger builds the process logger writing to w's file descriptor.
func (f File) NewLogger(w *os.File) *slog.Logger {
	level, _ := ParseLevel(f.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(f.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
