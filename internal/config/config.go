// Package config loads the settings of the patterns runner.
//
// Precedence, lowest to highest:
//   - built-in defaults
//   - a YAML file (optional, unknown keys are rejected)
//   - environment variables (PATTERNS_*), including those loaded from a .env file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvName         = "PATTERNS_ENV"
	EnvLogLevel     = "PATTERNS_LOG_LEVEL"
	EnvLogFormat    = "PATTERNS_LOG_FORMAT"
	EnvLogFile      = "PATTERNS_LOG_FILE"
	EnvLatencyScale = "PATTERNS_LATENCY_SCALE"
)

// DotEnvFile is read (when present) before environment overrides are applied.
const DotEnvFile = ".env"

// Config holds the runner settings.
type Config struct {
	Env          string  `yaml:"env"`
	LogLevel     string  `yaml:"log_level"`
	LogFormat    string  `yaml:"log_format"`
	LogFile      string  `yaml:"log_file"`
	LatencyScale float64 `yaml:"latency_scale"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Env:          "local",
		LogLevel:     "info",
		LogFormat:    "text",
		LogFile:      "app.log",
		LatencyScale: 1,
	}
}

// InvalidValueError reports a setting that failed validation.
type InvalidValueError struct {
	Key    string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	return "config: invalid " + e.Key + " " + strconv.Quote(e.Value) + ": " + e.Reason
}

// Load builds a Config from defaults, the optional YAML file at path and the environment.
// An empty path skips the file.
func Load(path string) (Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if strings.TrimSpace(path) != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if math.IsNaN(c.LatencyScale) || math.IsInf(c.LatencyScale, 0) {
		return InvalidValueError{
			Key:    "latency_scale",
			Value:  strconv.FormatFloat(c.LatencyScale, 'f', -1, 64),
			Reason: "must be a finite number",
		}
	}
	if c.LatencyScale < 0 {
		return InvalidValueError{
			Key:    "latency_scale",
			Value:  strconv.FormatFloat(c.LatencyScale, 'f', -1, 64),
			Reason: "must be >= 0",
		}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return InvalidValueError{Key: "log_format", Value: c.LogFormat, Reason: "must be text or json"}
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return InvalidValueError{Key: "log_level", Value: c.LogLevel, Reason: "unknown level"}
	}
	if strings.TrimSpace(c.LogFile) == "" {
		return InvalidValueError{Key: "log_file", Value: c.LogFile, Reason: "must not be empty"}
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	// godotenv.Load never overrides variables that are already set.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

func mergeFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Env = getenv(EnvName, cfg.Env)
	cfg.LogLevel = getenv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getenv(EnvLogFormat, cfg.LogFormat)
	cfg.LogFile = getenv(EnvLogFile, cfg.LogFile)

	scale, err := getenvFloat(EnvLatencyScale, cfg.LatencyScale)
	if err != nil {
		return err
	}
	cfg.LatencyScale = scale
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvFloat(k string, def float64) (float64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, InvalidValueError{Key: k, Value: v, Reason: "not a number"}
	}
	return f, nil
}
