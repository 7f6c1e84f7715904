// ABOUTME: Configuration loading and parsing for roost-directory
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete roost-directory configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Journal   JournalConfig   `yaml:"journal"`
	Liveness  LivenessConfig  `yaml:"liveness"`
	Fanout    FanoutConfig    `yaml:"fanout"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig holds server address configuration
type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
}

// JournalConfig holds the dispatch journal configuration. An empty path
// disables journaling.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// LivenessConfig holds the silent-agent demotion timing
type LivenessConfig struct {
	Interval time.Duration `yaml:"-"`
	Grace    time.Duration `yaml:"-"`

	// Raw string values for YAML unmarshaling
	IntervalRaw string `yaml:"interval"`
	GraceRaw    string `yaml:"grace"`
}

// FanoutConfig holds subscriber delivery tuning
type FanoutConfig struct {
	// QueueCapacity bounds each subscriber's delivery queue.
	QueueCapacity int `yaml:"queue_capacity"`

	// RefreshInterval is the cadence of forced full snapshots on live
	// subscriptions.
	RefreshInterval    time.Duration `yaml:"-"`
	RefreshIntervalRaw string        `yaml:"refresh_interval"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryConfig holds OTLP trace export configuration
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	// Validate and apply defaults
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks the configuration and fills in defaults for anything
// unset. Returns an error describing the first invalid value encountered.
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		c.Server.GRPCAddr = ":50051"
	}

	if c.Liveness.Interval <= 0 {
		c.Liveness.Interval = 60 * time.Second
	}
	if c.Liveness.Grace <= 0 {
		c.Liveness.Grace = 90 * time.Second
	}
	if c.Liveness.Grace < c.Liveness.Interval {
		return fmt.Errorf("liveness.grace (%s) must be at least liveness.interval (%s)",
			c.Liveness.Grace, c.Liveness.Interval)
	}

	if c.Fanout.QueueCapacity < 0 {
		return fmt.Errorf("fanout.queue_capacity must not be negative")
	}
	if c.Fanout.QueueCapacity == 0 {
		c.Fanout.QueueCapacity = 10
	}
	if c.Fanout.RefreshInterval <= 0 {
		c.Fanout.RefreshInterval = 60 * time.Second
	}

	switch c.Logging.Level {
	case "":
		c.Logging.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "":
		c.Logging.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}

	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return fmt.Errorf("telemetry.endpoint is required when telemetry is enabled")
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Liveness.IntervalRaw != "" {
		cfg.Liveness.Interval, err = time.ParseDuration(cfg.Liveness.IntervalRaw)
		if err != nil {
			return fmt.Errorf("parsing liveness.interval %q: %w", cfg.Liveness.IntervalRaw, err)
		}
	}

	if cfg.Liveness.GraceRaw != "" {
		cfg.Liveness.Grace, err = time.ParseDuration(cfg.Liveness.GraceRaw)
		if err != nil {
			return fmt.Errorf("parsing liveness.grace %q: %w", cfg.Liveness.GraceRaw, err)
		}
	}

	if cfg.Fanout.RefreshIntervalRaw != "" {
		cfg.Fanout.RefreshInterval, err = time.ParseDuration(cfg.Fanout.RefreshIntervalRaw)
		if err != nil {
			return fmt.Errorf("parsing fanout.refresh_interval %q: %w", cfg.Fanout.RefreshIntervalRaw, err)
		}
	}

	return nil
}
