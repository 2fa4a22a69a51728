package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Interface modes.
const (
	UITerminal = "terminal"
	UIPlain    = "plain"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// UI selects the full-screen terminal or plain line-based console.
	UI string `yaml:"ui"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// LogFile receives log output. Empty means stderr in plain mode and
	// nowhere in terminal mode, where the screen owns the terminal.
	LogFile string `yaml:"log_file"`

	// Telemetry enables OTLP trace export.
	Telemetry bool `yaml:"telemetry"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		UI:        UITerminal,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig reads the YAML file at path, if path is non-empty, over the
// defaults and then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from environment variables that are set.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("DUNGEONCRAWL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid DUNGEONCRAWL_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	if v := getenv("DUNGEONCRAWL_UI"); v != "" {
		c.UI = strings.ToLower(v)
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := getenv("DUNGEONCRAWL_TELEMETRY"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DUNGEONCRAWL_TELEMETRY %q: %w", v, err)
		}
		c.Telemetry = enabled
	}
	return nil
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	switch c.UI {
	case UITerminal, UIPlain:
	default:
		return fmt.Errorf("unknown ui %q (want %q or %q)", c.UI, UITerminal, UIPlain)
	}
	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.New("log_format must be text or json")
	}
	return nil
}
