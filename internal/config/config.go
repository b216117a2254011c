// Package config loads service settings: built-in defaults, then an
// optional YAML file, then .env and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"blox/pkg/log"
)

// DefaultPath is used when neither an explicit path nor BLOX_CONFIG is set.
const DefaultPath = "config/blox.yaml"

// Config holds all application configuration.
type Config struct {
	Port      string    `yaml:"port"`
	LogLevel  log.Level `yaml:"log_level"`
	LogFormat string    `yaml:"log_format"`
	StaticDir string    `yaml:"static_dir"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Editor    Editor    `yaml:"editor"`
	Embed     Embed     `yaml:"embed"`
}

// RateLimit bounds embed submissions per client IP.
type RateLimit struct {
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

// Editor configures the editor page.
type Editor struct {
	Title          string `yaml:"title"`
	ScriptSrc      string `yaml:"script_src"`
	HTMXSrc        string `yaml:"htmx_src"`
	InitialContent string `yaml:"initial_content"`
}

// Embed configures markup generation.
type Embed struct {
	// StrictLinkedIn rejects LinkedIn URLs without a ugcPost id instead
	// of rendering an iframe with an empty one.
	StrictLinkedIn bool `yaml:"linkedin_strict"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Port:      "3000",
		LogLevel:  log.Info,
		LogFormat: "json",
		StaticDir: "./static",
		RateLimit: RateLimit{PerMinute: 30, Burst: 10},
		Editor: Editor{
			Title:          "Blox Editor",
			ScriptSrc:      "https://cdn.jsdelivr.net/npm/hugerte@1/hugerte.min.js",
			HTMXSrc:        "https://unpkg.com/htmx.org@1.9.12",
			InitialContent: "<p>Hello World!</p>",
		},
	}
}

// Load builds the configuration. path may be empty, in which case
// BLOX_CONFIG or DefaultPath is tried; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("BLOX_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	if err := cfg.readFile(path, explicit); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("LOG_LEVEL %q: %w", v, err)
		}
		c.LogLevel = lvl
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("EDITOR_SCRIPT_SRC"); v != "" {
		c.Editor.ScriptSrc = v
	}
	if err := envInt("RATE_LIMIT_PER_MINUTE", &c.RateLimit.PerMinute); err != nil {
		return err
	}
	if err := envInt("RATE_LIMIT_BURST", &c.RateLimit.Burst); err != nil {
		return err
	}
	if v := os.Getenv("LINKEDIN_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LINKEDIN_STRICT %q: %w", v, err)
		}
		c.Embed.StrictLinkedIn = strict
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

// Validate checks the configuration values are usable.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port %q must be a number between 1 and 65535", c.Port)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format %q must be json or console", c.LogFormat)
	}
	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be positive, got %d", c.RateLimit.PerMinute)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be positive, got %d", c.RateLimit.Burst)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
