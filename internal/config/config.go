package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = "8000"
	defaultCORSOrigins = "http://localhost:3000,http://localhost:8000"
	defaultServiceURL  = "http://localhost:8000"
)

// Server holds HTTP listener settings
type Server struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	GinMode         string        `yaml:"gin_mode"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"`
}

// Client holds settings for callers of the intelligence API
type Client struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RequestsPerSec int           `yaml:"requests_per_sec"`
}

// Config holds all application configuration
type Config struct {
	Server    Server `yaml:"server"`
	Client    Client `yaml:"client"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // console or json
}

// Addr is the listen address for the HTTP server.
func (s Server) Addr() string {
	return s.Host + ":" + s.Port
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: Server{
			Port:            defaultPort,
			CORSOrigins:     ParseCSV(defaultCORSOrigins),
			GinMode:         "release",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MetricsEnabled:  true,
		},
		Client: Client{
			BaseURL:        defaultServiceURL,
			RequestTimeout: 5 * time.Second,
			RequestsPerSec: 5,
		},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load initializes configuration from defaults, an optional YAML file named by
// CONFIG_FILE and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnvWithDefault("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvWithDefault("PORT", cfg.Server.Port)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = ParseCSV(origins)
	}
	cfg.Server.GinMode = getEnvWithDefault("GIN_MODE", cfg.Server.GinMode)
	cfg.Server.ReadTimeout = getEnvSecondsWithDefault("READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvSecondsWithDefault("WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.IdleTimeout = getEnvSecondsWithDefault("IDLE_TIMEOUT", cfg.Server.IdleTimeout)
	cfg.Server.ShutdownTimeout = getEnvSecondsWithDefault("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)
	cfg.Server.MetricsEnabled = getEnvBoolWithDefault("METRICS_ENABLED", cfg.Server.MetricsEnabled)

	cfg.Client.BaseURL = getEnvWithDefault("INTELLIGENCE_URL", cfg.Client.BaseURL)
	cfg.Client.RequestTimeout = getEnvSecondsWithDefault("REQUEST_TIMEOUT", cfg.Client.RequestTimeout)
	cfg.Client.RequestsPerSec = getEnvIntWithDefault("CLIENT_REQUESTS_PER_SEC", cfg.Client.RequestsPerSec)

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvWithDefault("LOG_FORMAT", cfg.LogFormat)
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Server.Port, err)
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", c.Server.GinMode)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: want console or json", c.LogFormat)
	}
	if c.Client.RequestsPerSec < 0 {
		return fmt.Errorf("invalid client requests per second %d", c.Client.RequestsPerSec)
	}
	return nil
}

// ParseCSV splits a comma separated list, dropping blanks.
func ParseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring non-integer environment value")
	}
	return defaultValue
}

func getEnvSecondsWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.ParseFloat(value, 64); err == nil && seconds >= 0 {
			return time.Duration(seconds * float64(time.Second))
		}
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring invalid duration environment value")
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
