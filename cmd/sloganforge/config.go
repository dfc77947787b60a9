package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/artpar/sloganforge/internal/core/i18n"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Site      SiteConfig      `mapstructure:"site"`
	Sessions  SessionsConfig  `mapstructure:"sessions"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Export    ExportConfig    `mapstructure:"export"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds database configuration. The default DSN is an
// in-memory database shared by the connection pool.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SiteConfig holds settings of the HTML site.
type SiteConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`

	// GenerationDelay simulates processing time before slogans are shown.
	GenerationDelay time.Duration `mapstructure:"generation_delay"`

	// BaseURL is the public URL, listed in the OpenAPI document.
	BaseURL string `mapstructure:"base_url"`
}

// SessionsConfig holds visitor session settings.
type SessionsConfig struct {
	CookieName    string        `mapstructure:"cookie_name"`
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	SecureCookie  bool          `mapstructure:"secure_cookie"`
}

// RateLimitConfig holds per-client throttling of generation and export.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`

	// TrustProxy keys clients on X-Forwarded-For. Enable only behind a proxy.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

// ExportConfig holds limits of the export renderers.
type ExportConfig struct {
	MaxLogoBytes int64 `mapstructure:"max_logo_bytes"`
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadDotEnv exports the variables of a dotenv file into the environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("database.dsn", "file:sloganforge?mode=memory&cache=shared")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("site.default_language", string(i18n.Default))
	v.SetDefault("site.generation_delay", "0s")
	v.SetDefault("site.base_url", "http://localhost:8080")

	v.SetDefault("sessions.cookie_name", "sloganforge_session")
	v.SetDefault("sessions.ttl", "30m")
	v.SetDefault("sessions.sweep_interval", "5m")
	v.SetDefault("sessions.secure_cookie", false)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_second", 2)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("ratelimit.trust_proxy", false)

	v.SetDefault("export.max_logo_bytes", 2<<20)

	// Load from file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("SLOGANFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if _, ok := i18n.ParseLanguage(c.Site.DefaultLanguage); !ok {
		return fmt.Errorf("site.default_language %q is not supported", c.Site.DefaultLanguage)
	}
	if c.Site.GenerationDelay < 0 {
		return errors.New("site.generation_delay must not be negative")
	}
	if c.Sessions.TTL <= 0 {
		return errors.New("sessions.ttl must be positive")
	}
	if c.Sessions.SweepInterval <= 0 {
		return errors.New("sessions.sweep_interval must be positive")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("ratelimit.requests_per_second must be positive when rate limiting is enabled")
	}
	if c.Export.MaxLogoBytes <= 0 {
		return errors.New("export.max_logo_bytes must be positive")
	}
	return nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
