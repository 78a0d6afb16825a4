package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Backing store connection
	BaseURL string `mapstructure:"base_url"` // e.g. "https://your-project-id.supabase.co"
	APIKey  string `mapstructure:"api_key"`  // opaque credential, forwarded verbatim
	Table   string `mapstructure:"table"`    // resource collection name

	// Behavior
	RequestTimeout time.Duration `mapstructure:"request_timeout"` // 0 means no timeout
	SeedFallback   bool          `mapstructure:"seed_fallback"`   // install the demo item when the initial load fails

	// Logging Configuration
	LogLevel  string `mapstructure:"log_level"`  // "DEBUG", "INFO", "WARN", "ERROR"
	LogFormat string `mapstructure:"log_format"` // "text" or "json"
}

// LoadConfig loads configuration from file, environment variables, and defaults using Viper.
// An empty configPath means the default search locations are used.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", "")
	v.SetDefault("api_key", "")
	v.SetDefault("table", "arcs")
	v.SetDefault("request_timeout", "0s")
	v.SetDefault("seed_fallback", true)
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "text")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("arc-tracker")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.arc-tracker")
	}

	v.SetEnvPrefix("ARC_TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file in the default locations is fine; env vars and
		// defaults still apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("invalid base_url %q: must be an http(s) URL", cfg.BaseURL)
		}
	}
	if cfg.Table == "" {
		return errors.New("table must not be empty")
	}
	if strings.ContainsAny(cfg.Table, "/?&") {
		return fmt.Errorf("invalid table %q: must be a bare collection name", cfg.Table)
	}
	if cfg.RequestTimeout < 0 {
		return errors.New("request_timeout cannot be negative")
	}

	validLevels := map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}
	if _, ok := validLevels[strings.ToUpper(cfg.LogLevel)]; !ok {
		return fmt.Errorf("invalid log_level %q: must be one of DEBUG, INFO, WARN, ERROR", cfg.LogLevel)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if _, ok := validFormats[strings.ToLower(cfg.LogFormat)]; !ok {
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return nil
}
