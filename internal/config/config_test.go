package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "test_config.toml")
	err := os.WriteFile(filePath, []byte(content), 0600)
	require.NoError(t, err, "Failed to write temp config file")
	return filePath
}

// Helper to set environment variables for the duration of a test
func setEnvVar(t *testing.T, key, value string) {
	originalValue, exists := os.LookupEnv(key)
	err := os.Setenv(key, value)
	require.NoError(t, err)

	t.Cleanup(func() {
		if exists {
			os.Setenv(key, originalValue)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		os.Unsetenv("ARC_TRACKER_BASE_URL")
		os.Unsetenv("ARC_TRACKER_API_KEY")
		os.Unsetenv("ARC_TRACKER_TABLE")
		os.Unsetenv("ARC_TRACKER_LOG_LEVEL")

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "", cfg.BaseURL)
		assert.Equal(t, "", cfg.APIKey)
		assert.Equal(t, "arcs", cfg.Table)
		assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
		assert.True(t, cfg.SeedFallback)
		assert.Equal(t, "INFO", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("Load From File", func(t *testing.T) {
		content := `
		base_url = "https://demo-project.supabase.co"
		api_key = "anon-key-123"
		table = "arcs"
		request_timeout = "30s"
		seed_fallback = false
		log_level = "DEBUG"
		log_format = "json"
		`
		configFile := createTempConfigFile(t, content)
		cfg, err := LoadConfig(configFile)
		require.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, "https://demo-project.supabase.co", cfg.BaseURL)
		assert.Equal(t, "anon-key-123", cfg.APIKey)
		assert.Equal(t, "arcs", cfg.Table)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.False(t, cfg.SeedFallback)
		assert.Equal(t, "DEBUG", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("Environment Variables Override Defaults", func(t *testing.T) {
		setEnvVar(t, "ARC_TRACKER_BASE_URL", "https://env-project.supabase.co")
		setEnvVar(t, "ARC_TRACKER_TABLE", "review_copies")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "https://env-project.supabase.co", cfg.BaseURL)
		assert.Equal(t, "review_copies", cfg.Table)
	})

	t.Run("Missing Explicit Config File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
		assert.Error(t, err)
	})

	t.Run("Validation Errors", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			wantErr string
		}{
			{"Bad Base URL", `base_url = "not a url"`, "base_url"},
			{"Non-HTTP Scheme", `base_url = "ftp://example.com"`, "base_url"},
			{"Empty Table", `table = ""`, "table"},
			{"Table With Path Characters", `table = "arcs?select=*"`, "table"},
			{"Negative Timeout", `request_timeout = "-5s"`, "request_timeout"},
			{"Bad Log Level", `log_level = "LOUD"`, "log_level"},
			{"Bad Log Format", `log_format = "xml"`, "log_format"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				configFile := createTempConfigFile(t, tt.content)
				_, err := LoadConfig(configFile)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})
}
