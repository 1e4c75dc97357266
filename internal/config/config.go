// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server Server
	Limits Limits
}

// Server holds web server settings
type Server struct {
	Port string
}

// Limits holds extraction resource boundaries. Only the delimited-text
// extractor streams; every other format is buffered in memory, so uploads
// are capped at MaxUploadBytes before extraction starts.
type Limits struct {
	MaxUploadBytes    int64
	ProfileSampleSize int
}

// Load reads configuration from environment variables, applying defaults
// for everything unset.
func Load() *Config {
	return &Config{
		Server: Server{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Limits: Limits{
			MaxUploadBytes:    getEnvInt64("MAX_UPLOAD_BYTES", 50*1024*1024),
			ProfileSampleSize: int(getEnvInt64("PROFILE_SAMPLE_SIZE", 500)),
		},
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
