package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/cesargomez89/jukebox/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port                string
	DBPath              string
	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyRedirectURL  string
	SpotifyAPIURL       string
	CookieSecure        bool
	LogLevel            string
	LogFormat           string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", constants.DefaultPort),
		DBPath:              getEnv("DB_PATH", constants.DefaultDBPath),
		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		SpotifyRedirectURL:  getEnv("SPOTIFY_REDIRECT_URL", constants.DefaultRedirectURL),
		SpotifyAPIURL:       getEnv("SPOTIFY_API_URL", constants.DefaultSpotifyAPI),
		CookieSecure:        getEnv("COOKIE_SECURE", "false") == "true",
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
	}
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate DBPath
	if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty")
	}

	// Validate Spotify credentials
	if c.SpotifyClientID == "" {
		errors = append(errors, "SPOTIFY_CLIENT_ID cannot be empty")
	}
	if c.SpotifyClientSecret == "" {
		errors = append(errors, "SPOTIFY_CLIENT_SECRET cannot be empty")
	}

	// Validate URLs
	if c.SpotifyRedirectURL == "" {
		errors = append(errors, "SPOTIFY_REDIRECT_URL cannot be empty")
	} else if _, err := url.Parse(c.SpotifyRedirectURL); err != nil {
		errors = append(errors, fmt.Sprintf("SPOTIFY_REDIRECT_URL is not a valid URL: %s", c.SpotifyRedirectURL))
	}
	if c.SpotifyAPIURL == "" {
		errors = append(errors, "SPOTIFY_API_URL cannot be empty")
	} else if _, err := url.Parse(c.SpotifyAPIURL); err != nil {
		errors = append(errors, fmt.Sprintf("SPOTIFY_API_URL is not a valid URL: %s", c.SpotifyAPIURL))
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
