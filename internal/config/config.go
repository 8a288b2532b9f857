package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

type Config struct {
	// DefiLlama API
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Output
	OutputDir string
}

func Load() *Config {
	cfg := &Config{
		APIBaseURL:  getEnv("LLAMA_API_BASE_URL", "https://api.llama.fi"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		OutputDir:   getEnv("OUTPUT_DIR", "."),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if parsedURL, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.OutputDir == "" {
		errors = append(errors, "output directory cannot be empty")
	} else if info, err := os.Stat(c.OutputDir); err != nil {
		errors = append(errors, fmt.Sprintf("output directory '%s' is not accessible: %v", c.OutputDir, err))
	} else if !info.IsDir() {
		errors = append(errors, fmt.Sprintf("output path '%s' is not a directory", c.OutputDir))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
