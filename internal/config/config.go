package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chriszhang3/quotes/internal/quotefile"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Parsing
	SingleLineBreak bool // Treat every line break as a quote boundary
	Strict          bool // Fail when a block has an unpaired token

	// Output file for `quotes write`
	OutputPath string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		OutputPath: getEnv("QUOTES_OUTPUT", ""),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	var err error
	cfg.SingleLineBreak, err = strconv.ParseBool(getEnv("QUOTES_SINGLE_LINE_BREAK", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTES_SINGLE_LINE_BREAK: %w", err)
	}

	cfg.Strict, err = strconv.ParseBool(getEnv("QUOTES_STRICT", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTES_STRICT: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// ValidateForWrite checks configuration needed for writing quotes.
func (c *Config) ValidateForWrite() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: pass it as an argument or set QUOTES_OUTPUT", quotefile.ErrNoOutput)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
