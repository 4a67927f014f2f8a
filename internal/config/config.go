package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	LogLevel      string
	ArchiveDBPath string
	DetectOpening bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is the normal case for a command-line run.
	_ = godotenv.Load()

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		LogLevel:      envOr("LOG_LEVEL", "WARN"),
		ArchiveDBPath: os.Getenv("ARCHIVE_DB_PATH"),
		DetectOpening: envBoolOr("DETECT_OPENING", false),
	}
}

// ArchiveEnabled reports whether conversions should be persisted.
func (c Config) ArchiveEnabled() bool {
	return c.ArchiveDBPath != ""
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}

	if c.ArchiveDBPath != "" && strings.TrimSpace(c.ArchiveDBPath) == "" {
		problems = append(problems, "ARCHIVE_DB_PATH cannot be blank")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
