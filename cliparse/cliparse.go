package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	LogLevel     string
	LogFormat    string
	CORSOrigin   string
}

// LoadEnvFile loads variables from a .env file without overriding ones that
// are already set. A missing file is fine.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("raffle-app", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path or postgres URL)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin (empty echoes the request origin)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
	}

	return cfg, nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unsupported log level %q", name)
	}
	return level, nil
}
