// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log settings: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db", "-t", "sqlite"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "test.db" {
		t.Errorf("expected test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGIN"} {
		t.Setenv(k, "")
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"port out of range", []string{"-p", "70000"}, nil},
		{"unknown database type", []string{"-t", "mysql"}, nil},
		{"postgres without url", []string{"-t", "postgres"}, nil},
		{"bad log level", []string{"-log-level", "loud"}, nil},
		{"bad log format", []string{"-log-format", "xml"}, nil},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("RAFFLE_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RAFFLE_TEST_VALUE", "")
	os.Unsetenv("RAFFLE_TEST_VALUE")

	if err := LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("RAFFLE_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected from-file, got %q", got)
	}

	// Missing file is not an error
	if err := LoadEnvFile(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warn", "error"} {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", name, err)
		}
	}
}
