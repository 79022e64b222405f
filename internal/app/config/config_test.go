package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
app:
  name: accounts-test
  log_level: debug
server:
  port: "9090"
database:
  driver: sqlite
  dsn: "file::memory:"
  auto_migrate: false
redis:
  addr: "localhost:6379"
  channel: events
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.App.Name != "accounts-test" || cfg.App.LogLevel != "debug" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.AutoMigrate {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.Channel != "events" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Database.Driver != DriverMySQL || !cfg.Database.AutoMigrate {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Redis.Channel != "account_events" {
		t.Fatalf("unexpected redis channel default: %s", cfg.Redis.Channel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: mysql
  dsn: "from-file"
`)
	t.Setenv("ACCOUNT_DATABASE_DSN", "from-env")
	t.Setenv("ACCOUNT_DATABASE_DRIVER", "postgres")
	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Database.DSN != "from-env" || cfg.Database.Driver != DriverPostgres {
		t.Fatalf("expected env overrides, got %+v", cfg.Database)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected PORT override, got %s", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Driver: DriverMySQL, DSN: "dsn"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: "unsupported database driver"},
		{name: "missing dsn", mutate: func(c *Config) { c.Database.DSN = "" }, wantErr: "dsn is required"},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "port is required"},
		{name: "redis without channel", mutate: func(c *Config) { c.Redis.Addr = "localhost:6379" }, wantErr: "redis channel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
