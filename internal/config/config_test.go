package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != ":8000" {
		t.Errorf("Addr() = %q, want %q", cfg.Server.Addr(), ":8000")
	}
	wantOrigins := []string{"http://localhost:3000", "http://localhost:8000"}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, wantOrigins)
	}
	if cfg.Client.RequestTimeout != 5*time.Second {
		t.Errorf("Client.RequestTimeout = %v, want 5s", cfg.Client.RequestTimeout)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.Server.GinMode)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("CORS_ORIGINS", "https://royal.example, ,https://admin.example")
	t.Setenv("READ_TIMEOUT", "2.5")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CLIENT_REQUESTS_PER_SEC", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", cfg.Server.Addr(), "127.0.0.1:9090")
	}
	wantOrigins := []string{"https://royal.example", "https://admin.example"}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, wantOrigins)
	}
	if cfg.Server.ReadTimeout != 2500*time.Millisecond {
		t.Errorf("ReadTimeout = %v, want 2.5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.Client.RequestsPerSec != 5 {
		t.Errorf("Client.RequestsPerSec = %d, want default 5", cfg.Client.RequestsPerSec)
	}
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  port: "7000"
  cors_origins: ["https://from-file.example"]
  write_timeout: 3s
client:
  base_url: http://intelligence:8000
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7100")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "7100" {
		t.Errorf("Port = %q, want env value 7100", cfg.Server.Port)
	}
	if !reflect.DeepEqual(cfg.Server.CORSOrigins, []string{"https://from-file.example"}) {
		t.Errorf("CORSOrigins = %v, want file value", cfg.Server.CORSOrigins)
	}
	if cfg.Server.WriteTimeout != 3*time.Second {
		t.Errorf("WriteTimeout = %v, want 3s", cfg.Server.WriteTimeout)
	}
	if cfg.Server.IdleTimeout != 60*time.Second {
		t.Errorf("IdleTimeout = %v, want default 60s", cfg.Server.IdleTimeout)
	}
	if cfg.Client.BaseURL != "http://intelligence:8000" {
		t.Errorf("Client.BaseURL = %q, want file value", cfg.Client.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yml"))
		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want read error")
		}
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("PORT", "eighty")
		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid port")
		}
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("PORT", "")
		t.Setenv("LOG_FORMAT", "xml")
		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid log format")
		}
	})

	t.Run("bad gin mode", func(t *testing.T) {
		t.Setenv("CONFIG_FILE", "")
		t.Setenv("PORT", "")
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("GIN_MODE", "production")
		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid gin mode")
		}
	})
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b ,,c ", []string{"a", "b", "c"}},
		{",", []string{}},
	}
	for _, tt := range tests {
		if got := ParseCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseCSV(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
