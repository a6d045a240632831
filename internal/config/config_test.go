package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "json"

store:
  max_batches: 50

clock:
  start_date: "15-03-2026"

language: "pt-BR"

ops:
  addr: "127.0.0.1:9100"
  shutdown_timeout: "2s"
`

func validConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "warn", Format: "text"},
		Store:    StoreConfig{MaxBatches: 1000},
		Clock:    ClockConfig{StartDate: "01-01-2025"},
		Language: "en",
		Ops:      OpsConfig{ReadHeaderTimeout: 5 * time.Second, ShutdownTimeout: 5 * time.Second},
	}
}

// chdirEmpty moves the test into a directory without config.yaml.
func chdirEmpty(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Store.MaxBatches != 50 {
		t.Errorf("store.max_batches = %d, want 50", cfg.Store.MaxBatches)
	}
	if cfg.Clock.StartDate != "15-03-2026" {
		t.Errorf("clock.start_date = %q", cfg.Clock.StartDate)
	}
	if cfg.Language != "pt-BR" {
		t.Errorf("language = %q, want %q", cfg.Language, "pt-BR")
	}
	if cfg.Ops.Addr != "127.0.0.1:9100" {
		t.Errorf("ops.addr = %q", cfg.Ops.Addr)
	}
	if cfg.Ops.ShutdownTimeout != 2*time.Second {
		t.Errorf("ops.shutdown_timeout = %v, want 2s", cfg.Ops.ShutdownTimeout)
	}
	if cfg.Ops.ReadHeaderTimeout != 5*time.Second {
		t.Errorf("ops.read_header_timeout = %v, want 5s (default)", cfg.Ops.ReadHeaderTimeout)
	}
	if !cfg.Ops.Enabled() {
		t.Error("ops server should be enabled when addr is set")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("STORE_MAX_BATCHES", "7")
	t.Setenv("VAXSIM_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Store.MaxBatches != 7 {
		t.Errorf("store.max_batches = %d, want 7 (ENV override)", cfg.Store.MaxBatches)
	}
	if cfg.Language != "en" {
		t.Errorf("language = %q, want %q (ENV override)", cfg.Language, "en")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirEmpty(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (default)", cfg.Log.Level, "warn")
	}
	if cfg.Store.MaxBatches != 1000 {
		t.Errorf("store.max_batches = %d, want 1000 (default)", cfg.Store.MaxBatches)
	}
	if cfg.Clock.StartDate != "01-01-2025" {
		t.Errorf("clock.start_date = %q, want 01-01-2025 (default)", cfg.Clock.StartDate)
	}
	if cfg.Language != "en" {
		t.Errorf("language = %q, want en (default)", cfg.Language)
	}
	if cfg.Ops.Enabled() {
		t.Error("ops server should be disabled by default")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CLOCK_START_DATE", "29-02-2028")
	t.Setenv("OPS_ADDR", ":9100")
	chdirEmpty(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start, err := cfg.Clock.Start()
	if err != nil {
		t.Fatalf("unexpected start date error: %v", err)
	}
	if want := (domain.Date{Day: 29, Month: 2, Year: 2028}); start != want {
		t.Errorf("clock start = %v, want %v", start, want)
	}
	if cfg.Ops.Addr != ":9100" {
		t.Errorf("ops.addr = %q, want :9100", cfg.Ops.Addr)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_IgnoresGettextLanguage(t *testing.T) {
	for _, v := range []string{"en_US:en", "pt_BR:pt", "C", "pt_BR"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", "")
			t.Setenv("LANGUAGE", v)
			chdirEmpty(t)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("LANGUAGE=%q should not affect loading: %v", v, err)
			}
			if cfg.Language != "en" {
				t.Errorf("language = %q, want en (default)", cfg.Language)
			}
		})
	}
}

func TestLoad_LanguageFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("VAXSIM_LANGUAGE", "pt")
	chdirEmpty(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "pt" {
		t.Errorf("language = %q, want pt", cfg.Language)
	}
}

func TestLoad_InvalidValueFailsValidation(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_MAX_BATCHES", "0")
	chdirEmpty(t)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for max_batches = 0")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "portuguese", mutate: func(c *Config) { c.Language = "pt" }},
		{name: "leap day start", mutate: func(c *Config) { c.Clock.StartDate = "29-02-2024" }},
		{name: "max batches zero", mutate: func(c *Config) { c.Store.MaxBatches = 0 }, wantErr: true},
		{name: "max batches negative", mutate: func(c *Config) { c.Store.MaxBatches = -3 }, wantErr: true},
		{name: "start date malformed", mutate: func(c *Config) { c.Clock.StartDate = "2025-01-01x" }, wantErr: true},
		{name: "start date not on calendar", mutate: func(c *Config) { c.Clock.StartDate = "29-02-2025" }, wantErr: true},
		{name: "language garbage", mutate: func(c *Config) { c.Language = "not a tag!" }, wantErr: true},
		{name: "language empty", mutate: func(c *Config) { c.Language = "" }, wantErr: true},
		{name: "shutdown timeout zero", mutate: func(c *Config) { c.Ops.ShutdownTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
