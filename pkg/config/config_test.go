package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/vtdesigner/pkg/errors"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[autosave]
interval = "2m"

[clipboard]
backend = "redis"
redis_addr = "cache:6380"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, _ := NewStore(path)
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Autosave.Interval.Duration != 2*time.Minute {
		t.Errorf("Autosave.Interval = %v, want 2m", cfg.Autosave.Interval)
	}
	if cfg.Autosave.Path != "autosave.aitp" {
		t.Errorf("Autosave.Path = %q, want default", cfg.Autosave.Path)
	}
	if cfg.Clipboard.Backend != BackendRedis || cfg.Clipboard.RedisAddr != "cache:6380" {
		t.Errorf("Clipboard = %+v", cfg.Clipboard)
	}
	if !cfg.Naming.ApplyOnImport {
		t.Error("Naming.ApplyOnImport should keep its default")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[designer\n"},
		{"duration", "[autosave]\ninterval = \"soon\"\n"},
		{"backend", "[clipboard]\nbackend = \"s3\"\n"},
		{"orientation", "[designer]\nmask_orientation = \"diagonal\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			s, _ := NewStore(path)
			if _, err := s.Load(); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Load() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Designer.VTVersion = 6
	cfg.Autosave.Interval = Duration{90 * time.Second}
	cfg.Clipboard.Backend = BackendNone
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s, _ := NewStore(filepath.Join(t.TempDir(), "config.toml"))
	cfg := Default()
	cfg.Clipboard.Backend = "ftp"
	if err := s.Save(cfg); err == nil {
		t.Error("Save should reject an unknown backend")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "vtdesigner", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestNewStoreInvalidPath(t *testing.T) {
	if _, err := NewStore("bad\x00path"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("NewStore error = %v, want INVALID_PATH", err)
	}
}
