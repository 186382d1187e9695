// Package config loads and stores the vtdesigner configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/vtdesigner/config.toml,
// falling back to ~/.config/vtdesigner/config.toml. A missing file yields
// [Default]; keys missing from the file keep their default values.
//
//	[designer]
//	soft_key_width = 60
//	soft_key_height = 60
//	mask_orientation = "right"
//	key_order = "top-to-bottom"
//	vt_version = 4
//
//	[autosave]
//	interval = "30s"
//	path = "autosave.aitp"
//
//	[clipboard]
//	backend = "file"   # file, redis or none
//	redis_addr = "localhost:6379"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vtdesigner/pkg/errors"
)

// Clipboard backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the whole configuration file.
type Config struct {
	Designer  Designer  `toml:"designer"`
	Autosave  Autosave  `toml:"autosave"`
	Naming    Naming    `toml:"naming"`
	Clipboard Clipboard `toml:"clipboard"`
}

// Designer holds defaults for newly created objects.
type Designer struct {
	SoftKeyWidth    uint16 `toml:"soft_key_width"`
	SoftKeyHeight   uint16 `toml:"soft_key_height"`
	KeyWidth        uint16 `toml:"key_width"`
	KeyHeight       uint16 `toml:"key_height"`
	MaskOrientation string `toml:"mask_orientation"`
	KeyOrder        string `toml:"key_order"`
	VTVersion       int    `toml:"vt_version"`
}

// Autosave configures periodic snapshots in the edit session.
type Autosave struct {
	Interval Duration `toml:"interval"`
	Path     string   `toml:"path"`
}

// Naming configures automatic names. With ApplyOnImport set, imported
// objects keep their source project names where those are free; otherwise
// they are named like new objects.
type Naming struct {
	ApplyOnImport bool `toml:"apply_on_import"`
}

// Clipboard selects where copied objects are kept.
type Clipboard struct {
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
	Dir       string `toml:"dir"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct{ time.Duration }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Designer: Designer{
			SoftKeyWidth:    60,
			SoftKeyHeight:   60,
			KeyWidth:        60,
			KeyHeight:       60,
			MaskOrientation: "right",
			KeyOrder:        "top-to-bottom",
			VTVersion:       4,
		},
		Autosave: Autosave{
			Interval: Duration{30 * time.Second},
			Path:     "autosave.aitp",
		},
		Naming:    Naming{ApplyOnImport: true},
		Clipboard: Clipboard{Backend: BackendFile, RedisAddr: "localhost:6379"},
	}
}

// Validate checks values that cannot be represented by the TOML types.
func (c Config) Validate() error {
	switch c.Clipboard.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"clipboard backend %q must be one of file, redis, none", c.Clipboard.Backend)
	}
	if c.Autosave.Interval.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "autosave interval must not be negative")
	}
	switch c.Designer.MaskOrientation {
	case "left", "right", "top", "bottom":
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"mask orientation %q must be one of left, right, top, bottom", c.Designer.MaskOrientation)
	}
	return nil
}

// DefaultPath returns the configuration file location.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "vtdesigner", "config.toml"), nil
}

// Store reads and writes one configuration file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store for path. An empty path uses [DefaultPath].
func NewStore(path string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// Path returns the configuration file path.
func (s *Store) Path() string { return s.path }

// Load reads the configuration. A missing file returns [Default].
func (s *Store) Load() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := Default()
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", s.path)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg, creating the directory when needed.
func (s *Store) Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
