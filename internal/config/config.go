package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	kDefaultBaseURL = "https://opentdb.com"
	kDefaultAmount  = 10

	kMinAmount = 1
	kMaxAmount = 50
)

// Config is the user-level configuration stored as YAML
// (e.g. ~/.config/opentriv/config.yaml).
type Config struct {
	// BaseURL is the Open Trivia DB endpoint. Override for testing or
	// self-hosted mirrors.
	BaseURL string `yaml:"base_url"`

	// UserAgent is sent with every request. Empty means the net/http default.
	UserAgent string `yaml:"user_agent"`

	// DefaultAmount is the question count used when the fetch command gets
	// no --amount flag (1-50).
	DefaultAmount int `yaml:"default_amount"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		BaseURL:       kDefaultBaseURL,
		DefaultAmount: kDefaultAmount,
	}
}

// Validate checks field ranges. A zero field is filled from Default rather
// than rejected, so hand-edited partial files keep working.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = kDefaultBaseURL
	}
	if c.DefaultAmount == 0 {
		c.DefaultAmount = kDefaultAmount
	}
	if c.DefaultAmount < kMinAmount || c.DefaultAmount > kMaxAmount {
		return fmt.Errorf("default_amount %d out of range [%d,%d]", c.DefaultAmount, kMinAmount, kMaxAmount)
	}
	return nil
}

// Store loads and saves config.
type Store interface {
	Load(ctx context.Context) (Config, error)
	Save(ctx context.Context, cfg Config) error
}

// FileStore is a filesystem-backed config store.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	b, err := os.ReadFile(s.Path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", s.Path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", s.Path, err)
	}
	return cfg, nil
}

func (s *FileStore) Save(ctx context.Context, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, b, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", s.Path, err)
	}
	return nil
}
