package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileStore_SaveLoad_RoundTripAndPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permission semantics differ on Windows")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	store := NewFileStore(path)

	want := Config{
		BaseURL:       "https://opentdb.example",
		UserAgent:     "opentriv-test/0.1",
		DefaultAmount: 25,
	}

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat written config: %v", err)
	}
	if got := fi.Mode().Perm(); got != 0o600 {
		t.Fatalf("config perms = %#o, want %#o", got, 0o600)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestFileStore_Load_FillsDefaultsForPartialFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("user_agent: custom/1.0\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.BaseURL != kDefaultBaseURL {
		t.Fatalf("BaseURL = %q, want default %q", got.BaseURL, kDefaultBaseURL)
	}
	if got.DefaultAmount != kDefaultAmount {
		t.Fatalf("DefaultAmount = %d, want default %d", got.DefaultAmount, kDefaultAmount)
	}
	if got.UserAgent != "custom/1.0" {
		t.Fatalf("UserAgent = %q, want %q", got.UserAgent, "custom/1.0")
	}
}

func TestFileStore_Load_RejectsOutOfRangeAmount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("default_amount: 99\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatalf("Load() expected error for default_amount 99")
	}
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))
	_, err := store.Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestFileStore_Save_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.yaml")

	if err := NewFileStore(path).Save(context.Background(), Default()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat config: %v", err)
	}
}
