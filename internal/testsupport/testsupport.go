// Package testsupport provides shared fixtures for whitemask tests.
package testsupport

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"whitemask/internal/config"
	"whitemask/internal/history"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.FilmsCSV = filepath.Join(base, "films.csv")
	cfg.Paths.Catalog = filepath.Join(base, "catalog.jsonl")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// Logger returns a logger that swallows everything.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WriteFilmList writes a personal film list CSV and loads it into a Matcher.
func WriteFilmList(t testing.TB, path, contents string) *history.Matcher {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	matcher, err := history.Load(path, Logger())
	if err != nil {
		t.Fatalf("load film list: %v", err)
	}
	return matcher
}

// WriteCatalog writes newline-delimited JSON catalog contents.
func WriteCatalog(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
