package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"whitemask/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantOutput := filepath.Join(tempHome, ".local", "share", "whitemask", "output")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	if cfg.Fingerprint.Alpha != 0.5 {
		t.Fatalf("unexpected alpha: %v", cfg.Fingerprint.Alpha)
	}
	if cfg.Fingerprint.BaselineCap != 15000 {
		t.Fatalf("unexpected baseline cap: %d", cfg.Fingerprint.BaselineCap)
	}
	if cfg.Discovery.ScoreThreshold != 20.0 {
		t.Fatalf("unexpected threshold: %v", cfg.Discovery.ScoreThreshold)
	}
	if cfg.Discovery.RegionalBoost["Japan"] != 5.0 {
		t.Fatalf("unexpected regional surcharge: %v", cfg.Discovery.RegionalBoost)
	}
	if len(cfg.Discovery.DrearyTokens) != 5 {
		t.Fatalf("unexpected dreary tokens: %v", cfg.Discovery.DrearyTokens)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "whitemask.toml")
	contents := `
[paths]
films_csv = "` + filepath.Join(dir, "films.csv") + `"

[fingerprint]
alpha = 1.0
baseline_cap = 500

[discovery]
score_threshold = 5.0
dreary_tokens = ["  Meditative ", ""]

[logging]
format = "JSON"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Fingerprint.Alpha != 1.0 {
		t.Fatalf("alpha override not applied: %v", cfg.Fingerprint.Alpha)
	}
	if cfg.Fingerprint.BaselineCap != 500 {
		t.Fatalf("baseline cap override not applied: %d", cfg.Fingerprint.BaselineCap)
	}
	if cfg.Discovery.ScoreThreshold != 5.0 {
		t.Fatalf("threshold override not applied: %v", cfg.Discovery.ScoreThreshold)
	}
	if len(cfg.Discovery.DrearyTokens) != 1 || cfg.Discovery.DrearyTokens[0] != "meditative" {
		t.Fatalf("dreary tokens not normalized: %v", cfg.Discovery.DrearyTokens)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging format not normalized: %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero alpha", func(c *config.Config) { c.Fingerprint.Alpha = 0 }},
		{"zero min freq", func(c *config.Config) { c.Fingerprint.MinLikedFreq = 0 }},
		{"zero diversity", func(c *config.Config) { c.Fingerprint.MinDirectorDiversity = 0 }},
		{"zero baseline cap", func(c *config.Config) { c.Fingerprint.BaselineCap = 0 }},
		{"negative threshold", func(c *config.Config) { c.Discovery.ScoreThreshold = -1 }},
		{"negative penalty", func(c *config.Config) { c.Discovery.DrearyPenalty = -1 }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "yaml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("sample config is empty")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Fingerprint.BaselineCap != config.Default().Fingerprint.BaselineCap {
		t.Fatalf("sample drifted from defaults: %d", cfg.Fingerprint.BaselineCap)
	}
}
