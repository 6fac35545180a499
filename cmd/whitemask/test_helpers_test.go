package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
}

const cliCatalog = `{"title":"Ichi the Killer","year":2001,"synopsis":"sadistic yakuza enforcer seeks ultimate rival","genres":["Crime"],"directors":["Takashi Miike"],"cast":["Tadanobu Asano"],"url":"https://example.com/ichi"}
{"title":"Audition","year":1999,"synopsis":"widower auditions for a sadistic yakuza bride","genres":["Horror"],"directors":["Takashi Miike"],"cast":["Ryo Ishibashi"],"url":"https://example.com/audition"}
{"title":"Zatoichi","year":2003,"synopsis":"blind swordsman wanders feudal japan with a sadistic yakuza gang on his trail","genres":["Action"],"directors":["Takeshi Kitano"],"cast":["Takeshi Kitano"],"countries":["Japan"],"url":"https://example.com/zatoichi"}
`

// setupCLITestEnv writes a self-contained config, film list, and catalog
// under a temp dir. The fingerprint floors are relaxed so the tiny fixture
// catalog still produces a lexicon.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)

	filmsPath := filepath.Join(base, "films.csv")
	catalogPath := filepath.Join(base, "fulldump.jsonl")
	outputDir := filepath.Join(base, "output")
	logDir := filepath.Join(base, "logs")

	if err := os.WriteFile(filmsPath, []byte("Name,Year\nIchi The Killer,2001\nAudition,1999\n"), 0o644); err != nil {
		t.Fatalf("write films: %v", err)
	}
	if err := os.WriteFile(catalogPath, []byte(cliCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	configBody := fmt.Sprintf(`[paths]
films_csv = %q
catalog = %q
output_dir = %q
log_dir = %q

[fingerprint]
min_liked_freq = 1
min_director_diversity = 1

[discovery]
score_threshold = 1.0
`, filmsPath, catalogPath, outputDir, logDir)
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, outputDir: outputDir}
}

// runCLI executes the command tree with a fresh root, capturing output.
func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}
