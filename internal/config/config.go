package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input and output file locations.
type Paths struct {
	FilmsCSV  string `toml:"films_csv"`
	Catalog   string `toml:"catalog"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Fingerprint contains the log-odds estimator tunables.
type Fingerprint struct {
	// Alpha is the additive smoothing constant in the log-odds formula.
	Alpha float64 `toml:"alpha"`
	// MinLikedFreq is the minimum number of distinct liked films a motif
	// must appear in to enter the lexicon.
	MinLikedFreq int `toml:"min_liked_freq"`
	// MinDirectorDiversity is the minimum number of distinct directors a
	// motif must span across liked films.
	MinDirectorDiversity int `toml:"min_director_diversity"`
	// BaselineCap bounds the baseline sample: the first N non-liked stream
	// records.
	BaselineCap int `toml:"baseline_cap"`
	// ReviewCap is how many reviews per record feed the training corpus.
	ReviewCap int `toml:"review_cap"`
}

// Discovery contains the candidate scoring tunables.
type Discovery struct {
	ScoreThreshold float64            `toml:"score_threshold"`
	DrearyPenalty  float64            `toml:"dreary_penalty"`
	LegacyBonus    float64            `toml:"legacy_bonus"`
	ReviewCap      int                `toml:"review_cap"`
	CastCap        int                `toml:"cast_cap"`
	EvidenceCap    int                `toml:"evidence_cap"`
	DrearyTokens   []string           `toml:"dreary_tokens"`
	RegionalBoost  map[string]float64 `toml:"regional_surcharge"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for whitemask.
//
// Sections by subsystem:
//   - Paths: personal film list, catalog dump, output and log directories
//   - Fingerprint: smoothing and filtering for the lexicon estimator
//   - Discovery: penalties, surcharges, bonus, and threshold for ranking
//   - Logging: log format and level
type Config struct {
	Paths       Paths       `toml:"paths"`
	Fingerprint Fingerprint `toml:"fingerprint"`
	Discovery   Discovery   `toml:"discovery"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/whitemask/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("whitemask.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LedgerPath returns the location of the run ledger database.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Paths.LogDir, "runs.db")
}

// LexiconPath returns the canonical "latest" lexicon artifact location.
func (c *Config) LexiconPath() string {
	return filepath.Join(c.Paths.OutputDir, "whitemask_fingerprint_latest.csv")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
