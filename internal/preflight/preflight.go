// Package preflight verifies a run's inputs and outputs before any scoring
// starts, so missing files surface as clear user-facing errors instead of
// partial output.
package preflight

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"whitemask/internal/config"
)

// Result captures one check's outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// ForFingerprint runs the checks a fingerprint run depends on.
func ForFingerprint(cfg *config.Config) []Result {
	return []Result{
		CheckFileReadable("Personal film list", cfg.Paths.FilmsCSV),
		CheckFileReadable("Catalog", cfg.Paths.Catalog),
		CheckDirectoryWritable("Output directory", cfg.Paths.OutputDir),
	}
}

// ForDiscover runs the checks a discovery run depends on. The lexicon path
// is checked last so its absence is reported alongside the broader inputs.
func ForDiscover(cfg *config.Config, lexiconPath string) []Result {
	results := ForFingerprint(cfg)
	return append(results, CheckFileReadable("Fingerprint lexicon", lexiconPath))
}

// Err folds failed checks into a single error, or nil when all passed.
func Err(results []Result) error {
	var failures []string
	for _, result := range results {
		if !result.Passed {
			failures = append(failures, fmt.Sprintf("%s: %s", result.Name, result.Detail))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return errors.New(strings.Join(failures, "; "))
}

// CheckFileReadable verifies the path names an existing readable file.
func CheckFileReadable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is a directory", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (readable)", path)}
}

// CheckDirectoryWritable verifies the path is a writable directory.
func CheckDirectoryWritable(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s does not exist", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
