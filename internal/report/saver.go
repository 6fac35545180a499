package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// TimestampFormat names run artifacts: YYYYMMDD_HHMM.
const TimestampFormat = "20060102_1504"

// Saver writes artifacts with lock-aware fallback naming.
type Saver struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewSaver constructs a Saver.
func NewSaver(logger *slog.Logger) *Saver {
	return &Saver{logger: logger, now: time.Now}
}

// Save writes the encoded artifact to dest. When dest is locked by another
// process or cannot be written, it retries once with a timestamped alternate
// name in the same directory. The path actually written is returned.
func (s *Saver) Save(dest string, encode func(io.Writer) error) (string, error) {
	if err := s.writeLocked(dest, encode); err != nil {
		s.logger.Warn("save failed, retrying with alternate name", "path", dest, "error", err)
		alternate := s.alternatePath(dest)
		if altErr := s.writeLocked(alternate, encode); altErr != nil {
			s.logger.Error("alternate save failed", "path", alternate, "error", altErr)
			return "", fmt.Errorf("save %s: %w", dest, altErr)
		}
		s.logger.Info("artifact saved", "path", alternate)
		return alternate, nil
	}
	s.logger.Info("artifact saved", "path", dest)
	return dest, nil
}

// Timestamp returns the artifact timestamp for the current run.
func (s *Saver) Timestamp() string {
	return s.now().Format(TimestampFormat)
}

func (s *Saver) writeLocked(path string, encode func(io.Writer) error) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("destination %s is locked by another process", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if err := encode(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func (s *Saver) alternatePath(dest string) string {
	dir := filepath.Dir(dest)
	base := filepath.Base(dest)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, s.Timestamp(), ext))
}
