package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"whitemask/internal/textkit"
)

// yearTolerance is the allowed year drift between the personal list and the
// catalog for the tolerant (fingerprint) predicate.
const yearTolerance = 1

// Matcher resolves catalog records against the personal film list. A
// normalized name may map to several years when the list contains duplicate
// rows; every stored year participates in matching.
type Matcher struct {
	years      map[string][]int
	rows       int
	duplicates int
}

// Load reads the personal film list CSV. The file must carry `Name` and
// `Year` columns. Rows with an unparsable year are skipped with a warning;
// duplicate normalized names are kept as additional candidate years and
// surfaced as a data-quality warning.
func Load(path string, logger *slog.Logger) (*Matcher, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open film list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read film list header: %w", err)
	}
	nameIdx, yearIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.TrimPrefix(col, "\uFEFF")) {
		case "Name":
			nameIdx = i
		case "Year":
			yearIdx = i
		}
	}
	if nameIdx < 0 || yearIdx < 0 {
		return nil, fmt.Errorf("film list %s: missing Name/Year columns", path)
	}

	m := &Matcher{years: make(map[string][]int)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read film list row: %w", err)
		}
		if nameIdx >= len(row) || yearIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		year, convErr := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if convErr != nil {
			logger.Warn("film list row has unparsable year, skipping",
				"name", name, "year", row[yearIdx])
			continue
		}
		key := textkit.Normalize(name)
		if key == "" {
			continue
		}
		if existing, ok := m.years[key]; ok {
			m.duplicates++
			logger.Warn("duplicate film list name, keeping both years",
				"name", name, "years", existing, "added", year)
		}
		m.years[key] = append(m.years[key], year)
		m.rows++
	}
	return m, nil
}

// Liked reports whether the normalized title matches the personal list with
// the tolerant predicate: any stored year within one year of the record's.
func (m *Matcher) Liked(normTitle string, year int) bool {
	for _, stored := range m.years[normTitle] {
		diff := year - stored
		if diff < 0 {
			diff = -diff
		}
		if diff <= yearTolerance {
			return true
		}
	}
	return false
}

// Seen reports whether the normalized title matches the personal list
// exactly, title and year both. Used only to exclude candidates.
func (m *Matcher) Seen(normTitle string, year int) bool {
	for _, stored := range m.years[normTitle] {
		if stored == year {
			return true
		}
	}
	return false
}

// Len reports the number of list rows retained.
func (m *Matcher) Len() int {
	return m.rows
}

// Duplicates reports how many duplicate-name rows were found during load.
func (m *Matcher) Duplicates() int {
	return m.duplicates
}
