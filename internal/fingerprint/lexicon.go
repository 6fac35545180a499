package fingerprint

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteLexicon encodes lexicon entries as CSV. A UTF-8 BOM leads the output
// so spreadsheet tools decode motif text correctly.
func WriteLexicon(w io.Writer, entries []Entry) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("write lexicon BOM: %w", err)
	}
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"motif", "score", "directors", "liked_freq"}); err != nil {
		return fmt.Errorf("write lexicon header: %w", err)
	}
	for _, entry := range entries {
		row := []string{
			entry.Motif,
			strconv.FormatFloat(entry.Score, 'f', 3, 64),
			strconv.Itoa(entry.Directors),
			strconv.Itoa(entry.LikedFreq),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write lexicon row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush lexicon: %w", err)
	}
	return nil
}

// ReadLexicon loads a previously written lexicon, preserving row order. Row
// order is the lexicon's ranking and downstream evidence order depends on it.
func ReadLexicon(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read lexicon header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"motif", "score"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("lexicon %s: missing %q column", path, required)
		}
	}

	var entries []Entry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read lexicon row: %w", err)
		}
		entry := Entry{Motif: row[col["motif"]]}
		if entry.Score, err = strconv.ParseFloat(row[col["score"]], 64); err != nil {
			return nil, fmt.Errorf("lexicon %s: bad score %q: %w", path, row[col["score"]], err)
		}
		if idx, ok := col["directors"]; ok && idx < len(row) {
			entry.Directors, _ = strconv.Atoi(row[idx])
		}
		if idx, ok := col["liked_freq"]; ok && idx < len(row) {
			entry.LikedFreq, _ = strconv.Atoi(row[idx])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
