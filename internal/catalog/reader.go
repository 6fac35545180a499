package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single catalog line. Records carry full review texts,
// so lines can run to megabytes.
const maxLineBytes = 16 << 20

// Reader streams records from a newline-delimited JSON catalog file.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	skipped int
}

// Open opens a catalog file for streaming.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64<<10), maxLineBytes)
	return &Reader{file: file, scanner: scanner}, nil
}

// Next returns the next decodable record, skipping blank and malformed lines.
// It returns io.EOF when the stream is exhausted.
func (r *Reader) Next() (*Record, error) {
	for r.scanner.Scan() {
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		rec, err := decodeRecord(line)
		if err != nil {
			r.skipped++
			continue
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return nil, io.EOF
}

// Skipped reports how many lines failed to decode so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}
