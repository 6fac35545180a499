package discovery

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// evidenceSeparator joins evidence motifs in the rankings CSV.
const evidenceSeparator = " | "

// WriteResults encodes ranked results as CSV. Callers sort first.
func WriteResults(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Name", "Year", "Score", "URL", "Legacy", "Evidence"}); err != nil {
		return fmt.Errorf("write rankings header: %w", err)
	}
	for _, result := range results {
		legacy := "NO"
		if result.Legacy {
			legacy = "YES"
		}
		row := []string{
			result.Name,
			strconv.Itoa(result.Year),
			strconv.FormatFloat(result.Score, 'f', 2, 64),
			result.URL,
			legacy,
			strings.Join(result.Evidence, evidenceSeparator),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write rankings row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush rankings: %w", err)
	}
	return nil
}
