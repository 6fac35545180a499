package fingerprint_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"whitemask/internal/fingerprint"
)

func TestWriteLexiconFormat(t *testing.T) {
	var buf bytes.Buffer
	entries := []fingerprint.Entry{
		{Motif: "sincere brutality", Score: 4.56789, Directors: 3, LikedFreq: 5},
		{Motif: "yakuza", Score: -0.25, Directors: 2, LikedFreq: 2},
	}
	if err := fingerprint.WriteLexicon(&buf, entries); err != nil {
		t.Fatalf("WriteLexicon: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\uFEFF") {
		t.Error("expected UTF-8 BOM prefix")
	}
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\uFEFF")), "\n")
	if lines[0] != "motif,score,directors,liked_freq" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "sincere brutality,4.568,3,5" {
		t.Errorf("row = %q, want 3-decimal score", lines[1])
	}
	if lines[2] != "yakuza,-0.250,2,2" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestReadLexiconPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.csv")
	var buf bytes.Buffer
	entries := []fingerprint.Entry{
		{Motif: "first", Score: 2.0, Directors: 2, LikedFreq: 3},
		{Motif: "second", Score: 1.0, Directors: 4, LikedFreq: 2},
	}
	if err := fingerprint.WriteLexicon(&buf, entries); err != nil {
		t.Fatalf("WriteLexicon: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := fingerprint.ReadLexicon(path)
	if err != nil {
		t.Fatalf("ReadLexicon: %v", err)
	}
	if len(got) != 2 || got[0].Motif != "first" || got[1].Motif != "second" {
		t.Fatalf("order not preserved: %+v", got)
	}
	if got[0].Score != 2.0 || got[0].Directors != 2 || got[0].LikedFreq != 3 {
		t.Errorf("entry fields lost: %+v", got[0])
	}
}

func TestReadLexiconMissingFile(t *testing.T) {
	if _, err := fingerprint.ReadLexicon(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing lexicon")
	}
}

func TestReadLexiconRejectsForeignCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foreign.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := fingerprint.ReadLexicon(path); err == nil {
		t.Fatal("expected error for CSV without motif/score columns")
	}
}
