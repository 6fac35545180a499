package fingerprint_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"whitemask/internal/catalog"
	"whitemask/internal/fingerprint"
	"whitemask/internal/history"
	"whitemask/internal/testsupport"
)

func testConfig() fingerprint.Config {
	return fingerprint.Config{
		Alpha:                0.5,
		MinLikedFreq:         2,
		MinDirectorDiversity: 2,
		BaselineCap:          15000,
		ReviewCap:            10,
	}
}

func loadMatcher(t *testing.T, rows string) *history.Matcher {
	t.Helper()
	path := filepath.Join(t.TempDir(), "films.csv")
	return testsupport.WriteFilmList(t, path, rows)
}

func likedRecord(title string, year int, director, text string) *catalog.Record {
	return &catalog.Record{
		Title:     title,
		Year:      catalog.Year(year),
		Synopsis:  text,
		Directors: []string{director},
	}
}

func TestObserveClassifiesRecords(t *testing.T) {
	matcher := loadMatcher(t, "Name,Year\nIchi The Killer,2001\n")
	builder := fingerprint.NewBuilder(testConfig(), matcher)

	tests := []struct {
		name string
		rec  *catalog.Record
		want fingerprint.Outcome
	}{
		{"liked", likedRecord("Ichi the Killer", 2001, "Takashi Miike", "yakuza"), fingerprint.OutcomeLiked},
		{"duplicate", likedRecord("Ichi The Killer!", 2001, "Takashi Miike", "yakuza"), fingerprint.OutcomeDuplicate},
		{"baseline", likedRecord("Zatoichi", 2003, "Takeshi Kitano", "blind swordsman"), fingerprint.OutcomeBaseline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := builder.Observe(tt.rec); got != tt.want {
				t.Errorf("Observe = %v, want %v", got, tt.want)
			}
		})
	}
	if builder.LikedCount() != 1 {
		t.Errorf("LikedCount = %d, want 1", builder.LikedCount())
	}
	if builder.BaselineCount() != 1 {
		t.Errorf("BaselineCount = %d, want 1", builder.BaselineCount())
	}
}

func TestDuplicateIdentityCountsOnce(t *testing.T) {
	matcher := loadMatcher(t, "Name,Year\nIchi The Killer,2001\n")
	builder := fingerprint.NewBuilder(testConfig(), matcher)

	for i := 0; i < 3; i++ {
		builder.Observe(likedRecord("Ichi the Killer", 2001, "Takashi Miike", "yakuza enforcer"))
	}
	if builder.LikedCount() != 1 {
		t.Errorf("LikedCount = %d, want 1 after duplicate lines", builder.LikedCount())
	}
}

func TestBaselineCapHardStop(t *testing.T) {
	cfg := testConfig()
	cfg.BaselineCap = 2
	matcher := loadMatcher(t, "Name,Year\nIchi The Killer,2001\n")
	builder := fingerprint.NewBuilder(cfg, matcher)

	outcomes := []fingerprint.Outcome{
		builder.Observe(likedRecord("Film A", 1990, "D1", "text")),
		builder.Observe(likedRecord("Film B", 1991, "D2", "text")),
		builder.Observe(likedRecord("Film C", 1992, "D3", "text")),
	}
	want := []fingerprint.Outcome{fingerprint.OutcomeBaseline, fingerprint.OutcomeBaseline, fingerprint.OutcomeSkipped}
	for i := range outcomes {
		if outcomes[i] != want[i] {
			t.Errorf("record %d: outcome %v, want %v", i, outcomes[i], want[i])
		}
	}
	if builder.BaselineCount() != 2 {
		t.Errorf("BaselineCount = %d, want 2", builder.BaselineCount())
	}

	// Liked records still count after the cap.
	if got := builder.Observe(likedRecord("Ichi the Killer", 2001, "Takashi Miike", "yakuza")); got != fingerprint.OutcomeLiked {
		t.Errorf("liked after cap: outcome %v, want OutcomeLiked", got)
	}
}

func TestBuildAppliesFilters(t *testing.T) {
	matcher := loadMatcher(t, "Name,Year\nFilm A,2000\nFilm B,2001\nFilm C,2002\n")
	builder := fingerprint.NewBuilder(testConfig(), matcher)

	// "sincere brutality" appears in two liked films by two directors.
	// "lonely" appears in two liked films by one director.
	// "chaotic" appears once.
	builder.Observe(likedRecord("Film A", 2000, "Miike", "sincere brutality lonely"))
	builder.Observe(likedRecord("Film B", 2001, "Kitano", "sincere brutality chaotic"))
	builder.Observe(likedRecord("Film C", 2002, "Miike", "lonely"))
	builder.Observe(likedRecord("Other", 1990, "Someone", "ordinary drama"))

	entries, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	byMotif := make(map[string]fingerprint.Entry)
	for _, entry := range entries {
		byMotif[entry.Motif] = entry
	}
	if _, ok := byMotif["sincere brutality"]; !ok {
		t.Error("expected \"sincere brutality\" in lexicon")
	}
	if _, ok := byMotif["lonely"]; ok {
		t.Error("\"lonely\" spans one director and must be filtered")
	}
	if _, ok := byMotif["chaotic"]; ok {
		t.Error("\"chaotic\" appears once and must be filtered")
	}

	entry := byMotif["sincere brutality"]
	if entry.LikedFreq != 2 || entry.Directors != 2 {
		t.Errorf("entry stats = %+v, want liked 2, directors 2", entry)
	}
}

func TestBuildScoreFormula(t *testing.T) {
	matcher := loadMatcher(t, "Name,Year\nFilm A,2000\nFilm B,2001\n")
	builder := fingerprint.NewBuilder(testConfig(), matcher)

	builder.Observe(likedRecord("Film A", 2000, "Miike", "sincere brutality"))
	builder.Observe(likedRecord("Film B", 2001, "Kitano", "sincere brutality"))
	builder.Observe(likedRecord("Base One", 1990, "X", "ordinary"))
	builder.Observe(likedRecord("Base Two", 1991, "Y", "ordinary"))

	entries, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// c_l = 2, N_l = 2, c_b = 0, N_b = 2, alpha = 0.5
	want := math.Log((2+0.5)/(2-2+0.5)) - math.Log((0+0.5)/(2-0+0.5))
	var got float64
	for _, entry := range entries {
		if entry.Motif == "sincere brutality" {
			got = entry.Score
		}
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("score = %v, want %v", got, want)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	// Holding totals fixed, score rises with liked frequency and falls
	// with baseline frequency.
	score := func(cl, cb int) float64 {
		alpha := 0.5
		nL, nB := 10.0, 10.0
		return math.Log((float64(cl)+alpha)/(nL-float64(cl)+alpha)) -
			math.Log((float64(cb)+alpha)/(nB-float64(cb)+alpha))
	}
	if !(score(5, 2) > score(4, 2)) {
		t.Error("score should increase with liked frequency")
	}
	if !(score(5, 2) > score(5, 3)) {
		t.Error("score should decrease with baseline frequency")
	}
}

func TestBuildEmptyLexicon(t *testing.T) {
	matcher := loadMatcher(t, "Name,Year\n")
	builder := fingerprint.NewBuilder(testConfig(), matcher)
	builder.Observe(likedRecord("Something", 1999, "D", "ordinary text"))

	if _, err := builder.Build(); !errors.Is(err, fingerprint.ErrNoMotifs) {
		t.Fatalf("Build error = %v, want ErrNoMotifs", err)
	}
}

func TestBuildOrdering(t *testing.T) {
	matcher := loadMatcher(t, "Name,Year\nFilm A,2000\nFilm B,2001\n")
	cfg := testConfig()
	cfg.MinDirectorDiversity = 1
	builder := fingerprint.NewBuilder(cfg, matcher)

	// "rare phrase" absent from baseline outranks "common" present there.
	builder.Observe(likedRecord("Film A", 2000, "Miike", "rare phrase common"))
	builder.Observe(likedRecord("Film B", 2001, "Kitano", "rare phrase common"))
	builder.Observe(likedRecord("Base One", 1990, "X", "common"))
	builder.Observe(likedRecord("Base Two", 1991, "Y", "common"))

	entries, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Score < cur.Score {
			t.Fatalf("entries not sorted by descending score: %v before %v", prev, cur)
		}
		if prev.Score == cur.Score && prev.Motif > cur.Motif {
			t.Fatalf("tie not broken by motif text: %q before %q", prev.Motif, cur.Motif)
		}
	}
	if entries[0].Motif == "common" {
		t.Error("baseline-heavy motif should not rank first")
	}
}
