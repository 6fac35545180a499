package catalog

import (
	"reflect"
	"testing"
)

func TestDecodeRecordDefaults(t *testing.T) {
	rec, err := decodeRecord([]byte(`{"title":"Zatoichi"}`))
	if err != nil {
		t.Fatalf("decodeRecord: %v", err)
	}
	if rec.Title != "Zatoichi" {
		t.Errorf("Title = %q, want Zatoichi", rec.Title)
	}
	if rec.Year != 0 {
		t.Errorf("Year = %d, want 0", rec.Year)
	}
	if rec.Synopsis != "" {
		t.Errorf("Synopsis = %q, want empty", rec.Synopsis)
	}
	if len(rec.Genres) != 0 || len(rec.Directors) != 0 || len(rec.Reviews) != 0 {
		t.Error("missing lists should decode empty")
	}
}

func TestYearParsing(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Year
	}{
		{"number", `{"year":2003}`, 2003},
		{"string", `{"year":"2003"}`, 2003},
		{"float", `{"year":2003.0}`, 2003},
		{"garbage", `{"year":"unknown"}`, 0},
		{"null", `{"year":null}`, 0},
		{"empty string", `{"year":""}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := decodeRecord([]byte(tt.line))
			if err != nil {
				t.Fatalf("decodeRecord: %v", err)
			}
			if rec.Year != tt.want {
				t.Errorf("Year = %d, want %d", rec.Year, tt.want)
			}
		})
	}
}

func TestRecordKey(t *testing.T) {
	rec := &Record{Title: "Ichi the Killer!", Year: 2001}
	if got := rec.Key(); got != "ichithekiller|2001" {
		t.Errorf("Key() = %q", got)
	}
}

func TestRecordKeyFallsBackToURLSlug(t *testing.T) {
	a := &Record{Year: 2001, URL: "https://example.com/film/dead-or-alive"}
	b := &Record{Year: 2001, URL: "https://example.com/film/audition"}
	if a.Key() == b.Key() {
		t.Errorf("empty-title records with distinct slugs collapsed: %q", a.Key())
	}
	if got := a.Key(); got != "deadoralive|2001" {
		t.Errorf("Key() = %q, want slug-derived identity", got)
	}
	if got := a.NormalizedTitle(); got != "deadoralive" {
		t.Errorf("NormalizedTitle() = %q", got)
	}
}

func TestMiningTextCapsReviews(t *testing.T) {
	rec := &Record{
		Synopsis: "a yakuza enforcer",
		Genres:   []string{"Crime", "Horror"},
		Reviews: []Review{
			{ReviewText: "one"}, {ReviewText: "two"}, {ReviewText: "three"},
		},
	}
	got := rec.MiningText(2)
	want := "a yakuza enforcer Crime Horror one two"
	if got != want {
		t.Errorf("MiningText = %q, want %q", got, want)
	}
}

func TestScoringTextLowercasesAndSkipsGenres(t *testing.T) {
	rec := &Record{
		Synopsis: "A Yakuza Enforcer",
		Genres:   []string{"Crime"},
		Reviews:  []Review{{ReviewText: "BRUTAL and Sincere"}},
	}
	got := rec.ScoringText(3)
	want := "a yakuza enforcer brutal and sincere"
	if got != want {
		t.Errorf("ScoringText = %q, want %q", got, want)
	}
}

func TestTopCast(t *testing.T) {
	rec := &Record{Cast: []string{"a", "b", "c"}}
	if got := rec.TopCast(5); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("TopCast(5) = %v", got)
	}
	if got := rec.TopCast(2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("TopCast(2) = %v", got)
	}
}

func TestLedgerAdmit(t *testing.T) {
	ledger := NewLedger()
	if !ledger.Admit("ichithekiller|2001") {
		t.Error("first Admit should report new")
	}
	if ledger.Admit("ichithekiller|2001") {
		t.Error("second Admit should report duplicate")
	}
	if ledger.Len() != 1 {
		t.Errorf("Len = %d, want 1", ledger.Len())
	}
}

func TestDisplayTitleFromURL(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{"title wins", Record{Title: "Zatoichi", URL: "https://example.com/film/other"}, "Zatoichi"},
		{"slug fallback", Record{URL: "https://example.com/film/blade-of-vengeance/"}, "Blade Of Vengeance"},
		{"empty both", Record{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle = %q, want %q", got, tt.want)
			}
		})
	}
}
