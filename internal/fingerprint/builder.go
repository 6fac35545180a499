package fingerprint

import (
	"errors"
	"math"
	"sort"

	"whitemask/internal/catalog"
	"whitemask/internal/history"
	"whitemask/internal/textkit"
)

// ErrNoMotifs is returned when no motif survives the frequency and diversity
// filters; the stage then produces no lexicon at all rather than an empty one.
var ErrNoMotifs = errors.New("no motifs survived filtering")

// Config holds the estimator tunables.
type Config struct {
	Alpha                float64
	MinLikedFreq         int
	MinDirectorDiversity int
	BaselineCap          int
	ReviewCap            int
}

// Entry is one persisted lexicon row.
type Entry struct {
	Motif     string
	Score     float64
	Directors int
	LikedFreq int
}

// Outcome classifies what a single record contributed to the builder.
type Outcome int

const (
	// OutcomeDuplicate means the record's identity was already counted.
	OutcomeDuplicate Outcome = iota
	// OutcomeLiked means the record matched the personal list and fed the
	// liked statistics.
	OutcomeLiked
	// OutcomeBaseline means the record fed the baseline sample.
	OutcomeBaseline
	// OutcomeSkipped means the baseline cap was already reached and the
	// record was not liked, so it contributed nothing.
	OutcomeSkipped
)

// Builder accumulates motif statistics over one catalog stream and emits the
// scored lexicon. It owns all of its mutable state; construct one per run.
type Builder struct {
	cfg     Config
	matcher *history.Matcher
	ledger  *catalog.Ledger

	likedFreq      map[string]int
	baselineFreq   map[string]int
	motifDirectors map[string]map[string]struct{}

	likedCount    int
	baselineCount int
}

// NewBuilder creates a fresh builder for one fingerprint run.
func NewBuilder(cfg Config, matcher *history.Matcher) *Builder {
	return &Builder{
		cfg:            cfg,
		matcher:        matcher,
		ledger:         catalog.NewLedger(),
		likedFreq:      make(map[string]int),
		baselineFreq:   make(map[string]int),
		motifDirectors: make(map[string]map[string]struct{}),
	}
}

// Observe feeds one catalog record into the statistics. Duplicate identities
// contribute nothing. A liked record always counts; a non-liked record counts
// toward the baseline only while the cap has not been reached.
func (b *Builder) Observe(rec *catalog.Record) Outcome {
	if !b.ledger.Admit(rec.Key()) {
		return OutcomeDuplicate
	}

	liked := b.matcher.Liked(rec.NormalizedTitle(), int(rec.Year))
	if !liked && b.baselineCount >= b.cfg.BaselineCap {
		return OutcomeSkipped
	}

	grams := textkit.Motifs(rec.MiningText(b.cfg.ReviewCap))
	if liked {
		b.likedCount++
		for motif := range grams {
			b.likedFreq[motif]++
			set, ok := b.motifDirectors[motif]
			if !ok {
				set = make(map[string]struct{})
				b.motifDirectors[motif] = set
			}
			for _, director := range rec.Directors {
				set[director] = struct{}{}
			}
		}
		return OutcomeLiked
	}

	b.baselineCount++
	for motif := range grams {
		b.baselineFreq[motif]++
	}
	return OutcomeBaseline
}

// LikedCount reports how many distinct liked records were counted.
func (b *Builder) LikedCount() int { return b.likedCount }

// BaselineCount reports how many distinct baseline records were counted.
func (b *Builder) BaselineCount() int { return b.baselineCount }

// Build scores every surviving motif and returns the lexicon sorted by
// descending score, ties broken by motif text. Returns ErrNoMotifs when
// nothing survives the filters.
func (b *Builder) Build() ([]Entry, error) {
	entries := make([]Entry, 0, len(b.likedFreq))
	for motif, liked := range b.likedFreq {
		if liked < b.cfg.MinLikedFreq {
			continue
		}
		directors := len(b.motifDirectors[motif])
		if directors < b.cfg.MinDirectorDiversity {
			continue
		}
		entries = append(entries, Entry{
			Motif:     motif,
			Score:     b.score(liked, b.baselineFreq[motif]),
			Directors: directors,
			LikedFreq: liked,
		})
	}
	if len(entries) == 0 {
		return nil, ErrNoMotifs
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Motif < entries[j].Motif
	})
	return entries, nil
}

// score computes the smoothed log-odds ratio for one motif.
func (b *Builder) score(likedFreq, baselineFreq int) float64 {
	alpha := b.cfg.Alpha
	liked := float64(likedFreq)
	base := float64(baselineFreq)
	nLiked := float64(b.likedCount)
	nBase := float64(b.baselineCount)
	return math.Log((liked+alpha)/(nLiked-liked+alpha)) -
		math.Log((base+alpha)/(nBase-base+alpha))
}
