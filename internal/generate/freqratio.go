package generate

import (
	"strings"
	"unicode/utf8"

	"ocrfix/internal/corrector"
	"ocrfix/internal/vocab"
)

// ratioEntry is the precomputed correction for one rare word.
type ratioEntry struct {
	word       string
	confidence float64
}

// FreqRatioGenerator looks rare words up in a table derived from corpus-wide
// rare/common pair statistics. The cheapest generator: a single map probe.
type FreqRatioGenerator struct {
	table map[string]ratioEntry
}

// NewFreqRatioGenerator precomputes tiered confidences for every discovered
// pair, keeping the highest-confidence correction per rare word.
func NewFreqRatioGenerator(pairs []vocab.Pair) *FreqRatioGenerator {
	table := make(map[string]ratioEntry, len(pairs))
	for _, p := range pairs {
		if p.RareCount == 0 || p.CorrectCount == 0 {
			continue
		}
		conf := ratioConfidence(p)
		rare := strings.ToLower(p.Rare)
		if prev, ok := table[rare]; !ok || conf > prev.confidence {
			table[rare] = ratioEntry{word: p.Correct, confidence: conf}
		}
	}
	return &FreqRatioGenerator{table: table}
}

// ratioConfidence tiers on how much more common the correct word is, nudges
// for edit distance, and penalizes corrections toward uncommon words.
func ratioConfidence(p vocab.Pair) float64 {
	ratio := float64(p.CorrectCount) / float64(p.RareCount)
	var conf float64
	switch {
	case ratio >= 50:
		conf = 0.95
	case ratio >= 20:
		conf = 0.90
	case ratio >= 10:
		conf = 0.85
	default:
		conf = 0.70
	}
	switch p.Distance {
	case 1:
		conf += 0.03
	case 2:
		conf += 0.01
	}
	if p.CorrectCount < 30 {
		conf -= 0.10
	}
	return clamp01(conf)
}

func (g *FreqRatioGenerator) Name() string { return "frequency_ratio" }

// Len returns the number of rare words with a precomputed correction.
func (g *FreqRatioGenerator) Len() int { return len(g.table) }

// Generate returns the table hit for word, or nothing. Words shaped like
// proper nouns (initial cap, rest lower) and multi-letter all-caps words are
// skipped entirely: those are names and acronyms, not misreads. The
// occurrence's own capitalization is restored later by the corrector.
func (g *FreqRatioGenerator) Generate(word string, _ []string) []Candidate {
	if corrector.IsTitle(word) && utf8.RuneCountInString(word) > 1 {
		return nil
	}
	if corrector.IsUpper(word) && utf8.RuneCountInString(word) > 1 {
		return nil
	}
	entry, ok := g.table[strings.ToLower(word)]
	if !ok {
		return nil
	}
	return []Candidate{{Word: entry.word, Confidence: entry.confidence}}
}
