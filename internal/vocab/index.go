// Package vocab builds the bounded, frequency-filtered vocabulary index used
// as the search space for edit-distance matching, and derives the rare/common
// correction pairs behind the frequency-ratio generator.
package vocab

import (
	"sort"
	"strings"

	"ocrfix/internal/corpus"
	"ocrfix/internal/lexicon"
	"ocrfix/pkg/options"
)

// Entry is one indexed word with its corpus frequency.
type Entry struct {
	Word  string
	Count int
}

// Index is a first-letter-bucketed view of the most frequent valid corpus
// words. Built once per run, read-only afterwards.
type Index struct {
	opts    options.VocabOptions
	buckets map[byte][]Entry
	size    int
	counts  map[string]int // lower-cased counts of every corpus word
}

// Build samples every SampleStride-th unit, counts words case-insensitively,
// keeps at most MaxSize of the most frequent words with count >= MinFrequency
// that the lexicon accepts, and buckets them by first byte.
func Build(units []corpus.Unit, lex *lexicon.Lexicon, opts ...options.Option) *Index {
	vo := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&vo)
	}

	counts := make(map[string]int, 1<<15)
	for i, u := range units {
		if vo.SampleStride > 1 && i%vo.SampleStride != 0 {
			continue
		}
		for _, w := range corpus.Words(u.Text) {
			counts[w]++
		}
	}

	entries := make([]Entry, 0, len(counts))
	for w, c := range counts {
		if c < vo.MinFrequency {
			continue
		}
		if lex != nil && !lex.IsValid(w) {
			continue
		}
		entries = append(entries, Entry{Word: w, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	if len(entries) > vo.MaxSize {
		entries = entries[:vo.MaxSize]
	}

	idx := &Index{
		opts:    vo,
		buckets: make(map[byte][]Entry),
		size:    len(entries),
		counts:  counts,
	}
	for _, e := range entries {
		b := e.Word[0]
		idx.buckets[b] = append(idx.buckets[b], e)
	}
	return idx
}

// Size returns the number of indexed words.
func (idx *Index) Size() int { return idx.size }

// Count returns the corpus frequency of word (case-insensitive), including
// words that did not make it into the index.
func (idx *Index) Count(word string) int {
	return idx.counts[strings.ToLower(word)]
}

// Search returns indexed entries that survive the cheap prefilters for word:
// bucket first letters within BucketSpread of the word's first letter, and
// length within maxDist. At most MaxChecks entries are returned; no distance
// is computed here.
func (idx *Index) Search(word string, maxDist int) []Entry {
	lower := strings.ToLower(word)
	if lower == "" {
		return nil
	}
	first := lower[0]

	var out []Entry
	checked := 0
	for off := -idx.opts.BucketSpread; off <= idx.opts.BucketSpread; off++ {
		b := int(first) + off
		if b < 'a' || b > 'z' {
			continue
		}
		for _, e := range idx.buckets[byte(b)] {
			if checked >= idx.opts.MaxChecks {
				return out
			}
			if abs(len(e.Word)-len(lower)) > maxDist {
				continue
			}
			checked++
			out = append(out, e)
		}
	}
	return out
}

// TopK returns the configured per-lookup candidate cap.
func (idx *Index) TopK() int { return idx.opts.TopK }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
