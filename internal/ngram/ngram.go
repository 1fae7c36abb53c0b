// Package ngram trains a trigram language model over the corpus and scores
// word sequences with Laplace smoothing. The model is an optional evidence
// source: the edit-distance generator uses it for a context bonus, and the
// pipeline flags implausible trigrams for diagnostics.
package ngram

import (
	"math"

	"ocrfix/internal/corpus"
)

// Model holds unigram/bigram/trigram counts. Populated during the build
// phase, read-only afterwards.
type Model struct {
	unigrams map[string]int
	bigrams  map[string]int
	trigrams map[string]int
	total    int
}

// NewModel returns an empty model ready for training.
func NewModel() *Model {
	return &Model{
		unigrams: make(map[string]int, 1<<15),
		bigrams:  make(map[string]int, 1<<17),
		trigrams: make(map[string]int, 1<<17),
	}
}

// Train counts every Nth unit's word sequence into the model.
func (m *Model) Train(units []corpus.Unit, stride int) {
	if stride < 1 {
		stride = 1
	}
	for i, u := range units {
		if stride > 1 && i%stride != 0 {
			continue
		}
		m.Add(corpus.Words(u.Text))
	}
}

// Add counts one word sequence.
func (m *Model) Add(words []string) {
	m.total += len(words)
	for i, w := range words {
		m.unigrams[w]++
		if i+1 < len(words) {
			m.bigrams[join2(words[i], words[i+1])]++
		}
		if i+2 < len(words) {
			m.trigrams[join3(w, words[i+1], words[i+2])]++
		}
	}
}

// TotalWords returns the number of word occurrences trained.
func (m *Model) TotalWords() int { return m.total }

// VocabSize returns the number of distinct unigrams.
func (m *Model) VocabSize() int { return len(m.unigrams) }

// ScoreTrigram returns the Laplace-smoothed log probability of w3 following
// (w1, w2). More frequent continuations score strictly higher.
func (m *Model) ScoreTrigram(w1, w2, w3 string) float64 {
	tri := m.trigrams[join3(w1, w2, w3)]
	bi := m.bigrams[join2(w1, w2)]
	return math.Log(float64(tri+1) / float64(bi+len(m.unigrams)))
}

// LowScores returns the indexes of words whose trigram score against their
// two predecessors falls below minScore. The first two positions have no
// full trigram context and are never flagged.
func (m *Model) LowScores(words []string, minScore float64) []int {
	var out []int
	for i := 2; i < len(words); i++ {
		if m.ScoreTrigram(words[i-2], words[i-1], words[i]) < minScore {
			out = append(out, i)
		}
	}
	return out
}

func join2(a, b string) string    { return a + " " + b }
func join3(a, b, c string) string { return a + " " + b + " " + c }
