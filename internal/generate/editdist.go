package generate

import (
	"sort"
	"strings"

	"ocrfix/internal/corrector"
	"ocrfix/internal/lexicon"
	"ocrfix/internal/ngram"
	"ocrfix/internal/vocab"
)

const (
	editBaseNumerator  = 0.5 // base confidence is editBaseNumerator / distance
	editDictBonus      = 0.3
	editContextDivisor = 5.0
	editContextCap     = 0.3
)

// EditDistanceGenerator searches the vocabulary index for words within a
// bounded edit distance. The most expensive generator; the pipeline invokes
// it only when the cheap generators found nothing.
type EditDistanceGenerator struct {
	idx     *vocab.Index
	lex     *lexicon.Lexicon
	model   *ngram.Model // nil disables the context bonus
	maxDist int
}

// NewEditDistanceGenerator wires the generator to a built index. model may
// be nil, in which case the context term contributes zero.
func NewEditDistanceGenerator(idx *vocab.Index, lex *lexicon.Lexicon, model *ngram.Model, maxDist int) *EditDistanceGenerator {
	if maxDist < 1 {
		maxDist = 1
	}
	return &EditDistanceGenerator{idx: idx, lex: lex, model: model, maxDist: maxDist}
}

func (g *EditDistanceGenerator) Name() string { return "edit_distance" }

// Generate computes edit distance only for entries surviving the
// index's bucket and length prefilters, keeps 0 < d <= maxDist, and returns
// the top candidates by confidence. Confidence combines a base term
// inversely proportional to distance, a dictionary-validity bonus, and a
// context bonus when the candidate's trigram score beats the original's.
func (g *EditDistanceGenerator) Generate(word string, context []string) []Candidate {
	lower := strings.ToLower(word)
	var out []Candidate
	for _, e := range g.idx.Search(lower, g.maxDist) {
		d := corrector.Distance(lower, e.Word)
		if d == 0 || d > g.maxDist {
			continue
		}
		conf := editBaseNumerator / float64(d)
		if g.lex.IsValid(e.Word) {
			conf += editDictBonus
		}
		conf += g.contextBonus(lower, e.Word, context)
		out = append(out, Candidate{Word: e.Word, Confidence: clamp01(conf)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Word < out[j].Word
	})
	if k := g.idx.TopK(); len(out) > k {
		out = out[:k]
	}
	return out
}

// contextBonus rewards candidates that read better than the original in
// their trigram context. Zero when the model is disabled or fewer than two
// context words are available.
func (g *EditDistanceGenerator) contextBonus(original, candidate string, context []string) float64 {
	if g.model == nil || len(context) < 2 {
		return 0
	}
	w1, w2 := context[len(context)-2], context[len(context)-1]
	improvement := g.model.ScoreTrigram(w1, w2, candidate) - g.model.ScoreTrigram(w1, w2, original)
	if improvement <= 0 {
		return 0
	}
	bonus := improvement / editContextDivisor
	if bonus > editContextCap {
		bonus = editContextCap
	}
	return bonus
}
