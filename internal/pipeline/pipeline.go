// Package pipeline orchestrates a correction run: bootstrap the lexicon
// sources, build the frozen vocabulary index and language model, detect and
// correct every unit with a worker pool, and aggregate the results.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"ocrfix/internal/corpus"
	"ocrfix/internal/corrector"
	"ocrfix/internal/generate"
	"ocrfix/internal/lexicon"
	"ocrfix/internal/ngram"
	"ocrfix/internal/report"
	"ocrfix/internal/vocab"
	"ocrfix/pkg/options"
)

const (
	tagUnknownWord   = "unknown_word"
	tagLowNgramScore = "low_ngram_score"
)

// ErrorCandidate is one flagged word occurrence with the evidence gathered
// for it: why it was flagged and the merged, ranked replacement suggestions.
type ErrorCandidate struct {
	UnitID      int
	Token       corpus.Token
	Tags        []string
	Suggestions []generate.Candidate
	Source      string // generator behind the top suggestion
}

// Pipeline holds the shared read-only state of a run. Bootstrap and Build
// must complete before Run or CorrectText; afterwards every method is safe
// for concurrent use.
type Pipeline struct {
	cfg    Config
	logger *log.Logger

	lex     *lexicon.Lexicon
	idx     *vocab.Index
	model   *ngram.Model
	cheap   []generate.Generator // consulted for every flagged word
	editGen generate.Generator   // consulted only when cheap generators stay silent
}

// New creates an unbootstrapped pipeline. logger may be nil.
func New(cfg Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger.With("component", "pipeline")}
}

// Lexicon exposes the bootstrapped lexicon, for callers that mutate the
// whitelist between runs.
func (p *Pipeline) Lexicon() *lexicon.Lexicon { return p.lex }

// Bootstrap assembles the lexicon from its sources. Every source is
// optional: a missing modern wordlist, a failed dictionary download, or an
// unreachable Redis store each degrade with a warning instead of failing.
func (p *Pipeline) Bootstrap(store *lexicon.Store) error {
	var modern *lexicon.Wordlist
	if p.cfg.ModernWordlistPath != "" {
		wl, err := lexicon.OpenWordlist(p.cfg.ModernWordlistPath)
		if err != nil {
			p.logger.Warn("modern wordlist unavailable, dictionary layer degraded",
				"path", p.cfg.ModernWordlistPath, "err", err)
		} else {
			modern = wl
			p.logger.Info("modern wordlist loaded", "words", wl.Len())
		}
	} else {
		p.logger.Warn("no modern wordlist configured, dictionary layer degraded")
	}

	historical := lexicon.FallbackHistorical()
	if path, err := lexicon.EnsureHistorical(p.cfg.DataDir, p.cfg.HistoricalURL); err != nil {
		p.logger.Warn("historical dictionary unavailable, using built-in fallback", "err", err)
	} else if set, err := lexicon.LoadHistorical(path); err != nil {
		p.logger.Warn("historical dictionary unreadable, using built-in fallback", "path", path, "err", err)
	} else {
		historical = set
		p.logger.Info("historical dictionary loaded", "words", len(set))
	}

	p.lex = lexicon.New(p.cfg.PreservedSpellings, p.cfg.DomainTerms, modern, historical)

	if store != nil {
		words, err := store.All()
		if err != nil {
			p.logger.Warn("preserved-spelling store unreachable, using static whitelist", "err", err)
		} else {
			p.lex.AddPreserved(words...)
			p.logger.Info("preserved spellings merged from store", "words", len(words))
		}
	}
	return nil
}

// Build makes one sampled pass over the corpus to construct the vocabulary
// index, the trigram model, and the frequency-ratio table, then wires the
// generators. The pipeline is frozen once Build returns.
func (p *Pipeline) Build(units []corpus.Unit) error {
	if p.lex == nil {
		return fmt.Errorf("build: pipeline not bootstrapped")
	}

	p.idx = vocab.Build(units, p.lex,
		options.WithMinFrequency(p.cfg.MinVocabFrequency),
		options.WithMaxSize(p.cfg.MaxVocabSize),
		options.WithSampleStride(p.cfg.SampleStride),
	)
	p.logger.Info("vocabulary index built", "words", p.idx.Size())

	if p.cfg.UseNgramContext {
		p.model = ngram.NewModel()
		p.model.Train(units, p.cfg.SampleStride)
		p.logger.Info("trigram model trained",
			"tokens", p.model.TotalWords(), "vocab", p.model.VocabSize())
	}

	pairs := vocab.DiscoverPairs(p.idx)
	freq := generate.NewFreqRatioGenerator(pairs)
	p.logger.Info("correction pairs discovered", "pairs", freq.Len())

	p.cheap = []generate.Generator{
		freq,
		generate.NewConfusionGenerator(p.cfg.ConfusionPatterns, p.lex),
	}
	p.editGen = generate.NewEditDistanceGenerator(p.idx, p.lex, p.model, p.cfg.MaxEditDistance)
	return nil
}

// Detect flags suspicious words in one unit and attaches ranked suggestions.
// Words the lexicon accepts are never flagged as errors; implausible trigram
// contexts add a diagnostic tag without triggering correction on their own.
func (p *Pipeline) Detect(u corpus.Unit) []ErrorCandidate {
	tokens := corpus.Tokenize(u.Text)
	if len(tokens) == 0 {
		return nil
	}
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = strings.ToLower(t.Text)
	}

	lowScore := map[int]bool{}
	if p.model != nil {
		for _, i := range p.model.LowScores(words, p.cfg.MinNgramScore) {
			lowScore[i] = true
		}
	}

	var out []ErrorCandidate
	for i, t := range tokens {
		var tags []string
		if !p.lex.IsValid(t.Text) {
			tags = append(tags, tagUnknownWord)
		}
		if lowScore[i] {
			tags = append(tags, tagLowNgramScore)
		}
		if len(tags) == 0 {
			continue
		}

		ec := ErrorCandidate{UnitID: u.ID, Token: t, Tags: tags}
		if tags[0] == tagUnknownWord {
			ctx := words[max(0, i-2):i]
			ec.Suggestions, ec.Source = p.suggest(t.Text, ctx, &ec.Tags)
		}
		out = append(out, ec)
	}
	return out
}

// suggest runs the cheap generators, falling back to the edit-distance
// search only when both stay silent, and merges the results.
func (p *Pipeline) suggest(word string, ctx []string, tags *[]string) ([]generate.Candidate, string) {
	var lists [][]generate.Candidate
	var names []string
	for _, g := range p.cheap {
		if cands := g.Generate(word, ctx); len(cands) > 0 {
			lists = append(lists, cands)
			names = append(names, g.Name())
		}
	}
	if len(lists) == 0 {
		if cands := p.editGen.Generate(word, ctx); len(cands) > 0 {
			lists = append(lists, cands)
			names = append(names, p.editGen.Name())
		}
	}
	if len(lists) == 0 {
		return nil, ""
	}

	merged := generate.Merge(lists...)
	*tags = append(*tags, names...)
	return merged, sourceOf(merged[0], lists, names)
}

// sourceOf names the generator that produced the winning candidate.
func sourceOf(top generate.Candidate, lists [][]generate.Candidate, names []string) string {
	for i, list := range lists {
		for _, c := range list {
			if c.Word == top.Word && c.Confidence == top.Confidence {
				return names[i]
			}
		}
	}
	return ""
}

// unitResult is everything one worker produces for one unit.
type unitResult struct {
	unit           corpus.Unit
	errorsByTag    map[string]int
	applied        []report.LogEntry
	belowThreshold int
}

// correctUnit detects, decides, and applies for a single unit.
func (p *Pipeline) correctUnit(u corpus.Unit) unitResult {
	res := unitResult{unit: u, errorsByTag: map[string]int{}}

	cands := p.Detect(u)
	if len(cands) == 0 {
		return res
	}

	var spans []corrector.Span
	sources := map[int]string{} // span start -> generator name
	for _, ec := range cands {
		for _, tag := range ec.Tags {
			// generator names are also carried in Tags; only detection
			// tags count as errors
			if tag == tagUnknownWord || tag == tagLowNgramScore {
				res.errorsByTag[tag]++
			}
		}
		if len(ec.Suggestions) == 0 {
			continue
		}
		top := ec.Suggestions[0]
		if top.Confidence < p.cfg.AutoApplyThreshold {
			res.belowThreshold++
			continue
		}
		spans = append(spans, corrector.Span{
			Start:      ec.Token.Start,
			End:        ec.Token.End,
			Original:   ec.Token.Text,
			Suggestion: top.Word,
			Confidence: top.Confidence,
		})
		sources[ec.Token.Start] = ec.Source
	}

	corrected, applied := corrector.Apply(u.Text, spans, p.cfg.AutoApplyThreshold)
	res.unit.Text = corrected
	for _, s := range applied {
		res.applied = append(res.applied, report.LogEntry{
			UnitID:     u.ID,
			Offset:     s.Start,
			Original:   s.Original,
			Corrected:  s.Suggestion,
			Confidence: s.Confidence,
			Generator:  sources[s.Start],
		})
	}
	return res
}

// Run corrects every unit with a bounded worker pool and aggregates the
// results. Shared pipeline state is read-only in this phase, so workers only
// write their own slot of the results slice.
func (p *Pipeline) Run(ctx context.Context, units []corpus.Unit) ([]corpus.Unit, *report.Aggregator, error) {
	if p.editGen == nil {
		return nil, nil, fmt.Errorf("run: pipeline not built")
	}

	results := make([]unitResult, len(units))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.workers())
	for i, u := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = p.correctUnit(u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("correct units: %w", err)
	}

	agg := report.NewAggregator()
	corrected := make([]corpus.Unit, len(units))
	for i, r := range results {
		corrected[i] = r.unit
		agg.AddUnit(r.errorsByTag, r.applied, r.belowThreshold)
	}

	stats := agg.Stats()
	p.logger.Info("run complete",
		"units", stats.Units,
		"errors", stats.ErrorsFound,
		"applied", stats.Applied,
		"below_threshold", stats.BelowThreshold)
	return corrected, agg, nil
}

// CorrectText corrects a single free-standing text, for the HTTP service.
func (p *Pipeline) CorrectText(text string) (string, []report.LogEntry, error) {
	if p.editGen == nil {
		return "", nil, fmt.Errorf("correct: pipeline not built")
	}
	res := p.correctUnit(corpus.Unit{ID: 0, Text: text})
	return res.unit.Text, res.applied, nil
}

