package generate

import (
	"strings"

	"ocrfix/internal/lexicon"
)

const (
	confusionCaseMatchConfidence = 0.85
	confusionCaseShiftConfidence = 0.75
)

// DefaultConfusionPatterns maps substrings commonly misread by OCR on
// historical typefaces to their likely intended forms.
var DefaultConfusionPatterns = map[string][]string{
	"rn":      {"m"},
	"cl":      {"d"},
	"vv":      {"w"},
	"ii":      {"u"},
	"iu":      {"in"},
	"aud":     {"and"},
	"aad":     {"and"},
	"bnt":     {"but"},
	"cau":     {"can"},
	"thau":    {"than"},
	"wheu":    {"when"},
	"theu":    {"then"},
	"tiie":    {"the"},
	"tlie":    {"the"},
	"rnost":   {"most"},
	"raay":    {"may"},
	"couutry": {"country"},
	"LOEDS":   {"LORDS"},
	"COUONS":  {"COMMONS"},
	"DUEX":    {"DUKE"},
}

// ConfusionGenerator substitutes known misread substrings and keeps the
// results the lexicon accepts. Cheap: runs before any edit-distance search.
type ConfusionGenerator struct {
	patterns map[string][]string
	lex      *lexicon.Lexicon
}

// NewConfusionGenerator builds a generator over patterns (nil means
// DefaultConfusionPatterns).
func NewConfusionGenerator(patterns map[string][]string, lex *lexicon.Lexicon) *ConfusionGenerator {
	if patterns == nil {
		patterns = DefaultConfusionPatterns
	}
	return &ConfusionGenerator{patterns: patterns, lex: lex}
}

func (g *ConfusionGenerator) Name() string { return "confusion_pattern" }

// Generate substitutes every matching pattern. Confidence is higher when the
// wrong and right forms share a case pattern (both upper or both not), since
// a case shift usually signals a coincidental substring hit.
func (g *ConfusionGenerator) Generate(word string, _ []string) []Candidate {
	var out []Candidate
	for wrong, rights := range g.patterns {
		if !strings.Contains(word, wrong) {
			continue
		}
		for _, right := range rights {
			candidate := strings.ReplaceAll(word, wrong, right)
			if candidate == word || !g.lex.IsValid(candidate) {
				continue
			}
			conf := confusionCaseShiftConfidence
			if isUpperStr(wrong) == isUpperStr(right) {
				conf = confusionCaseMatchConfidence
			}
			out = append(out, Candidate{Word: candidate, Confidence: conf})
		}
	}
	return out
}

// isUpperStr reports whether s contains letters and they are all upper-case.
func isUpperStr(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
