// Package lexicon implements the layered word-validity oracle and its
// dictionary sources: a preserved-spelling whitelist, curated domain terms,
// a modern wordlist, and a historical dictionary.
package lexicon

import (
	"strings"
	"unicode/utf8"
)

// trailing punctuation stripped before any dictionary probe
const trailingPunct = ".,;:!?—"

// Lexicon answers "is this word valid" against several sources, checked in a
// fixed short-circuit order. It is read-only after construction and safe for
// concurrent use.
type Lexicon struct {
	preserved  map[string]struct{} // lower-cased
	domain     map[string]struct{} // upper-cased
	modern     *Wordlist           // nil when unavailable (degraded mode)
	historical map[string]struct{} // lower-cased
}

// New builds a Lexicon. preserved entries are stored lower-cased, domain
// entries upper-cased. modern may be nil: the modern-dictionary layer is then
// skipped without failing, trading accuracy for availability.
func New(preserved, domain []string, modern *Wordlist, historical map[string]struct{}) *Lexicon {
	lx := &Lexicon{
		preserved:  make(map[string]struct{}, len(preserved)),
		domain:     make(map[string]struct{}, len(domain)),
		modern:     modern,
		historical: historical,
	}
	for _, w := range preserved {
		lx.preserved[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range domain {
		lx.domain[strings.ToUpper(w)] = struct{}{}
	}
	if lx.historical == nil {
		lx.historical = map[string]struct{}{}
	}
	return lx
}

// AddPreserved extends the whitelist before the lexicon is frozen into the
// pipeline. Not safe to call concurrently with IsValid.
func (lx *Lexicon) AddPreserved(words ...string) {
	for _, w := range words {
		lx.preserved[strings.ToLower(w)] = struct{}{}
	}
}

// RemovePreserved drops words from the whitelist. Not safe to call
// concurrently with IsValid.
func (lx *Lexicon) RemovePreserved(words ...string) {
	for _, w := range words {
		delete(lx.preserved, strings.ToLower(w))
	}
}

// HasModern reports whether the modern-dictionary layer is available.
func (lx *Lexicon) HasModern() bool { return lx.modern != nil }

// IsValid reports whether word passes any validity layer. Layers are probed
// in order, first hit wins:
//
//  1. shorter than two runes
//  2. preserved-spelling whitelist (case-insensitive)
//  3. domain terms (upper-cased probe)
//  4. pure digits or pure Roman-numeral letters
//  5. modern wordlist, as-is then lower-cased (skipped when unavailable)
//  6. historical dictionary (case-insensitive)
//
// Trailing sentence punctuation is stripped before layers 2-6.
func (lx *Lexicon) IsValid(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return true
	}

	clean := strings.TrimRight(word, trailingPunct)
	if clean == "" {
		return true
	}
	lower := strings.ToLower(clean)

	if _, ok := lx.preserved[lower]; ok {
		return true
	}
	if _, ok := lx.domain[strings.ToUpper(clean)]; ok {
		return true
	}
	if isDigits(clean) || isRoman(clean) {
		return true
	}
	if lx.modern != nil {
		if lx.modern.Contains(clean) || lx.modern.Contains(lower) {
			return true
		}
	}
	if _, ok := lx.historical[lower]; ok {
		return true
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isRoman(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("IVXLCDM", r) {
			return false
		}
	}
	return len(s) > 0
}
