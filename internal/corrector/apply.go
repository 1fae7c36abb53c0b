package corrector

import "sort"

// Span is one accepted-candidate replacement: the original token's byte
// range in the pristine text and the suggested word with its merged
// confidence.
type Span struct {
	Start      int
	End        int
	Original   string
	Suggestion string
	Confidence float64
}

// Apply rewrites text with every span whose confidence reaches threshold.
// Spans must carry offsets into text before any mutation. Replacements are
// applied in descending offset order, so offsets of lower spans stay valid
// throughout and untouched byte ranges come out identical.
//
// The suggestion's case is matched to the original token before splicing.
// Returns the corrected text and the spans actually applied (with Suggestion
// rewritten to the cased form), in application order.
func Apply(text string, spans []Span, threshold float64) (string, []Span) {
	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start > ordered[j].Start })

	var applied []Span
	for _, sp := range ordered {
		if sp.Suggestion == "" || sp.Confidence < threshold {
			continue
		}
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}
		cased := MatchCase(sp.Original, sp.Suggestion)
		if cased == sp.Original {
			continue
		}
		text = text[:sp.Start] + cased + text[sp.End:]
		sp.Suggestion = cased
		applied = append(applied, sp)
	}
	return text, applied
}
