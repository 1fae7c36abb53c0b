// Package generate contains the candidate generators: interchangeable
// strategies that propose replacement words for a flagged token with a
// confidence score, plus the merge step that reconciles their output.
package generate

import "sort"

// Candidate is one proposed replacement with its confidence in [0, 1].
type Candidate struct {
	Word       string
	Confidence float64
}

// Generator produces ranked candidates for a flagged word. context carries
// the lower-cased words preceding the occurrence (most recent last);
// generators that do not use context ignore it. Implementations are
// read-only after construction and safe for concurrent use.
type Generator interface {
	Name() string
	Generate(word string, context []string) []Candidate
}

// Merge combines candidate lists into one ranked list: the maximum
// confidence per distinct word, sorted descending by confidence with
// lexicographic word order breaking ties. The top entry is the single
// decision point for auto-application.
func Merge(lists ...[]Candidate) []Candidate {
	best := make(map[string]float64)
	for _, list := range lists {
		for _, c := range list {
			if conf, ok := best[c.Word]; !ok || c.Confidence > conf {
				best[c.Word] = c.Confidence
			}
		}
	}
	if len(best) == 0 {
		return nil
	}
	out := make([]Candidate, 0, len(best))
	for w, conf := range best {
		out = append(out, Candidate{Word: w, Confidence: conf})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Word < out[j].Word
	})
	return out
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
