package corrector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"teh", "the", 1}, // adjacent transposition is one edit
		{"hte", "the", 1},
		{"abcd", "badc", 2},
		{"cau", "can", 1},
		{"aud", "and", 1},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b), "Distance(%q, %q)", tt.a, tt.b)
	}
}

func TestMatchCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		original, suggestion, want string
	}{
		{"TEH", "the", "THE"},
		{"Teh", "the", "The"},
		{"teh", "the", "the"},
		{"", "the", "the"},
		{"TEH", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchCase(tt.original, tt.suggestion),
			"MatchCase(%q, %q)", tt.original, tt.suggestion)
	}
}

func TestApplySingleCorrection(t *testing.T) {
	t.Parallel()

	text := "He cau see it."
	spans := []Span{
		{Start: 3, End: 6, Original: "cau", Suggestion: "can", Confidence: 0.85},
	}
	got, applied := Apply(text, spans, 0.8)
	assert.Equal(t, "He can see it.", got)
	require.Len(t, applied, 1)
	assert.Equal(t, "can", applied[0].Suggestion)
	assert.True(t, strings.HasPrefix(got, "He "))
	assert.True(t, strings.HasSuffix(got, " see it."))
}

func TestApplyBelowThresholdLeavesTextUnchanged(t *testing.T) {
	t.Parallel()

	text := "He cau see it."
	spans := []Span{
		{Start: 3, End: 6, Original: "cau", Suggestion: "can", Confidence: 0.5},
	}
	got, applied := Apply(text, spans, 0.8)
	assert.Equal(t, text, got)
	assert.Empty(t, applied)
}

// Offset-safety property: with several flagged words at known offsets and
// replacements of differing lengths, every non-corrected span must be
// byte-identical before and after.
func TestApplyPreservesUntouchedSpans(t *testing.T) {
	t.Parallel()

	text := "tiie DUEX aud the rest"
	spans := []Span{
		{Start: 0, End: 4, Original: "tiie", Suggestion: "the", Confidence: 0.9},   // shrinks
		{Start: 5, End: 9, Original: "DUEX", Suggestion: "duke", Confidence: 0.95}, // all-caps
		{Start: 10, End: 13, Original: "aud", Suggestion: "and", Confidence: 0.9},
	}
	got, applied := Apply(text, spans, 0.8)
	assert.Equal(t, "the DUKE and the rest", got)
	assert.Len(t, applied, 3)
	assert.True(t, strings.HasSuffix(got, " the rest"), "trailing untouched span intact")
	// applied in descending offset order
	assert.Equal(t, "and", applied[0].Suggestion)
	assert.Equal(t, "DUKE", applied[1].Suggestion)
	assert.Equal(t, "the", applied[2].Suggestion)
}

func TestApplyCasePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "all caps", text: "TEH", want: "THE"},
		{name: "title case", text: "Teh", want: "The"},
		{name: "lower case", text: "teh", want: "the"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spans := []Span{{Start: 0, End: 3, Original: tt.text, Suggestion: "the", Confidence: 1.0}}
			got, _ := Apply(tt.text, spans, 0.9)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplySkipsDegenerateSpans(t *testing.T) {
	t.Parallel()

	text := "short"
	spans := []Span{
		{Start: -1, End: 3, Original: "sho", Suggestion: "xxx", Confidence: 1.0},
		{Start: 2, End: 99, Original: "ort", Suggestion: "xxx", Confidence: 1.0},
		{Start: 3, End: 3, Original: "", Suggestion: "xxx", Confidence: 1.0},
	}
	got, applied := Apply(text, spans, 0.5)
	assert.Equal(t, text, got)
	assert.Empty(t, applied)
}
