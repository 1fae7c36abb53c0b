package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "no words",
			text: "1834 — §12",
			want: nil,
		},
		{
			name: "simple sentence",
			text: "He cau see it.",
			want: []Token{
				{Text: "He", Start: 0, End: 2},
				{Text: "cau", Start: 3, End: 6},
				{Text: "see", Start: 7, End: 10},
				{Text: "it", Start: 11, End: 13},
			},
		},
		{
			name: "punctuation and digits split words",
			text: "HOUSE OF LORDS, 12 May: adjourned.",
			want: []Token{
				{Text: "HOUSE", Start: 0, End: 5},
				{Text: "OF", Start: 6, End: 8},
				{Text: "LORDS", Start: 9, End: 14},
				{Text: "May", Start: 19, End: 22},
				{Text: "adjourned", Start: 24, End: 33},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.text)
			require.Equal(t, tt.want, got)
			for _, tok := range got {
				assert.Equal(t, tok.Text, tt.text[tok.Start:tok.End], "offset invariant")
			}
		})
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	got := Words("The DUKE of Wellington")
	assert.Equal(t, []string{"the", "duke", "of", "wellington"}, got)
}
