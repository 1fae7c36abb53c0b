package corpus

import (
	"regexp"
	"strings"
)

// Token is a word occurrence with byte offsets into the original unit text.
// The invariant text[t.Start:t.End] == t.Text holds for every token, and
// tokens are non-overlapping and ordered by offset.
type Token struct {
	Text  string
	Start int
	End   int
}

var wordRe = regexp.MustCompile(`[A-Za-z]+`)

// Tokenize extracts word tokens with their positions. Non-letter runs
// (digits, punctuation, whitespace) are not returned; offsets let callers
// splice replacements without touching surrounding text.
func Tokenize(text string) []Token {
	locs := wordRe.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	tokens := make([]Token, len(locs))
	for i, loc := range locs {
		tokens[i] = Token{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]}
	}
	return tokens
}

// Words returns the lower-cased token texts of text, in order.
func Words(text string) []string {
	tokens := Tokenize(text)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = strings.ToLower(t.Text)
	}
	return words
}
