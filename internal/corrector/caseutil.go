package corrector

import "strings"

// IsTitle reports whether s starts upper-case with the remainder lower-case.
func IsTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

// IsUpper reports whether s has no lower-case letters.
func IsUpper(s string) bool { return strings.ToUpper(s) == s }

// Title upper-cases the first rune and lower-cases the rest.
func Title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// MatchCase transfers the case pattern of original onto replacement:
// all-caps stays all-caps, initial-cap stays initial-cap, anything else is
// returned unchanged.
func MatchCase(original, replacement string) string {
	switch {
	case original == "" || replacement == "":
		return replacement
	case IsUpper(original):
		return strings.ToUpper(replacement)
	case startsUpper(original):
		return Title(replacement)
	default:
		return replacement
	}
}

func startsUpper(s string) bool {
	r := []rune(s)
	return len(r) > 0 && strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[0])) != string(r[0])
}
