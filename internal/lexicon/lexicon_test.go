package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLexicon(t *testing.T) *Lexicon {
	t.Helper()
	modern := NewWordlist([]string{"the", "can", "see", "house", "Wellington"})
	historical := map[string]struct{}{"shew": {}, "connexion": {}}
	return New(
		[]string{"favour", "honour"},
		[]string{"LORDS", "COMMONS", "Hansard"},
		modern,
		historical,
	)
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	lx := testLexicon(t)

	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "empty", word: "", want: true},
		{name: "single letter", word: "a", want: true},
		{name: "preserved spelling", word: "favour", want: true},
		{name: "preserved spelling upper", word: "FAVOUR", want: true},
		{name: "preserved spelling trailing punct", word: "honour,", want: true},
		{name: "domain term", word: "LORDS", want: true},
		{name: "domain term mixed case probe", word: "hansard", want: true},
		{name: "digits", word: "1834", want: true},
		{name: "roman numeral", word: "XIV", want: true},
		{name: "modern word", word: "house", want: true},
		{name: "modern word upper-cased form", word: "The", want: true},
		{name: "modern proper noun as-is", word: "Wellington", want: true},
		{name: "historical word", word: "shew", want: true},
		{name: "historical word capitalized", word: "Connexion", want: true},
		{name: "unknown word", word: "tlie", want: false},
		{name: "unknown word trailing punct", word: "cau.", want: false},
		{name: "only punctuation after trim", word: "—.", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lx.IsValid(tt.word), "IsValid(%q)", tt.word)
		})
	}
}

func TestIsValidDegradedWithoutModern(t *testing.T) {
	t.Parallel()

	lx := New(nil, nil, nil, map[string]struct{}{"shew": {}})
	assert.False(t, lx.HasModern())
	assert.True(t, lx.IsValid("shew"), "historical layer still works")
	assert.False(t, lx.IsValid("house"), "modern layer skipped, not crashed")
}

func TestAddPreserved(t *testing.T) {
	t.Parallel()

	lx := New(nil, nil, nil, nil)
	assert.False(t, lx.IsValid("Bourne"))
	lx.AddPreserved("Bourne")
	assert.True(t, lx.IsValid("Bourne"))
	assert.True(t, lx.IsValid("bourne"))

	lx.RemovePreserved("bourne")
	assert.False(t, lx.IsValid("Bourne"))
}

func TestOpenWordlist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("the\ncan\n\nsee\n"), 0o644))

	wl, err := OpenWordlist(path)
	require.NoError(t, err)
	assert.Equal(t, 3, wl.Len())
	assert.True(t, wl.Contains("can"))
	assert.False(t, wl.Contains("cau"))
}

func TestOpenWordlistEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	wl, err := OpenWordlist(path)
	require.NoError(t, err)
	assert.Equal(t, 0, wl.Len())
}

func TestLoadHistorical(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hist.txt")
	require.NoError(t, os.WriteFile(path, []byte("Shew\nconnexion\n"), 0o644))

	set, err := LoadHistorical(path)
	require.NoError(t, err)
	_, ok := set["shew"]
	assert.True(t, ok, "entries are lower-cased")
	assert.Len(t, set, 2)
}

func TestFallbackHistorical(t *testing.T) {
	t.Parallel()

	set := FallbackHistorical()
	_, ok := set["connexion"]
	assert.True(t, ok)
	_, ok = set["shewn"]
	assert.True(t, ok)
}
