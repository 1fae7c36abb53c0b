package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	units := []Unit{
		{ID: 0, Text: "THE HOUSE OF LORDS."},
		{ID: 1, Text: "He cau see it."},
		{ID: 2, Text: ""},
	}
	require.NoError(t, Save(path, units))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, units, got)
}

func TestLoadEnvelopeFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corpus.json")
	raw := `{"pages": [{"index": 7, "markdown": "Mr. Speaker rose."}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
	assert.Equal(t, "Mr. Speaker rose.", got[0].Text)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
