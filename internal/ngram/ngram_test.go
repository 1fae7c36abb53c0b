package ngram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ocrfix/internal/corpus"
)

func TestTrainCounts(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m.Train([]corpus.Unit{{ID: 0, Text: "the noble lord said the noble lord"}}, 1)

	assert.Equal(t, 7, m.TotalWords())
	assert.Equal(t, 4, m.VocabSize())
}

func TestScoreTrigramPrefersSeenContinuations(t *testing.T) {
	t.Parallel()

	m := NewModel()
	seq := strings.Fields(strings.Repeat("the noble lord spoke . ", 20))
	m.Add(seq)

	seen := m.ScoreTrigram("the", "noble", "lord")
	unseen := m.ScoreTrigram("the", "noble", "duck")
	assert.Greater(t, seen, unseen)
}

func TestScoreTrigramMonotonicInFrequency(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m.Add([]string{"a", "b", "c"})
	m.Add([]string{"a", "b", "c"})
	m.Add([]string{"a", "b", "d"})

	assert.Greater(t, m.ScoreTrigram("a", "b", "c"), m.ScoreTrigram("a", "b", "d"))
}

func TestLowScores(t *testing.T) {
	t.Parallel()

	m := NewModel()
	for i := 0; i < 50; i++ {
		m.Add([]string{"the", "noble", "lord"})
	}

	words := []string{"the", "noble", "zzzz"}
	flagged := m.LowScores(words, m.ScoreTrigram("the", "noble", "lord"))
	assert.Equal(t, []int{2}, flagged)

	assert.Empty(t, m.LowScores([]string{"a", "b"}, 0), "too short for trigram context")
}

func TestTrainStride(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m.Train([]corpus.Unit{
		{ID: 0, Text: "alpha alpha alpha"},
		{ID: 1, Text: "beta beta beta"},
	}, 2)

	assert.Equal(t, 3, m.TotalWords(), "second unit skipped")
}
