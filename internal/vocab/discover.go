package vocab

import (
	"sort"

	"ocrfix/internal/corrector"
)

// Pair links a rare corpus word to the frequent word it is most likely a
// misread of, with the statistics the frequency-ratio generator scores on.
type Pair struct {
	Rare         string
	Correct      string
	RareCount    int
	CorrectCount int
	Distance     int
}

const (
	rareMaxCount  = 3  // words at most this frequent are error suspects
	rareMinLength = 4  // shorter rare words are too ambiguous to pair
	ratioFloor    = 10 // frequent word must be at least this many times more common
	pairMaxDist   = 2
)

// DiscoverPairs scans the index's frequency table for rare words and matches
// each against nearby frequent indexed words. A pair is kept when the
// frequent word is at least ratioFloor times more common than the rare one;
// the closest (then most frequent) match wins.
func DiscoverPairs(idx *Index) []Pair {
	var pairs []Pair
	for word, count := range idx.counts {
		if count > rareMaxCount || len(word) < rareMinLength {
			continue
		}
		best, ok := idx.closest(word, count)
		if !ok {
			continue
		}
		pairs = append(pairs, best)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Rare < pairs[j].Rare })
	return pairs
}

func (idx *Index) closest(rare string, rareCount int) (Pair, bool) {
	var best Pair
	found := false
	for _, e := range idx.Search(rare, pairMaxDist) {
		d := corrector.Distance(rare, e.Word)
		if d == 0 || d > pairMaxDist {
			continue
		}
		if e.Count < rareCount*ratioFloor {
			continue
		}
		if !found || d < best.Distance || (d == best.Distance && e.Count > best.CorrectCount) {
			best = Pair{
				Rare:         rare,
				Correct:      e.Word,
				RareCount:    rareCount,
				CorrectCount: e.Count,
				Distance:     d,
			}
			found = true
		}
	}
	return best, found
}
