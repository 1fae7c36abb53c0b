// Package report accumulates per-unit correction results into a run summary
// and writes the machine-readable artifacts: a JSONL correction log and an
// aggregate statistics file.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// LogEntry is one applied correction, traceable back to its unit and offset.
type LogEntry struct {
	UnitID     int     `json:"unit_id"`
	Offset     int     `json:"offset"`
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"`
	Generator  string  `json:"generator,omitempty"`
}

// PairCount is one original/corrected pair with its occurrence count, for
// the most-frequent-corrections table.
type PairCount struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Count     int    `json:"count"`
}

// Stats summarizes a full run.
type Stats struct {
	Units          int            `json:"units"`
	ErrorsFound    int            `json:"errors_found"`
	Applied        int            `json:"corrections_applied"`
	BelowThreshold int            `json:"below_threshold"`
	ErrorsByTag    map[string]int `json:"errors_by_tag"`
	TopCorrections []PairCount    `json:"top_corrections"`
}

// topCorrectionsLimit caps the pair table in the stats file.
const topCorrectionsLimit = 20

// Aggregator folds per-unit results into totals. Addition is commutative, so
// units may be folded in any order regardless of worker scheduling.
type Aggregator struct {
	stats Stats
	pairs map[[2]string]int
	log   []LogEntry
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		stats: Stats{ErrorsByTag: map[string]int{}},
		pairs: map[[2]string]int{},
	}
}

// AddUnit folds one processed unit: its error count by tag, the corrections
// that were applied, and how many flagged words fell below the threshold.
func (a *Aggregator) AddUnit(errorsByTag map[string]int, applied []LogEntry, belowThreshold int) {
	a.stats.Units++
	for tag, n := range errorsByTag {
		a.stats.ErrorsFound += n
		a.stats.ErrorsByTag[tag] += n
	}
	a.stats.Applied += len(applied)
	a.stats.BelowThreshold += belowThreshold
	for _, e := range applied {
		a.pairs[[2]string{e.Original, e.Corrected}]++
	}
	a.log = append(a.log, applied...)
}

// Log returns every applied correction, ordered by unit then offset.
func (a *Aggregator) Log() []LogEntry {
	out := make([]LogEntry, len(a.log))
	copy(out, a.log)
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitID != out[j].UnitID {
			return out[i].UnitID < out[j].UnitID
		}
		return out[i].Offset < out[j].Offset
	})
	return out
}

// Stats finalizes the summary, including the top correction pairs by count.
func (a *Aggregator) Stats() Stats {
	s := a.stats
	s.TopCorrections = make([]PairCount, 0, len(a.pairs))
	for pair, n := range a.pairs {
		s.TopCorrections = append(s.TopCorrections, PairCount{Original: pair[0], Corrected: pair[1], Count: n})
	}
	sort.Slice(s.TopCorrections, func(i, j int) bool {
		if s.TopCorrections[i].Count != s.TopCorrections[j].Count {
			return s.TopCorrections[i].Count > s.TopCorrections[j].Count
		}
		if s.TopCorrections[i].Original != s.TopCorrections[j].Original {
			return s.TopCorrections[i].Original < s.TopCorrections[j].Original
		}
		return s.TopCorrections[i].Corrected < s.TopCorrections[j].Corrected
	})
	if len(s.TopCorrections) > topCorrectionsLimit {
		s.TopCorrections = s.TopCorrections[:topCorrectionsLimit]
	}
	return s
}

// WriteLog streams entries as JSONL, one correction per line.
func WriteLog(w io.Writer, entries []LogEntry) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode log entry %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// WriteStats writes the summary as indented JSON.
func WriteStats(w io.Writer, s Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return nil
}
