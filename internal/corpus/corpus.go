// Package corpus models the text units the correction pipeline operates on
// and loads/saves the page-oriented JSON corpus format.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
)

// Unit is one page-sized string of OCR output. Text is never mutated in
// place: the pipeline computes offsets against the pristine string and
// produces a corrected copy.
type Unit struct {
	ID   int    `json:"index"`
	Text string `json:"markdown"`
}

// File is the on-disk corpus envelope.
type File struct {
	Pages []Unit `json:"pages"`
}

// Load reads a corpus JSON file and returns its units in order.
func Load(path string) ([]Unit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return f.Pages, nil
}

// Save writes units back in the same envelope format.
func Save(path string, units []Unit) error {
	raw, err := json.MarshalIndent(File{Pages: units}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	return nil
}
