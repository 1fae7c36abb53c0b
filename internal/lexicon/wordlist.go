package lexicon

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Wordlist is an in-memory set of words loaded from a word-per-line file.
// Large wordlists are scanned through a read-only memory mapping so the file
// is never buffered twice.
type Wordlist struct {
	words map[string]struct{}
}

// OpenWordlist maps path read-only, builds the set, and unmaps. Blank lines
// are ignored; words are stored exactly as written (callers probe both the
// original and lower-cased forms).
func OpenWordlist(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat wordlist: %w", err)
	}
	if fi.Size() == 0 {
		return &Wordlist{words: map[string]struct{}{}}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap wordlist: %w", err)
	}
	defer m.Unmap()

	wl := &Wordlist{words: make(map[string]struct{}, 1<<15)}
	for len(m) > 0 {
		nl := bytes.IndexByte(m, '\n')
		var line []byte
		if nl < 0 {
			line, m = m, nil
		} else {
			line, m = m[:nl], m[nl+1:]
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		wl.words[string(line)] = struct{}{}
	}
	return wl, nil
}

// NewWordlist builds a Wordlist from words directly. Used by tests and the
// bootstrap fallback path.
func NewWordlist(words []string) *Wordlist {
	wl := &Wordlist{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		wl.words[w] = struct{}{}
	}
	return wl
}

// Contains reports exact membership.
func (wl *Wordlist) Contains(word string) bool {
	_, ok := wl.words[word]
	return ok
}

// Len returns the number of distinct words.
func (wl *Wordlist) Len() int { return len(wl.words) }
