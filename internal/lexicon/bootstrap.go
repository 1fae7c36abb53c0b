package lexicon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultHistoricalURL points at a public JSON rendering of Webster's 1828
// dictionary, the period-appropriate source for 19th-century spellings.
const DefaultHistoricalURL = "https://raw.githubusercontent.com/matthewreagan/WebstersEnglishDictionary/master/dictionary.json"

const downloadTimeout = 10 * time.Second

// fallbackHistorical covers the most common period spellings when the
// dictionary download is unavailable.
var fallbackHistorical = []string{
	"shew", "shewn", "shewed", "connexion", "compleat", "publick",
	"musick", "favour", "honour", "colour", "labour", "neighbour",
	"centre", "theatre", "metre", "travelled", "marvellous",
}

// EnsureHistorical returns the path of the word-per-line historical
// dictionary cache under dataDir, downloading and converting it on first
// run. The download enforces a bounded timeout; any failure is returned to
// the caller, which is expected to fall back to FallbackHistorical rather
// than abort.
func EnsureHistorical(dataDir, url string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	path := filepath.Join(dataDir, "historical_dictionary.txt")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	client := &http.Client{Timeout: downloadTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("download historical dictionary: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download historical dictionary: status %s", resp.Status)
	}

	words, err := parseDictionaryJSON(resp.Body)
	if err != nil {
		return "", err
	}
	if err := writeWordlist(path, words); err != nil {
		return "", err
	}
	return path, nil
}

// parseDictionaryJSON accepts either an object keyed by word or a list of
// {"word": ...} entries, the two shapes the upstream dump has used.
func parseDictionaryJSON(r io.Reader) ([]string, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse historical dictionary: %w", err)
	}

	set := make(map[string]struct{})
	var byWord map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byWord); err == nil {
		for w := range byWord {
			set[strings.ToLower(w)] = struct{}{}
		}
	} else {
		var entries []struct {
			Word string `json:"word"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parse historical dictionary: unrecognized shape")
		}
		for _, e := range entries {
			if e.Word != "" {
				set[strings.ToLower(e.Word)] = struct{}{}
			}
		}
	}

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}

func writeWordlist(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write historical dictionary: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write historical dictionary: %w", err)
	}
	return f.Close()
}

// LoadHistorical reads a word-per-line file into a lower-cased set.
func LoadHistorical(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open historical dictionary: %w", err)
	}
	defer f.Close()

	set := make(map[string]struct{}, 1<<14)
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read historical dictionary: %w", err)
	}
	return set, nil
}

// FallbackHistorical returns the built-in period-spelling set used when no
// downloaded dictionary is available.
func FallbackHistorical() map[string]struct{} {
	set := make(map[string]struct{}, len(fallbackHistorical))
	for _, w := range fallbackHistorical {
		set[w] = struct{}{}
	}
	return set
}
