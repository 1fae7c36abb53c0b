package pipeline

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"ocrfix/internal/lexicon"
)

// Config carries every tunable of a correction run. Zero values are filled
// from DefaultConfig by LoadConfig; a YAML file overrides field by field.
type Config struct {
	AutoApplyThreshold float64             `yaml:"auto_apply_threshold"`
	MaxEditDistance    int                 `yaml:"max_edit_distance"`
	MinVocabFrequency  int                 `yaml:"min_vocab_frequency"`
	MaxVocabSize       int                 `yaml:"max_vocab_size"`
	SampleStride       int                 `yaml:"sample_stride"`
	Workers            int                 `yaml:"workers"` // 0 means NumCPU
	UseNgramContext    bool                `yaml:"use_ngram_context"`
	MinNgramScore      float64             `yaml:"min_ngram_score"`
	PreservedSpellings []string            `yaml:"preserved_spellings"`
	DomainTerms        []string            `yaml:"domain_terms"`
	ConfusionPatterns  map[string][]string `yaml:"confusion_patterns"`
	ModernWordlistPath string              `yaml:"modern_wordlist_path"`
	DataDir            string              `yaml:"data_dir"`
	HistoricalURL      string              `yaml:"historical_url"`
}

// DefaultConfig returns the settings tuned for 19th-century parliamentary
// transcripts: period spellings preserved, procedural vocabulary trusted.
func DefaultConfig() Config {
	return Config{
		AutoApplyThreshold: 0.90,
		MaxEditDistance:    2,
		MinVocabFrequency:  10,
		MaxVocabSize:       50000,
		SampleStride:       1,
		Workers:            0,
		UseNgramContext:    true,
		MinNgramScore:      -15.0,
		PreservedSpellings: []string{
			"hath", "doth", "whilst", "amongst", "shew", "shewn",
			"connexion", "publick", "honourable",
		},
		DomainTerms: []string{
			"LORDS", "COMMONS", "PARLIAMENT", "SPEAKER",
			"DUKE", "EARL", "VISCOUNT", "MARQUESS",
			"WHIG", "TORY", "HANSARD",
		},
		DataDir:       "data",
		HistoricalURL: lexicon.DefaultHistoricalURL,
	}
}

// LoadConfig overlays the YAML file at path onto the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
