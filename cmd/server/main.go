package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"ocrfix/internal/corpus"
	"ocrfix/internal/lexicon"
	"ocrfix/internal/pipeline"
	"ocrfix/internal/report"
)

// server owns the built pipeline. Correction requests take the read lock;
// whitelist mutations take the write lock, since the lexicon is not safe to
// mutate under concurrent lookups.
type server struct {
	mu     sync.RWMutex
	p      *pipeline.Pipeline
	store  *lexicon.Store
	logger *log.Logger
}

type correctRequest struct {
	Text string `json:"text"`
}

type correctResponse struct {
	Corrected   string            `json:"corrected"`
	Corrections []report.LogEntry `json:"corrections"`
}

type wordRequest struct {
	Word string `json:"word"`
}

func (s *server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	var req correctRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	corrected, applied, err := s.p.CorrectText(req.Text)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("correction failed", "err", err)
		http.Error(w, "correction failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, correctResponse{Corrected: corrected, Corrections: applied})
}

func (s *server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		http.Error(w, "body must be {\"word\": ...}", http.StatusBadRequest)
		return
	}
	word := strings.TrimSpace(req.Word)

	if s.store != nil {
		if err := s.store.Add(word); err != nil {
			s.logger.Error("store add failed", "word", word, "err", err)
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	s.mu.Lock()
	s.p.Lexicon().AddPreserved(word)
	s.mu.Unlock()

	s.logger.Info("preserved spelling added", "word", word)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	if word == "" {
		http.Error(w, "missing word", http.StatusBadRequest)
		return
	}

	if s.store != nil {
		if err := s.store.Remove(word); err != nil {
			s.logger.Error("store remove failed", "word", word, "err", err)
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	s.mu.Lock()
	s.p.Lexicon().RemovePreserved(word)
	s.mu.Unlock()

	s.logger.Info("preserved spelling removed", "word", word)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ocrfix-server",
	})

	cfg, err := pipeline.LoadConfig(getenv("CONFIG_PATH", ""))
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	var store *lexicon.Store
	if addr := getenv("REDIS_ADDR", ""); addr != "" {
		store = lexicon.NewStore(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		}))
	}

	var units []corpus.Unit
	if path := getenv("CORPUS_PATH", ""); path != "" {
		units, err = corpus.Load(path)
		if err != nil {
			logger.Fatal("load corpus", "path", path, "err", err)
		}
		logger.Info("corpus loaded", "path", path, "units", len(units))
	} else {
		logger.Warn("no corpus configured, vocabulary-based generators are empty")
	}

	p := pipeline.New(cfg, logger)
	if err := p.Bootstrap(store); err != nil {
		logger.Fatal("bootstrap", "err", err)
	}
	if err := p.Build(units); err != nil {
		logger.Fatal("build", "err", err)
	}

	s := &server{p: p, store: store, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/correct", s.handleCorrect)
	mux.HandleFunc("POST /api/v1/preserved-word", s.handleAddWord)
	mux.HandleFunc("DELETE /api/v1/preserved-word/{word}", s.handleRemoveWord)

	addr := ":" + getenv("PORT", "8080")
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
