package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"ocrfix/internal/corpus"
	"ocrfix/internal/lexicon"
	"ocrfix/internal/pipeline"
	"ocrfix/internal/report"
)

var (
	flagInput     string
	flagOutput    string
	flagReport    string
	flagStats     string
	flagConfig    string
	flagThreshold float64
	flagSample    int
	flagWorkers   int
)

var rootCmd = &cobra.Command{
	Use:   "ocrfix",
	Short: "Detect and correct OCR errors in a historical text corpus",
	Long: `ocrfix reads a page-oriented JSON corpus, builds a vocabulary and
dictionary view of it, corrects high-confidence OCR misreads in place, and
writes the corrected corpus plus a correction log and run statistics.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input corpus JSON (required)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "corrected corpus JSON (required)")
	rootCmd.Flags().StringVar(&flagReport, "report", "", "correction log JSONL path")
	rootCmd.Flags().StringVar(&flagStats, "stats", "", "run statistics JSON path")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config overlay")
	rootCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "auto-apply confidence threshold override")
	rootCmd.Flags().IntVar(&flagSample, "sample", 0, "build-phase unit sampling stride override")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "worker count override (default NumCPU)")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ocrfix",
	})

	cfg, err := pipeline.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("threshold") {
		cfg.AutoApplyThreshold = flagThreshold
	}
	if cmd.Flags().Changed("sample") {
		cfg.SampleStride = flagSample
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}

	units, err := corpus.Load(flagInput)
	if err != nil {
		return err
	}
	logger.Info("corpus loaded", "path", flagInput, "units", len(units))

	var store *lexicon.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store = lexicon.NewStore(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}))
	}

	p := pipeline.New(cfg, logger)
	if err := p.Bootstrap(store); err != nil {
		return err
	}
	if err := p.Build(units); err != nil {
		return err
	}

	corrected, agg, err := p.Run(context.Background(), units)
	if err != nil {
		return err
	}

	if err := corpus.Save(flagOutput, corrected); err != nil {
		return err
	}
	logger.Info("corrected corpus written", "path", flagOutput)

	if flagReport != "" {
		if err := writeFile(flagReport, func(f *os.File) error {
			return report.WriteLog(f, agg.Log())
		}); err != nil {
			return err
		}
		logger.Info("correction log written", "path", flagReport)
	}
	if flagStats != "" {
		if err := writeFile(flagStats, func(f *os.File) error {
			return report.WriteStats(f, agg.Stats())
		}); err != nil {
			return err
		}
		logger.Info("statistics written", "path", flagStats)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
