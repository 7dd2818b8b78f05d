// Package main provides the unified pipeline command that collects,
// processes, analyzes and stores news headlines in one run.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"newsfreq/internal/collector"
	"newsfreq/internal/config"
	"newsfreq/internal/logger"
	"newsfreq/internal/models"
	"newsfreq/internal/progress"
	"newsfreq/internal/report"
	"newsfreq/internal/storage"
	"newsfreq/internal/textproc"
	"newsfreq/pkg/utils"
)

func main() {
	// Environment overrides may live in a local .env file.
	_ = godotenv.Load()

	// 1. Define Command-Line Flags
	// ----------------------------
	configPath := flag.String("config", "", "Path to YAML configuration file")
	source := flag.String("source", os.Getenv("NEWSFREQ_SOURCE"), "News source (hackernews, bbc, g1, folha, or a configured feed name)")
	storageKind := flag.String("storage", "", "Storage backend override (sqlite, csv, parquet, json, all)")
	topWords := flag.Int("top", -1, "Number of top words to report (overrides config)")

	flag.Parse()

	// 2. Load Configuration
	// ---------------------
	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *source != "" {
		cfg.Pipeline.Source = *source
	}

	if *storageKind != "" {
		cfg.Pipeline.Storage = *storageKind
	}

	if *topWords >= 0 {
		cfg.Pipeline.Processing.TopWords = *topWords
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Pipeline.Logging.Level)
	tracker := progress.NewTracker(os.Stdout, 5)
	startTime := time.Now()

	log.Info("🚀 Starting news frequency pipeline", "source", cfg.Pipeline.Source, "storage", cfg.Pipeline.Storage)

	// 3. Collection
	// -------------
	tracker.Step("collecting headlines from %s", cfg.Pipeline.Source)

	client := collector.NewClientWithConfig(&cfg.Pipeline.Retry)

	col, err := collector.ForSource(cfg.Pipeline.Source, client, cfg)
	if err != nil {
		log.Error("❌ Collector setup failed", "error", err)
		os.Exit(1)
	}

	items, err := col.Collect()
	if err != nil {
		log.Error("❌ Collection failed", "error", err)
		os.Exit(1)
	}

	items = collector.Dedupe(items)

	log.Info("✅ Collected headlines", "count", len(items), "duration", time.Since(startTime).Round(time.Millisecond))

	if len(items) > 0 {
		helper := utils.NewStringHelper()
		log.Debug("First headline", "title", helper.TruncateString(items[0].Title, 60))
	}

	if len(items) == 0 {
		log.Warn("⚠️  No headlines collected, nothing to analyze")
		os.Exit(0)
	}

	// 4. Processing
	// -------------
	tracker.Step("normalizing and filtering %d titles", len(items))

	language := cfg.Pipeline.Processing.Language
	if language == "" {
		language = col.Language()
	}

	proc := textproc.NewProcessor(language, cfg.Pipeline.Processing.CustomStopwords...)
	if proc.UsedFallback() {
		log.Warn("⚠️  Unknown stopword language, falling back to english", "requested", language)
	}

	records := make([]models.ExportRecord, 0, len(items))
	processed := make([]string, 0, len(items))

	for _, item := range items {
		cleaned := proc.ProcessTitle(item.Title)

		records = append(records, models.ExportRecord{
			Title:          item.Title,
			ProcessedTitle: cleaned,
			Link:           item.Link,
			Source:         item.Source,
			CollectedAt:    item.CollectedAt,
		})

		if cleaned != "" {
			processed = append(processed, cleaned)
		}
	}

	// 5. Analysis
	// -----------
	tracker.Step("analyzing word frequency")

	tokenizer := textproc.NewTokenizerWithConfig(textproc.TokenizerConfig{
		MinTokenLength: cfg.Pipeline.Processing.MinTokenLength,
		Whitespace:     !cfg.Pipeline.Processing.UnicodeSegments,
		Stemming:       cfg.Pipeline.Processing.Stemming,
		Language:       proc.Language(),
	})
	if tokenizer.StemmingDegraded() {
		log.Warn("⚠️  Stemming not supported for language, disabled", "language", proc.Language())
	}

	analyzer := textproc.NewAnalyzer(tokenizer)

	frequency, err := analyzer.WordFrequency(processed, cfg.Pipeline.Processing.TopWords)
	if err != nil {
		log.Error("❌ Analysis failed", "error", err)
		os.Exit(1)
	}

	stats := analyzer.Statistics(processed)

	log.Info("✅ Analysis complete", "total_words", stats.TotalWords, "unique_words", stats.UniqueWords)

	// 6. Storage
	// ----------
	tracker.Step("storing results (%s)", cfg.Pipeline.Storage)

	now := time.Now()
	result := models.AnalysisResult{
		Metadata: models.AnalysisMetadata{
			Source:      cfg.Pipeline.Source,
			CollectedAt: now.Format(time.RFC3339),
			TotalNews:   len(items),
			Statistics:  stats,
		},
		News:          records,
		WordFrequency: frequency,
	}

	saveResults(cfg, log, tracker, items, records, frequency, result, now)

	// 7. Final Report
	// ---------------
	tracker.Step("reporting")

	fmt.Println()
	fmt.Println(report.StatsTable(stats))
	fmt.Println(report.FrequencyTable(frequency))

	log.Info("✨ Pipeline complete", "duration", time.Since(startTime).Round(time.Millisecond))
	tracker.Summary()

	if len(tracker.Failures()) > 0 {
		os.Exit(1)
	}
}

// saveResults writes to every selected backend. A failing backend is
// recorded and skipped so the others still get the data.
func saveResults(
	cfg *config.Config,
	log *logger.Logger,
	tracker *progress.Tracker,
	items []models.NewsItem,
	records []models.ExportRecord,
	frequency []models.FrequencyEntry,
	result models.AnalysisResult,
	now time.Time,
) {
	kind := cfg.Pipeline.Storage
	basePath := cfg.Pipeline.Output.BasePath
	ts := models.Timestamp(now)
	source := cfg.Pipeline.Source

	if kind == "sqlite" || kind == "all" {
		if err := saveSQLite(cfg, log, items, records, frequency, now); err != nil {
			tracker.Fail("sqlite: %v", err)
			log.Error("❌ SQLite storage failed", "error", err)
		}
	}

	if kind == "csv" || kind == "all" {
		store := storage.NewCSVStore(basePath)

		if err := store.SaveNews(records, fmt.Sprintf("news_%s_%s.csv", source, ts)); err != nil {
			tracker.Fail("csv news: %v", err)
			log.Error("❌ CSV news export failed", "error", err)
		}

		if err := store.SaveWordFrequency(frequency, fmt.Sprintf("word_frequency_%s.csv", ts)); err != nil {
			tracker.Fail("csv frequency: %v", err)
			log.Error("❌ CSV frequency export failed", "error", err)
		}
	}

	if kind == "json" || kind == "all" {
		store := storage.NewJSONStore(basePath)

		if err := store.SaveAnalysis(result, fmt.Sprintf("news_analysis_%s.json", ts)); err != nil {
			tracker.Fail("json: %v", err)
			log.Error("❌ JSON export failed", "error", err)
		}
	}

	if kind == "parquet" || kind == "all" {
		store := storage.NewParquetStore(basePath)

		if err := store.SaveNews(records, fmt.Sprintf("news_%s_%s.parquet", source, ts)); err != nil {
			tracker.Fail("parquet: %v", err)
			log.Error("❌ Parquet export failed", "error", err)
		}
	}
}

func saveSQLite(
	cfg *config.Config,
	log *logger.Logger,
	items []models.NewsItem,
	records []models.ExportRecord,
	frequency []models.FrequencyEntry,
	now time.Time,
) error {
	store, err := storage.OpenSQLite(cfg.GetDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	inserted, err := store.SaveRawNews(items)
	if err != nil {
		return err
	}

	log.Info("💾 Saved raw news", "inserted", inserted, "duplicates", len(items)-inserted)

	if err := store.SaveProcessedNews(records); err != nil {
		return err
	}

	return store.SaveWordFrequency(frequency, now)
}
