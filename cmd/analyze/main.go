// Package main provides the offline analysis command. It reads a JSON
// batch written by the collect command and runs the text pipeline on it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"newsfreq/internal/config"
	"newsfreq/internal/logger"
	"newsfreq/internal/models"
	"newsfreq/internal/report"
	"newsfreq/internal/storage"
	"newsfreq/internal/textproc"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	inputFile := flag.String("input", "", "Collected news JSON file to analyze")
	topWords := flag.Int("top", -1, "Number of top words to report (overrides config)")
	language := flag.String("language", "", "Stopword language (overrides config)")

	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide an input file with -input")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *topWords >= 0 {
		cfg.Pipeline.Processing.TopWords = *topWords
	}

	if *language != "" {
		cfg.Pipeline.Processing.Language = *language
	}

	log := logger.NewLogger(cfg.Pipeline.Logging.Level)
	startTime := time.Now()

	items, err := storage.LoadNewsFile(*inputFile)
	if err != nil {
		log.Error("❌ Failed to load input", "error", err)
		os.Exit(1)
	}

	log.Info("🚀 Analyzing collected headlines", "file", *inputFile, "count", len(items))

	lang := cfg.Pipeline.Processing.Language
	if lang == "" {
		lang = textproc.LanguageEnglish
	}

	proc := textproc.NewProcessor(lang, cfg.Pipeline.Processing.CustomStopwords...)
	if proc.UsedFallback() {
		log.Warn("⚠️  Unknown stopword language, falling back to english", "requested", lang)
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

	fmt.Println()
	fmt.Println(report.StatsTable(stats))
	fmt.Println(report.FrequencyTable(frequency))

	// Export alongside the report so offline runs leave artifacts too.
	ts := models.Timestamp(startTime)
	basePath := cfg.Pipeline.Output.BasePath

	csvStore := storage.NewCSVStore(basePath)
	if err := csvStore.SaveWordFrequency(frequency, fmt.Sprintf("word_frequency_%s.csv", ts)); err != nil {
		log.Error("❌ CSV frequency export failed", "error", err)
	}

	result := models.AnalysisResult{
		Metadata: models.AnalysisMetadata{
			Source:      "file:" + *inputFile,
			CollectedAt: startTime.Format(time.RFC3339),
			TotalNews:   len(items),
			Statistics:  stats,
		},
		News:          records,
		WordFrequency: frequency,
	}

	jsonStore := storage.NewJSONStore(basePath)
	if err := jsonStore.SaveAnalysis(result, fmt.Sprintf("news_analysis_%s.json", ts)); err != nil {
		log.Error("❌ JSON export failed", "error", err)
	}

	log.Info("✨ Analysis complete",
		"total_words", stats.TotalWords,
		"unique_words", stats.UniqueWords,
		"duration", time.Since(startTime).Round(time.Millisecond))
}
