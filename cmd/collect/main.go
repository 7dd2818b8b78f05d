// Package main provides the collect-only command. It fetches a batch of
// headlines and writes them as JSON for later offline analysis.
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
	"newsfreq/internal/storage"
	"newsfreq/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path to YAML configuration file")
	source := flag.String("source", os.Getenv("NEWSFREQ_SOURCE"), "News source (hackernews, bbc, g1, folha, or a configured feed name)")
	outFile := flag.String("out", "", "Output filename (default news_<source>_<timestamp>.json)")

	flag.Parse()

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

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Pipeline.Logging.Level)
	startTime := time.Now()

	log.Info("🚀 Collecting headlines", "source", cfg.Pipeline.Source)

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

	httpHelper := utils.NewHTTPHelper()
	for _, item := range items {
		if !httpHelper.IsValidURL(item.Link) {
			log.Warn("⚠️  Item has a non-absolute link", "link", item.Link)
		}
	}

	filename := *outFile
	if filename == "" {
		filename = fmt.Sprintf("news_%s_%s.json", cfg.Pipeline.Source, models.Timestamp(startTime))
	}

	store := storage.NewJSONStore(cfg.Pipeline.Output.BasePath)
	if err := store.SaveNews(items, filename); err != nil {
		log.Error("❌ Write failed", "error", err)
		os.Exit(1)
	}

	log.Info("✅ Collection complete",
		"count", len(items),
		"file", filename,
		"duration", time.Since(startTime).Round(time.Millisecond))
}
