package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"newsfreq/internal/models"
)

func sampleRecords() []models.ExportRecord {
	return []models.ExportRecord{
		{
			Title:          "Markets Crash Today!",
			ProcessedTitle: "markets crash today",
			Link:           "https://example.com/1",
			Source:         "BBC News",
			CollectedAt:    "2026-08-28T10:00:00Z",
		},
		{
			Title:          "Quiet, day",
			ProcessedTitle: "quiet day",
			Link:           "https://example.com/2",
			Source:         "BBC News",
			CollectedAt:    "2026-08-28T10:00:00Z",
		},
	}
}

func TestCSVStore_SaveNews(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	if err := store.SaveNews(sampleRecords(), "news.csv"); err != nil {
		t.Fatalf("SaveNews failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "news.csv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	content := string(data)

	if !strings.HasPrefix(content, "title,processed_title,link,source,collected_at\n") {
		t.Errorf("missing header: %q", content)
	}

	// The comma inside the title must be quoted.
	if !strings.Contains(content, `"Quiet, day"`) {
		t.Errorf("comma not quoted: %q", content)
	}
}

func TestCSVStore_SaveWordFrequency(t *testing.T) {
	dir := t.TempDir()
	store := NewCSVStore(dir)

	entries := []models.FrequencyEntry{
		{Word: "markets", Frequency: 2},
		{Word: "crash", Frequency: 1},
	}

	if err := store.SaveWordFrequency(entries, "freq.csv"); err != nil {
		t.Fatalf("SaveWordFrequency failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "freq.csv"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := "word,frequency\nmarkets,2\ncrash,1\n"
	if string(data) != want {
		t.Errorf("csv content = %q, want %q", string(data), want)
	}
}

func TestJSONStore_SaveAnalysisRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	result := models.AnalysisResult{
		Metadata: models.AnalysisMetadata{
			Source:    "bbc",
			TotalNews: 2,
			Statistics: models.CorpusStats{
				TotalTexts: 2, TotalWords: 5, UniqueWords: 5,
				AvgWordsPerText: 2.5, VocabularyRichness: 1.0,
			},
		},
		News:          sampleRecords(),
		WordFrequency: []models.FrequencyEntry{{Word: "markets", Frequency: 2}},
	}

	if err := store.SaveAnalysis(result, "analysis.json"); err != nil {
		t.Fatalf("SaveAnalysis failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "analysis.json"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var loaded models.AnalysisResult
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if loaded.Metadata.Statistics.TotalWords != 5 {
		t.Errorf("TotalWords = %d, want 5", loaded.Metadata.Statistics.TotalWords)
	}

	if len(loaded.WordFrequency) != 1 || loaded.WordFrequency[0].Word != "markets" {
		t.Errorf("WordFrequency = %v", loaded.WordFrequency)
	}
}

func TestJSONStore_NewsFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	items := []models.NewsItem{
		{Title: "One", Link: "https://example.com/1", Source: "Hacker News", CollectedAt: "2026-08-28T10:00:00Z"},
	}

	if err := store.SaveNews(items, "collected.json"); err != nil {
		t.Fatalf("SaveNews failed: %v", err)
	}

	loaded, err := LoadNewsFile(filepath.Join(dir, "collected.json"))
	if err != nil {
		t.Fatalf("LoadNewsFile failed: %v", err)
	}

	if len(loaded) != 1 || loaded[0].Title != "One" {
		t.Errorf("loaded = %v", loaded)
	}
}

func TestParquetStore_SaveNews(t *testing.T) {
	dir := t.TempDir()
	store := NewParquetStore(dir)

	if err := store.SaveNews(sampleRecords(), "news.parquet"); err != nil {
		t.Fatalf("SaveNews failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "news.parquet"))
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}

	if info.Size() == 0 {
		t.Error("parquet file is empty")
	}
}
