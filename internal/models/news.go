// Package models defines the data types shared across the pipeline.
package models

import "time"

// NewsItem is a single collected headline.
type NewsItem struct {
	Title       string `json:"title" db:"title"`
	Link        string `json:"link" db:"link"`
	Source      string `json:"source" db:"source"`
	CollectedAt string `json:"collected_at" db:"collected_at"`
}

// ExportRecord is the flat row written by the file storage backends.
type ExportRecord struct {
	Title          string `json:"title" csv:"title" parquet:"title"`
	ProcessedTitle string `json:"processed_title" parquet:"processed_title"`
	Link           string `json:"link" parquet:"link"`
	Source         string `json:"source" parquet:"source"`
	CollectedAt    string `json:"collected_at" parquet:"collected_at"`
}

// FrequencyEntry is one ranked (word, count) pair.
type FrequencyEntry struct {
	Word      string `json:"word" db:"word"`
	Frequency int    `json:"frequency" db:"frequency"`
}

// CorpusStats holds derived corpus-level metrics. Computed once per
// analysis run and never mutated afterward.
type CorpusStats struct {
	TotalTexts         int     `json:"total_texts"`
	TotalWords         int     `json:"total_words"`
	UniqueWords        int     `json:"unique_words"`
	AvgWordsPerText    float64 `json:"avg_words_per_text"`
	VocabularyRichness float64 `json:"vocabulary_richness"`
}

// AnalysisMetadata describes one pipeline run.
type AnalysisMetadata struct {
	Source      string      `json:"source"`
	CollectedAt string      `json:"collected_at"`
	TotalNews   int         `json:"total_news"`
	Statistics  CorpusStats `json:"statistics"`
}

// AnalysisResult is the full document exported by the JSON backend.
type AnalysisResult struct {
	Metadata      AnalysisMetadata `json:"metadata"`
	News          []ExportRecord   `json:"news"`
	WordFrequency []FrequencyEntry `json:"word_frequency"`
}

// Timestamp returns the shared filename timestamp for export artifacts.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
