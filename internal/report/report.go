// Package report renders human-readable analysis summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"newsfreq/internal/models"
)

const barWidth = 30

// FrequencyTable renders the ranked word list as an aligned markdown
// table with a proportional bar column. Column widths are calculated
// from display width so wide characters line up.
func FrequencyTable(entries []models.FrequencyEntry) string {
	if len(entries) == 0 {
		return "No words to report.\n"
	}

	maxFreq := entries[0].Frequency
	for _, e := range entries {
		if e.Frequency > maxFreq {
			maxFreq = e.Frequency
		}
	}

	rows := [][]string{{"#", "Word", "Count", ""}}

	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Word,
			fmt.Sprintf("%d", e.Frequency),
			bar(e.Frequency, maxFreq),
		})
	}

	return renderTable(rows)
}

// StatsTable renders the corpus statistics as an aligned markdown table.
func StatsTable(stats models.CorpusStats) string {
	rows := [][]string{
		{"Metric", "Value"},
		{"Headlines", fmt.Sprintf("%d", stats.TotalTexts)},
		{"Total words", fmt.Sprintf("%d", stats.TotalWords)},
		{"Unique words", fmt.Sprintf("%d", stats.UniqueWords)},
		{"Avg words per headline", fmt.Sprintf("%.2f", stats.AvgWordsPerText)},
		{"Vocabulary richness", fmt.Sprintf("%.3f", stats.VocabularyRichness)},
	}

	return renderTable(rows)
}

// SourceTable renders the per-source item counts from database stats.
func SourceTable(stats map[string]int) string {
	if len(stats) == 0 {
		return "No sources recorded.\n"
	}

	rows := [][]string{{"Source", "Items"}}
	for source, count := range stats {
		rows = append(rows, []string{source, fmt.Sprintf("%d", count)})
	}

	return renderTable(rows)
}

func bar(value, max int) string {
	if max <= 0 {
		return ""
	}

	n := value * barWidth / max
	if n < 1 && value > 0 {
		n = 1
	}

	return strings.Repeat("█", n)
}

// renderTable lays out rows as a markdown table. The first row is the
// header; a separator row is inserted after it.
func renderTable(rows [][]string) string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Separator rows need at least three dashes.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	for i, row := range rows {
		writeRow(&sb, row, colWidths)

		if i == 0 {
			writeSeparator(&sb, colWidths)
		}
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		padding := width - runewidth.StringWidth(content)
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, colWidths []int) {
	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}
