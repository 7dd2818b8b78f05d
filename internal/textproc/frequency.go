package textproc

import (
	"errors"
	"sort"

	"newsfreq/internal/models"
)

// ErrNegativeTopN indicates a contract violation by the caller.
var ErrNegativeTopN = errors.New("top_n must be non-negative")

// Analyzer aggregates tokens across processed titles into a ranked
// frequency table and corpus statistics. Both operations use the same
// tokenizer, so their token counts always agree.
type Analyzer struct {
	tokenizer *Tokenizer
}

// NewAnalyzer creates an analyzer around the given tokenizer.
func NewAnalyzer(tokenizer *Tokenizer) *Analyzer {
	return &Analyzer{tokenizer: tokenizer}
}

// count tokenizes every text in input order and counts occurrences with
// an insertion-ordered entry slice. Keeping entries in first-occurrence
// order is what makes the equal-count tie-break reproducible; a plain map
// iteration would not preserve it.
func (a *Analyzer) count(texts []string) ([]models.FrequencyEntry, int) {
	index := make(map[string]int)

	var entries []models.FrequencyEntry

	total := 0

	for _, text := range texts {
		for _, tok := range a.tokenizer.Tokenize(text) {
			total++

			if i, ok := index[tok]; ok {
				entries[i].Frequency++
				continue
			}

			index[tok] = len(entries)
			entries = append(entries, models.FrequencyEntry{Word: tok, Frequency: 1})
		}
	}

	return entries, total
}

// WordFrequency returns the topN most frequent tokens across the texts,
// sorted by count descending. Tokens with equal counts rank by first
// occurrence in the flattened token stream. topN of 0 yields an empty
// table; topN larger than the distinct token count yields the full table;
// a negative topN is an invalid argument.
func (a *Analyzer) WordFrequency(texts []string, topN int) ([]models.FrequencyEntry, error) {
	if topN < 0 {
		return nil, ErrNegativeTopN
	}

	entries, _ := a.count(texts)

	// Stable sort: equal counts keep their first-occurrence order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	if topN < len(entries) {
		entries = entries[:topN]
	}

	return entries, nil
}

// Statistics computes corpus-level metrics over the texts using the same
// tokenizer as WordFrequency. Texts that tokenize to nothing still count
// toward TotalTexts. Divisions are guarded to 0, never an error.
func (a *Analyzer) Statistics(texts []string) models.CorpusStats {
	entries, total := a.count(texts)

	stats := models.CorpusStats{
		TotalTexts:  len(texts),
		TotalWords:  total,
		UniqueWords: len(entries),
	}

	if len(texts) > 0 {
		stats.AvgWordsPerText = float64(total) / float64(len(texts))
	}

	if total > 0 {
		stats.VocabularyRichness = float64(len(entries)) / float64(total)
	}

	return stats
}
