package textproc

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"newsfreq/internal/models"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(NewTokenizer())
}

func TestWordFrequency_HeadlineSample(t *testing.T) {
	a := newTestAnalyzer()

	texts := []string{
		"breaking news markets crash today",
		"markets react crash",
	}

	got, err := a.WordFrequency(texts, 3)
	if err != nil {
		t.Fatalf("WordFrequency failed: %v", err)
	}

	want := []models.FrequencyEntry{
		{Word: "markets", Frequency: 2},
		{Word: "crash", Frequency: 2},
		{Word: "breaking", Frequency: 1},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want %v", got, want)
	}
}

func TestWordFrequency_TieBreakByFirstOccurrence(t *testing.T) {
	a := newTestAnalyzer()

	// All words occur exactly once; the ranking must match the order in
	// which each word first appeared in the flattened stream.
	got, err := a.WordFrequency([]string{"zebra apple", "mango"}, 10)
	if err != nil {
		t.Fatalf("WordFrequency failed: %v", err)
	}

	want := []models.FrequencyEntry{
		{Word: "zebra", Frequency: 1},
		{Word: "apple", Frequency: 1},
		{Word: "mango", Frequency: 1},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordFrequency() = %v, want first-occurrence order %v", got, want)
	}
}

func TestWordFrequency_NonIncreasingCounts(t *testing.T) {
	a := newTestAnalyzer()

	texts := []string{
		"alpha beta alpha gamma beta alpha",
		"delta gamma beta epsilon",
	}

	got, err := a.WordFrequency(texts, 100)
	if err != nil {
		t.Fatalf("WordFrequency failed: %v", err)
	}

	for i := 1; i < len(got); i++ {
		if got[i].Frequency > got[i-1].Frequency {
			t.Errorf("counts increase at %d: %v", i, got)
		}
	}
}

func TestWordFrequency_TopNEdgeCases(t *testing.T) {
	a := newTestAnalyzer()
	texts := []string{"one two three"}

	empty, err := a.WordFrequency(texts, 0)
	if err != nil {
		t.Fatalf("WordFrequency(0) failed: %v", err)
	}

	if len(empty) != 0 {
		t.Errorf("top_n=0 should yield empty table, got %v", empty)
	}

	all, err := a.WordFrequency(texts, 50)
	if err != nil {
		t.Fatalf("WordFrequency(50) failed: %v", err)
	}

	if len(all) != 3 {
		t.Errorf("top_n beyond distinct count should yield full table, got %d entries", len(all))
	}
}

func TestWordFrequency_NegativeTopN(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.WordFrequency([]string{"word"}, -1)
	if !errors.Is(err, ErrNegativeTopN) {
		t.Errorf("WordFrequency(-1) error = %v, want ErrNegativeTopN", err)
	}
}

func TestWordFrequency_EmptyInput(t *testing.T) {
	a := newTestAnalyzer()

	got, err := a.WordFrequency(nil, 20)
	if err != nil {
		t.Fatalf("WordFrequency(nil) failed: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("empty input should yield empty table, got %v", got)
	}
}

func TestStatistics_HeadlineSample(t *testing.T) {
	a := newTestAnalyzer()

	texts := []string{
		"breaking news markets crash today",
		"markets react crash",
	}

	stats := a.Statistics(texts)

	if stats.TotalTexts != 2 {
		t.Errorf("TotalTexts = %d, want 2", stats.TotalTexts)
	}

	if stats.TotalWords != 8 {
		t.Errorf("TotalWords = %d, want 8", stats.TotalWords)
	}

	if stats.UniqueWords != 6 {
		t.Errorf("UniqueWords = %d, want 6", stats.UniqueWords)
	}

	if stats.AvgWordsPerText != 4.0 {
		t.Errorf("AvgWordsPerText = %f, want 4.0", stats.AvgWordsPerText)
	}

	if stats.VocabularyRichness != 0.75 {
		t.Errorf("VocabularyRichness = %f, want 0.75", stats.VocabularyRichness)
	}
}

func TestStatistics_EmptyAndZeroTokenTexts(t *testing.T) {
	a := newTestAnalyzer()

	empty := a.Statistics(nil)
	if empty.TotalTexts != 0 || empty.TotalWords != 0 || empty.AvgWordsPerText != 0 || empty.VocabularyRichness != 0 {
		t.Errorf("Statistics(nil) = %+v, want all zeros", empty)
	}

	// A text whose tokens are all below the length floor contributes to
	// TotalTexts only.
	stats := a.Statistics([]string{"of a to", "markets crash"})
	if stats.TotalTexts != 2 {
		t.Errorf("TotalTexts = %d, want 2", stats.TotalTexts)
	}

	if stats.TotalWords != 2 {
		t.Errorf("TotalWords = %d, want 2", stats.TotalWords)
	}
}

func TestStatistics_RichnessBounds(t *testing.T) {
	a := newTestAnalyzer()

	corpora := [][]string{
		nil,
		{"one one one one"},
		{"all unique words here"},
		{"mixed bag mixed words"},
	}

	for _, texts := range corpora {
		stats := a.Statistics(texts)

		if stats.VocabularyRichness < 0 || stats.VocabularyRichness > 1 {
			t.Errorf("richness out of bounds for %v: %f", texts, stats.VocabularyRichness)
		}

		if (stats.VocabularyRichness == 0) != (stats.TotalWords == 0) {
			t.Errorf("richness zero iff no words violated for %v: %+v", texts, stats)
		}
	}
}

// The sum of all frequency counts must equal the statistics token count
// over the same corpus.
func TestFrequencyConservation(t *testing.T) {
	a := newTestAnalyzer()

	texts := []string{
		"alpha beta alpha gamma",
		"beta delta epsilon alpha",
		"gamma gamma zeta",
	}

	table, err := a.WordFrequency(texts, math.MaxInt)
	if err != nil {
		t.Fatalf("WordFrequency failed: %v", err)
	}

	sum := 0
	for _, e := range table {
		sum += e.Frequency
	}

	stats := a.Statistics(texts)
	if sum != stats.TotalWords {
		t.Errorf("frequency sum %d != statistics total %d", sum, stats.TotalWords)
	}
}

// Both tokenizer modes must satisfy conservation and ranking laws even
// though their token sets can differ.
func TestAnalyzer_WhitespaceModeConsistency(t *testing.T) {
	tok := NewTokenizerWithConfig(TokenizerConfig{MinTokenLength: 3, Whitespace: true})
	a := NewAnalyzer(tok)

	texts := []string{"markets, crash today!", "markets crash"}

	table, err := a.WordFrequency(texts, 100)
	if err != nil {
		t.Fatalf("WordFrequency failed: %v", err)
	}

	sum := 0
	for _, e := range table {
		sum += e.Frequency
	}

	if stats := a.Statistics(texts); sum != stats.TotalWords {
		t.Errorf("frequency sum %d != statistics total %d", sum, stats.TotalWords)
	}
}
