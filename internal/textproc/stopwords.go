package textproc

import "strings"

// Supported stopword languages.
const (
	LanguageEnglish    = "english"
	LanguagePortuguese = "portuguese"
)

// StopwordSet holds the lowercase words excluded from analysis for one
// language. Immutable once handed to a Processor.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from one or more word lists.
func NewStopwordSet(lists ...[]string) StopwordSet {
	set := make(StopwordSet)
	for _, list := range lists {
		set.Add(list...)
	}

	return set
}

// Stopwords returns the stopword set for the given language, the union of
// the base corpus list and the custom extension list. Unknown languages
// fall back to english; the second return value reports the fallback so
// callers can surface a warning.
func Stopwords(language string) (StopwordSet, bool) {
	switch strings.ToLower(language) {
	case LanguageEnglish:
		return NewStopwordSet(baseEnglishStopwords, customEnglishStopwords), false
	case LanguagePortuguese:
		return NewStopwordSet(basePortugueseStopwords, customPortugueseStopwords), false
	default:
		return NewStopwordSet(baseEnglishStopwords, customEnglishStopwords), true
	}
}

// Add inserts words into the set. Intended for construction time only.
func (s StopwordSet) Add(words ...string) {
	for _, w := range words {
		if w == "" {
			continue
		}

		s[strings.ToLower(w)] = struct{}{}
	}
}

// Contains reports whether the word is in the set, case-insensitively.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]

	return ok
}

// Len returns the number of words in the set.
func (s StopwordSet) Len() int {
	return len(s)
}

// Filter removes every stopword from the text, rejoining the surviving
// words with single spaces. Returns the empty string when every word is
// filtered out; callers must drop empty results before analysis.
func (s StopwordSet) Filter(text string) string {
	words := strings.Fields(text)

	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if !s.Contains(w) {
			filtered = append(filtered, w)
		}
	}

	return strings.Join(filtered, " ")
}
