// Package textproc implements the deterministic text pipeline at the core
// of the system: normalization, stopword filtering, tokenization and
// word-frequency analysis. All components are pure in-memory transforms
// with no I/O; collectors and storage backends live elsewhere.
package textproc

// Processor applies normalization and stopword filtering to headline
// batches. It holds the immutable stopword set for one language.
type Processor struct {
	normalizer *Normalizer
	stopwords  StopwordSet
	language   string
	fellBack   bool
}

// NewProcessor creates a processor for the given stopword language.
// Unknown languages fall back to english; UsedFallback reports it so the
// caller can warn. Extra custom stopwords extend the built-in lists.
func NewProcessor(language string, customStopwords ...string) *Processor {
	set, fellBack := Stopwords(language)
	set.Add(customStopwords...)

	lang := language
	if fellBack {
		lang = LanguageEnglish
	}

	return &Processor{
		normalizer: NewNormalizer(),
		stopwords:  set,
		language:   lang,
		fellBack:   fellBack,
	}
}

// Language returns the active stopword language.
func (p *Processor) Language() string {
	return p.language
}

// UsedFallback reports whether an unknown language fell back to english.
func (p *Processor) UsedFallback() bool {
	return p.fellBack
}

// Stopwords returns the active stopword set.
func (p *Processor) Stopwords() StopwordSet {
	return p.stopwords
}

// ProcessTitle normalizes one title and removes stopwords. May return the
// empty string when nothing survives.
func (p *Processor) ProcessTitle(title string) string {
	return p.stopwords.Filter(p.normalizer.Normalize(title))
}

// ProcessTitles processes every title in input order and drops empty
// results, so the output can be shorter than the input. Index
// correspondence with the input is not preserved once empties are
// dropped.
func (p *Processor) ProcessTitles(titles []string) []string {
	processed := make([]string, 0, len(titles))

	for _, title := range titles {
		if cleaned := p.ProcessTitle(title); cleaned != "" {
			processed = append(processed, cleaned)
		}
	}

	return processed
}
