package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/kljensen/snowball"
)

// TokenizerConfig controls tokenization behavior.
type TokenizerConfig struct {
	// MinTokenLength is the minimum rune length a token must have to be
	// kept. The default of 3 drops every token of length <= 2.
	MinTokenLength int
	// Whitespace forces plain whitespace splitting instead of Unicode
	// word-boundary segmentation. The whitespace split is coarser and may
	// produce different tokens; both modes are valid.
	Whitespace bool
	// Stemming reduces tokens to their snowball stem. Off by default.
	Stemming bool
	// Language selects the stemmer language when stemming is enabled.
	Language string
}

// DefaultTokenizerConfig returns the standard tokenizer configuration.
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		MinTokenLength: 3,
		Language:       LanguageEnglish,
	}
}

// Tokenizer splits processed text into word tokens. Deterministic for a
// given configuration; safe for concurrent use.
type Tokenizer struct {
	minLength    int
	whitespace   bool
	stem         bool
	language     string
	stemDegraded bool
}

// NewTokenizer creates a tokenizer with the default configuration.
func NewTokenizer() *Tokenizer {
	return NewTokenizerWithConfig(DefaultTokenizerConfig())
}

// NewTokenizerWithConfig creates a tokenizer with a custom configuration.
// If stemming is requested for a language the stemmer does not support,
// stemming is disabled and StemmingDegraded reports true.
func NewTokenizerWithConfig(cfg TokenizerConfig) *Tokenizer {
	t := &Tokenizer{
		minLength:  cfg.MinTokenLength,
		whitespace: cfg.Whitespace,
		stem:       cfg.Stemming,
		language:   cfg.Language,
	}

	if t.minLength < 1 {
		t.minLength = 3
	}

	if t.language == "" {
		t.language = LanguageEnglish
	}

	if t.stem {
		if _, err := snowball.Stem("testing", t.language, false); err != nil {
			t.stem = false
			t.stemDegraded = true
		}
	}

	return t
}

// StemmingDegraded reports whether stemming was requested but disabled
// because the language is unsupported.
func (t *Tokenizer) StemmingDegraded() bool {
	return t.stemDegraded
}

// WhitespaceMode reports whether the coarse whitespace split is active.
func (t *Tokenizer) WhitespaceMode() bool {
	return t.whitespace
}

// Tokenize lowercases the text, splits it into word tokens and drops
// tokens below the minimum length. The Unicode path segments on UAX #29
// word boundaries and keeps only word-like segments; the whitespace path
// splits on whitespace runs and keeps every field.
func (t *Tokenizer) Tokenize(text string) []string {
	text = strings.ToLower(text)

	var raw []string

	if t.whitespace {
		raw = strings.Fields(text)
	} else {
		seg := words.FromString(text)
		for seg.Next() {
			v := seg.Value()
			if !wordlike(v) {
				continue
			}

			raw = append(raw, v)
		}
	}

	tokens := make([]string, 0, len(raw))

	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < t.minLength {
			continue
		}

		if t.stem {
			if stemmed, err := snowball.Stem(tok, t.language, false); err == nil {
				tok = stemmed
			}
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

// wordlike reports whether a segment contains at least one letter or
// digit. The segmenter also emits whitespace and punctuation segments,
// which carry no word content.
func wordlike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}

	return false
}
