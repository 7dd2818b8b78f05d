package textproc

import (
	"regexp"
	"strings"
)

// Normalizer cleans a raw headline into canonical form: lowercase ASCII
// letters separated by single spaces, with URLs, mentions, hashtags,
// standalone numbers and punctuation removed.
type Normalizer struct {
	urlPattern        *regexp.Regexp
	mentionPattern    *regexp.Regexp
	hashtagPattern    *regexp.Regexp
	numberPattern     *regexp.Regexp
	nonLetterPattern  *regexp.Regexp
	whitespacePattern *regexp.Regexp
}

// NewNormalizer creates a new normalizer instance.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		urlPattern:        regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`),
		mentionPattern:    regexp.MustCompile(`@\w+`),
		hashtagPattern:    regexp.MustCompile(`#\w+`),
		numberPattern:     regexp.MustCompile(`\b\d+\b`),
		nonLetterPattern:  regexp.MustCompile(`[^a-zA-Z\s]`),
		whitespacePattern: regexp.MustCompile(`\s+`),
	}
}

// Normalize applies the cleaning steps in order. URL, mention and hashtag
// stripping must run before the generic non-letter strip, otherwise their
// residue would be absorbed into neighboring words.
//
// The result matches ^[a-z]*( [a-z]+)*$ or is empty. Empty input yields
// empty output, not an error.
func (n *Normalizer) Normalize(text string) string {
	// Remove URLs
	text = n.urlPattern.ReplaceAllString(text, "")

	// Remove @mentions
	text = n.mentionPattern.ReplaceAllString(text, "")

	// Remove hashtags
	text = n.hashtagPattern.ReplaceAllString(text, "")

	// Remove standalone numbers
	text = n.numberPattern.ReplaceAllString(text, "")

	// Remove everything that is not an ASCII letter or whitespace
	text = n.nonLetterPattern.ReplaceAllString(text, "")

	// Collapse whitespace runs to a single space
	text = n.whitespacePattern.ReplaceAllString(text, " ")

	return strings.ToLower(strings.TrimSpace(text))
}
