// Package collector fetches headlines from news sources. Each source is a
// Collector producing an ordered batch of raw records; all site-specific
// extraction lives here, outside the text-processing core.
package collector

import (
	"errors"
	"fmt"
	"time"

	"newsfreq/internal/config"
	"newsfreq/internal/models"
	"newsfreq/internal/textproc"
)

// ErrUnknownSource indicates an unrecognized source name.
var ErrUnknownSource = errors.New("unknown source")

// Source names accepted by ForSource.
const (
	SourceHackerNews = "hackernews"
	SourceBBC        = "bbc"
	SourceG1         = "g1"
	SourceFolha      = "folha"
)

// Collector produces an ordered batch of collected headlines.
type Collector interface {
	// Name is the human-readable source name stored with each item.
	Name() string
	// Language is the default stopword language for this source.
	Language() string
	// Collect fetches and extracts the current batch of headlines.
	Collect() ([]models.NewsItem, error)
}

// ForSource builds the collector for a configured source name. Feed
// sources are addressed by their configured feed name.
func ForSource(name string, client *Client, cfg *config.Config) (Collector, error) {
	maxItems := cfg.Pipeline.Collection.MaxItems

	switch name {
	case SourceHackerNews:
		return NewHackerNews(client, maxItems), nil
	case SourceBBC:
		return NewBBC(client, maxItems), nil
	case SourceG1:
		return NewG1(client, maxItems), nil
	case SourceFolha:
		return NewFolha(client, maxItems), nil
	}

	if feed, ok := cfg.GetFeed(name); ok {
		return NewFeedSource(feed, maxItems), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
}

// stampCollected sets the collection timestamp on every item.
func stampCollected(items []models.NewsItem, now time.Time) {
	ts := now.Format(time.RFC3339)
	for i := range items {
		items[i].CollectedAt = ts
	}
}

// languageOrDefault maps a source language tag, defaulting to english.
func languageOrDefault(language string) string {
	if language == "" {
		return textproc.LanguageEnglish
	}

	return language
}
