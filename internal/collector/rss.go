package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsfreq/internal/config"
	"newsfreq/internal/models"
)

// FeedSource collects headlines from any RSS/Atom feed configured under
// pipeline.feeds. Sites without stable HTML markup are easier to follow
// through their feeds.
type FeedSource struct {
	name     string
	url      string
	language string
	maxItems int
	parser   *gofeed.Parser
}

// NewFeedSource creates a collector for a configured feed.
func NewFeedSource(cfg config.FeedConfig, maxItems int) *FeedSource {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &FeedSource{
		name:     cfg.Name,
		url:      cfg.URL,
		language: languageOrDefault(cfg.Language),
		maxItems: maxItems,
		parser:   parser,
	}
}

// Name returns the configured feed name.
func (f *FeedSource) Name() string { return f.name }

// Language returns the configured stopword language for the feed.
func (f *FeedSource) Language() string { return f.language }

// Collect fetches and parses the feed.
func (f *FeedSource) Collect() ([]models.NewsItem, error) {
	feed, err := f.parser.ParseURL(f.url)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.url, err)
	}

	items := f.fromFeed(feed)
	stampCollected(items, time.Now())

	return items, nil
}

// CollectFromString parses feed XML directly, bypassing HTTP.
func (f *FeedSource) CollectFromString(xml string) ([]models.NewsItem, error) {
	feed, err := f.parser.ParseString(xml)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.name, err)
	}

	items := f.fromFeed(feed)
	stampCollected(items, time.Now())

	return items, nil
}

func (f *FeedSource) fromFeed(feed *gofeed.Feed) []models.NewsItem {
	var items []models.NewsItem

	for _, entry := range feed.Items {
		if len(items) >= f.maxItems {
			break
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" || entry.Link == "" {
			continue
		}

		items = append(items, models.NewsItem{
			Title:  title,
			Link:   entry.Link,
			Source: f.name,
		})
	}

	return items
}
