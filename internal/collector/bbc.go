package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsfreq/internal/models"
	"newsfreq/internal/textproc"
)

// BBC collects headlines from bbc.com/news.
type BBC struct {
	client   *Client
	siteURL  string
	pageURL  string
	maxItems int
}

// NewBBC creates the BBC News collector.
func NewBBC(client *Client, maxItems int) *BBC {
	return &BBC{
		client:   client,
		siteURL:  "https://www.bbc.com",
		pageURL:  "https://www.bbc.com/news",
		maxItems: maxItems,
	}
}

// Name returns the source name stored with each item.
func (b *BBC) Name() string { return "BBC News" }

// Language returns the default stopword language for this source.
func (b *BBC) Language() string { return textproc.LanguageEnglish }

// Collect fetches the news front page and extracts headlines.
func (b *BBC) Collect() ([]models.NewsItem, error) {
	html, err := b.client.Fetch(b.pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", b.pageURL, err)
	}

	items, err := b.extract(html)
	if err != nil {
		return nil, err
	}

	stampCollected(items, time.Now())

	return items, nil
}

// extract tries the current headline markup first and falls back to a
// generic article scan when the layout has shifted.
func (b *BBC) extract(html string) ([]models.NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var items []models.NewsItem

	// Primary pattern: data-testid tagged h2 headlines inside anchors.
	doc.Find("h2[data-testid]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(items) >= b.maxItems {
			return false
		}

		link := s.ParentsFiltered("a").First()
		if link.Length() == 0 {
			return true
		}

		title := strings.TrimSpace(s.Text())
		href := b.absoluteURL(link.AttrOr("href", ""))

		if title != "" && href != "" {
			items = append(items, models.NewsItem{
				Title:  title,
				Link:   href,
				Source: b.Name(),
			})
		}

		return true
	})

	if len(items) > 0 {
		return items, nil
	}

	// Fallback: scan article elements for h3 headlines.
	doc.Find("article").EachWithBreak(func(_ int, article *goquery.Selection) bool {
		if len(items) >= b.maxItems {
			return false
		}

		h3 := article.Find("h3").First()
		if h3.Length() == 0 {
			return true
		}

		link := h3.ParentsFiltered("a").First()
		if link.Length() == 0 {
			link = article.Find("a").First()
		}

		if link.Length() == 0 {
			return true
		}

		title := strings.TrimSpace(h3.Text())
		href := b.absoluteURL(link.AttrOr("href", ""))

		if title != "" && href != "" {
			items = append(items, models.NewsItem{
				Title:  title,
				Link:   href,
				Source: b.Name(),
			})
		}

		return true
	})

	return items, nil
}

func (b *BBC) absoluteURL(href string) string {
	if strings.HasPrefix(href, "/") {
		return b.siteURL + href
	}

	return href
}
