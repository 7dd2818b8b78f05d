package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsfreq/internal/models"
	"newsfreq/internal/textproc"
)

// HackerNews collects front-page story titles from news.ycombinator.com.
type HackerNews struct {
	client   *Client
	baseURL  string
	maxItems int
}

// NewHackerNews creates the Hacker News collector.
func NewHackerNews(client *Client, maxItems int) *HackerNews {
	return &HackerNews{
		client:   client,
		baseURL:  "https://news.ycombinator.com",
		maxItems: maxItems,
	}
}

// Name returns the source name stored with each item.
func (h *HackerNews) Name() string { return "Hacker News" }

// Language returns the default stopword language for this source.
func (h *HackerNews) Language() string { return textproc.LanguageEnglish }

// Collect fetches the front page and extracts story titles.
func (h *HackerNews) Collect() ([]models.NewsItem, error) {
	html, err := h.client.Fetch(h.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", h.baseURL, err)
	}

	items, err := h.extract(html)
	if err != nil {
		return nil, err
	}

	stampCollected(items, time.Now())

	return items, nil
}

// extract pulls stories out of the front-page HTML. Stories live in
// tr.athing rows with the link inside span.titleline.
func (h *HackerNews) extract(html string) ([]models.NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var items []models.NewsItem

	doc.Find("tr.athing span.titleline > a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(items) >= h.maxItems {
			return false
		}

		title := strings.TrimSpace(s.Text())
		href := s.AttrOr("href", "")

		// Self posts link relative to the site
		if strings.HasPrefix(href, "item?") {
			href = h.baseURL + "/" + href
		}

		if title == "" || href == "" {
			return true
		}

		items = append(items, models.NewsItem{
			Title:  title,
			Link:   href,
			Source: h.Name(),
		})

		return true
	})

	return items, nil
}
