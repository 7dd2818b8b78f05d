package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsfreq/internal/models"
	"newsfreq/internal/textproc"
)

// folhaSelectors covers headline markup across Folha's front page.
var folhaSelectors = []string{
	"h2.c-headline__title a",
	"h3.c-headline__title a",
	"div.c-headline a",
	"article a.c-headline__url",
	"div.u-list-unstyled a",
	`a[href*="/2025/"], a[href*="/2026/"]`,
}

// Folha collects headlines from folha.uol.com.br (portuguese).
type Folha struct {
	client   *Client
	baseURL  string
	maxItems int
}

// NewFolha creates the Folha de S.Paulo collector.
func NewFolha(client *Client, maxItems int) *Folha {
	return &Folha{
		client:   client,
		baseURL:  "https://www.folha.uol.com.br",
		maxItems: maxItems,
	}
}

// Name returns the source name stored with each item.
func (f *Folha) Name() string { return "Folha de S.Paulo" }

// Language returns the default stopword language for this source.
func (f *Folha) Language() string { return textproc.LanguagePortuguese }

// Collect fetches the front page and extracts headlines.
func (f *Folha) Collect() ([]models.NewsItem, error) {
	html, err := f.client.Fetch(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.baseURL, err)
	}

	items, err := f.extract(html)
	if err != nil {
		return nil, err
	}

	stampCollected(items, time.Now())

	return items, nil
}

func (f *Folha) extract(html string) ([]models.NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var items []models.NewsItem

	seen := make(map[string]bool)

	for _, selector := range folhaSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if len(items) >= f.maxItems {
				return
			}

			href := s.AttrOr("href", "")
			if href == "" || seen[href] {
				return
			}

			seen[href] = true

			if !strings.HasPrefix(href, "http") {
				href = f.baseURL + "/" + strings.TrimPrefix(href, "/")
			}

			title := strings.TrimSpace(s.Text())
			if len(title) <= 10 {
				return
			}

			items = append(items, models.NewsItem{
				Title:  title,
				Link:   href,
				Source: f.Name(),
			})
		})
	}

	return items, nil
}
