package collector

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsfreq/internal/models"
	"newsfreq/internal/textproc"
)

// g1Selectors is the chain of feed/headline patterns tried in order. G1
// mixes several layout generations on its front page.
var g1Selectors = []string{
	"a.feed-post-link",
	"div.bastian-page a",
	"div.feed-post-body a",
	"div._evt a",
	"div.hui-premium a",
	"h2 a",
}

// G1 collects headlines from g1.globo.com (portuguese).
type G1 struct {
	client   *Client
	baseURL  string
	maxItems int
}

// NewG1 creates the G1 collector.
func NewG1(client *Client, maxItems int) *G1 {
	return &G1{
		client:   client,
		baseURL:  "https://g1.globo.com",
		maxItems: maxItems,
	}
}

// Name returns the source name stored with each item.
func (g *G1) Name() string { return "G1" }

// Language returns the default stopword language for this source.
func (g *G1) Language() string { return textproc.LanguagePortuguese }

// Collect fetches the front page and extracts headlines.
func (g *G1) Collect() ([]models.NewsItem, error) {
	html, err := g.client.Fetch(g.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", g.baseURL, err)
	}

	items, err := g.extract(html)
	if err != nil {
		return nil, err
	}

	stampCollected(items, time.Now())

	return items, nil
}

func (g *G1) extract(html string) ([]models.NewsItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var items []models.NewsItem

	seen := make(map[string]bool)

	for _, selector := range g1Selectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if len(items) >= g.maxItems {
				return
			}

			href := g.absoluteURL(s.AttrOr("href", ""))
			if href == "" || seen[href] {
				return
			}

			title := strings.TrimSpace(s.Text())

			// Short text usually means the anchor wraps an image; look
			// for a headline element inside.
			if len(title) < 10 {
				title = strings.TrimSpace(s.Find("h2, h3, span, div").First().Text())
			}

			if len(title) <= 10 || !g.isNewsLink(href) {
				return
			}

			seen[href] = true

			items = append(items, models.NewsItem{
				Title:  title,
				Link:   href,
				Source: g.Name(),
			})
		})
	}

	if len(items) > 0 {
		return items, nil
	}

	// Generic fallback: any sufficiently long anchor text pointing at a
	// globo.com news URL.
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(items) >= g.maxItems {
			return false
		}

		title := strings.TrimSpace(s.Text())
		href := g.absoluteURL(s.AttrOr("href", ""))

		if len(title) > 20 && strings.Contains(href, "globo.com") &&
			strings.Contains(strings.ToLower(href), "noticia") && !seen[href] {
			seen[href] = true

			items = append(items, models.NewsItem{
				Title:  title,
				Link:   href,
				Source: g.Name(),
			})
		}

		return true
	})

	return items, nil
}

func (g *G1) absoluteURL(href string) string {
	switch {
	case href == "" || strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return g.baseURL + href
	default:
		return ""
	}
}

// isNewsLink keeps only links on the globo domains. The domain-variant
// check is heuristic; variants that slip through are handled by the
// URL dedupe pass.
func (g *G1) isNewsLink(href string) bool {
	return strings.Contains(href, "globo.com") || strings.Contains(href, "g1.com")
}
