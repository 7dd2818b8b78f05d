package collector

import (
	"strings"

	"newsfreq/internal/models"
)

// Dedupe removes items whose link was already seen, keeping the first
// occurrence and preserving order. The key normalization strips scheme
// and www prefix, so http/https and www variants of the same page
// collapse; distinct domain aliases of one publisher do not.
func Dedupe(items []models.NewsItem) []models.NewsItem {
	seen := make(map[string]bool, len(items))

	unique := make([]models.NewsItem, 0, len(items))

	for _, item := range items {
		key := dedupeKey(item.Link)
		if key == "" || seen[key] {
			continue
		}

		seen[key] = true

		unique = append(unique, item)
	}

	return unique
}

func dedupeKey(link string) string {
	key := strings.TrimSpace(strings.ToLower(link))
	key = strings.TrimPrefix(key, "https://")
	key = strings.TrimPrefix(key, "http://")
	key = strings.TrimPrefix(key, "www.")

	return strings.TrimSuffix(key, "/")
}
