package collector

import (
	"testing"

	"newsfreq/internal/models"
)

func TestDedupe(t *testing.T) {
	items := []models.NewsItem{
		{Title: "One", Link: "https://example.com/a"},
		{Title: "Two", Link: "http://www.example.com/a/"},
		{Title: "Three", Link: "https://example.com/b"},
		{Title: "Four", Link: ""},
	}

	got := Dedupe(items)

	// Scheme, www and trailing-slash variants collapse; empty links drop.
	if len(got) != 2 {
		t.Fatalf("Dedupe() kept %d items, want 2: %v", len(got), got)
	}

	if got[0].Title != "One" {
		t.Errorf("First occurrence should win, got %q", got[0].Title)
	}

	if got[1].Title != "Three" {
		t.Errorf("Order should be preserved, got %q", got[1].Title)
	}
}

func TestDedupe_DomainVariantsStayDistinct(t *testing.T) {
	// Publisher domain aliases are not reconciled; this is a documented
	// heuristic limit.
	items := []models.NewsItem{
		{Title: "One", Link: "https://g1.globo.com/x"},
		{Title: "Two", Link: "https://g1.com/x"},
	}

	if got := Dedupe(items); len(got) != 2 {
		t.Errorf("Dedupe() kept %d items, want 2", len(got))
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}
