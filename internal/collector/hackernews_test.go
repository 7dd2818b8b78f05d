package collector

import "testing"

const hackerNewsHTML = `
<html><body><table>
<tr class="athing" id="1">
  <td><span class="titleline"><a href="https://example.com/story-one">First Story</a></span></td>
</tr>
<tr class="athing" id="2">
  <td><span class="titleline"><a href="item?id=2">Ask HN: Second Story</a></span></td>
</tr>
<tr class="athing" id="3">
  <td><span class="titleline"><a href="https://example.org/three">Third Story</a></span></td>
</tr>
</table></body></html>`

func TestHackerNews_Extract(t *testing.T) {
	h := NewHackerNews(NewClient(), 30)

	items, err := h.extract(hackerNewsHTML)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}

	if items[0].Title != "First Story" {
		t.Errorf("Title = %q, want 'First Story'", items[0].Title)
	}

	if items[0].Source != "Hacker News" {
		t.Errorf("Source = %q, want 'Hacker News'", items[0].Source)
	}

	// Relative self-post links resolve against the site
	want := "https://news.ycombinator.com/item?id=2"
	if items[1].Link != want {
		t.Errorf("Link = %q, want %q", items[1].Link, want)
	}
}

func TestHackerNews_ExtractRespectsMaxItems(t *testing.T) {
	h := NewHackerNews(NewClient(), 2)

	items, err := h.extract(hackerNewsHTML)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(items) != 2 {
		t.Errorf("Expected 2 items with maxItems=2, got %d", len(items))
	}
}

func TestHackerNews_ExtractEmptyPage(t *testing.T) {
	h := NewHackerNews(NewClient(), 30)

	items, err := h.extract("<html><body></body></html>")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(items) != 0 {
		t.Errorf("Expected no items, got %d", len(items))
	}
}
