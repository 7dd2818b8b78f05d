package storage

import (
	"testing"
	"time"

	"newsfreq/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	t.Cleanup(func() { store.Close() })

	return store
}

func sampleNews() []models.NewsItem {
	return []models.NewsItem{
		{Title: "Markets crash", Link: "https://example.com/1", Source: "BBC News", CollectedAt: "2026-08-28T10:00:00Z"},
		{Title: "Markets recover", Link: "https://example.com/2", Source: "BBC News", CollectedAt: "2026-08-28T10:00:00Z"},
		{Title: "Elsewhere", Link: "https://example.org/1", Source: "Hacker News", CollectedAt: "2026-08-28T10:00:00Z"},
	}
}

func TestSQLiteStore_SaveRawNews(t *testing.T) {
	store := newTestStore(t)

	inserted, err := store.SaveRawNews(sampleNews())
	if err != nil {
		t.Fatalf("SaveRawNews failed: %v", err)
	}

	if inserted != 3 {
		t.Errorf("inserted = %d, want 3", inserted)
	}

	// Duplicate links are ignored on re-insert.
	inserted, err = store.SaveRawNews(sampleNews())
	if err != nil {
		t.Fatalf("SaveRawNews failed on re-insert: %v", err)
	}

	if inserted != 0 {
		t.Errorf("re-insert inserted = %d, want 0", inserted)
	}
}

func TestSQLiteStore_GetRecentNews(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveRawNews(sampleNews()); err != nil {
		t.Fatalf("SaveRawNews failed: %v", err)
	}

	items, err := store.GetRecentNews(2)
	if err != nil {
		t.Fatalf("GetRecentNews failed: %v", err)
	}

	if len(items) != 2 {
		t.Errorf("GetRecentNews returned %d items, want 2", len(items))
	}
}

func TestSQLiteStore_SaveProcessedNews(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveRawNews(sampleNews()); err != nil {
		t.Fatalf("SaveRawNews failed: %v", err)
	}

	records := []models.ExportRecord{
		{Title: "Markets crash", ProcessedTitle: "markets crash", Link: "https://example.com/1"},
		{Title: "The a of", ProcessedTitle: "", Link: "https://example.com/2"}, // skipped
	}

	if err := store.SaveProcessedNews(records); err != nil {
		t.Fatalf("SaveProcessedNews failed: %v", err)
	}

	var count int
	if err := store.db.Get(&count, `SELECT COUNT(*) FROM processed_news`); err != nil {
		t.Fatalf("count failed: %v", err)
	}

	if count != 1 {
		t.Errorf("processed_news rows = %d, want 1", count)
	}
}

func TestSQLiteStore_WordFrequencyAndStats(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveRawNews(sampleNews()); err != nil {
		t.Fatalf("SaveRawNews failed: %v", err)
	}

	entries := []models.FrequencyEntry{
		{Word: "markets", Frequency: 2},
		{Word: "crash", Frequency: 1},
	}

	if err := store.SaveWordFrequency(entries, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SaveWordFrequency failed: %v", err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if stats.TotalNews != 3 {
		t.Errorf("TotalNews = %d, want 3", stats.TotalNews)
	}

	if stats.NewsBySource["BBC News"] != 2 {
		t.Errorf("NewsBySource[BBC News] = %d, want 2", stats.NewsBySource["BBC News"])
	}

	if stats.UniqueWords != 2 {
		t.Errorf("UniqueWords = %d, want 2", stats.UniqueWords)
	}
}
