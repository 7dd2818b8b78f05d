package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"newsfreq/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS raw_news (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	link TEXT NOT NULL,
	source TEXT,
	collected_at TIMESTAMP,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(link)
);

CREATE TABLE IF NOT EXISTS processed_news (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	raw_news_id INTEGER,
	cleaned_title TEXT,
	processed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (raw_news_id) REFERENCES raw_news(id)
);

CREATE TABLE IF NOT EXISTS word_frequency (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL,
	frequency INTEGER,
	analysis_date DATE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore persists news and frequency tables in a SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// DBStats summarizes the database contents.
type DBStats struct {
	TotalNews    int
	NewsBySource map[string]int
	UniqueWords  int
}

// OpenSQLite opens (creating if needed) the database and its tables.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := ensureDir(dir); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()

		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRawNews inserts collected items, skipping links already stored.
// Returns the number of newly inserted rows.
func (s *SQLiteStore) SaveRawNews(items []models.NewsItem) (int, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	inserted := 0

	for _, item := range items {
		res, err := tx.Exec(
			`INSERT OR IGNORE INTO raw_news (title, link, source, collected_at) VALUES (?, ?, ?, ?)`,
			item.Title, item.Link, item.Source, item.CollectedAt,
		)
		if err != nil {
			tx.Rollback()

			return 0, fmt.Errorf("insert news item: %w", err)
		}

		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit news items: %w", err)
	}

	return inserted, nil
}

// SaveProcessedNews links cleaned titles back to their raw rows by link.
func (s *SQLiteStore) SaveProcessedNews(records []models.ExportRecord) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, rec := range records {
		if rec.ProcessedTitle == "" {
			continue
		}

		_, err := tx.Exec(
			`INSERT INTO processed_news (raw_news_id, cleaned_title)
			 SELECT id, ? FROM raw_news WHERE link = ?`,
			rec.ProcessedTitle, rec.Link,
		)
		if err != nil {
			tx.Rollback()

			return fmt.Errorf("insert processed title: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit processed titles: %w", err)
	}

	return nil
}

// SaveWordFrequency stores one analysis run's ranked table.
func (s *SQLiteStore) SaveWordFrequency(entries []models.FrequencyEntry, analysisDate time.Time) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	date := analysisDate.Format("2006-01-02")

	for _, e := range entries {
		_, err := tx.Exec(
			`INSERT INTO word_frequency (word, frequency, analysis_date) VALUES (?, ?, ?)`,
			e.Word, e.Frequency, date,
		)
		if err != nil {
			tx.Rollback()

			return fmt.Errorf("insert word frequency: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit word frequency: %w", err)
	}

	return nil
}

// GetRecentNews returns the most recently stored items.
func (s *SQLiteStore) GetRecentNews(limit int) ([]models.NewsItem, error) {
	var items []models.NewsItem

	err := s.db.Select(&items,
		`SELECT title, link, source, collected_at
		 FROM raw_news ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent news: %w", err)
	}

	return items, nil
}

// GetStats summarizes stored rows.
func (s *SQLiteStore) GetStats() (*DBStats, error) {
	stats := &DBStats{NewsBySource: make(map[string]int)}

	if err := s.db.Get(&stats.TotalNews, `SELECT COUNT(*) FROM raw_news`); err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	rows, err := s.db.Queryx(`SELECT source, COUNT(*) FROM raw_news GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("count news by source: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var source string

		var count int

		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("scan source count: %w", err)
		}

		stats.NewsBySource[source] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate source counts: %w", err)
	}

	if err := s.db.Get(&stats.UniqueWords, `SELECT COUNT(DISTINCT word) FROM word_frequency`); err != nil {
		return nil, fmt.Errorf("count distinct words: %w", err)
	}

	return stats, nil
}
