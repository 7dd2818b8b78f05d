package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"newsfreq/internal/models"
)

// CSVStore writes delimited exports under a base directory.
type CSVStore struct {
	basePath string
}

// NewCSVStore creates a CSV backend rooted at basePath.
func NewCSVStore(basePath string) *CSVStore {
	return &CSVStore{basePath: basePath}
}

// SaveNews writes the export rows with a header line.
func (c *CSVStore) SaveNews(records []models.ExportRecord, filename string) error {
	w, f, err := c.open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"title", "processed_title", "link", "source", "collected_at"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Title, rec.ProcessedTitle, rec.Link, rec.Source, rec.CollectedAt}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

// SaveWordFrequency writes the ranked table preserving its order.
func (c *CSVStore) SaveWordFrequency(entries []models.FrequencyEntry, filename string) error {
	w, f, err := c.open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.Write([]string{"word", "frequency"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		if err := w.Write([]string{e.Word, strconv.Itoa(e.Frequency)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

func (c *CSVStore) open(filename string) (*csv.Writer, *os.File, error) {
	if err := ensureDir(c.basePath); err != nil {
		return nil, nil, err
	}

	f, err := os.Create(resolve(c.basePath, filename))
	if err != nil {
		return nil, nil, fmt.Errorf("create csv file: %w", err)
	}

	return csv.NewWriter(f), f, nil
}
