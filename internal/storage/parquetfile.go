package storage

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"newsfreq/internal/models"
)

// ParquetStore writes columnar exports under a base directory.
type ParquetStore struct {
	basePath string
}

// NewParquetStore creates a Parquet backend rooted at basePath.
func NewParquetStore(basePath string) *ParquetStore {
	return &ParquetStore{basePath: basePath}
}

// SaveNews writes the export rows as a snappy-compressed parquet file.
func (p *ParquetStore) SaveNews(records []models.ExportRecord, filename string) error {
	if err := ensureDir(p.basePath); err != nil {
		return err
	}

	f, err := os.Create(resolve(p.basePath, filename))
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[models.ExportRecord](f, parquet.Compression(&parquet.Snappy))

	if _, err := w.Write(records); err != nil {
		w.Close()

		return fmt.Errorf("write parquet rows: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}

	return nil
}
