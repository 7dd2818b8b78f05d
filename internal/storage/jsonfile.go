package storage

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"newsfreq/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONStore writes structured JSON documents under a base directory.
type JSONStore struct {
	basePath string
}

// NewJSONStore creates a JSON backend rooted at basePath.
func NewJSONStore(basePath string) *JSONStore {
	return &JSONStore{basePath: basePath}
}

// SaveAnalysis writes the full analysis document, indented for humans.
func (j *JSONStore) SaveAnalysis(result models.AnalysisResult, filename string) error {
	return j.write(result, filename)
}

// SaveNews writes a bare collected batch, the input format of the
// offline analyze command.
func (j *JSONStore) SaveNews(items []models.NewsItem, filename string) error {
	return j.write(items, filename)
}

func (j *JSONStore) write(v any, filename string) error {
	if err := ensureDir(j.basePath); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	path := resolve(j.basePath, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}

	return nil
}

// LoadNewsFile reads a collected batch written by SaveNews.
func LoadNewsFile(path string) ([]models.NewsItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read news file: %w", err)
	}

	var items []models.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse news file: %w", err)
	}

	return items, nil
}
